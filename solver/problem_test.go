package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProblemCNFRendersUnitsAndClauses(t *testing.T) {
	pb := ParseSlice([][]int{{1}, {-1, 2, 3}})
	out := pb.CNF()
	assert.Contains(t, out, "p cnf 3 2\n")
	assert.Contains(t, out, "1 0\n")
	assert.Contains(t, out, "-1 2 3 0\n")
}

func TestAddUnitDedupesRepeatedLiteral(t *testing.T) {
	var pb Problem
	seen := make(map[Lit]bool)
	pb.addUnit(1, seen)
	pb.addUnit(1, seen)
	assert.Equal(t, []Lit{1}, pb.Units)
	assert.Equal(t, Indet, pb.Status)
}

func TestAddUnitContradictionIsUnsat(t *testing.T) {
	var pb Problem
	seen := make(map[Lit]bool)
	pb.addUnit(1, seen)
	pb.addUnit(-1, seen)
	assert.Equal(t, Unsat, pb.Status)
}
