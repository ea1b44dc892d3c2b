package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCNFRoundTrip(t *testing.T) {
	src := "c a comment\np cnf 3 3\n1 2 0\n-1 3 0\n2 -3 0\n"
	pb, err := ParseCNF(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, pb.NbVars)
	assert.Len(t, pb.Clauses, 3)
	assert.Equal(t, Indet, pb.Status)

	pb2, err := ParseCNF(strings.NewReader(pb.CNF()))
	require.NoError(t, err)
	assert.Equal(t, pb.NbVars, pb2.NbVars)
	assert.ElementsMatch(t, pb.Clauses, pb2.Clauses)
}

func TestParseCNFUnitClause(t *testing.T) {
	pb, err := ParseCNF(strings.NewReader("p cnf 2 2\n1 0\n-1 2 0\n"))
	require.NoError(t, err)
	assert.Equal(t, []Lit{1}, pb.Units)
	assert.Len(t, pb.Clauses, 1)
}

func TestParseCNFContradictingUnitsIsUnsat(t *testing.T) {
	pb, err := ParseCNF(strings.NewReader("p cnf 1 2\n1 0\n-1 0\n"))
	require.NoError(t, err)
	assert.Equal(t, Unsat, pb.Status)
}

func TestParseCNFEmptyClauseIsUnsat(t *testing.T) {
	pb, err := ParseCNF(strings.NewReader("p cnf 1 1\n0\n"))
	require.NoError(t, err)
	assert.Equal(t, Unsat, pb.Status)
}

func TestParseCNFUnfinishedClauseIsError(t *testing.T) {
	_, err := ParseCNF(strings.NewReader("p cnf 1 1\n1 2"))
	assert.Error(t, err)
}

func TestParseCNFOutOfRangeLiteralIsError(t *testing.T) {
	_, err := ParseCNF(strings.NewReader("p cnf 2 1\n1 3 0\n"))
	assert.Error(t, err)
}

func TestParseSliceEmptyClauseIsUnsat(t *testing.T) {
	pb := ParseSlice([][]int{{1, 2}, {}})
	assert.Equal(t, Unsat, pb.Status)
}

func TestParseSliceComputesNbVars(t *testing.T) {
	pb := ParseSlice([][]int{{1, -4}, {2, 3}})
	assert.Equal(t, 4, pb.NbVars)
}
