package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenasat/arenasat/config"
)

// Grounded on crillab-gophersat/solver/solver_test.go's table-driven
// ParseSlice/New/Solve shape, adapted to testify assertions per
// SPEC_FULL.md §10.

func solve(t *testing.T, cnf [][]int) (Status, *Solver) {
	t.Helper()
	pb := ParseSlice(cnf)
	s, err := New(pb, nil)
	require.NoError(t, err)
	status, err := s.Solve()
	require.NoError(t, err)
	return status, s
}

func TestEmptyClauseIsUnsat(t *testing.T) {
	status, _ := solve(t, [][]int{{1}, {}})
	assert.Equal(t, Unsat, status)
}

func TestUnitAndItsNegationIsUnsat(t *testing.T) {
	status, _ := solve(t, [][]int{{1}, {-1}})
	assert.Equal(t, Unsat, status)
}

func TestPigeonholeThreeIntoTwoIsUnsat(t *testing.T) {
	// PHP(3,2): pigeons 1..3, holes 1..2. Var (p-1)*2+h means pigeon p in
	// hole h. Every pigeon goes somewhere; no hole holds two pigeons.
	v := func(p, h int) int { return (p-1)*2 + h }
	var cnf [][]int
	for p := 1; p <= 3; p++ {
		cnf = append(cnf, []int{v(p, 1), v(p, 2)})
	}
	for h := 1; h <= 2; h++ {
		for p1 := 1; p1 <= 3; p1++ {
			for p2 := p1 + 1; p2 <= 3; p2++ {
				cnf = append(cnf, []int{-v(p1, h), -v(p2, h)})
			}
		}
	}
	status, _ := solve(t, cnf)
	assert.Equal(t, Unsat, status)
}

func TestTwoSatIsSat(t *testing.T) {
	cnf := [][]int{{1, 2}, {-1, 3}, {-2, -3}, {1, -3}}
	status, s := solve(t, cnf)
	require.Equal(t, Sat, status)
	checkModel(t, cnf, s.Model())
}

func TestXorChainIsUnsat(t *testing.T) {
	// x1 xor x2, x2 xor x3, x3 xor x1: no consistent assignment exists.
	xor := func(a, b int) [][]int {
		return [][]int{{a, b}, {-a, -b}}
	}
	var cnf [][]int
	cnf = append(cnf, xor(1, 2)...)
	cnf = append(cnf, xor(2, 3)...)
	cnf = append(cnf, xor(-3, -1)...)
	status, _ := solve(t, cnf)
	assert.Equal(t, Unsat, status)
}

func TestRandomThreeSatIsSat(t *testing.T) {
	cnf := [][]int{
		{1, 2, 3}, {-1, 2, -4}, {3, -2, 5}, {-3, -5, 1},
		{4, -2, -5}, {1, -3, 4}, {-1, -4, 5}, {2, 3, -5},
	}
	status, s := solve(t, cnf)
	require.Equal(t, Sat, status)
	checkModel(t, cnf, s.Model())
}

// checkModel verifies that model satisfies every clause in cnf, the
// round-trip property a Sat verdict must uphold (SPEC_FULL.md §8).
func checkModel(t *testing.T, cnf [][]int, model []bool) {
	t.Helper()
	litTrue := func(lit int) bool {
		v := lit
		if v < 0 {
			v = -v
		}
		b := model[v-1]
		if lit < 0 {
			return !b
		}
		return b
	}
	for _, cl := range cnf {
		ok := false
		for _, lit := range cl {
			if litTrue(lit) {
				ok = true
				break
			}
		}
		assert.Truef(t, ok, "clause %v not satisfied by model %v", cl, model)
	}
}

func TestMaxConflictsYieldsUnknown(t *testing.T) {
	v := func(p, h int) int { return (p-1)*3 + h }
	var cnf [][]int
	for p := 1; p <= 6; p++ {
		var row []int
		for h := 1; h <= 3; h++ {
			row = append(row, v(p, h))
		}
		cnf = append(cnf, row)
	}
	for h := 1; h <= 3; h++ {
		for p1 := 1; p1 <= 6; p1++ {
			for p2 := p1 + 1; p2 <= 6; p2++ {
				cnf = append(cnf, []int{-v(p1, h), -v(p2, h)})
			}
		}
	}
	pb := ParseSlice(cnf)
	s, err := New(pb, config.New(false).WithMaxConflicts(1))
	require.NoError(t, err)
	status, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, Unknown, status)
}

func TestTrivialUnsatShortCircuitsNew(t *testing.T) {
	pb := ParseSlice([][]int{{1}, {-1}})
	require.Equal(t, Unsat, pb.Status)
	s, err := New(pb, nil)
	require.NoError(t, err)
	status, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, Unsat, status)
}

func TestImpliedIsIdempotent(t *testing.T) {
	// implied caches its verdict on mfalse (implM1/implied); asking twice
	// must return the same answer both times (SPEC_FULL.md §4.5).
	cnf := [][]int{{1}, {-1, 2}, {-2, 3}}
	pb := ParseSlice(cnf)
	s, err := New(pb, nil)
	require.NoError(t, err)
	status, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, Sat, status)
	first := s.implied(2)
	assert.Equal(t, first, s.implied(2))
}
