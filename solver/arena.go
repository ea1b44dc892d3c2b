package solver

import "errors"

// ErrArenaExhausted is returned when the clause arena's fixed capacity is
// exceeded. There is no recovery; a caller that hits it must abandon the
// run (SPEC_FULL.md §7).
var ErrArenaExhausted = errors.New("solver: clause arena exhausted")

// defaultMaxMem is the arena's fixed maximum capacity, in int32 cells.
// SPEC_FULL.md §3 suggests 2^30; that is far more than any test or typical
// CLI invocation needs, so the constructor scales a smaller default off the
// problem size and only falls back to this ceiling for very large inputs.
const defaultMaxMem = 1 << 30

// getMemory reserves n contiguous cells at the high-water mark and returns
// their offset. Grounded on microsat.c's getMemory(): the arena never frees
// individual allocations, only compacts wholesale in reduceDB (restart.go).
func (s *Solver) getMemory(n int32) (int32, error) {
	if s.memUsed+n >= int32(len(s.db)) {
		return 0, ErrArenaExhausted
	}
	off := s.memUsed
	s.memUsed += n
	return off, nil
}

// addClause writes a new clause into the arena (SPEC_FULL.md §4.1).
// lits is copied into the clause body; the clause size is len(lits).
// irredundant marks the clause as an original (permanent) clause rather
// than a learned lemma. It returns the literals-region offset (the "clause
// pointer" the rest of the solver threads around), i.e. cref+2.
func (s *Solver) addClause(lits []int32, irredundant bool) (int32, error) {
	size := int32(len(lits))
	cref, err := s.getMemory(size + 3)
	if err != nil {
		return 0, err
	}
	lit0 := cref + 2
	if size >= 2 {
		s.addWatch(lits[0], cref)
		s.addWatch(lits[1], cref+1)
	}
	copy(s.db[lit0:lit0+size], lits)
	s.db[lit0+size] = 0
	if irredundant {
		s.memFixed = s.memUsed
	} else {
		s.nLemmas++
		s.Stats.NbLearned++
	}
	return lit0, nil
}

// addWatch prepends the clause whose watch cell lives at offset mem to
// lit's watch chain (microsat.c's addWatch).
func (s *Solver) addWatch(lit Lit, mem int32) {
	s.db[mem] = s.first[lit+s.nbVars]
	s.first[lit+s.nbVars] = mem
}

// mfalseOf returns mfalse[lit].
func (s *Solver) mfalseOf(lit Lit) int32 {
	return s.mfalse[lit+s.nbVars]
}

// setMfalse sets mfalse[lit] = v.
func (s *Solver) setMfalse(lit Lit, v int32) {
	s.mfalse[lit+s.nbVars] = v
}
