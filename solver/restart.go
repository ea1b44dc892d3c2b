package solver

// Restart policy and lemma deletion (SPEC_FULL.md §4.6). Grounded on
// microsat.c's restart()/reduceDB(). The restart trigger itself (fast vs
// slow LBD moving averages) lives in the search driver (solver.go), since
// it also decides whether to invoke reduceDB; this file only performs the
// two mechanical operations once triggered.

// restart unassigns every literal above the root-forced prefix and resets
// the propagation cursor to forced.
func (s *Solver) restart() {
	for s.assigned > s.forced {
		s.assigned--
		s.unassign(s.trail[s.assigned])
	}
	s.processed = s.forced
	s.Stats.NbRestarts++
}

// reduceDB grows maxLemmas, excises every watch chain entry pointing into
// the lemma region, then walks the old lemma region clause-by-clause: a
// lemma with at least k literals satisfied by the current (phase-saving)
// model is dropped; otherwise it is re-added as a fresh redundant clause.
func (s *Solver) reduceDB(k int32) error {
	for s.nLemmas > s.maxLemmas {
		s.maxLemmas += 300
	}
	s.nLemmas = 0
	s.Stats.NbReduceDB++

	for lit := -s.nbVars; lit <= s.nbVars; lit++ {
		if lit == 0 {
			continue
		}
		watchPtr := &s.first[lit+s.nbVars]
		for *watchPtr != end {
			if *watchPtr < s.memFixed {
				watchPtr = &s.db[*watchPtr]
			} else {
				*watchPtr = s.db[*watchPtr]
			}
		}
	}

	oldUsed := s.memUsed
	s.memUsed = s.memFixed
	for i := s.memFixed + 2; i < oldUsed; i += 3 {
		head := i
		count := int32(0)
		for s.db[i] != 0 {
			lit := s.db[i]
			i++
			satisfied := (lit > 0) == (s.model[vabs(lit)] != 0)
			if satisfied {
				count++
			}
		}
		if count < k {
			if _, err := s.addClause(s.db[head:i], false); err != nil {
				return err
			}
		} else {
			s.Stats.NbDeleted++
		}
	}
	return nil
}
