package solver

// Conflict analysis: first-UIP resolution with recursive self-subsumption
// (SPEC_FULL.md §4.5). Grounded on microsat.c's analyze()/implied(); the
// goto-based "jump to build" control flow is expressed as a labeled for
// loop broken out of early, the idiomatic Go replacement for a forward
// goto that skips the remainder of a loop body.

// analyze resolves the falsified clause at clauseBase (its literal-region
// offset) into a new asserting lemma, adds it to the arena as a redundant
// clause, and returns its literal-region offset.
func (s *Solver) analyze(clauseBase int32) (int32, error) {
	s.res++
	s.nConflicts++
	s.Stats.NbConflicts++

	for i := int32(0); s.db[clauseBase+i] != 0; i++ {
		s.bump(s.db[clauseBase+i])
	}

resolve:
	for {
		s.assigned--
		lit := s.trail[s.assigned]
		v := vabs(lit)
		if s.reason[v] == 0 {
			// Reached the last decision: this position is the first-UIP.
			break resolve
		}
		if s.mfalseOf(lit) == mark {
			firstUIP := true
			check := s.assigned
			for {
				check--
				if s.mfalseOf(s.trail[check]) == mark {
					firstUIP = false
					break
				}
				if s.isDecision(vabs(s.trail[check])) {
					break
				}
			}
			if firstUIP {
				break resolve
			}
			reasonLits := s.reasonOffset(v)
			for i := int32(1); s.db[reasonLits+i] != 0; i++ {
				s.bump(s.db[reasonLits+i])
			}
		}
		s.unassign(lit)
	}

	size := int32(0)
	lbd := int32(0)
	flag := false
	s.processed = s.assigned
	for p := s.assigned; p >= s.forced; p-- {
		lit := s.trail[p]
		if s.mfalseOf(lit) == mark && !s.implied(lit) {
			s.buffer[size] = lit
			size++
			flag = true
		}
		if s.reason[vabs(lit)] == 0 {
			if flag {
				lbd++
			}
			flag = false
			if size == 1 {
				s.processed = p
			}
		}
		s.setMfalse(lit, falsed)
	}

	s.fast -= s.fast >> 5
	s.fast += int64(lbd) << 15
	s.slow -= s.slow >> 15
	s.slow += int64(lbd) << 5

	for s.assigned > s.processed {
		lit := s.trail[s.assigned]
		s.unassign(lit)
		s.assigned--
	}
	s.unassign(s.trail[s.assigned])

	return s.addClause(s.buffer[:size], false)
}

// implied reports whether lit is implied by the currently MARKed literals,
// by recursively walking its reason chain. Results are cached in mfalse
// itself (implM1/implied), so repeated calls are idempotent and the
// recursion is linear in the size of the reached sub-DAG. The recursion is
// not tail-recursive; its depth is bounded only by the trail length.
func (s *Solver) implied(lit Lit) bool {
	mf := s.mfalseOf(lit)
	if mf > mark {
		return mf&mark != 0
	}
	v := vabs(lit)
	if s.reason[v] == 0 {
		return false
	}
	reasonLits := s.reasonOffset(v)
	for i := int32(1); s.db[reasonLits+i] != 0; i++ {
		q := s.db[reasonLits+i]
		if s.mfalseOf(q) != mark && !s.implied(q) {
			s.setMfalse(lit, implM1)
			return false
		}
	}
	s.setMfalse(lit, implied)
	return true
}
