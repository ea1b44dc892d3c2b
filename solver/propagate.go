package solver

// Unit propagation over the two-watched-literal scheme (SPEC_FULL.md §4.4).
// Grounded on microsat.c's propagate(), including the header-shift quirk
// (§9, §4.4 edge case): a watch anchored through a clause's first link cell
// lands the walk one cell short of the literal region, detected by the
// fact that the previous clause's zero terminator always immediately
// precedes the next clause's offset in a contiguously-allocated arena.
//
// The chain-walk pointer is a genuine *int32 into s.first or s.db. Both
// slices are allocated once at capacity and never grow afterwards, so the
// pointer stays valid for the lifetime of the solver — the direct Go
// translation of the C code's raw int* walk.
func (s *Solver) propagate() (Status, error) {
	forced := s.reason[vabs(s.trail[s.processed])] != 0

	for s.processed < s.assigned {
		lit := s.trail[s.processed]
		s.processed++

		watchPtr := &s.first[lit+s.nbVars]
	chain:
		for *watchPtr != end {
			watchOff := *watchPtr
			clauseBase := watchOff + 1
			if s.db[clauseBase-2] == 0 {
				clauseBase++
			}
			if s.db[clauseBase] == lit {
				s.db[clauseBase], s.db[clauseBase+1] = s.db[clauseBase+1], s.db[clauseBase]
			}

			unit := true
			for i := int32(2); unit && s.db[clauseBase+i] != 0; i++ {
				x := s.db[clauseBase+i]
				if s.mfalseOf(x) == free {
					s.db[clauseBase+1] = x
					s.db[clauseBase+i] = lit
					unit = false
					store := watchOff
					*watchPtr = s.db[watchOff]
					s.addWatch(x, store)
				}
			}

			if unit {
				s.db[clauseBase+1] = lit
				watchPtr = &s.db[watchOff]
				other := s.db[clauseBase]
				if s.mfalseOf(-other) != free {
					continue chain
				}
				if s.mfalseOf(other) == free {
					s.assign(clauseBase, forced)
				} else {
					if forced {
						return Unsat, nil
					}
					lemma, err := s.analyze(clauseBase)
					if err != nil {
						return Indet, err
					}
					forced = s.db[lemma+1] == 0
					s.assign(lemma, forced)
					break chain
				}
			}
		}
	}
	if forced {
		s.forced = s.processed
	}
	return Sat, nil
}
