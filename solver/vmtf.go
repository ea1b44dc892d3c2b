package solver

// VMTF (Variable Move-To-Front) decision heuristic (SPEC_FULL.md §3, §4.5).
// next/prev form a doubly-linked list over variables 1..nbVars; head is the
// most recently bumped variable. Grounded on microsat.c's bump() and the
// VMTF initialization in initCDCL().

// initVMTF lays out the list 1, 2, ..., nbVars with head = nbVars.
func (s *Solver) initVMTF() {
	for i := Var(1); i <= s.nbVars; i++ {
		s.prev[i] = i - 1
		s.next[i-1] = i
	}
	s.head = s.nbVars
}

// bump moves the variable underlying lit to the front of the VMTF list and
// marks lit as under analysis, unless lit is already part of the root-forced
// prefix (IMPLIED literals are never reordered: their falsification is fixed
// at the root level regardless of any heuristic).
func (s *Solver) bump(lit Lit) {
	if s.mfalseOf(lit) == implied {
		return
	}
	s.setMfalse(lit, mark)
	v := vabs(lit)
	if v == s.head {
		return
	}
	s.prev[s.next[v]] = s.prev[v]
	s.next[s.prev[v]] = s.next[v]
	s.next[s.head] = v
	s.prev[v] = s.head
	s.head = v
}
