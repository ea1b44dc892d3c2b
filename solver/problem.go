package solver

import "fmt"

// A Problem is a parsed CNF instance: a variable count and a set of
// clauses, ready to be handed to New. Grounded on
// crillab-gophersat/solver/problem.go's Problem shape (NbVars, Clauses,
// Status, Units), adapted to the CORE's raw int32 literal convention and
// to the packed-arena input contract (SPEC_FULL.md §6): unit clauses are
// tracked separately so New can install them as forced literals the same
// way the external Parser collaborator is specified to.
type Problem struct {
	NbVars  int     // Total number of variables.
	Clauses [][]Lit // Clauses of size >= 2.
	Units   []Lit   // Clauses of size 1, as their single literal.
	Status  Status  // Indet, or Unsat if a trivial conflict was already found while parsing.
}

// CNF renders the problem back as a DIMACS CNF stream, the same round-trip
// helper the teacher exposes on its own Problem type.
func (pb *Problem) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", pb.NbVars, len(pb.Clauses)+len(pb.Units))
	for _, lit := range pb.Units {
		res += fmt.Sprintf("%d 0\n", lit)
	}
	for _, cl := range pb.Clauses {
		for _, lit := range cl {
			res += fmt.Sprintf("%d ", lit)
		}
		res += "0\n"
	}
	return res
}

// addUnit records a unit clause, flipping Status to Unsat if it directly
// contradicts a unit already seen (SPEC_FULL.md §6 input contract).
func (pb *Problem) addUnit(lit Lit, seen map[Lit]bool) {
	if seen[-lit] {
		pb.Status = Unsat
		return
	}
	if seen[lit] {
		return
	}
	seen[lit] = true
	pb.Units = append(pb.Units, lit)
}
