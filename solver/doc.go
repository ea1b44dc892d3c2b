/*
Package solver implements a minimalist CDCL (Conflict-Driven Clause
Learning) SAT solver: a packed integer clause arena with two-watched-literal
propagation, first-UIP conflict analysis with recursive self-subsumption, a
VMTF decision heuristic, and an LBD-driven, Luby-free restart policy with
periodic reduceDB lemma deletion.

Describing a problem

A problem can be parsed from a DIMACS CNF stream:

    pb, err := solver.ParseCNF(f)

or built programmatically from a slice of clauses, each a slice of signed
int literals:

    pb := solver.ParseSlice([][]int{
        {1, 2, 3},
        {-1, -2},
        {-2, -3},
    })

Solving a problem

    s, err := solver.New(pb, cfg)
    status, err := s.Solve()

If status is solver.Sat, the model can be read off s.Model(): variable v is
true iff Model()[v-1].

    m := s.Model()

Statistics about the run (conflicts, restarts, learned/deleted clauses,
elapsed time) are available on s.Stats once Solve returns.
*/
package solver
