package solver

// Describes basic types and constants used by the arena-based CDCL core.
//
// Unlike a bit-shifted Var/Lit scheme, literals here are the CNF integers
// themselves: a variable is 1..nbVars, a literal is a non-zero signed int32,
// and -lit is its negation. This matches the packed integer arena directly:
// a literal can be written into the arena and read back with no decoding.

// Status is the status of a solving attempt.
type Status byte

const (
	// Indet means the problem is not proven sat or unsat yet.
	Indet = Status(iota)
	// Sat means a satisfying model was found.
	Sat
	// Unsat means the problem is unsatisfiable.
	Unsat
	// Unknown means the search was aborted before a verdict, e.g. a
	// conflict budget was exhausted. Not part of the CORE's own
	// vocabulary; an ambient extension (SPEC_FULL.md §5, §9).
	Unknown
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	case Unknown:
		return "UNKNOWN"
	default:
		panic("invalid status")
	}
}

// Lit is a DIMACS literal: a non-zero signed integer, +v or -v for variable v.
type Lit = int32

// Var is a DIMACS variable, always >= 1.
type Var = int32

// vabs returns the variable underlying a literal, i.e. |lit|.
func vabs(lit Lit) Var {
	if lit < 0 {
		return -lit
	}
	return lit
}

// Sentinel values for the mfalse truth array (§3 of SPEC_FULL.md).
const (
	free    int32 = 0 // literal unassigned
	falsed  int32 = 1 // literal falsified, not part of the root prefix
	mark    int32 = 2 // transient conflict-analysis tag
	implM1  int32 = 5 // IMPLIED-1: self-subsumption cache, "not implied"
	implied int32 = 6 // falsified, root-forced, or "implied" cache hit
)

// end is the watch-chain termination sentinel for an arena offset. Arena
// offsets are always >= 0, so the negative sentinel can never collide with
// a real clause offset.
const end int32 = -9
