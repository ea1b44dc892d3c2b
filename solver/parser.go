package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseSlice converts a slice of slice of ints (one inner slice per clause)
// into a Problem. Grounded on crillab-gophersat/solver/parser.go's
// ParseSlice, adapted to the CORE's raw int32 literal convention.
func ParseSlice(cnf [][]int) *Problem {
	var pb Problem
	seen := make(map[Lit]bool)
	for _, line := range cnf {
		if len(line) == 0 {
			pb.Status = Unsat
			return &pb
		}
		lits := make([]Lit, len(line))
		for j, val := range line {
			if val == 0 {
				panic("null literal in clause")
			}
			lits[j] = Lit(val)
			if v := abs(val); v > pb.NbVars {
				pb.NbVars = v
			}
		}
		if len(lits) == 1 {
			pb.addUnit(lits[0], seen)
			if pb.Status == Unsat {
				return &pb
			}
		} else {
			pb.Clauses = append(pb.Clauses, lits)
		}
	}
	return &pb
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads a (possibly negated) int from r, the same byte-at-a-time
// scanner the teacher uses to avoid bufio.Scanner's per-token allocation on
// large DIMACS files. b is the last byte read; it may be a space, '-' or a
// digit. Leading spaces are skipped. Can return io.EOF.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, fmt.Errorf("could not read digit: %v", err)
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("cannot read int: %v", err)
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, fmt.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	res *= neg
	return res, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("cannot read header: %v", err)
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, fmt.Errorf("invalid syntax %q in header", line)
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("nbvars not an int: %q", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("nbClauses not an int: %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// ParseCNF parses a DIMACS CNF stream into a Problem, ready to be handed to
// New (SPEC_FULL.md §6). As in microsat.c's parse(), every 0 ends the
// current clause. An empty clause (a bare "0") is legitimate DIMACS for
// falsum: it sets pb.Status to Unsat and parsing stops there, matching
// microsat.c and this package's own ParseSlice. A literal whose variable
// exceeds the header's variable count is an error. The header's clause
// count only sizes pb.Clauses; a mismatch against the number of clauses
// actually read is neither checked nor reported.
func ParseCNF(f io.Reader) (*Problem, error) {
	r := bufio.NewReader(f)
	var pb Problem
	seen := make(map[Lit]bool)
	b, err := r.ReadByte()
	for err == nil {
		switch {
		case b == 'c':
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		case b == 'p':
			var nbClauses int
			pb.NbVars, nbClauses, err = parseHeader(r)
			if err != nil {
				return nil, fmt.Errorf("cannot parse CNF header: %v", err)
			}
			pb.Clauses = make([][]Lit, 0, nbClauses)
		case isSpace(b):
			// Blank line between clauses; skip.
		default:
			lits := make([]Lit, 0, 3)
			for {
				val, rerr := readInt(&b, r)
				if rerr == io.EOF {
					if len(lits) != 0 {
						return nil, fmt.Errorf("unfinished clause at EOF")
					}
					err = io.EOF
					break
				}
				if rerr != nil {
					return nil, fmt.Errorf("cannot parse clause: %v", rerr)
				}
				if val == 0 {
					if len(lits) == 0 {
						// An empty clause is falsum: the problem is UNSAT
						// (original_source/microsat.c's parse() treats it
						// the same way ParseSlice does above).
						pb.Status = Unsat
						return &pb, nil
					}
					if len(lits) == 1 {
						pb.addUnit(lits[0], seen)
					} else {
						pb.Clauses = append(pb.Clauses, lits)
					}
					break
				}
				if val > pb.NbVars || -val > pb.NbVars {
					return nil, fmt.Errorf("invalid literal %d for problem with %d vars only", val, pb.NbVars)
				}
				lits = append(lits, Lit(val))
			}
			if pb.Status == Unsat {
				return &pb, nil
			}
			continue
		}
		if err != nil {
			break
		}
		b, err = r.ReadByte()
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	return &pb, nil
}
