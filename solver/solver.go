package solver

import (
	"time"

	"github.com/arenasat/arenasat/config"
)

// initialAvg is the tuned starting value for both the fast and slow LBD
// moving averages (SPEC_FULL.md §9): biases the solver towards restarting
// early until the averages have adapted to the instance.
const initialAvg int64 = 1 << 24

// reduceK is the reduceDB satisfied-literal threshold (SPEC_FULL.md §4.6).
const reduceK int32 = 6

// initialMaxLemmas is the starting reduceDB trigger threshold (microsat.c's
// mem_fixed-relative nLemmas check starts at 3000 before it is ever grown).
const initialMaxLemmas int32 = 3000

// avgLemmaCells is a generous per-lemma footprint estimate (literals plus
// the 3-cell link/terminator header) used to size the arena so the full
// lemma budget actually fits; real learned clauses are usually much
// shorter, so this is headroom, not a measured average.
const avgLemmaCells int32 = 32

// minArenaCells is a floor for tiny inputs, matching the scale of
// crillab-gophersat's own clause_alloc.go allocator pool (preallocated in
// bulk rather than sized exactly to the first request).
const minArenaCells int32 = 1 << 16

// arenaCells sizes the clause arena to comfortably hold every original
// clause/unit plus initialMaxLemmas worth of learned clauses at
// avgLemmaCells each, so that reduceDB's nLemmas > maxLemmas trigger is
// reachable well before getMemory runs out (see DESIGN.md).
func arenaCells(pb *Problem) int32 {
	cells := int32(len(pb.Units)) * 4
	for _, cl := range pb.Clauses {
		cells += int32(len(cl)) + 3
	}
	cells += initialMaxLemmas * avgLemmaCells
	if cells < minArenaCells {
		cells = minArenaCells
	}
	if cells > defaultMaxMem {
		cells = defaultMaxMem
	}
	return cells
}

// Stats are statistics about a solving run, provided for information only.
// Grounded on crillab-gophersat/solver/solver.go's Stats struct; NbLearned/
// NbDeleted/NbRestarts keep the teacher's field names and roles, the rest
// are supplemented from original_source/microsat.c's own end-of-run report
// (SPEC_FULL.md §12).
type Stats struct {
	NbConflicts int
	NbDecisions int
	NbRestarts  int
	NbLearned   int // How many lemmas were added over the run (including reduceDB re-adds).
	NbDeleted   int // How many lemmas reduceDB discarded outright.
	NbReduceDB  int // How many times reduceDB ran.
	ArenaWords  int // Arena high-water mark at the end of the run.
	Elapsed     time.Duration
}

// A Solver holds the arena-based CDCL state described by SPEC_FULL.md §3.
// The zero value is not usable; construct one with New.
type Solver struct {
	Stats  Stats
	cfg    *config.Config
	status Status

	nbVars Var

	db       []int32
	memUsed  int32
	memFixed int32

	first  []int32 // biased: index lit+nbVars
	mfalse []int32 // biased: index lit+nbVars

	model  []int32 // index by var
	reason []int32 // index by var, stores offset+1 (0 = decision)
	next   []int32 // VMTF, index by var
	prev   []int32 // VMTF, index by var
	head   Var

	trail     []int32
	forced    int32
	processed int32
	assigned  int32

	buffer []int32

	nLemmas   int32
	maxLemmas int32
	nConflicts int32
	res        int32
	fast, slow int64
}

// New builds a Solver for pb using cfg (nil is accepted; a default
// configuration is used). If pb was already found trivially Unsat while
// parsing, New returns a Solver that reports Unsat without doing any work,
// mirroring crillab-gophersat's own New(problem) short-circuit.
func New(pb *Problem, cfg *config.Config) (*Solver, error) {
	cfg = config.Sane(cfg)
	if pb.Status == Unsat {
		return &Solver{cfg: cfg, status: Unsat}, nil
	}

	n := Var(pb.NbVars)
	if n < 1 {
		n = 1
	}

	s := &Solver{
		cfg:       cfg,
		nbVars:    n,
		db:        make([]int32, arenaCells(pb)),
		model:     make([]int32, n+1),
		reason:    make([]int32, n+1),
		next:      make([]int32, n+1),
		prev:      make([]int32, n+1),
		buffer:    make([]int32, n),
		trail:     make([]int32, n+1),
		first:     make([]int32, 2*n+1),
		mfalse:    make([]int32, 2*n+1),
		maxLemmas: initialMaxLemmas,
		fast:      initialAvg,
		slow:      initialAvg,
	}
	for i := range s.first {
		s.first[i] = end
	}
	s.memUsed = 1 // db[0] == 0 is the header-shift sentinel (propagate.go).
	s.initVMTF()

	for _, lit := range pb.Units {
		if err := s.installUnit(lit); err != nil {
			return nil, err
		}
		if s.status == Unsat {
			return s, nil
		}
	}
	for _, cl := range pb.Clauses {
		if _, err := s.addClause(cl, true); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// installUnit adds a size-1 clause and immediately assigns it as a
// root-forced literal, per the input contract (SPEC_FULL.md §6). A unit
// that contradicts an already-forced literal flips Status to Unsat instead
// of touching the arena further.
func (s *Solver) installUnit(lit Lit) error {
	if s.mfalseOf(lit) != free {
		s.status = Unsat
		return nil
	}
	if s.mfalseOf(-lit) != free {
		return nil // Already true; redundant unit.
	}
	off, err := s.addClause([]int32{lit}, true)
	if err != nil {
		return err
	}
	s.assign(off, true)
	return nil
}

// Solve runs the search driver (SPEC_FULL.md §4.7) to completion, or until
// cfg.MaxConflicts is reached if it is set. Grounded on microsat.c's
// solve() and crillab-gophersat's Solve() for the surrounding statistics/
// logging harness.
func (s *Solver) Solve() (Status, error) {
	if s.status == Unsat {
		return Unsat, nil
	}
	start := time.Now()

	var ticker *time.Ticker
	done := make(chan struct{})
	if s.cfg.Verbose {
		ticker = time.NewTicker(3 * time.Second)
		go func() {
			for {
				select {
				case <-ticker.C:
					s.cfg.Logger.WithField("conflicts", s.nConflicts).
						WithField("learned", s.Stats.NbLearned).
						WithField("restarts", s.Stats.NbRestarts).
						Info("still solving")
				case <-done:
					return
				}
			}
		}()
	}
	defer func() {
		if ticker != nil {
			ticker.Stop()
			close(done)
		}
		s.Stats.Elapsed = time.Since(start)
		s.Stats.ArenaWords = int(s.memUsed)
	}()

	decision := s.head
	s.res = 0
	for {
		if s.cfg.MaxConflicts > 0 && int(s.nConflicts) >= s.cfg.MaxConflicts {
			return Unknown, nil
		}
		oldNLemmas := s.nLemmas
		st, err := s.propagate()
		if err != nil {
			return Indet, err
		}
		if st == Unsat {
			s.status = Unsat
			return Unsat, nil
		}

		if s.nLemmas > oldNLemmas {
			decision = s.head
			if s.fast > (s.slow/100)*60 {
				s.res = 0
				s.fast = (s.slow / 100) * 60
				s.restart()
				if s.nLemmas > s.maxLemmas {
					if err := s.reduceDB(reduceK); err != nil {
						return Indet, err
					}
				}
				s.cfg.Logger.WithField("conflicts", s.nConflicts).Debug("restart")
			}
		}

		for s.mfalseOf(decision) != free || s.mfalseOf(-decision) != free {
			decision = s.prev[decision]
		}
		if decision == 0 {
			s.status = Sat
			return Sat, nil
		}
		var lit Lit
		if s.model[decision] != 0 {
			lit = decision
		} else {
			lit = -decision
		}
		s.setMfalse(-lit, falsed)
		s.trail[s.assigned] = -lit
		s.assigned++
		s.Stats.NbDecisions++
		s.reason[decision] = 0
	}
}

// Model returns the satisfying assignment found by Solve. Valid only after
// Solve returned Sat; index i corresponds to CNF variable i+1.
func (s *Solver) Model() []bool {
	m := make([]bool, s.nbVars)
	for v := Var(1); v <= s.nbVars; v++ {
		m[v-1] = s.model[v] != 0
	}
	return m
}

// Status returns the solver's current verdict: Sat or Unsat once Solve has
// proved one (Unsat already if New found the problem trivially
// unsatisfiable), Indet otherwise, including after Solve returned Unknown.
func (s *Solver) Status() Status {
	return s.status
}
