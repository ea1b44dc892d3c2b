package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arenasat/arenasat/config"
	"github.com/arenasat/arenasat/solver"
)

// Grounded on togatoga-gatosat/main.go's CLI shape (flags, interrupt
// handling via a budget rather than os.Exit, DIMACS-style s/v output), with
// verbose stats rendered through k0kubun/pp as SPEC_FULL.md §10 specifies.

func flags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "log progress and dump full statistics on exit",
		},
		cli.IntFlag{
			Name:  "max-conflicts, c",
			Usage: "abort and report UNKNOWN after this many conflicts (0: unlimited)",
			Value: 0,
		},
	}
}

func printModel(m []bool) {
	fmt.Print("v ")
	for i, b := range m {
		if b {
			fmt.Printf("%d ", i+1)
		} else {
			fmt.Printf("%d ", -(i + 1))
		}
	}
	fmt.Print("0\n")
}

// setInterrupt arranges for SIGINT/SIGTERM to set the conflict budget to 1,
// so the solver stops at its next budget check once at least one conflict
// has occurred and reports UNKNOWN, instead of killing the process
// outright the way togatoga-gatosat's setInterupt does.
func setInterrupt(cfg *config.Config) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cfg.Logger.Warn("interrupted, stopping at next conflict check")
		cfg.MaxConflicts = 1
	}()
}

func run(c *cli.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return cli.NewExitError("exactly one DIMACS CNF file is required", 1)
	}

	cfg := config.New(c.Bool("verbose")).WithMaxConflicts(c.Int("max-conflicts"))

	f, err := os.Open(args[0])
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer f.Close()

	pb, err := solver.ParseCNF(f)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("could not parse %s: %v", args[0], err), 1)
	}
	cfg.Logger.WithFields(logrus.Fields{
		"vars":    pb.NbVars,
		"clauses": len(pb.Clauses) + len(pb.Units),
	}).Debug("parsed problem")

	setInterrupt(cfg)

	s, err := solver.New(pb, cfg)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	status, err := s.Solve()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	if cfg.Verbose {
		pp.Fprintln(os.Stderr, s.Stats)
	}

	switch status {
	case solver.Sat:
		fmt.Println("s SATISFIABLE")
		printModel(s.Model())
		os.Exit(10)
	case solver.Unsat:
		fmt.Println("s UNSATISFIABLE")
		os.Exit(20)
	default:
		fmt.Println("s UNKNOWN")
		os.Exit(0)
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "arenasat"
	app.Usage = "a packed-arena CDCL SAT solver"
	app.Flags = flags()
	app.ArgsUsage = "<file.cnf>"
	app.Action = run
	app.Version = "0.1.0"
	app.Compiled = time.Now()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
