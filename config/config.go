// Package config holds run configuration for a solving session: verbosity,
// the optional conflict budget, where to log, and where to write a model.
package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config configures a single solver run. The zero value is not directly
// usable; build one with New, which fills in safe defaults the same way
// the solver itself is safe to use with a zero-value Stats.
type Config struct {
	Verbose      bool             // Log progress while solving.
	MaxConflicts int              // 0 means unbounded; otherwise Solve returns Unknown once reached.
	Logger       *logrus.Logger   // Never nil after New; all solver/driver logging goes through it.
	OutputPath   string           // Not read by the solver or the CLI driver; the v-line always goes to stdout.
}

// New returns a Config with a non-nil logger writing to stderr at Warn
// level (Debug when verbose is requested), and a sane (unbounded) conflict
// budget.
func New(verbose bool) *Config {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Config{
		Verbose: verbose,
		Logger:  logger,
	}
}

// WithMaxConflicts sets a conflict budget; a negative value is clamped to 0
// (unbounded), since a negative budget has no sensible meaning.
func (c *Config) WithMaxConflicts(n int) *Config {
	if n < 0 {
		n = 0
	}
	c.MaxConflicts = n
	return c
}

// sane ensures a Config is safe to use even if constructed by hand rather
// than through New (e.g. a zero-value Config passed directly to New(pb, cfg)).
func (c *Config) sane() *Config {
	if c == nil {
		return New(false)
	}
	if c.Logger == nil {
		c.Logger = New(c.Verbose).Logger
	}
	if c.MaxConflicts < 0 {
		c.MaxConflicts = 0
	}
	return c
}

// Sane is the exported form of sane, used by the solver package to
// normalize a caller-supplied Config without assuming New was called.
func Sane(c *Config) *Config {
	return c.sane()
}
