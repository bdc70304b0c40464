package lasso

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// RSSMode selects how a sweep measures the residual sum of squares it
// compares between consecutive coordinate updates.
type RSSMode int

const (
	// PartialRSS compares the sum of squares over the rows touched by the
	// latest update only.
	PartialRSS RSSMode = iota
	// GlobalRSS keeps a running total of the squared residuals, adjusted
	// incrementally over the touched rows of each update.
	GlobalRSS
)

func (m RSSMode) String() string {
	switch m {
	case PartialRSS:
		return "partial"
	case GlobalRSS:
		return "global"
	default:
		return fmt.Sprintf("RSSMode(%d)", int(m))
	}
}

// ParseRSSMode parses "partial" or "global".
func ParseRSSMode(s string) (RSSMode, error) {
	switch s {
	case "partial", "":
		return PartialRSS, nil
	case "global":
		return GlobalRSS, nil
	}
	return PartialRSS, fmt.Errorf("%q: %w", s, ErrBadRSSMode)
}

// Config holds the parameters of a coordinate descent fit.
type Config struct {
	Lambda    float64     // L1 regularization strength (λ)
	MaxSweeps int         // Maximum number of full sweeps
	ActiveSet bool        // Visit only coordinates that are currently nonzero
	RSSMode   RSSMode     // Residual sum of squares bookkeeping within a sweep
	Verbose   bool        // Log fit progress
	LogStep   int         // Log every LogStep-th sweep when Verbose
	Logger    *zap.Logger // Destination for progress logs; nil discards them
}

// NewDefaultConfig returns recommended default parameters.
func NewDefaultConfig() *Config {
	return &Config{
		Lambda:    0,
		MaxSweeps: 1000,
		ActiveSet: false,
		RSSMode:   PartialRSS,
		Verbose:   false,
		LogStep:   10,
	}
}

// Validate checks the configuration and returns a sentinel error on failure.
func (c *Config) Validate() error {
	if c.Lambda < 0 || math.IsNaN(c.Lambda) || math.IsInf(c.Lambda, 0) {
		return fmt.Errorf("lambda %v: %w", c.Lambda, ErrBadLambda)
	}
	if c.MaxSweeps < 0 {
		return fmt.Errorf("max sweeps %d: %w", c.MaxSweeps, ErrBadBudget)
	}
	if c.RSSMode != PartialRSS && c.RSSMode != GlobalRSS {
		return fmt.Errorf("%v: %w", c.RSSMode, ErrBadRSSMode)
	}
	return nil
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil || !c.Verbose {
		return zap.NewNop()
	}
	return c.Logger
}

// visitor returns the per-sweep coordinate filter. With ActiveSet only
// coordinates holding a nonzero coefficient are visited.
func (c *Config) visitor(beta []float64) func(j int) bool {
	if !c.ActiveSet {
		return func(int) bool { return true }
	}
	return func(j int) bool { return beta[j] != 0 }
}
