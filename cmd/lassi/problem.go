package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/causalgo/lasso"
)

// Problem is the YAML description of a fit: an indicator design, a target
// and optional fit settings.
type Problem struct {
	Rows      int       `yaml:"rows"`
	Columns   [][]int   `yaml:"columns"`
	Y         []float64 `yaml:"y"`
	Lambda    *float64  `yaml:"lambda"`
	MaxSweeps *int      `yaml:"max_sweeps"`
	ActiveSet *bool     `yaml:"active_set"`
	RSSMode   string    `yaml:"rss_mode"`
	UnitScale bool      `yaml:"unit_scale"`
}

// demoProblem is used when no problem file is given.
func demoProblem() *Problem {
	return &Problem{
		Rows:    6,
		Columns: [][]int{{0, 1}, {2, 3}, {0, 2, 4}, {5}},
		Y:       []float64{3, 3, 1, 1, 2, 0},
	}
}

func loadProblem(path string) (*Problem, error) {
	if path == "" {
		return demoProblem(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse problem %s: %w", path, err)
	}
	return &p, nil
}

// build returns the design, scaling and null-model state of the problem.
func (p *Problem) build() (*lasso.CSC, lasso.Scaling, *lasso.State, error) {
	x, err := lasso.NewIndicator(p.Rows, p.Columns)
	if err != nil {
		return nil, lasso.Scaling{}, nil, err
	}
	if len(p.Y) != p.Rows {
		return nil, lasso.Scaling{}, nil, fmt.Errorf("y has %d values for %d rows: %w",
			len(p.Y), p.Rows, lasso.ErrDimensionMismatch)
	}
	sc := lasso.NewScaling(x)
	if p.UnitScale {
		sc = lasso.UnitScaling(len(p.Columns))
	}
	if err := sc.Validate(); err != nil {
		return nil, lasso.Scaling{}, nil, err
	}
	return x, sc, lasso.NewState(x, p.Y), nil
}

// apply copies the settings present in the file into cfg.
func (p *Problem) apply(cfg *lasso.Config) error {
	if p.Lambda != nil {
		cfg.Lambda = *p.Lambda
	}
	if p.MaxSweeps != nil {
		cfg.MaxSweeps = *p.MaxSweeps
	}
	if p.ActiveSet != nil {
		cfg.ActiveSet = *p.ActiveSet
	}
	if p.RSSMode != "" {
		mode, err := lasso.ParseRSSMode(p.RSSMode)
		if err != nil {
			return err
		}
		cfg.RSSMode = mode
	}
	return nil
}
