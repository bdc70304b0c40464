package lasso

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// StopReason tells why Fit returned.
type StopReason int

const (
	// StopMaxSweeps means the sweep budget was exhausted.
	StopMaxSweeps StopReason = iota
	// StopNoUpdate means a sweep moved no coordinate by a significant amount.
	StopNoUpdate
	// StopTolerance means the relative MSE improvement of a sweep fell below
	// ImprovementTolerance.
	StopTolerance
)

func (r StopReason) String() string {
	switch r {
	case StopMaxSweeps:
		return "max sweeps"
	case StopNoUpdate:
		return "no update"
	case StopTolerance:
		return "tolerance"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// SweepLog contains fit metrics for a single sweep.
type SweepLog struct {
	Sweep     int
	Updated   int     // Coordinates with a significant RSS decrease
	MSE       float64 // Mean squared residual after the sweep
	Ratio     float64 // Relative MSE decrease versus the previous sweep
	Intercept float64
	Active    int // Nonzero coefficients after the sweep
	Duration  time.Duration
}

// FitResult describes a completed call to Fit. The coefficients and
// intercept live in the State that was passed in.
type FitResult struct {
	// Steps counts completed sweeps that did not trigger a stop. The
	// stopping sweep itself runs but is not counted, so a fit started at a
	// fixed point reports 0.
	Steps   int
	Stop    StopReason
	History []SweepLog
}

// Sweep performs one pass of cyclic coordinate descent over the columns of x
// in index order, then recenters the residuals into the intercept.
// It returns the number of coordinates whose update decreased the residual
// sum of squares by more than ImprovementTolerance (relative).
func Sweep(x Design, st *State, sc Scaling, cfg *Config) int {
	mustValidate(x, st, sc, cfg)
	return sweep(x, st, sc, cfg)
}

func sweep(x Design, st *State, sc Scaling, cfg *Config) int {
	_, p := x.Dims()
	resid, beta := st.Resid, st.Beta
	visit := cfg.visitor(beta)

	oldRSS := floats.Dot(resid, resid)
	total := oldRSS
	updated := 0
	for j := 0; j < p; j++ {
		if !visit(j) {
			continue
		}
		u, ok := updateCoordinate(x.ColumnRows(j), resid, beta, cfg.Lambda, j, sc.Scale[j])
		if !ok {
			continue
		}
		rss := u.RSS
		if cfg.RSSMode == GlobalRSS {
			total += u.DeltaRSS
			rss = total
		}
		if (oldRSS-rss)/oldRSS > ImprovementTolerance {
			updated++
		}
		oldRSS = rss
	}

	// Update intercept
	meanResid := floats.Sum(resid) / float64(len(resid))
	floats.AddConst(-meanResid, resid)
	st.Intercept += meanResid
	return updated
}

// Fit runs cyclic coordinate descent sweeps on st until a sweep updates no
// coordinate significantly, the relative MSE improvement of a sweep drops
// below ImprovementTolerance, or cfg.MaxSweeps sweeps have run.
// st.Beta, st.Resid and st.Intercept are updated in place.
//
// Fit panics with an error wrapping one of the package sentinels if an
// argument is nil, the dimensions of x, st and sc disagree, a scale entry is
// not positive (a single-row design) or cfg is invalid.
func Fit(x Design, st *State, sc Scaling, cfg *Config) *FitResult {
	mustValidate(x, st, sc, cfg)
	log := cfg.logger()
	n, p := x.Dims()

	log.Info("starting coordinate descent",
		zap.Int("rows", n),
		zap.Int("columns", p),
		zap.Float64("lambda", cfg.Lambda),
		zap.Int("max_sweeps", cfg.MaxSweeps),
		zap.Bool("active_set", cfg.ActiveSet),
		zap.Stringer("rss_mode", cfg.RSSMode),
	)

	res := &FitResult{Stop: StopMaxSweeps}
	mse := st.MSE()
	step := 0
	for ; step < cfg.MaxSweeps; step++ {
		start := time.Now()
		lastMSE := mse

		updated := sweep(x, st, sc, cfg)

		mse = st.MSE()
		entry := SweepLog{
			Sweep:     step,
			Updated:   updated,
			MSE:       mse,
			Ratio:     (lastMSE - mse) / lastMSE,
			Intercept: st.Intercept,
			Active:    st.ActiveCount(),
			Duration:  time.Since(start),
		}
		res.History = append(res.History, entry)

		if cfg.LogStep > 0 && step%cfg.LogStep == 0 {
			log.Info("sweep",
				zap.Int("sweep", step),
				zap.Int("updated", updated),
				zap.Float64("mse", mse),
				zap.Float64("ratio", entry.Ratio),
				zap.Int("active", entry.Active),
				zap.Duration("duration", entry.Duration),
			)
		}

		// No coordinate improved enough to matter
		if updated == 0 {
			res.Stop = StopNoUpdate
			break
		}
		if entry.Ratio < ImprovementTolerance {
			res.Stop = StopTolerance
			break
		}
	}
	res.Steps = step

	log.Info("coordinate descent finished",
		zap.Stringer("reason", res.Stop),
		zap.Int("steps", res.Steps),
		zap.Float64("mse", mse),
		zap.Float64("intercept", st.Intercept),
		zap.Int("active", st.ActiveCount()),
	)
	return res
}

func mustValidate(x Design, st *State, sc Scaling, cfg *Config) {
	switch {
	case x == nil:
		panic(fmt.Errorf("design: %w", ErrNilArgument))
	case st == nil:
		panic(fmt.Errorf("state: %w", ErrNilArgument))
	case cfg == nil:
		panic(fmt.Errorf("config: %w", ErrNilArgument))
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	if err := st.Validate(x, sc); err != nil {
		panic(err)
	}
	if err := sc.Validate(); err != nil {
		panic(err)
	}
}
