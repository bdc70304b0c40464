package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/causalgo/lasso"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeProblem(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const twoEffects = `
rows: 4
columns:
  - [0]
  - [1]
y: [3, 3, 1, 1]
lambda: 0
max_sweeps: 500
`

func TestFitCommand(t *testing.T) {
	out, err := run(t, "fit", "--problem", writeProblem(t, twoEffects))
	require.NoError(t, err)
	assert.Contains(t, out, "Intercept: 1.000000")
	assert.Contains(t, out, "R²: 1.000000")
}

func TestFitCommand_Demo(t *testing.T) {
	out, err := run(t, "fit", "--lambda", "0.05", "--rss", "global", "--active-set=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Stop:")
	assert.Contains(t, out, "Beta:")
}

func TestFitCommand_Errors(t *testing.T) {
	_, err := run(t, "fit", "--problem", writeProblem(t, "rows: 2\ncolumns: [[5]]\ny: [1, 2]\n"))
	assert.ErrorIs(t, err, lasso.ErrOutOfRange)

	_, err = run(t, "fit", "--problem", writeProblem(t, "rows: 2\ncolumns: [[0]]\ny: [1]\n"))
	assert.ErrorIs(t, err, lasso.ErrDimensionMismatch)

	_, err = run(t, "fit", "--problem", writeProblem(t, "rows: 1\ncolumns: [[0]]\ny: [2]\n"))
	assert.ErrorIs(t, err, lasso.ErrBadScale)

	_, err = run(t, "fit", "--lambda=-1")
	assert.ErrorIs(t, err, lasso.ErrBadLambda)

	_, err = run(t, "fit", "--rss", "exact")
	assert.ErrorIs(t, err, lasso.ErrBadRSSMode)

	_, err = run(t, "fit", "--problem", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "fit", "--log-level", "loud")
	assert.Error(t, err)
}

func TestLambdaMaxCommand(t *testing.T) {
	path := writeProblem(t, twoEffects)

	out, err := run(t, "lambda-max", "--problem", path)
	require.NoError(t, err)
	assert.Equal(t, "0.5773502692\n", out)

	out, err = run(t, "lambda-max", "--problem", path, "--abs")
	require.NoError(t, err)
	assert.Equal(t, "0.5773502692\n", out)
}

func TestProblem_Apply(t *testing.T) {
	lambda, sweeps, active := 0.2, 7, true
	p := &Problem{Lambda: &lambda, MaxSweeps: &sweeps, ActiveSet: &active, RSSMode: "global"}
	cfg := lasso.NewDefaultConfig()
	require.NoError(t, p.apply(cfg))
	assert.Equal(t, 0.2, cfg.Lambda)
	assert.Equal(t, 7, cfg.MaxSweeps)
	assert.True(t, cfg.ActiveSet)
	assert.Equal(t, lasso.GlobalRSS, cfg.RSSMode)

	p = &Problem{RSSMode: "bogus"}
	assert.Error(t, p.apply(lasso.NewDefaultConfig()))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lassi v"+version)
}
