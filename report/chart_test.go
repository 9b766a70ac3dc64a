package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tiquad/lagrange"
	"github.com/katalvlaran/tiquad/report"
	"github.com/katalvlaran/tiquad/sample"
)

// TestChart_WritesHTML verifies a rendered chart lands on disk as a
// self-contained HTML document mentioning both series.
func TestChart_WritesHTML(t *testing.T) {
	set := sample.Set{{X: 0, Y: 1}, {X: 0.5, Y: 1.25}, {X: 1, Y: 2}}
	p, err := lagrange.Fit(set)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fit.html")
	require.NoError(t, report.Chart(path, "demo", set, p, 10))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(raw)

	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "fitted polynomial")
	assert.Contains(t, html, "samples")
	assert.Contains(t, html, "demo")
}

// TestChart_BadSteps verifies the steps contract is enforced before
// any file is created.
func TestChart_BadSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.html")
	err := report.Chart(path, "x", sample.Set{}, lagrange.Polynomial{1}, 0)
	require.ErrorIs(t, err, lagrange.ErrBadSteps)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file on validation error")
}

// TestChart_BadPath verifies an unwritable destination surfaces as an
// error without panicking.
func TestChart_BadPath(t *testing.T) {
	set := sample.Set{{X: 0, Y: 0}, {X: 1, Y: 1}}
	p, err := lagrange.Fit(set)
	require.NoError(t, err)

	err = report.Chart(filepath.Join(t.TempDir(), "missing", "dir", "x.html"), "x", set, p, 4)
	require.Error(t, err)
}
