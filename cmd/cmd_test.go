package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gogyro/internal/logger"
)

// resetFlags restores every flag in the tree to its default so package-level
// commands can run more than once in a process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			def := strings.Trim(f.DefValue, "[]")
			var items []string
			if def != "" {
				items = strings.Split(def, ",")
			}
			_ = sv.Replace(items)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(logger.Discard)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_Banner(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Go Gyrochronology Toolkit")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gogyro v")
}

func TestPeriod(t *testing.T) {
	out, err := run(t, "period", "--bv", "0.65", "--age", "4600")
	require.NoError(t, err)
	assert.Contains(t, out, "angus2015")
	assert.Contains(t, out, "25.11")
	assert.NotContains(t, out, "mm09e2")
}

func TestPeriod_AllRelations(t *testing.T) {
	out, err := run(t, "period", "--bv", "0.65", "--age", "4600", "--relation", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "26.25")
	assert.Contains(t, out, "26.91")
}

func TestPeriod_OutOfDomain(t *testing.T) {
	out, err := run(t, "period", "-b", "0.3", "-a", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "undefined")
	assert.Contains(t, out, "needs B-V > 0.45")
}

func TestPeriod_MissingFlag(t *testing.T) {
	_, err := run(t, "period", "--bv", "0.65")
	assert.ErrorContains(t, err, "age")
}

func TestPeriod_UnknownRelation(t *testing.T) {
	_, err := run(t, "period", "--bv", "0.65", "--age", "100", "-r", "skumanich")
	assert.ErrorContains(t, err, "unknown relation")
}

func TestAge(t *testing.T) {
	out, err := run(t, "age", "--bv", "0.65", "--period", "25.11285548")
	require.NoError(t, err)
	assert.Contains(t, out, "4600.0")
}

func TestAge_BelowMM09e2Floor(t *testing.T) {
	out, err := run(t, "age", "--bv", "0.45", "--period", "10", "--relation", "mm09e2")
	require.NoError(t, err)
	assert.Contains(t, out, "Age = undefined Myr")
	assert.Contains(t, out, "⚠ needs B-V > 0.50")
	assert.NotContains(t, out, "-1997")
}

func TestTau(t *testing.T) {
	out, err := run(t, "tau", "--bv", "1.0")
	require.NoError(t, err)
	assert.Contains(t, out, "noyes1984")
	assert.Contains(t, out, "23.014")
}

func TestTau_AllModelsFromTeff(t *testing.T) {
	out, err := run(t, "tau", "--teff", "5778", "--model", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "wright2011")
	assert.Contains(t, out, "12.778")
}

func TestTau_NeedsInput(t *testing.T) {
	_, err := run(t, "tau")
	assert.ErrorContains(t, err, "provide --bv or --teff")
}

func TestColor(t *testing.T) {
	out, err := run(t, "color", "--bv", "0.65")
	require.NoError(t, err)
	assert.Contains(t, out, "Teff = 5700 K")

	out, err = run(t, "color", "--teff", "5778")
	require.NoError(t, err)
	assert.Contains(t, out, "B-V = 0.676")

	_, err = run(t, "color", "--teff", "5778", "--bv", "0.6")
	assert.Error(t, err)
}

func TestRossby(t *testing.T) {
	out, err := run(t, "rossby", "--bv", "1.0", "--period", "23.01441817")
	require.NoError(t, err)
	assert.Contains(t, out, "Ro = 1.000 (noyes1984)")
}

func TestGyrochrone(t *testing.T) {
	out, err := run(t, "gyrochrone", "--ages", "600", "--bv-min", "0.6", "--bv-max", "1.0", "--steps", "3", "--diagram")
	require.NoError(t, err)
	assert.Contains(t, out, "600 Myr")
	assert.Contains(t, out, "0.800")
	assert.Contains(t, out, "Legend:")
	assert.NotContains(t, out, "4600 Myr")
}

func TestGyrochrone_Export(t *testing.T) {
	file := filepath.Join(t.TempDir(), "g.svg")
	out, err := run(t, "gyrochrone", "-o", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Diagram exported to: "+file)
	_, err = os.Stat(file)
	assert.NoError(t, err)
}

func TestGyrochrone_BadGrid(t *testing.T) {
	_, err := run(t, "gyrochrone", "--steps", "1")
	assert.Error(t, err)
	_, err = run(t, "gyrochrone", "--bv-min", "1.2", "--bv-max", "0.8")
	assert.Error(t, err)
}

func TestCatalog(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "stars.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
name: Test cluster
stars:
  - name: Sun
    bv: 0.65
    age: 4600
  - name: blue
    bv: 0.3
    period: 2
`), 0o644))

	chart := filepath.Join(dir, "stars.png")
	out, err := run(t, "catalog", "-f", file, "-o", chart)
	require.NoError(t, err)
	assert.Contains(t, out, "Test cluster")
	assert.Contains(t, out, "25.11*")
	assert.Contains(t, out, "WARNINGS:")
	assert.Contains(t, out, "blue: B-V 0.300 is outside the angus2015 domain")
	_, err = os.Stat(chart)
	assert.NoError(t, err)
}

func TestCatalog_RejectsAll(t *testing.T) {
	file := filepath.Join(t.TempDir(), "s.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"stars":[{"name":"a","bv":0.7}]}`), 0o644))
	_, err := run(t, "catalog", "-f", file, "--relation", "all")
	assert.ErrorContains(t, err, "single relation")
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "gogyro.yaml")
	require.NoError(t, os.WriteFile(file, []byte("relation: mm09e3\ntau_model: wright2011\n"), 0o644))

	out, err := run(t, "--config", file, "period", "--bv", "0.65", "--age", "4600")
	require.NoError(t, err)
	assert.Contains(t, out, "mm09e3")
	assert.NotContains(t, out, "angus2015")

	out, err = run(t, "--config", file, "tau", "--bv", "0.6")
	require.NoError(t, err)
	assert.Contains(t, out, "wright2011")
	assert.Contains(t, out, "11.015")
}

func TestConfigFile_Invalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("relation: nope\n"), 0o644))

	_, err := run(t, "--config", file, "version")
	assert.ErrorContains(t, err, "invalid config")
}

func TestLogLevelFlag(t *testing.T) {
	_, err := run(t, "--log-level", "shout", "version")
	assert.ErrorContains(t, err, "unknown level")
}
