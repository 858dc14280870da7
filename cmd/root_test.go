package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRoot executes the root command from dir with args.
func runRoot(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	// A nil slice makes cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, args...))
	defer rootCmd.SetOut(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_GeneratesOutputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	csv := "country,Total\nA,10\nB,30\nC,20\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "medals_total.csv"), []byte(csv), 0o644))

	out, err := runRoot(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Wrote chart")
	assert.Contains(t, out, "✓ Wrote report")
	for _, name := range []string{"total_medals_by_top_50_countries.svg", "summary_report.md"} {
		assert.FileExists(t, filepath.Join(dir, "output", name))
	}
}

func TestRoot_MissingInputFails(t *testing.T) {
	dir := t.TempDir()

	_, err := runRoot(t, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "medals_total.csv")
	assert.NoDirExists(t, filepath.Join(dir, "output"), "output dir created on failure")
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := runRoot(t, t.TempDir(), "extra.csv")
	assert.Error(t, err)
}
