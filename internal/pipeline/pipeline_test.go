package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/medalreport/internal/analysis"
	"github.com/KaramelBytes/medalreport/internal/config"
	"github.com/KaramelBytes/medalreport/internal/dataset"
)

// testConfig points the default settings at a temp workspace.
func testConfig(t *testing.T, csv string) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)

	root := t.TempDir()
	cfg.InputPath = filepath.Join(root, "data", "medals_total.csv")
	cfg.OutputDir = filepath.Join(root, "output", "nested")
	if csv != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(cfg.InputPath), 0o755))
		require.NoError(t, os.WriteFile(cfg.InputPath, []byte(csv), 0o644))
	}
	return cfg
}

func TestRun_WritesChartAndReport(t *testing.T) {
	cfg := testConfig(t, "country,Gold,Total\nA,1,10\nB,9,30\nC,5,20\n")

	var out bytes.Buffer
	res, err := Run(cfg, &out)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, 3, res.Ranked)
	assert.Equal(t, "8.16", res.Summary.StdDev.Format(2))

	md, err := os.ReadFile(cfg.ReportPath())
	require.NoError(t, err)
	assert.Contains(t, string(md), "- **Mean**: 20.00\n")
	assert.Contains(t, string(md), "- **Median**: 20.00\n")
	assert.Contains(t, string(md), "- **Standard Deviation**: 8.16\n")
	assert.Contains(t, string(md), "![Total Medals by Top 50 Countries](total_medals_by_top_50_countries.svg)")

	svg, err := os.ReadFile(cfg.ChartPath())
	require.NoError(t, err)
	assert.True(t, bytes.Contains(svg, []byte("<svg")))

	assert.Contains(t, out.String(), "DataFrame Loaded:")
	assert.Contains(t, out.String(), "Mean: 20")
	assert.Contains(t, out.String(), "Wrote report to "+cfg.ReportPath())
}

func TestRun_IsDeterministic(t *testing.T) {
	var b strings.Builder
	b.WriteString("country,Total\n")
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&b, "c%02d,%d\n", i, (i*53)%17)
	}
	cfg := testConfig(t, b.String())

	_, err := Run(cfg, io.Discard)
	require.NoError(t, err)
	md1, err := os.ReadFile(cfg.ReportPath())
	require.NoError(t, err)
	svg1, err := os.ReadFile(cfg.ChartPath())
	require.NoError(t, err)

	res, err := Run(cfg, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Ranked)
	md2, err := os.ReadFile(cfg.ReportPath())
	require.NoError(t, err)
	svg2, err := os.ReadFile(cfg.ChartPath())
	require.NoError(t, err)

	assert.Equal(t, md1, md2)
	assert.Equal(t, svg1, svg2)
}

func TestRun_AllNullTotals(t *testing.T) {
	cfg := testConfig(t, "country,Total\nA,\nB,NA\n")

	_, err := Run(cfg, io.Discard)
	require.NoError(t, err)
	md, err := os.ReadFile(cfg.ReportPath())
	require.NoError(t, err)
	assert.Contains(t, string(md), "- **Mean**: NaN\n")
	assert.Contains(t, string(md), "- **Standard Deviation**: NaN\n")
}

func TestRun_MissingInputWritesNothing(t *testing.T) {
	cfg := testConfig(t, "")

	_, err := Run(cfg, io.Discard)
	var re *dataset.ReadError
	require.True(t, errors.As(err, &re), "got %v", err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(statErr), "output dir should not exist")
}

func TestRun_SchemaErrorsWriteNothing(t *testing.T) {
	cases := map[string]struct {
		csv  string
		want any
	}{
		"no Total":     {"country,Gold\nA,1\n", new(*analysis.ColumnNotFoundError)},
		"no country":   {"nation,Total\nA,1\n", new(*analysis.ColumnNotFoundError)},
		"text Total":   {"country,Total\nA,ten\n", new(*analysis.CastError)},
		"ragged input": {"country,Total\nA,1,2\n", new(*dataset.ParseError)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t, tc.csv)
			_, err := Run(cfg, io.Discard)
			require.Error(t, err)
			assert.True(t, errors.As(err, tc.want), "got %T: %v", err, err)

			_, statErr := os.Stat(cfg.OutputDir)
			assert.True(t, os.IsNotExist(statErr), "output dir should not exist")
		})
	}
}
