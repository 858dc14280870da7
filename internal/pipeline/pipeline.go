// Package pipeline runs the load, summarize, rank, chart and report stages.
package pipeline

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/medalreport/internal/analysis"
	"github.com/KaramelBytes/medalreport/internal/chart"
	"github.com/KaramelBytes/medalreport/internal/config"
	"github.com/KaramelBytes/medalreport/internal/console"
	"github.com/KaramelBytes/medalreport/internal/dataset"
	"github.com/KaramelBytes/medalreport/internal/report"
	"github.com/KaramelBytes/medalreport/internal/utils"
)

// Result describes a completed run.
type Result struct {
	Rows       int
	Ranked     int
	Summary    analysis.Summary
	ChartPath  string
	ReportPath string
}

// Run executes every stage once, in order, stopping at the first error.
// Nothing is written under the output directory unless the input loads,
// casts and ranks cleanly. Progress goes to out.
func Run(cfg *config.Config, out io.Writer) (*Result, error) {
	df, err := dataset.Load(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	console.Table(out, "DataFrame Loaded:", df)

	cast, col, err := analysis.CastFloat(df, cfg.ValueColumn)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	sum := analysis.Summarize(col)
	console.Summary(out, sum)

	ranked, err := analysis.Rank(cast, cfg.ValueColumn, cfg.TopN)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}
	bars, err := chart.Bars(ranked, cfg.LabelColumn, cfg.ValueColumn)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	if err := utils.EnsureDir(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	chartPath := cfg.ChartPath()
	opt := chart.Options{
		Title:  cfg.ChartTitle,
		YLabel: cfg.ChartYLabel,
		Width:  cfg.ChartWidth,
		Height: cfg.ChartHeight,
		Slots:  cfg.TopN,
	}
	if err := chart.Save(chartPath, bars, opt); err != nil {
		return nil, err
	}
	console.Wrote(out, "chart", chartPath)

	reportPath := cfg.ReportPath()
	if err := report.Write(reportPath, report.New(sum, cfg.ChartTitle, cfg.ChartFile)); err != nil {
		return nil, err
	}
	console.Wrote(out, "report", reportPath)

	return &Result{
		Rows:       df.Nrow(),
		Ranked:     ranked.Nrow(),
		Summary:    sum,
		ChartPath:  chartPath,
		ReportPath: reportPath,
	}, nil
}
