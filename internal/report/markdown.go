// Package report writes the Markdown summary of a run.
package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/medalreport/internal/analysis"
	"github.com/KaramelBytes/medalreport/internal/utils"
)

// Document is the content of the summary report.
type Document struct {
	Title      string
	Heading    string
	Summary    analysis.Summary
	ChartTitle string
	// ChartFile is linked relative to the report's directory.
	ChartFile string
}

// New returns the medal report layout for the given statistics and chart.
func New(sum analysis.Summary, chartTitle, chartFile string) Document {
	return Document{
		Title:      "Summary Statistics Report (Entire Dataset)",
		Heading:    "Summary Statistics for Total Medals (All Countries)",
		Summary:    sum,
		ChartTitle: chartTitle,
		ChartFile:  chartFile,
	}
}

// Markdown renders the document. Statistics use two decimals; undefined
// statistics print as NaN.
func (d Document) Markdown() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s\n\n", d.Title))
	b.WriteString(fmt.Sprintf("## %s\n\n", d.Heading))
	b.WriteString(fmt.Sprintf("- **Mean**: %s\n", d.Summary.Mean.Format(2)))
	b.WriteString(fmt.Sprintf("- **Median**: %s\n", d.Summary.Median.Format(2)))
	b.WriteString(fmt.Sprintf("- **Standard Deviation**: %s\n", d.Summary.StdDev.Format(2)))
	b.WriteString(fmt.Sprintf("![%s](%s)\n\n", d.ChartTitle, d.ChartFile))
	return b.String()
}

// Write renders d to path, replacing any existing file.
func Write(path string, d Document) error {
	if err := utils.SafeWriteFile(path, []byte(d.Markdown())); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
