// Package console prints run progress and table previews.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/go-gota/gota/dataframe"
	"github.com/olekukonko/tablewriter"

	"github.com/KaramelBytes/medalreport/internal/analysis"
)

// PreviewRows is the number of leading rows shown by Table.
const PreviewRows = 10

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
)

// Table prints the frame shape, column types and the first rows.
func Table(w io.Writer, title string, df dataframe.DataFrame) {
	fmt.Fprintf(w, "%s\nshape: (%d, %d)\n", title, df.Nrow(), df.Ncol())

	names := df.Names()
	header := make([]string, len(names))
	for i, t := range df.Types() {
		header[i] = fmt.Sprintf("%s (%s)", names[i], t)
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	n := df.Nrow()
	if n > PreviewRows {
		n = PreviewRows
	}
	cols := make([][]string, len(names))
	for j, name := range names {
		cols[j] = df.Col(name).Records()
	}
	for i := 0; i < n; i++ {
		row := make([]string, len(names))
		for j := range names {
			row[j] = cols[j][i]
		}
		tw.Append(row)
	}
	tw.Render()
	if df.Nrow() > n {
		fmt.Fprintf(w, "… %d more rows\n", df.Nrow()-n)
	}
}

// Summary prints the statistics with full precision.
func Summary(w io.Writer, s analysis.Summary) {
	fmt.Fprintf(w, "Mean: %s\n", s.Mean)
	fmt.Fprintf(w, "Median: %s\n", s.Median)
	fmt.Fprintf(w, "Standard Deviation: %s\n", s.StdDev)
	if s.Count == 0 {
		warnColor.Fprintln(w, "⚠ Warning: no non-null values; statistics are undefined")
	}
}

// Wrote reports a written output file.
func Wrote(w io.Writer, what, path string) {
	okColor.Fprintf(w, "✓ Wrote %s to %s\n", what, path)
}
