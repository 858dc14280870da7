// Package dataset loads the medal table from disk.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NullTokens are cell values treated as missing.
var NullTokens = []string{"", "NA", "NaN", "<nil>"}

var errNoHeader = errors.New("missing header row")

// Load reads a headed CSV file into a frame. Column types are inferred
// from every value of a column: all integers -> int, any decimal -> float,
// true/false -> bool, anything else -> string.
func Load(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, &ReadError{Path: path, Err: err}
	}
	defer f.Close()
	return read(path, f)
}

func read(path string, in io.Reader) (dataframe.DataFrame, error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true
	// FieldsPerRecord 0: every row must match the header width.

	records, err := r.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return dataframe.DataFrame{}, &ParseError{Path: path, Line: pe.Line, Err: pe.Err}
		}
		return dataframe.DataFrame{}, &ReadError{Path: path, Err: err}
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return dataframe.DataFrame{}, &ParseError{Path: path, Err: errNoHeader}
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, dup := seen[name]; dup {
			return dataframe.DataFrame{}, &ParseError{Path: path, Line: 1, Err: fmt.Errorf("duplicate column %q", name)}
		}
		seen[name] = struct{}{}
	}

	// Header only: keep the schema, no rows.
	if len(records) == 1 {
		cols := make([]series.Series, len(header))
		for i, name := range header {
			cols[i] = series.New([]string{}, series.String, name)
		}
		df := dataframe.New(cols...)
		if df.Err != nil {
			return dataframe.DataFrame{}, &ParseError{Path: path, Err: df.Err}
		}
		return df, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(NullTokens),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, &ParseError{Path: path, Err: df.Err}
	}
	return df, nil
}
