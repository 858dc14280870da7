// Package analysis casts, summarizes and ranks the numeric column of a table.
package analysis

import (
	"math"
	"slices"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column is a nullable float column aligned by position with its table.
type Column struct {
	Name   string
	Values []float64
	Valid  []bool // false marks a null; Values[i] is then meaningless
}

func newColumn(name string, n int) Column {
	return Column{Name: name, Values: make([]float64, n), Valid: make([]bool, n)}
}

// Len returns the number of rows, nulls included.
func (c Column) Len() int { return len(c.Values) }

// NonNull returns the non-null values in row order.
func (c Column) NonNull() []float64 {
	out := make([]float64, 0, len(c.Values))
	for i, v := range c.Values {
		if c.Valid[i] {
			out = append(out, v)
		}
	}
	return out
}

// Series converts the column to a gota float series, nulls as NaN elements.
func (c Column) Series() series.Series {
	recs := make([]string, len(c.Values))
	for i, v := range c.Values {
		if !c.Valid[i] {
			recs[i] = "NaN"
			continue
		}
		recs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return series.New(recs, series.Float, c.Name)
}

// ColumnOf reads the named column of df as floats. Missing or
// non-numeric elements become nulls; use CastFloat to reject them instead.
func ColumnOf(df dataframe.DataFrame, name string) (Column, error) {
	s, err := lookup(df, name)
	if err != nil {
		return Column{}, err
	}
	col := newColumn(name, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		v := e.Float()
		if math.IsNaN(v) {
			continue
		}
		col.Values[i], col.Valid[i] = v, true
	}
	return col, nil
}

func lookup(df dataframe.DataFrame, name string) (series.Series, error) {
	names := df.Names()
	if !slices.Contains(names, name) {
		return series.Series{}, &ColumnNotFoundError{Column: name, Available: names}
	}
	return df.Col(name), nil
}
