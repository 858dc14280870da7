package analysis

import (
	"fmt"
	"strings"
)

// ColumnNotFoundError indicates a required column is absent from the table.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

// CastError indicates a value that cannot be represented as a float.
// Row is 1-based and counts data rows only.
type CastError struct {
	Column string
	Row    int
	Value  string
	Err    error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cast column %q row %d value %q to float: %v", e.Column, e.Row, e.Value, e.Err)
}

func (e *CastError) Unwrap() error { return e.Err }
