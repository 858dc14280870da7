package analysis

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cast"
)

// CastFloat converts the named column to float and returns a new frame
// with that column replaced under the same name, plus the column itself.
// Integers and floats convert exactly, numeric text is parsed, booleans
// become 1 and 0, and nulls stay null. NaN and infinite values are treated
// as null. Other text fails with *CastError. df is not modified.
func CastFloat(df dataframe.DataFrame, name string) (dataframe.DataFrame, Column, error) {
	s, err := lookup(df, name)
	if err != nil {
		return dataframe.DataFrame{}, Column{}, err
	}

	col := newColumn(name, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		v, err := cast.ToFloat64E(e.Val())
		if err != nil {
			return dataframe.DataFrame{}, Column{}, &CastError{Column: name, Row: i + 1, Value: e.String(), Err: err}
		}
		// Spelled-out "NaN" and "inf" are nulls.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		col.Values[i], col.Valid[i] = v, true
	}

	out := df.Copy().Mutate(col.Series())
	if out.Err != nil {
		return dataframe.DataFrame{}, Column{}, fmt.Errorf("replace column %q: %w", name, out.Err)
	}
	return out, col, nil
}
