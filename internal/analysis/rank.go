package analysis

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// RankOrder returns row indices ordered by value descending, nulls last.
// Equal values keep their original relative order.
func RankOrder(col Column) []int {
	idx := make([]int, col.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		if col.Valid[i] != col.Valid[j] {
			return col.Valid[i]
		}
		if !col.Valid[i] {
			return false
		}
		return col.Values[i] > col.Values[j]
	})
	return idx
}

// Rank returns a new frame with the top n rows of df by the named column,
// ordered as RankOrder. Fewer rows are returned when df is shorter.
func Rank(df dataframe.DataFrame, name string, n int) (dataframe.DataFrame, error) {
	col, err := ColumnOf(df, name)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	idx := RankOrder(col)
	if n < 0 {
		n = 0
	}
	if len(idx) > n {
		idx = idx[:n]
	}
	if len(idx) == 0 {
		return emptyLike(df)
	}
	out := df.Subset(idx)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("subset ranked rows: %w", out.Err)
	}
	return out, nil
}

// emptyLike builds a zero-row frame with the schema of df.
func emptyLike(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	names := df.Names()
	types := df.Types()
	cols := make([]series.Series, len(names))
	for i, name := range names {
		cols[i] = series.New([]string{}, types[i], name)
	}
	out := dataframe.New(cols...)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("empty frame: %w", out.Err)
	}
	return out, nil
}
