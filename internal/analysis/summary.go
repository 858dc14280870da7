package analysis

import (
	"strconv"

	"github.com/montanaflynn/stats"
)

// Stat is a statistic that may be undefined. The zero value is undefined.
type Stat struct {
	Value   float64
	Defined bool
}

func defined(v float64) Stat { return Stat{Value: v, Defined: true} }

// Format renders the value with prec decimals, or "NaN" when undefined.
func (s Stat) Format(prec int) string {
	if !s.Defined {
		return "NaN"
	}
	return strconv.FormatFloat(s.Value, 'f', prec, 64)
}

func (s Stat) String() string {
	if !s.Defined {
		return "NaN"
	}
	return strconv.FormatFloat(s.Value, 'g', -1, 64)
}

// Summary holds the descriptive statistics of a column.
// StdDev is the population standard deviation (divides by Count).
type Summary struct {
	Count  int // non-null values
	Mean   Stat
	Median Stat
	StdDev Stat
}

// Summarize computes mean, median and population standard deviation over
// the non-null values of col. With no non-null values every statistic is
// undefined.
func Summarize(col Column) Summary {
	vals := col.NonNull()
	sum := Summary{Count: len(vals)}
	if len(vals) == 0 {
		return sum
	}
	if mean, err := stats.Mean(vals); err == nil {
		sum.Mean = defined(mean)
	}
	if median, err := stats.Median(vals); err == nil {
		sum.Median = defined(median)
	}
	if sd, err := stats.StandardDeviationPopulation(vals); err == nil {
		sum.StdDev = defined(sd)
	}
	return sum
}
