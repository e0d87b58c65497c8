package calibration

import (
	"math"

	"github.com/prepmate/prepmate/internal/bank"
)

// ParamStats summarizes one 3PL parameter across the catalog.
type ParamStats struct {
	Populated int
	Fraction  float64
	Min       float64
	Max       float64
	Mean      float64
}

// CoverageReport describes how much of the catalog carries each
// parameter, for operational visibility after an import.
type CoverageReport struct {
	Items          int
	Discrimination ParamStats
	Difficulty     ParamStats
	Guessing       ParamStats
}

// Coverage computes the calibration coverage of a catalog.
func Coverage(items []bank.Item) CoverageReport {
	rep := CoverageReport{Items: len(items)}
	rep.Discrimination = paramStats(items, func(it bank.Item) *float64 { return it.A })
	rep.Difficulty = paramStats(items, func(it bank.Item) *float64 { return it.B })
	rep.Guessing = paramStats(items, func(it bank.Item) *float64 { return it.C })
	return rep
}

func paramStats(items []bank.Item, get func(bank.Item) *float64) ParamStats {
	s := ParamStats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, it := range items {
		v := get(it)
		if v == nil {
			continue
		}
		s.Populated++
		sum += *v
		s.Min = math.Min(s.Min, *v)
		s.Max = math.Max(s.Max, *v)
	}
	if s.Populated == 0 {
		return ParamStats{}
	}
	s.Mean = sum / float64(s.Populated)
	if len(items) > 0 {
		s.Fraction = float64(s.Populated) / float64(len(items))
	}
	return s
}
