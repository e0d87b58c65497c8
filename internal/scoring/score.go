package scoring

import (
	"math"

	"github.com/prepmate/prepmate/internal/ability"
)

// Section score scale constants: theta 0 maps to the scale midpoint,
// one theta unit to one scale SD. Scores are reported in steps of 10
// like the platform's outward-facing scale.
const (
	SectionScoreMin  = 200
	SectionScoreMax  = 800
	sectionScoreMid  = 500
	sectionScoreUnit = 100

	// scoreBandZ widens the reported range to roughly an 80% interval.
	scoreBandZ = 1.28
)

// ScoreRange is a low/high bound on a reported score.
type ScoreRange struct {
	Low  int
	High int
}

// Width returns the spread of the range.
func (r ScoreRange) Width() int { return r.High - r.Low }

// PredictSectionScore maps a section ability estimate onto the 200-800
// scale: centered at a linear transform of theta, widened by the
// estimate's SE. The mapping is monotone in theta and the width is
// monotone in SE.
func PredictSectionScore(est ability.Estimate) ScoreRange {
	center := sectionScoreMid + sectionScoreUnit*est.Theta
	margin := sectionScoreUnit * scoreBandZ * est.SE
	return ScoreRange{
		Low:  roundScore(center - margin),
		High: roundScore(center + margin),
	}
}

// PredictCompositeScore sums section ranges into the 400-1600 composite.
func PredictCompositeScore(sections ...ScoreRange) ScoreRange {
	var total ScoreRange
	for _, s := range sections {
		total.Low += s.Low
		total.High += s.High
	}
	return total
}

// roundScore clamps to the section scale and snaps to a multiple of 10.
func roundScore(v float64) int {
	v = math.Round(v/10) * 10
	if v < SectionScoreMin {
		return SectionScoreMin
	}
	if v > SectionScoreMax {
		return SectionScoreMax
	}
	return int(v)
}
