// Package calibration derives initial 3PL parameters from coarse
// content metadata. It only fills parameters that are unset, so
// running it over an already-calibrated catalog is a no-op; true
// statistical recalibration from response data is out of scope.
package calibration

import "github.com/prepmate/prepmate/internal/bank"

// Discrimination constants per qualitative difficulty tier. Harder
// items are authored to separate stronger learners more sharply.
const (
	DiscriminationEasy    = 0.8
	DiscriminationMedium  = 1.0
	DiscriminationHard    = 1.3
	DiscriminationDefault = 1.0
)

// DefaultDifficulty is used for items without a score band.
const DefaultDifficulty = 0.0

// DefaultGuessing is the guessing floor for a four-option multiple
// choice item.
const DefaultGuessing = 0.25

// ScoreBandToDifficulty maps the 1-8 content score band onto the theta
// scale with a linear transform, band 1 ~ -2.5 through band 8 ~ +2.5.
func ScoreBandToDifficulty(band int) float64 {
	return (float64(band) - 4.5) * (5.0 / 7.0)
}

// DiscriminationForTier returns the initial discrimination for a
// qualitative difficulty tier.
func DiscriminationForTier(tier bank.DifficultyTier) float64 {
	switch tier {
	case bank.TierEasy:
		return DiscriminationEasy
	case bank.TierMedium:
		return DiscriminationMedium
	case bank.TierHard:
		return DiscriminationHard
	default:
		return DiscriminationDefault
	}
}

// GuessingForFormat returns the guessing floor implied by the answer
// format: 1/n for n-option selectable formats, 0 for free response.
func GuessingForFormat(format bank.AnswerFormat, choices int) float64 {
	if format != bank.FormatMultipleChoice {
		return 0
	}
	if choices <= 1 {
		return DefaultGuessing
	}
	return 1 / float64(choices)
}

// Calibrate fills the unset parameters of a single item and returns the
// number of fields written. Already-set fields are left untouched
// unless they are invalid (a <= 0, c outside [0,1)), in which case they
// are replaced with the metadata-derived value.
func Calibrate(it *bank.Item) int {
	touched := 0

	if it.A == nil || *it.A <= 0 {
		a := DiscriminationForTier(it.Tier)
		it.A = &a
		touched++
	}

	if it.B == nil {
		b := DefaultDifficulty
		if it.ScoreBand >= 1 && it.ScoreBand <= 8 {
			b = ScoreBandToDifficulty(it.ScoreBand)
		}
		it.B = &b
		touched++
	}

	if it.C == nil || *it.C < 0 || *it.C >= 1 {
		c := GuessingForFormat(it.Format, it.Choices)
		it.C = &c
		touched++
	}

	return touched
}

// Result summarizes a bulk calibration pass.
type Result struct {
	ItemsSeen    int
	ItemsTouched int
	FieldsSet    int
}

// Run calibrates every item in the slice in place and returns counts of
// the rows touched. A second run over the same slice reports zero
// touched items.
func Run(items []bank.Item) Result {
	res := Result{ItemsSeen: len(items)}
	for i := range items {
		n := Calibrate(&items[i])
		if n > 0 {
			res.ItemsTouched++
			res.FieldsSet += n
		}
	}
	return res
}
