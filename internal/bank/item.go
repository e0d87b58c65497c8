// Package bank holds the item bank: calibrated questions tagged with
// taxonomy content. The engine consumes items as plain data; how the
// surrounding platform stores its question bank is not this package's
// concern, but it provides a validated JSON snapshot loader for the
// CLI and tests.
package bank

import (
	"github.com/prepmate/prepmate/internal/irt"
	"github.com/prepmate/prepmate/internal/taxonomy"
)

// DifficultyTier is the qualitative difficulty band assigned by content
// authors, used both for calibration defaults and mastery banding.
type DifficultyTier string

const (
	TierEasy   DifficultyTier = "easy"
	TierMedium DifficultyTier = "medium"
	TierHard   DifficultyTier = "hard"
)

// AnswerFormat describes how the learner answers an item.
type AnswerFormat string

const (
	FormatMultipleChoice AnswerFormat = "multiple-choice"
	FormatFreeResponse   AnswerFormat = "free-response"
)

// Item is a single question-bank entry. The IRT parameters are
// pointers: nil means not yet calibrated. Once set they are immutable
// unless an explicit recalibration overwrites them.
type Item struct {
	ID string

	// Content tags.
	SkillID   string
	Tier      DifficultyTier
	ScoreBand int // coarse 1-8 difficulty bucket; 0 = unknown
	Format    AnswerFormat
	Choices   int // option count for multiple choice; 0 otherwise

	// 3PL parameters, nil until calibrated.
	A *float64
	B *float64
	C *float64
}

// Params returns the item's 3PL parameters. ok is false when the item
// is not fully calibrated.
func (it *Item) Params() (irt.Params, bool) {
	if it.A == nil || it.B == nil || it.C == nil {
		return irt.Params{}, false
	}
	return irt.Params{A: *it.A, B: *it.B, C: *it.C}, true
}

// Domain resolves the item's domain through its skill tag.
func (it *Item) Domain() (taxonomy.Domain, error) {
	return taxonomy.DomainOf(it.SkillID)
}

// Section resolves the item's section through its skill tag.
func (it *Item) Section() (taxonomy.Section, error) {
	d, err := it.Domain()
	if err != nil {
		return "", err
	}
	return d.Section, nil
}
