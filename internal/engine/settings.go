package engine

// AdaptiveSettings are the per-student, tutor-configurable knobs. The
// zero value is not usable; start from DefaultSettings so the engine is
// always runnable without explicit configuration.
type AdaptiveSettings struct {
	// RepetitionTimeDays blocks re-administering an item seen within
	// the last N days.
	RepetitionTimeDays int

	// RepetitionQuestionCount blocks items among the last N
	// administered.
	RepetitionQuestionCount int

	// ChallengeBias in [0,1] shifts item selection toward harder items.
	ChallengeBias float64

	// ThetaUpdateWeight in [0.5,2.0] scales how aggressively each
	// response moves the stored skill ability.
	ThetaUpdateWeight float64

	// StaleAfterDays is the practice gap after which displayed mastery
	// drops one level.
	StaleAfterDays int
}

// DefaultSettings returns the engine defaults.
func DefaultSettings() AdaptiveSettings {
	return AdaptiveSettings{
		RepetitionTimeDays:      7,
		RepetitionQuestionCount: 10,
		ChallengeBias:           0,
		ThetaUpdateWeight:       1.0,
		StaleAfterDays:          14,
	}
}

// Clamp forces every knob into its documented range, falling back to
// the default for non-positive windows.
func (s AdaptiveSettings) Clamp() AdaptiveSettings {
	def := DefaultSettings()
	if s.RepetitionTimeDays < 0 {
		s.RepetitionTimeDays = def.RepetitionTimeDays
	}
	if s.RepetitionQuestionCount < 0 {
		s.RepetitionQuestionCount = def.RepetitionQuestionCount
	}
	if s.ChallengeBias < 0 {
		s.ChallengeBias = 0
	}
	if s.ChallengeBias > 1 {
		s.ChallengeBias = 1
	}
	if s.ThetaUpdateWeight < 0.5 {
		s.ThetaUpdateWeight = 0.5
	}
	if s.ThetaUpdateWeight > 2.0 {
		s.ThetaUpdateWeight = 2.0
	}
	if s.StaleAfterDays <= 0 {
		s.StaleAfterDays = def.StaleAfterDays
	}
	return s
}
