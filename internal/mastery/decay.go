package mastery

import "time"

// DefaultStaleAfterDays is how long a skill may go unpracticed before
// its displayed level drops one notch.
const DefaultStaleAfterDays = 14

// Effective derives the display-time mastery level. The stored level is
// never lowered by the passage of time; staleness only affects what is
// shown, plus a needs-review flag, so "student regressed" stays
// distinguishable from "record is simply old".
func Effective(stored Level, lastPracticed time.Time, now time.Time) (Level, bool) {
	return EffectiveWithThreshold(stored, lastPracticed, now, DefaultStaleAfterDays)
}

// EffectiveWithThreshold is Effective with a caller-supplied staleness
// threshold in days.
func EffectiveWithThreshold(stored Level, lastPracticed time.Time, now time.Time, staleAfterDays int) (Level, bool) {
	if stored == NotStarted {
		return NotStarted, false
	}
	if withinDays(lastPracticed, now, staleAfterDays) {
		return stored, false
	}
	effective := stored - 1
	if effective < NotStarted {
		effective = NotStarted
	}
	return effective, true
}
