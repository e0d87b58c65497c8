// Package mastery classifies a student's command of a skill into four
// ordinal levels from banded response counters and ability, and derives
// a decay-aware display level without ever silently downgrading stored
// state.
package mastery

// Level is the ordinal mastery classification for a (student, skill).
type Level int

const (
	NotStarted Level = iota
	Familiar
	Proficient
	Mastered
)

// Label returns the display label for a level.
func (l Level) Label() string {
	switch l {
	case NotStarted:
		return "Not Started"
	case Familiar:
		return "Familiar"
	case Proficient:
		return "Proficient"
	case Mastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer.
func (l Level) String() string { return l.Label() }

// ParseLevel maps a display label back to its Level. Unrecognized
// labels parse as NotStarted.
func ParseLevel(label string) Level {
	switch label {
	case "Familiar":
		return Familiar
	case "Proficient":
		return Proficient
	case "Mastered":
		return Mastered
	default:
		return NotStarted
	}
}

// Transition records a stored-level change for event logging and
// display.
type Transition struct {
	SkillID string
	From    Level
	To      Level
}
