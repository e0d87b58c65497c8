package mastery

import (
	"time"

	"github.com/prepmate/prepmate/internal/bank"
)

// Classification thresholds. Each level's requirements strictly contain
// the previous level's.
const (
	familiarMinResponses = 3
	familiarMinAccuracy  = 0.50

	proficientMinResponses   = 5
	proficientMinMediumPlus  = 3
	proficientMediumAccuracy = 0.70
	proficientMinTheta       = 0.0

	masteredMinResponses = 8
	masteredMinHard      = 3
	masteredHardAccuracy = 0.80
	masteredMinTheta     = 1.0
	masteredRecencyDays  = 14
)

// Counters are the difficulty-banded response tallies for a
// (student, skill). MediumPlus counts responses on medium-or-harder
// items; Hard counts the hard band alone.
type Counters struct {
	Total   int
	Correct int

	MediumPlusTotal   int
	MediumPlusCorrect int

	HardTotal   int
	HardCorrect int

	LastPracticed time.Time
}

// Attempt is one scored response with its difficulty band, the raw
// input Counters are tallied from.
type Attempt struct {
	Correct bool
	Band    bank.DifficultyTier
	At      time.Time
}

// Tally folds a response history into Counters.
func Tally(attempts []Attempt) Counters {
	var c Counters
	for _, a := range attempts {
		c.Total++
		if a.Correct {
			c.Correct++
		}
		if a.Band == bank.TierMedium || a.Band == bank.TierHard {
			c.MediumPlusTotal++
			if a.Correct {
				c.MediumPlusCorrect++
			}
		}
		if a.Band == bank.TierHard {
			c.HardTotal++
			if a.Correct {
				c.HardCorrect++
			}
		}
		if a.At.After(c.LastPracticed) {
			c.LastPracticed = a.At
		}
	}
	return c
}

// Classify re-derives the stored mastery level from current counters
// and ability. It never patches a previous level incrementally, so a
// missing or corrupt stored level costs nothing: the next response
// recomputes it.
func Classify(c Counters, theta float64, now time.Time) Level {
	level := NotStarted

	if c.Total >= familiarMinResponses && accuracy(c.Correct, c.Total) >= familiarMinAccuracy {
		level = Familiar
	} else {
		return level
	}

	if c.Total >= proficientMinResponses &&
		c.MediumPlusTotal >= proficientMinMediumPlus &&
		accuracy(c.MediumPlusCorrect, c.MediumPlusTotal) >= proficientMediumAccuracy &&
		theta >= proficientMinTheta {
		level = Proficient
	} else {
		return level
	}

	if c.Total >= masteredMinResponses &&
		c.HardTotal >= masteredMinHard &&
		accuracy(c.HardCorrect, c.HardTotal) >= masteredHardAccuracy &&
		theta >= masteredMinTheta &&
		withinDays(c.LastPracticed, now, masteredRecencyDays) {
		level = Mastered
	}
	return level
}

func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

func withinDays(t, now time.Time, days int) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(now.AddDate(0, 0, -days))
}
