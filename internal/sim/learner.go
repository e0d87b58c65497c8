// Package sim provides a simulated learner that answers items
// according to the 3PL model at a known true ability. The CLI uses it
// to exercise a full diagnostic session; tests use it to check that
// estimates converge toward the truth.
package sim

import (
	"math/rand/v2"

	"github.com/prepmate/prepmate/internal/irt"
)

// Learner answers items stochastically from a fixed true theta.
type Learner struct {
	Theta float64
	rng   *rand.Rand
}

// NewLearner creates a learner with the given true ability. The seed
// makes simulated sessions reproducible.
func NewLearner(theta float64, seed uint64) *Learner {
	return &Learner{
		Theta: theta,
		rng:   rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb)),
	}
}

// Answer returns whether the learner answers an item correctly, drawn
// from the 3PL response probability at the learner's true theta.
func (l *Learner) Answer(p irt.Params) bool {
	return l.rng.Float64() < irt.ProbabilityCorrect(l.Theta, p)
}
