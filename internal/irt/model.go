// Package irt implements the three-parameter logistic (3PL) item
// response model: the probability that a learner at a given ability
// answers an item correctly, and the Fisher information the item
// carries about that ability.
package irt

import "math"

// Params holds the calibrated 3PL parameters of a single item.
type Params struct {
	// A is the discrimination: how sharply the response probability
	// rises around the item's difficulty. Must be > 0; typical 0.5-2.5.
	A float64

	// B is the difficulty on the theta scale, typical -3..+3.
	B float64

	// C is the guessing floor: the probability of a correct answer from
	// a learner with no ability. 0 for free-response items, ~0.25 for
	// four-option multiple choice. Must be in [0, 1).
	C float64
}

// ProbabilityCorrect returns the 3PL probability that a learner with
// ability theta answers the item correctly:
//
//	P = c + (1-c) / (1 + exp(-a * (theta - b)))
//
// The result is bounded in [c, 1]. At theta == b it equals (1+c)/2.
func ProbabilityCorrect(theta float64, p Params) float64 {
	return p.C + (1-p.C)/(1+math.Exp(-p.A*(theta-p.B)))
}

// ProbabilityIncorrect returns 1 - ProbabilityCorrect.
func ProbabilityIncorrect(theta float64, p Params) float64 {
	return 1 - ProbabilityCorrect(theta, p)
}

// ItemInformation returns the Fisher information of the item at theta:
//
//	I = a^2 * ((P-c)/(1-c))^2 * (1-P)/P
//
// Information peaks near theta == b and grows with a. The result is
// always finite and non-negative, including the c == 0 case and
// saturated probabilities.
func ItemInformation(theta float64, p Params) float64 {
	P := ProbabilityCorrect(theta, p)
	if P <= 0 || P >= 1 || p.C >= 1 {
		return 0
	}
	ratio := (P - p.C) / (1 - p.C)
	info := p.A * p.A * ratio * ratio * (1 - P) / P
	if math.IsNaN(info) || math.IsInf(info, 0) || info < 0 {
		return 0
	}
	return info
}

// TestInformation returns the summed item information of a set of items
// at theta.
func TestInformation(theta float64, items []Params) float64 {
	var total float64
	for _, p := range items {
		total += ItemInformation(theta, p)
	}
	return total
}

// StandardError returns the measurement standard error at theta for a
// set of administered items, 1/sqrt(TestInformation). With zero total
// information the error is unbounded and +Inf is returned; callers
// clamp before propagating.
func StandardError(theta float64, items []Params) float64 {
	info := TestInformation(theta, items)
	if info <= 0 {
		return math.Inf(1)
	}
	return 1 / math.Sqrt(info)
}
