package ability

import (
	"math"

	"github.com/prepmate/prepmate/internal/irt"
)

const (
	mleMaxIter    = 50
	mleTolerance  = 1e-6
	mleDivergence = 6.0 // |theta| beyond which the search has run away
)

// MLE is the maximum-likelihood estimator: Fisher scoring on the
// log-likelihood derivative. Histories with no interior maximum
// (all correct, all incorrect, or a diverging search) fall back to the
// EAP estimate instead of returning a silent bad value.
type MLE struct {
	fallback *EAP
	MaxIter  int
	Tol      float64
}

// NewMLE creates an MLE estimator whose fallback is EAP over the given
// prior.
func NewMLE(prior Prior) *MLE {
	return &MLE{fallback: NewEAP(prior), MaxIter: mleMaxIter, Tol: mleTolerance}
}

func (m *MLE) Kind() Kind { return KindMLE }

// Estimate maximizes the likelihood, or falls back to EAP when the
// history cannot identify an interior maximum.
func (m *MLE) Estimate(responses []Response) Estimate {
	theta, err := m.solve(responses)
	if err != nil {
		return m.fallback.Estimate(responses)
	}
	items := params(responses)
	se := irt.StandardError(theta, items)
	if math.IsInf(se, 1) {
		return m.fallback.Estimate(responses)
	}
	return Estimate{
		Theta:         clampTheta(theta),
		SE:            se,
		ResponseCount: len(responses),
	}
}

// solve runs Fisher scoring from the fallback prior mean. It returns
// ErrNonConvergence for uniform histories (monotone likelihood) and for
// searches that diverge or exhaust the iteration budget.
func (m *MLE) solve(responses []Response) (float64, error) {
	if len(responses) == 0 {
		return 0, ErrNonConvergence
	}
	allCorrect, allIncorrect := true, true
	for _, r := range responses {
		if r.Correct {
			allIncorrect = false
		} else {
			allCorrect = false
		}
	}
	if allCorrect || allIncorrect {
		return 0, ErrNonConvergence
	}

	maxIter := m.MaxIter
	if maxIter <= 0 {
		maxIter = mleMaxIter
	}
	tol := m.Tol
	if tol <= 0 {
		tol = mleTolerance
	}

	items := params(responses)
	theta := m.fallback.Prior.Mean
	for i := 0; i < maxIter; i++ {
		score := scoreFunction(theta, responses)
		info := irt.TestInformation(theta, items)
		if info <= 0 {
			return 0, ErrNonConvergence
		}
		next := theta + score/info
		if math.Abs(next) > mleDivergence || math.IsNaN(next) {
			return 0, ErrNonConvergence
		}
		if math.Abs(next-theta) < tol {
			return next, nil
		}
		theta = next
	}
	return 0, ErrNonConvergence
}

// scoreFunction is the derivative of the 3PL log-likelihood at theta.
func scoreFunction(theta float64, responses []Response) float64 {
	var score float64
	for _, r := range responses {
		p := irt.ProbabilityCorrect(theta, r.Item)
		p = math.Min(math.Max(p, 1e-9), 1-1e-9)
		// dP/dtheta for the 3PL in terms of the inner logistic.
		s := (p - r.Item.C) / (1 - r.Item.C)
		dp := r.Item.A * (1 - r.Item.C) * s * (1 - s)
		u := 0.0
		if r.Correct {
			u = 1.0
		}
		score += (u - p) / (p * (1 - p)) * dp
	}
	return score
}
