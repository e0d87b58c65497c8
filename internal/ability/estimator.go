// Package ability estimates a learner's latent ability (theta) from a
// response history under the 3PL model. Two interchangeable strategies
// are provided: Bayesian expected-a-posteriori (the default) and
// maximum likelihood with an EAP fallback for degenerate histories.
package ability

import (
	"errors"
	"fmt"
	"time"

	"github.com/prepmate/prepmate/internal/irt"
)

// Theta bounds applied to every estimate before it leaves the package.
// One wild response must not produce an unbounded downstream ability.
const (
	ThetaFloor = -4.0
	ThetaCeil  = 4.0
)

// ErrNonConvergence signals that the likelihood has no interior maximum
// (all-correct or all-incorrect histories) or the solver diverged.
var ErrNonConvergence = errors.New("ability: likelihood maximization did not converge")

// Response is a single scored response with the parameter snapshot the
// item carried when it was administered.
type Response struct {
	Item    irt.Params
	Correct bool
	At      time.Time
}

// Estimate is a point ability estimate with its uncertainty.
type Estimate struct {
	Theta         float64
	SE            float64
	ResponseCount int
}

// Prior is the Gaussian ability prior.
type Prior struct {
	Mean float64
	SD   float64
}

// DefaultPrior returns the standard-normal ability prior.
func DefaultPrior() Prior {
	return Prior{Mean: 0, SD: 1}
}

// Estimator computes an ability estimate from an ordered response
// history. Implementations are pure: the same history always yields
// the same estimate.
type Estimator interface {
	Estimate(responses []Response) Estimate
	Kind() Kind
}

// Kind tags the estimation strategy.
type Kind string

const (
	KindEAP Kind = "eap"
	KindMLE Kind = "mle"
)

// New builds an estimator of the given kind over the given prior.
func New(kind Kind, prior Prior) (Estimator, error) {
	switch kind {
	case KindEAP:
		return NewEAP(prior), nil
	case KindMLE:
		return NewMLE(prior), nil
	default:
		return nil, fmt.Errorf("unknown estimator kind: %q", kind)
	}
}

// params extracts the item parameter snapshots of a history.
func params(responses []Response) []irt.Params {
	items := make([]irt.Params, len(responses))
	for i, r := range responses {
		items[i] = r.Item
	}
	return items
}

func clampTheta(theta float64) float64 {
	if theta < ThetaFloor {
		return ThetaFloor
	}
	if theta > ThetaCeil {
		return ThetaCeil
	}
	return theta
}
