package ability

import (
	"math"

	"github.com/prepmate/prepmate/internal/irt"
)

// Quadrature grid defaults. The grid spans Prior.Mean +/- gridSpan
// prior SDs; 61 points keeps the integration error far below the
// measurement error at any realistic history length.
const (
	defaultGridSize = 61
	defaultGridSpan = 4.0
)

// EAP is the expected-a-posteriori estimator: the posterior mean and SD
// of theta under a Gaussian prior combined with the 3PL likelihood,
// integrated over a fixed quadrature grid.
type EAP struct {
	Prior    Prior
	GridSize int
	GridSpan float64
}

// NewEAP creates an EAP estimator with the default grid.
func NewEAP(prior Prior) *EAP {
	if prior.SD <= 0 {
		prior = DefaultPrior()
	}
	return &EAP{Prior: prior, GridSize: defaultGridSize, GridSpan: defaultGridSpan}
}

func (e *EAP) Kind() Kind { return KindEAP }

// Estimate returns the posterior mean and SD of theta. With an empty
// history it returns exactly the prior.
func (e *EAP) Estimate(responses []Response) Estimate {
	if len(responses) == 0 {
		return Estimate{Theta: e.Prior.Mean, SE: e.Prior.SD, ResponseCount: 0}
	}

	n := e.GridSize
	if n < 3 {
		n = defaultGridSize
	}
	span := e.GridSpan
	if span <= 0 {
		span = defaultGridSpan
	}

	lo := e.Prior.Mean - span*e.Prior.SD
	hi := e.Prior.Mean + span*e.Prior.SD
	step := (hi - lo) / float64(n-1)

	// Posterior mass at each grid point, computed in log space so long
	// histories don't underflow the likelihood product.
	logMass := make([]float64, n)
	maxLog := math.Inf(-1)
	for k := 0; k < n; k++ {
		theta := lo + float64(k)*step
		z := (theta - e.Prior.Mean) / e.Prior.SD
		lm := -0.5 * z * z // Gaussian prior kernel
		for _, r := range responses {
			p := irt.ProbabilityCorrect(theta, r.Item)
			// Guard saturated probabilities so log stays finite.
			p = math.Min(math.Max(p, 1e-9), 1-1e-9)
			if r.Correct {
				lm += math.Log(p)
			} else {
				lm += math.Log(1 - p)
			}
		}
		logMass[k] = lm
		if lm > maxLog {
			maxLog = lm
		}
	}

	var total, weighted float64
	for k := 0; k < n; k++ {
		m := math.Exp(logMass[k] - maxLog)
		theta := lo + float64(k)*step
		total += m
		weighted += m * theta
	}
	mean := weighted / total

	var variance float64
	for k := 0; k < n; k++ {
		m := math.Exp(logMass[k] - maxLog)
		theta := lo + float64(k)*step
		variance += m * (theta - mean) * (theta - mean)
	}
	variance /= total

	return Estimate{
		Theta:         clampTheta(mean),
		SE:            math.Sqrt(variance),
		ResponseCount: len(responses),
	}
}
