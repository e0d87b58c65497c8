// Package scoring propagates a skill-level ability update upward:
// weighted skill re-estimation, statistically independent domain- and
// section-level re-estimation over unioned histories, and the mapping
// from (theta, SE) onto the platform's reported score scale.
package scoring

import "github.com/prepmate/prepmate/internal/ability"

// UpdateSkill re-estimates the skill ability from its complete response
// history and applies the tutor's update weight as a multiplier on the
// delta from the previously stored theta, clamped to the ability
// bounds. Weight 1.0 is a plain re-estimate; the knob exists so
// aggressive or conservative tutoring configurations do not need their
// own estimator code paths.
//
// Applying the weight outside the Bayesian update is statistically
// informal; it is kept because the knob's observable behavior is part
// of the tutor-facing contract.
func UpdateSkill(prev ability.Estimate, responses []ability.Response, est ability.Estimator, weight float64) ability.Estimate {
	next := est.Estimate(responses)
	if weight == 1.0 || prev.ResponseCount == 0 {
		return next
	}
	delta := next.Theta - prev.Theta
	next.Theta = clamp(prev.Theta+weight*delta, ability.ThetaFloor, ability.ThetaCeil)
	return next
}

// EstimateDomain re-estimates domain ability over the union of the
// domain's skill histories. This is a fresh EAP run, not an average of
// skill thetas, so the domain SE reflects the domain's own response
// count.
func EstimateDomain(responses []ability.Response, prior ability.Prior) ability.Estimate {
	return ability.NewEAP(prior).Estimate(responses)
}

// EstimateSection re-estimates section ability over the union of all
// domain histories in the section.
func EstimateSection(responses []ability.Response, prior ability.Prior) ability.Estimate {
	return ability.NewEAP(prior).Estimate(responses)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
