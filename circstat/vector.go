package circstat

import "math"

// resultantEps is the threshold under which the resultant length is
// treated as fully dispersed; below it sqrt(-2·ln R) has no meaningful
// finite value and StdFromResultant saturates to +Inf.
const resultantEps = 1e-15

// VectorMean returns the Fourier-form circular mean of samples on
// [0, period) together with the resultant length R ∈ [0, 1].
//
// Each sample x maps to the unit vector (cos θ, sin θ) with
// θ = 2π·x/period; the mean angle is atan2 of the averaged components
// and R is the length of the averaged vector. R ≈ 1 means tightly
// clustered samples, R ≈ 0 uniform or anti-correlated ones.
//
// This estimator is the vector counterpart of Mean; the two are close
// for concentrated samples but are NOT interchangeable — callers commit
// to one family per aggregation policy.
//
// Errors: ErrNoSamples, ErrBadPeriod.
// Complexity: O(n) time, O(1) memory.
func VectorMean(samples []float64, period float64) (mean, resultant float64, err error) {
	if len(samples) == 0 {
		return 0, 0, ErrNoSamples
	}
	if err = checkPeriod(period); err != nil {
		return 0, 0, err
	}

	scale := 2 * math.Pi / period
	var sumSin, sumCos float64
	for _, x := range samples { // deterministic sample order
		sumSin += math.Sin(x * scale)
		sumCos += math.Cos(x * scale)
	}

	n := float64(len(samples))
	meanSin, meanCos := sumSin/n, sumCos/n
	mean = wrap(math.Atan2(meanSin, meanCos)/scale, period)
	resultant = math.Sqrt(meanSin*meanSin + meanCos*meanCos)
	return mean, resultant, nil
}

// StdFromResultant converts a resultant length R into the circular
// standard deviation sqrt(-2·ln R), clamped so that it never yields NaN:
//
//	R >= 1            ⇒ 0        (perfectly concentrated; FP noise above 1)
//	R <= resultantEps ⇒ +Inf     (fully dispersed; dispersion undefined)
//
// The +Inf saturation is deliberate: a degenerate resultant must surface
// as an explicitly unusable error bar, not as a quiet NaN or a unit-sized
// guess.
func StdFromResultant(r float64) float64 {
	if r >= 1 {
		return 0
	}
	if r <= resultantEps {
		return math.Inf(1)
	}
	return math.Sqrt(-2 * math.Log(r))
}
