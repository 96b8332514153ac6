package circstat

import (
	"errors"
	"math"
)

var (
	// ErrNoSamples indicates an empty sample slice was supplied.
	ErrNoSamples = errors.New("circstat: no samples")

	// ErrBadPeriod indicates a non-positive or non-finite period.
	ErrBadPeriod = errors.New("circstat: period must be positive and finite")
)

// wrap maps x into [0, period). Go's math.Mod keeps the sign of x, so a
// negative remainder is shifted up by one period.
func wrap(x, period float64) float64 {
	m := math.Mod(x, period)
	if m < 0 {
		m += period
	}
	return m
}

// Wrap maps x into [0, period). It is the canonical wrap used by every
// consumer of this package; period must be positive and finite.
func Wrap(x, period float64) (float64, error) {
	if err := checkPeriod(period); err != nil {
		return 0, err
	}
	return wrap(x, period), nil
}

func checkPeriod(period float64) error {
	if !(period > 0) || math.IsInf(period, 1) {
		return ErrBadPeriod
	}
	return nil
}

// candidates computes the two de-aliased representations of samples:
//
//	c0[i] = samples[i] mod period                  on [0, period)
//	c1[i] = (c0[i] + period/2) mod period - period/2  on [-period/2, period/2)
//
// together with the arithmetic mean of each. c1 re-centers the branch cut
// to period/2 so that sets straddling zero become contiguous.
// Single deterministic pass; c0 is materialized, c1 derived on the fly.
func candidates(samples []float64, period float64) (c0 []float64, ave0, ave1 float64) {
	half := 0.5 * period
	c0 = make([]float64, len(samples))
	var s0, s1 float64
	for i, x := range samples { // deterministic sample order
		v0 := wrap(x, period)
		c0[i] = v0
		s0 += v0
		s1 += wrap(v0+half, period) - half
	}
	n := float64(len(samples))
	return c0, s0 / n, s1 / n
}

// Mean returns the circular mean of samples on [0, period).
//
// Algorithm:
//  1. Build both candidate representations (see candidates).
//  2. Compare the sum of absolute deviations of each candidate from its
//     own average; absolute deviations suffice for branch selection and
//     avoid the sqrt of a full standard deviation.
//  3. Return the winning average, wrapped back into [0, period).
//
// Errors: ErrNoSamples, ErrBadPeriod.
// Complexity: O(n) time, O(n) memory for the candidate buffer.
func Mean(samples []float64, period float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	if err := checkPeriod(period); err != nil {
		return 0, err
	}

	c0, ave0, ave1 := candidates(samples, period)

	// Sum of absolute deviations per candidate, fixed order.
	half := 0.5 * period
	var dev0, dev1 float64
	for _, v0 := range c0 {
		dev0 += math.Abs(v0 - ave0)
		dev1 += math.Abs(wrap(v0+half, period) - half - ave1)
	}

	if dev0 < dev1 {
		return wrap(ave0, period), nil
	}
	return wrap(ave1, period), nil
}

// StdErr returns the circular standard error of samples on [0, period),
// inflated by the Hill small-sample correction TValue(n-1).
//
// Algorithm:
//  1. Build both candidate representations and their averages.
//  2. Take the smaller of the two sums of squared deviations.
//  3. Divide by (n-1), take the square root, multiply by TValue(n-1).
//
// A single sample has no dispersion estimate: StdErr returns exactly 0.
//
// Errors: ErrNoSamples, ErrBadPeriod.
// Complexity: O(n) time, O(n) memory for the candidate buffer.
func StdErr(samples []float64, period float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	if err := checkPeriod(period); err != nil {
		return 0, err
	}
	n := len(samples)
	if n == 1 {
		return 0, nil
	}

	c0, ave0, ave1 := candidates(samples, period)

	half := 0.5 * period
	var sq0, sq1 float64
	for _, v0 := range c0 {
		d0 := v0 - ave0
		d1 := wrap(v0+half, period) - half - ave1
		sq0 += d0 * d0
		sq1 += d1 * d1
	}

	sq := math.Min(sq0, sq1)
	return math.Sqrt(sq/float64(n-1)) * TValue(n-1), nil
}
