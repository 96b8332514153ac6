package phase

import (
	"fmt"
	"math"

	"github.com/lhcoptics/betaphase/circstat"
	"github.com/lhcoptics/betaphase/lattice"
	"github.com/lhcoptics/betaphase/matrix"
)

// Intersection builds the Phase-Advance Matrix under the intersection
// aggregation policy: every file must supply a sample for every BPM of
// bpms (the caller established that common list), and per-pair averaging
// happens in the Fourier domain.
//
// Algorithm:
//  1. model[i][j] = (mu_j - mu_i) mod 1 from the (driven or free)
//     lattice model.
//  2. Per file: apply the beam-direction sign to every sample, then add
//     tune·bd to samples strictly after position lastTurn — the
//     correction for the one-turn phase wrap at the turn boundary.
//  3. Per file: accumulate sin(2π·diff) and cos(2π·diff) of the raw
//     pairwise differences diff[i][j] = phase_j - phase_i.
//  4. meas[i][j] = atan2(Σsin/N, Σcos/N)/2π mod 1; the error bar derives
//     from the resultant length R = √(Σsin² + Σcos²)/N as √(-2·ln R),
//     clamped (R≥1 ⇒ 0, R≈0 ⇒ +Inf, never NaN); under
//     Options.OptimisticErrors it is further divided by √N.
//
// NFILES is uniformly len(files). lastTurn must index into bpms; pass
// len(bpms)-1 to disable the turn-wrap correction.
//
// Errors: ErrNilModel, lattice.ErrBadPlane, ErrNoFiles, ErrTooFewBPMs,
// ErrBadTurnIndex, ErrMissingSample (a file violating the coverage
// precondition — fatal, per the intersection contract), wrapped
// lattice.ErrUnknownName for BPMs absent from the model.
//
// Complexity: O(files · n²) time, O(n²) memory.
func Intersection(model *lattice.Model, files []*lattice.Measurement, bpms []string, plane lattice.Plane, tune float64, lastTurn int, opts Options) (*Advances, error) {
	if err := checkBuilderInput(model, files, bpms, plane); err != nil {
		return nil, err
	}
	n := len(bpms)
	if lastTurn < 0 || lastTurn >= n {
		return nil, fmt.Errorf("phase: lastTurn %d of %d BPMs: %w", lastTurn, n, ErrBadTurnIndex)
	}

	adv, err := newAdvances(bpms)
	if err != nil {
		return nil, err
	}
	if _, err = fillModel(adv, model, plane); err != nil {
		return nil, err
	}

	sinSum, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	cosSum, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	bd := model.BeamDirection()
	ph := make([]float64, n) // per-file signed, wrap-corrected samples
	for _, f := range files {
		for k, name := range adv.names {
			v, ok := f.Phase(name)
			if !ok {
				return nil, fmt.Errorf("phase: BPM %q: %w", name, ErrMissingSample)
			}
			ph[k] = bd * v
			if k > lastTurn {
				ph[k] += tune * bd
			}
		}
		for i := 0; i < n; i++ { // deterministic i→j traversal
			sRow, cRow := sinSum.Row(i), cosSum.Row(i)
			pi := ph[i]
			for j := 0; j < n; j++ {
				d := 2 * math.Pi * (ph[j] - pi) // raw difference, unwrapped
				s, c := math.Sincos(d)
				sRow[j] += s
				cRow[j] += c
			}
		}
	}

	nf := len(files)
	invN := 1.0 / float64(nf)
	optScale := 1.0
	if opts.OptimisticErrors {
		optScale = 1.0 / math.Sqrt(float64(nf))
	}
	twoPi := 2 * math.Pi
	for i := 0; i < n; i++ {
		sRow, cRow := sinSum.Row(i), cosSum.Row(i)
		mRow, eRow := adv.meas.Row(i), adv.errs.Row(i)
		fRow := adv.files.Row(i)
		for j := 0; j < n; j++ {
			ms, mc := sRow[j]*invN, cRow[j]*invN
			mRow[j] = wrapUnit(math.Atan2(ms, mc) / twoPi)
			if nf == 1 {
				// A lone file carries no spread information; R is 1 up
				// to rounding, so pin the error bar at exactly zero.
				eRow[j] = 0
			} else {
				r := math.Sqrt(ms*ms + mc*mc)
				eRow[j] = circstat.StdFromResultant(r) * optScale
			}
			fRow[j] = nf
		}
	}
	return adv, nil
}
