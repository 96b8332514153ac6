package phase

import (
	"math"

	"github.com/lhcoptics/betaphase/circstat"
	"github.com/lhcoptics/betaphase/lattice"
	"github.com/lhcoptics/betaphase/matrix"
)

// Union builds the Phase-Advance Matrix under the union aggregation
// policy: files may cover different BPM subsets, and a pair (i, j)
// averages over exactly the files observing both of its BPMs. Despite
// the name this is a selective intersection per pair, not a set union of
// per-file results.
//
// Algorithm:
//  1. model[i][j] as in Intersection.
//  2. Per file, with the beam-direction sign applied: diff[i][j] =
//     phase_j - phase_i, wrapped into [0, 1) by adding 1 where negative
//     (union mode commits to the [0,1) convention per file); pairs
//     lacking coverage in that file stay NaN.
//  3. Per pair: direct dual-candidate circular mean and (n-1)-normalized
//     circular standard error (including the Hill TValue(n-1)
//     correction) over the contributing files only; under
//     Options.OptimisticErrors the error is divided by √NFILES[i][j].
//
// A pair with zero contributing files keeps NaN MEAS/ERRMEAS and
// NFILES 0 — it must never contribute a silent zero downstream. The
// one-turn wrap correction does not apply in this mode.
//
// Errors: ErrNilModel, lattice.ErrBadPlane, ErrNoFiles, ErrTooFewBPMs,
// wrapped lattice.ErrUnknownName for BPMs absent from the model.
//
// Complexity: O(files · n²) time, O(files · n²) memory for the per-file
// difference stack.
func Union(model *lattice.Model, files []*lattice.Measurement, bpms []string, plane lattice.Plane, opts Options) (*Advances, error) {
	if err := checkBuilderInput(model, files, bpms, plane); err != nil {
		return nil, err
	}
	n := len(bpms)

	adv, err := newAdvances(bpms)
	if err != nil {
		return nil, err
	}
	if _, err = fillModel(adv, model, plane); err != nil {
		return nil, err
	}

	// Stack of per-file wrapped difference grids; NaN marks "this file
	// did not observe the pair".
	bd := model.BeamDirection()
	nan := math.NaN()
	stack := make([]*matrix.Dense, len(files))
	ph := make([]float64, n)
	seen := make([]bool, n)
	for fi, f := range files {
		grid, gerr := matrix.NewDenseFilled(n, n, nan)
		if gerr != nil {
			return nil, gerr
		}
		for k, name := range adv.names {
			v, ok := f.Phase(name)
			seen[k] = ok
			if ok {
				ph[k] = bd * v
			}
		}
		for i := 0; i < n; i++ { // deterministic i→j traversal
			if !seen[i] {
				continue
			}
			row := grid.Row(i)
			pi := ph[i]
			for j := 0; j < n; j++ {
				if !seen[j] {
					continue
				}
				d := ph[j] - pi
				if d < 0 {
					d++
				}
				row[j] = d
			}
		}
		stack[fi] = grid
	}

	// Per-pair aggregation over the contributing files.
	buf := make([]float64, 0, len(files))
	for i := 0; i < n; i++ {
		mRow, eRow := adv.meas.Row(i), adv.errs.Row(i)
		fRow := adv.files.Row(i)
		for j := 0; j < n; j++ {
			buf = buf[:0]
			for _, grid := range stack {
				if v := grid.Row(i)[j]; !math.IsNaN(v) {
					buf = append(buf, v)
				}
			}
			fRow[j] = len(buf)
			if len(buf) == 0 {
				continue // stays NaN / 0 by construction
			}
			mean, merr := circstat.Mean(buf, 1)
			if merr != nil {
				return nil, merr
			}
			spread, serr := circstat.StdErr(buf, 1)
			if serr != nil {
				return nil, serr
			}
			if opts.OptimisticErrors {
				spread /= math.Sqrt(float64(len(buf)))
			}
			mRow[j] = mean
			eRow[j] = spread
		}
	}
	return adv, nil
}
