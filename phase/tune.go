package phase

import "github.com/lhcoptics/betaphase/lattice"

// degenerateTuneRMS substitutes a file that reports TuneRMS == 0: the
// weighted average stays defined and the degenerate file's influence
// drops to near zero (weight 1e-6 against typical 1e4..1e6 weights).
const degenerateTuneRMS = 1000.0

// WeightedTune combines the per-file fractional tune estimates into one
// value by inverse-variance weighting: weight_k = 1/rms_k², tune =
// Σ(tune_k·weight_k) / Σweight_k. Files reporting rms 0 get
// degenerateTuneRMS instead, guarding the division and down-weighting
// them to irrelevance.
//
// Errors: ErrNoFiles.
// Complexity: O(files).
func WeightedTune(files []*lattice.Measurement) (float64, error) {
	if len(files) == 0 {
		return 0, ErrNoFiles
	}
	var num, den float64
	for _, f := range files { // deterministic file order
		rms := f.TuneRMS()
		if rms == 0 {
			rms = degenerateTuneRMS
		}
		w := 1.0 / (rms * rms)
		num += f.Tune() * w
		den += w
	}
	return num / den, nil
}
