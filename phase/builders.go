package phase

import (
	"fmt"
	"math"

	"github.com/lhcoptics/betaphase/lattice"
)

// wrapUnit maps x into [0, 1), the canonical domain of every phase
// advance this package materializes.
func wrapUnit(x float64) float64 {
	m := math.Mod(x, 1)
	if m < 0 {
		m++
	}
	return m
}

// checkBuilderInput validates the arguments shared by both builders.
func checkBuilderInput(model *lattice.Model, files []*lattice.Measurement, bpms []string, plane lattice.Plane) error {
	if model == nil {
		return ErrNilModel
	}
	if !plane.Valid() {
		return lattice.ErrBadPlane
	}
	if len(files) == 0 {
		return ErrNoFiles
	}
	if len(bpms) < 2 {
		return ErrTooFewBPMs
	}
	return nil
}

// fillModel writes the lattice-predicted phase-advance grid:
// model[i][j] = (mu[j] - mu[i]) mod 1, from the model phases of the
// listed BPMs. Every listed BPM must exist in the model — a gap here is
// a configuration error, not missing data.
//
// Returned alongside is the per-BPM model phase vector, reused by
// callers that need it.
func fillModel(a *Advances, model *lattice.Model, plane lattice.Plane) ([]float64, error) {
	n := a.Len()
	mu := make([]float64, n)
	for i, name := range a.names {
		e, err := model.Element(name)
		if err != nil {
			return nil, fmt.Errorf("phase: model lookup: %w", err)
		}
		mu[i] = e.Mu(plane)
	}
	for i := 0; i < n; i++ { // deterministic i→j traversal
		row := a.model.Row(i)
		for j := 0; j < n; j++ {
			row[j] = wrapUnit(mu[j] - mu[i])
		}
	}
	return mu, nil
}
