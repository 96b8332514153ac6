package phase

import (
	"fmt"
	"math"

	"github.com/lhcoptics/betaphase/lattice"
	"github.com/lhcoptics/betaphase/matrix"
)

// Advances is one Phase-Advance Matrix: four parallel BPM×BPM grids over
// a fixed BPM ordering. Entry (i, j) always means "phase at BPM j minus
// phase at BPM i", wrapped into [0, 1); only that source→destination
// relation is materialized — the reverse direction is its periodic
// complement.
//
// An Advances is built once by a builder (or a Compensator) and is
// read-only afterwards; nothing in this package mutates a constructed
// value.
type Advances struct {
	names []string
	index map[string]int

	model *matrix.Dense // lattice-predicted advances
	meas  *matrix.Dense // circular-mean measured advances; NaN = no data
	errs  *matrix.Dense // circular standard errors; NaN = no data
	files *matrix.Ints  // contributing file count per pair
}

// newAdvances allocates the grids for the given BPM ordering. meas and
// errs start as NaN ("not observed"), model and files as zero; builders
// fill every cell they stand behind.
func newAdvances(bpms []string) (*Advances, error) {
	n := len(bpms)
	if n < 2 {
		return nil, ErrTooFewBPMs
	}
	names := make([]string, n)
	copy(names, bpms)
	index := make(map[string]int, n)
	for i, name := range names {
		index[name] = i
	}

	nan := math.NaN()
	model, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	meas, err := matrix.NewDenseFilled(n, n, nan)
	if err != nil {
		return nil, err
	}
	errs, err := matrix.NewDenseFilled(n, n, nan)
	if err != nil {
		return nil, err
	}
	files, err := matrix.NewInts(n, n)
	if err != nil {
		return nil, err
	}
	return &Advances{names: names, index: index, model: model, meas: meas, errs: errs, files: files}, nil
}

// Len returns the number of BPMs. Complexity: O(1).
func (a *Advances) Len() int { return len(a.names) }

// Name returns the BPM name at position i; panics out of range
// (programmer error).
func (a *Advances) Name(i int) string { return a.names[i] }

// Names returns a copy of the BPM ordering.
func (a *Advances) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Index returns the position of the named BPM.
// Errors: lattice.ErrUnknownName wrapped with the name.
func (a *Advances) Index(name string) (int, error) {
	i, ok := a.index[name]
	if !ok {
		return 0, fmt.Errorf("phase: BPM %q: %w", name, lattice.ErrUnknownName)
	}
	return i, nil
}

// Model returns the lattice-predicted phase advance from BPM i to BPM j.
func (a *Advances) Model(i, j int) (float64, error) { return a.model.At(i, j) }

// Meas returns the measured circular-mean phase advance from BPM i to
// BPM j; NaN when no file covered the pair (union mode).
func (a *Advances) Meas(i, j int) (float64, error) { return a.meas.At(i, j) }

// Err returns the circular standard error of Meas(i, j); NaN when no
// file covered the pair, +Inf when the dispersion was degenerate.
func (a *Advances) Err(i, j int) (float64, error) { return a.errs.At(i, j) }

// NFiles returns how many files contributed a valid sample to the pair.
func (a *Advances) NFiles(i, j int) (int, error) { return a.files.At(i, j) }
