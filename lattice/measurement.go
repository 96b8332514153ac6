package lattice

import "fmt"

// Measurement is one per-plane measurement file: an angular phase sample
// per observed BPM (fractional, nominally on [0,1) — the engine wraps
// defensively) plus the file-wide fractional tune estimate and its RMS.
//
// A Measurement does not have to cover every BPM of the model; the
// union-mode builder tolerates gaps, the intersection-mode builder
// rejects them.
type Measurement struct {
	phases map[string]float64

	tune    float64 // fractional tune of the whole file (header Q1/Q2)
	tuneRMS float64 // its RMS (header Q1RMS/Q2RMS); 0 means "not determined"
}

// NewMeasurement validates and builds a Measurement. phases must be
// non-empty with finite values; tune must be finite; tuneRMS must be
// finite and non-negative (0 is allowed and later down-weighted by the
// tune aggregator). The map is copied.
//
// Errors: ErrNoSamplesInFile, ErrEmptyName, ErrNotFinite (wrapped with
// the offending BPM name).
func NewMeasurement(phases map[string]float64, tune, tuneRMS float64) (*Measurement, error) {
	if len(phases) == 0 {
		return nil, ErrNoSamplesInFile
	}
	if !isFinite(tune) || !isFinite(tuneRMS) || tuneRMS < 0 {
		return nil, fmt.Errorf("lattice: measurement tune %v rms %v: %w", tune, tuneRMS, ErrNotFinite)
	}
	cp := make(map[string]float64, len(phases))
	for name, v := range phases {
		if name == "" {
			return nil, ErrEmptyName
		}
		if !isFinite(v) {
			return nil, fmt.Errorf("lattice: sample %q: %w", name, ErrNotFinite)
		}
		cp[name] = v
	}
	return &Measurement{phases: cp, tune: tune, tuneRMS: tuneRMS}, nil
}

// Phase returns the angular sample of the named BPM and whether the BPM
// was observed in this file. Complexity: O(1).
func (f *Measurement) Phase(name string) (float64, bool) {
	v, ok := f.phases[name]
	return v, ok
}

// Tune returns the file-wide fractional tune estimate.
func (f *Measurement) Tune() float64 { return f.tune }

// TuneRMS returns the RMS of the tune estimate; 0 means the file did not
// determine one.
func (f *Measurement) TuneRMS() float64 { return f.tuneRMS }

// Len returns the number of observed BPMs.
func (f *Measurement) Len() int { return len(f.phases) }
