package phase

import "github.com/lhcoptics/betaphase/lattice"

// Compensator recovers free-motion phase advances from a measurement
// taken under forced excitation. The engine does not implement the
// closed-form trigonometric formula; it only sequences the two calls
// below and consumes their results.
//
// The value returned by Offsets is opaque to the engine: it carries the
// per-BPM auxiliary phase terms of the excitation source and is handed
// back verbatim to FreeAdvances of the same implementation.
type Compensator interface {
	// Offsets computes the per-BPM auxiliary phase descriptors from the
	// excited BPM list and the driven and free fractional tunes.
	Offsets(bpms []string, drivenTune, freeTune float64, plane lattice.Plane) (any, error)

	// FreeAdvances computes the compensated free-motion Phase-Advance
	// Matrix and a compensated tune estimate from the free-motion lattice
	// model, the raw per-file samples, the BPM list, both tunes, the
	// descriptors from Offsets, and the model's fractional tune.
	FreeAdvances(model *lattice.Model, files []*lattice.Measurement, bpms []string,
		drivenTune, freeTune float64, offsets any, plane lattice.Plane,
		modelTune float64) (*Advances, float64, error)
}

// freeTune converts the measured driven tune into the expected free
// tune: the measured value shifted by the difference between the natural
// and the driven machine settings.
func freeTune(drivenMeasured, drivenSetting, naturalSetting float64) float64 {
	return drivenMeasured - drivenSetting + naturalSetting
}
