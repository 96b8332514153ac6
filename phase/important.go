package phase

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/lhcoptics/betaphase/lattice"
)

// writeImportantPairs emits the headline phase advances between
// physics-landmark element pairs as header descriptors: per pair one
// MODL line (lattice prediction) and one MEAS line (measured, with
// error bars and the contributing BPM pair).
//
// The landmarks are usually magnets, not BPMs, so each endpoint is
// mapped to the measured BPM nearest in model phase; the measured BPM
// advance is then extrapolated to the landmarks by the model phase
// offsets. A landmark on the other side of the ring origin gets the
// full-turn tune added. Values are reported both as fractional phase
// and in degrees folded into (-90, 90].
//
// Every defect — an element or BPM missing from the element table — is
// returned as a Warning and logged; nothing here aborts the write.
func writeImportantPairs(sink ResultFile, p lattice.Plane, adv *Advances,
	elements *lattice.Model, planeTune float64, log *slog.Logger, pairs [][2]string) []Warning {
	var warnings []Warning
	warn := func(subject string, reason error) {
		warnings = append(warnings, Warning{Subject: subject, Reason: reason})
		log.Warn("skipping headline phase advance",
			slog.String("subject", subject), slog.String("reason", reason.Error()))
	}

	bd := elements.BeamDirection()
	for _, pair := range pairs {
		label := pair[0] + "__to__" + pair[1]

		e1, err := elements.Element(pair[0])
		if err != nil {
			warn(pair[0], wrapNotFound(err))
			continue
		}
		e2, err := elements.Element(pair[1])
		if err != nil {
			warn(pair[1], wrapNotFound(err))
			continue
		}

		// Nearest measured BPM (in model phase) to each landmark.
		i1, ok1 := nearestBPM(adv, elements, p, e1.Mu(p))
		i2, ok2 := nearestBPM(adv, elements, p, e2.Mu(p))
		if !ok1 || !ok2 {
			warn(label, ErrElementNotFound)
			continue
		}
		b1, _ := elements.Element(adv.Name(i1))
		b2, _ := elements.Element(adv.Name(i2))

		bpmAdvance, _ := adv.Meas(i1, i2)
		bpmErr, _ := adv.Err(i1, i2)
		count, _ := adv.NFiles(i1, i2)
		if count == 0 || math.IsNaN(bpmAdvance) {
			warn(label, ErrNoPairData)
			continue
		}
		modelValue := e2.Mu(p) - e1.Mu(p)

		// Pair straddling the ring origin: one full turn is hidden in the
		// materialized advance.
		if (e1.S-e2.S)*bd > 0 {
			bpmAdvance += planeTune
			modelValue += planeTune
		}

		// Extrapolate from the chosen BPMs to the landmarks themselves.
		phaseToFirst := b1.Mu(p) - e1.Mu(p)
		phaseToSecond := e2.Mu(p) - b2.Mu(p)

		result := (bpmAdvance + phaseToFirst + phaseToSecond) * bd
		modelValue *= bd

		sink.SetHeader(label+"___MODL",
			fmt.Sprintf("%8.4f     %6s = %6.2f deg", wrapUnit(modelValue), "", foldDegrees(modelValue)))
		sink.SetHeader(label+"___MEAS",
			fmt.Sprintf("%8.4f  +- %6.4f = %6.2f +- %3.2f deg (%8.4f + %8.4f [%s, %s])",
				wrapUnit(result), bpmErr, foldDegrees(result), bpmErr*360,
				bpmAdvance, phaseToFirst+phaseToSecond, b1.Name, b2.Name))
	}
	return warnings
}

// wrapNotFound normalizes a lattice lookup failure into the package's
// diagnostic sentinel while keeping the original chain matchable.
func wrapNotFound(err error) error {
	if errors.Is(err, lattice.ErrUnknownName) {
		return fmt.Errorf("%w: %w", ErrElementNotFound, err)
	}
	return err
}

// nearestBPM returns the index (in adv's ordering) of the measured BPM
// whose model phase is closest to mu, consulting the element table for
// BPM phases. BPMs absent from the table are ignored; ok is false when
// none qualifies.
func nearestBPM(adv *Advances, elements *lattice.Model, p lattice.Plane, mu float64) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i := 0; i < adv.Len(); i++ { // deterministic ring order
		e, err := elements.Element(adv.Name(i))
		if err != nil {
			continue
		}
		if d := math.Abs(mu - e.Mu(p)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// foldDegrees converts a fractional phase into degrees folded into
// (-90, 90]: half a period maps to 180° and anything beyond 90° wraps
// to its negative complement.
func foldDegrees(x float64) float64 {
	half := math.Mod(x, 0.5)
	if half < 0 {
		half += 0.5
	}
	deg := half * 360
	if deg > 90 {
		deg -= 180
	}
	return deg
}
