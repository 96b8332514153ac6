package phase

import (
	"fmt"
	"log/slog"

	"github.com/lhcoptics/betaphase/lattice"
)

// PlaneInput carries the per-plane measurement inputs.
//
// Fields:
//   - Files       — the plane's measurement files; empty means the plane
//     is absent (a warning, not an error, as long as the other plane has
//     data).
//   - BPMs        — the caller-established BPM list in ring order: the
//     common list in intersection mode, the "present in enough files"
//     list in union mode.
//   - LastTurnBPM — index into BPMs of the last BPM belonging to the
//     measured turn; samples after it get the one-turn tune correction
//     in intersection mode.
//   - DrivenTune / NaturalTune — the machine tune settings under
//     excitation and under free motion; consulted only for driven runs.
type PlaneInput struct {
	Files       []*lattice.Measurement
	BPMs        []string
	LastTurnBPM int
	DrivenTune  float64
	NaturalTune float64
}

// Input is one engine invocation's full input set.
//
// Model is the free-motion ("best knowledge") lattice model.
// DrivenModel is the lattice model of the excited machine; required for
// driven runs, ignored otherwise. Elements optionally supplies the full
// element table (BPMs plus magnet landmarks) for headline diagnostics;
// nil falls back to Model.
type Input struct {
	Model       *lattice.Model
	DrivenModel *lattice.Model
	Elements    *lattice.Model

	// ImportantPairs lists physics-landmark element pairs whose phase
	// advance is written as headline descriptors during write-out.
	ImportantPairs [][2]string

	X PlaneInput
	Y PlaneInput
}

// plane returns the PlaneInput for p.
func (in *Input) plane(p lattice.Plane) PlaneInput {
	if p == lattice.PlaneY {
		return in.Y
	}
	return in.X
}

// PlaneResult is one plane's outcome.
//
// Free holds the free-motion Phase-Advance Matrix: the compensated one
// under driven excitation, the raw one otherwise. Driven holds the raw
// driven matrix and is nil for free runs. Tune is the aggregated
// measured tune (the driven tune when excited); FreeTune the free tune
// (equal to Tune for free runs); CompensatedTune the tune estimate
// returned by the Compensator (equal to Tune for free runs).
type PlaneResult struct {
	Plane lattice.Plane

	Free   *Advances
	Driven *Advances

	Tune            float64
	FreeTune        float64
	CompensatedTune float64
}

// Result is the outcome of one Analyze invocation. A nil plane pointer
// means that plane had no valid files and was skipped.
type Result struct {
	X *PlaneResult
	Y *PlaneResult
}

// Analyze runs the phase-advance computation for every plane that has
// data: tune aggregation, matrix building (union or intersection per
// Options.UseUnion) and — under driven excitation — the compensation
// sequencing of §Compensator.
//
// A plane without files is skipped with a warning; both planes empty is
// ErrNoFiles. The two planes are fully independent; the reference order
// is X then Y.
//
// Errors: ErrNilModel, ErrBadExcitation, ErrNoCompensator (driven mode
// without a Compensator or DrivenModel), ErrNoFiles, plus anything the
// selected builder or the Compensator returns.
func Analyze(in Input, opts Options) (*Result, error) {
	if in.Model == nil {
		return nil, ErrNilModel
	}
	if !opts.Excitation.Valid() {
		return nil, ErrBadExcitation
	}
	if opts.Excitation.Driven() {
		if opts.Compensator == nil {
			return nil, ErrNoCompensator
		}
		if in.DrivenModel == nil {
			return nil, fmt.Errorf("phase: driven excitation without driven model: %w", ErrNilModel)
		}
	}
	if len(in.X.Files) == 0 && len(in.Y.Files) == 0 {
		return nil, ErrNoFiles
	}

	log := opts.logger()
	res := &Result{}
	for _, p := range []lattice.Plane{lattice.PlaneX, lattice.PlaneY} {
		pin := in.plane(p)
		if len(pin.Files) == 0 {
			log.Warn("plane has no valid files, output limited to the other plane",
				slog.String("plane", p.String()))
			continue
		}
		pr, err := analyzePlane(in, pin, p, opts)
		if err != nil {
			return nil, fmt.Errorf("phase: plane %s: %w", p, err)
		}
		if p == lattice.PlaneY {
			res.Y = pr
		} else {
			res.X = pr
		}
	}
	return res, nil
}

// analyzePlane computes one plane: aggregate tune, build, compensate.
func analyzePlane(in Input, pin PlaneInput, p lattice.Plane, opts Options) (*PlaneResult, error) {
	log := opts.logger()

	tune, err := WeightedTune(pin.Files)
	if err != nil {
		return nil, err
	}
	log.Debug("aggregated tune of measurement files",
		slog.String("plane", p.String()),
		slog.Float64("tune", tune),
		slog.Int("files", len(pin.Files)))

	// The raw matrix is built against the model the beam actually
	// followed: the driven model under excitation, the free one otherwise.
	measModel := in.Model
	if opts.Excitation.Driven() {
		measModel = in.DrivenModel
	}

	var adv *Advances
	if opts.UseUnion {
		adv, err = Union(measModel, pin.Files, pin.BPMs, p, opts)
	} else {
		lastTurn := pin.LastTurnBPM
		if !opts.CorrectTurnWrap {
			log.Info("phase jump at the turn boundary will not be corrected",
				slog.String("plane", p.String()))
			lastTurn = len(pin.BPMs) - 1
		}
		adv, err = Intersection(measModel, pin.Files, pin.BPMs, p, tune, lastTurn, opts)
	}
	if err != nil {
		return nil, err
	}

	pr := &PlaneResult{
		Plane:           p,
		Free:            adv,
		Tune:            tune,
		FreeTune:        tune,
		CompensatedTune: tune,
	}
	if !opts.Excitation.Driven() {
		return pr, nil
	}

	// Driven run: keep the raw matrix as the driven result and recover
	// the free-motion one through the compensator's two passes.
	pr.Driven = adv
	pr.FreeTune = freeTune(tune, pin.DrivenTune, pin.NaturalTune)

	offsets, err := opts.Compensator.Offsets(pin.BPMs, tune, pr.FreeTune, p)
	if err != nil {
		return nil, fmt.Errorf("compensator offsets: %w", err)
	}
	free, compTune, err := opts.Compensator.FreeAdvances(
		in.Model, pin.Files, pin.BPMs, tune, pr.FreeTune, offsets, p,
		wrapUnit(in.Model.Tune(p)))
	if err != nil {
		return nil, fmt.Errorf("compensator free advances: %w", err)
	}
	pr.Free = free
	pr.CompensatedTune = compTune
	return pr, nil
}
