package phase

import (
	"errors"
	"log/slog"
)

// Sentinel errors of the phase package. Only these are returned for
// user-triggered conditions; wrap with fmt.Errorf("...: %w", Err) where
// context is essential and match with errors.Is.
var (
	// ErrNoFiles indicates that no measurement file was supplied where at
	// least one is required.
	ErrNoFiles = errors.New("phase: no measurement files")

	// ErrTooFewBPMs indicates a BPM list with fewer than two entries;
	// a phase advance needs a pair.
	ErrTooFewBPMs = errors.New("phase: need at least two BPMs")

	// ErrMissingSample indicates that a file lacks a sample for a BPM of
	// the common list in intersection mode (the precondition is violated).
	ErrMissingSample = errors.New("phase: file is missing a BPM sample")

	// ErrBadTurnIndex indicates a last-turn BPM index outside the BPM list.
	ErrBadTurnIndex = errors.New("phase: last-turn BPM index out of range")

	// ErrNilModel indicates a nil lattice model where one is required.
	ErrNilModel = errors.New("phase: nil lattice model")

	// ErrNoCompensator indicates a driven excitation mode without a
	// Compensator to recover free-motion phases.
	ErrNoCompensator = errors.New("phase: driven excitation requires a compensator")

	// ErrBadExcitation indicates an out-of-range ExcitationMode value.
	ErrBadExcitation = errors.New("phase: invalid excitation mode")

	// ErrNilSink indicates a nil ResultFile where output must be written.
	ErrNilSink = errors.New("phase: nil result sink")

	// ErrNilAdvances indicates a nil Advances (or Result) where a computed
	// value is required.
	ErrNilAdvances = errors.New("phase: nil advances")

	// ErrNoPairData marks a BPM pair with zero contributing files; its
	// row is skipped, never written as zero.
	ErrNoPairData = errors.New("phase: pair has no contributing files")

	// ErrElementNotFound marks a headline diagnostic element absent from
	// the lattice; its descriptor is skipped.
	ErrElementNotFound = errors.New("phase: diagnostic element not found")
)

// ExcitationMode states how the beam was oscillating during the
// measurement. Anything other than ExcitationFree means the raw phases
// are "driven" and must be compensated into free-motion phases.
type ExcitationMode int

const (
	// ExcitationFree — natural (unexcited) betatron oscillation.
	ExcitationFree ExcitationMode = iota

	// ExcitationACDipole — continuous forced excitation by an AC dipole.
	ExcitationACDipole

	// ExcitationADT — forced excitation through the transverse damper.
	ExcitationADT
)

// Valid reports whether m is one of the declared modes.
func (m ExcitationMode) Valid() bool {
	return m >= ExcitationFree && m <= ExcitationADT
}

// Driven reports whether the measurement was taken under forced
// excitation.
func (m ExcitationMode) Driven() bool { return m != ExcitationFree }

// Options configures one engine invocation. The zero value is NOT the
// default — use DefaultOptions. All fields are read-only for the
// duration of a run; the engine never mutates them.
//
// Fields:
//   - UseUnion         — pick the Union builder (missing-data tolerant)
//     instead of the Intersection builder.
//   - OptimisticErrors — additionally divide error bars by sqrt(N)
//     (N = contributing file count per pair). Default off: the plain
//     circular spread is the honest estimate.
//   - CorrectTurnWrap  — add the aggregated tune to samples past the
//     last-turn BPM in intersection mode, fixing the one-turn phase
//     jump. Default on.
//   - Excitation       — free vs driven measurement mode.
//   - Compensator      — driven→free collaborator; required when
//     Excitation.Driven().
//   - Logger           — structured logger for warnings and progress;
//     nil falls back to slog.Default().
type Options struct {
	UseUnion         bool
	OptimisticErrors bool
	CorrectTurnWrap  bool
	Excitation       ExcitationMode
	Compensator      Compensator
	Logger           *slog.Logger
}

// DefaultOptions returns the canonical configuration: intersection
// builder, honest error bars, turn-wrap correction on, free excitation.
func DefaultOptions() Options {
	return Options{CorrectTurnWrap: true}
}

// logger returns the configured logger or the process default.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Warning reports one recoverable write-out defect: a headline
// diagnostic element missing from the lattice, or a result row skipped
// for lack of data. Warnings are collected and returned, not thrown —
// they never abort a run.
type Warning struct {
	// Subject names what the warning is about: an element name or a
	// "BPM1 -> BPM2" pair label.
	Subject string

	// Reason is the underlying condition, errors.Is-matchable.
	Reason error
}

func (w Warning) String() string { return w.Subject + ": " + w.Reason.Error() }
