// Package lattice: sentinel error set. Constructors return these
// sentinels (possibly wrapped with element context via %w) and callers
// match them with errors.Is.
package lattice

import "errors"

var (
	// ErrEmptyModel indicates a model with no elements.
	ErrEmptyModel = errors.New("lattice: model has no elements")

	// ErrEmptyName indicates an element with an empty name.
	ErrEmptyName = errors.New("lattice: element name is empty")

	// ErrDuplicateName indicates two elements sharing one name.
	ErrDuplicateName = errors.New("lattice: duplicate element name")

	// ErrUnknownName indicates a lookup for a name absent from the model.
	ErrUnknownName = errors.New("lattice: unknown element name")

	// ErrNotFinite indicates a NaN or ±Inf where a finite value is required.
	ErrNotFinite = errors.New("lattice: value is not finite")

	// ErrBadBeamDirection indicates a beam direction other than +1 or -1.
	ErrBadBeamDirection = errors.New("lattice: beam direction must be +1 or -1")

	// ErrBadPlane indicates an out-of-range Plane value.
	ErrBadPlane = errors.New("lattice: invalid plane")

	// ErrNoSamplesInFile indicates a measurement file without any BPM sample.
	ErrNoSamplesInFile = errors.New("lattice: measurement has no samples")
)
