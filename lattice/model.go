package lattice

import (
	"fmt"
	"math"
)

// Element is one lattice element (BPM or magnet landmark) of the model:
// its name, longitudinal position S along the ring, and the model phase
// value per plane (the lattice-predicted accumulated betatron phase).
type Element struct {
	Name string
	S    float64
	MuX  float64
	MuY  float64
}

// Model is an immutable lattice-model table in accelerator-sequence
// order, with fractional model tunes and the beam direction. It is the
// typed replacement for a loose column table keyed by strings: names
// are resolved to integer positions exactly once.
type Model struct {
	elements []Element
	index    map[string]int // name -> position in elements

	qx, qy float64 // fractional model tunes (Q1, Q2)
	bd     float64 // beam direction, +1 or -1
}

// NewModel validates and builds a Model. elements must be non-empty with
// unique, non-empty names and finite numeric fields; beamDirection must
// be +1 or -1; tunes must be finite. The element slice is copied.
//
// Errors: ErrEmptyModel, ErrEmptyName, ErrDuplicateName (wrapped with
// the offending name), ErrNotFinite, ErrBadBeamDirection.
// Complexity: O(n).
func NewModel(elements []Element, tuneX, tuneY, beamDirection float64) (*Model, error) {
	if len(elements) == 0 {
		return nil, ErrEmptyModel
	}
	if beamDirection != 1 && beamDirection != -1 {
		return nil, ErrBadBeamDirection
	}
	if !isFinite(tuneX) || !isFinite(tuneY) {
		return nil, fmt.Errorf("lattice: model tunes: %w", ErrNotFinite)
	}

	m := &Model{
		elements: make([]Element, len(elements)),
		index:    make(map[string]int, len(elements)),
		qx:       tuneX,
		qy:       tuneY,
		bd:       beamDirection,
	}
	for i, e := range elements { // accelerator-sequence order is preserved
		if e.Name == "" {
			return nil, fmt.Errorf("lattice: element %d: %w", i, ErrEmptyName)
		}
		if _, dup := m.index[e.Name]; dup {
			return nil, fmt.Errorf("lattice: element %q: %w", e.Name, ErrDuplicateName)
		}
		if !isFinite(e.S) || !isFinite(e.MuX) || !isFinite(e.MuY) {
			return nil, fmt.Errorf("lattice: element %q: %w", e.Name, ErrNotFinite)
		}
		m.elements[i] = e
		m.index[e.Name] = i
	}
	return m, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Len returns the number of elements. Complexity: O(1).
func (m *Model) Len() int { return len(m.elements) }

// At returns the element at position i in accelerator-sequence order.
// Panics on an out-of-range index (programmer error).
func (m *Model) At(i int) Element { return m.elements[i] }

// Index returns the position of name, or ErrUnknownName.
// Complexity: O(1).
func (m *Model) Index(name string) (int, error) {
	i, ok := m.index[name]
	if !ok {
		return 0, fmt.Errorf("lattice: %q: %w", name, ErrUnknownName)
	}
	return i, nil
}

// Element returns the element with the given name, or ErrUnknownName.
// Complexity: O(1).
func (m *Model) Element(name string) (Element, error) {
	i, err := m.Index(name)
	if err != nil {
		return Element{}, err
	}
	return m.elements[i], nil
}

// Names returns the element names in accelerator-sequence order.
// The slice is freshly allocated on every call.
func (m *Model) Names() []string {
	names := make([]string, len(m.elements))
	for i, e := range m.elements {
		names[i] = e.Name
	}
	return names
}

// Mu returns the model phase of element e in plane p.
func (e Element) Mu(p Plane) float64 {
	if p == PlaneY {
		return e.MuY
	}
	return e.MuX
}

// Tune returns the fractional model tune of plane p (Q1 for X, Q2 for Y).
func (m *Model) Tune(p Plane) float64 {
	if p == PlaneY {
		return m.qy
	}
	return m.qx
}

// BeamDirection returns +1 or -1.
func (m *Model) BeamDirection() float64 { return m.bd }
