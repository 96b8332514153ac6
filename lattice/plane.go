package lattice

// Plane selects the transverse oscillation plane.
//
//   - PlaneX — horizontal (accelerator jargon "H"), model column MUX,
//     tune Q1.
//   - PlaneY — vertical ("V"), model column MUY, tune Q2.
type Plane int

const (
	// PlaneX is the horizontal plane.
	PlaneX Plane = iota

	// PlaneY is the vertical plane.
	PlaneY
)

// Valid reports whether p is one of the declared planes.
func (p Plane) Valid() bool { return p == PlaneX || p == PlaneY }

// Label returns the axis letter used in output column names: "X" or "Y".
func (p Plane) Label() string {
	if p == PlaneY {
		return "Y"
	}
	return "X"
}

// String returns the accelerator-physics plane name: "H" or "V".
func (p Plane) String() string {
	if p == PlaneY {
		return "V"
	}
	return "H"
}
