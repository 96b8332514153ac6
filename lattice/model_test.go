package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhcoptics/betaphase/lattice"
)

func ringElements() []lattice.Element {
	return []lattice.Element{
		{Name: "BPM.A", S: 0, MuX: 0.00, MuY: 0.00},
		{Name: "BPM.B", S: 10, MuX: 0.25, MuY: 0.20},
		{Name: "BPM.C", S: 20, MuX: 0.55, MuY: 0.45},
	}
}

// TestNewModel_Validation covers every constructor sentinel.
func TestNewModel_Validation(t *testing.T) {
	_, err := lattice.NewModel(nil, 0.28, 0.31, 1)
	assert.ErrorIs(t, err, lattice.ErrEmptyModel, "empty element list must error")

	_, err = lattice.NewModel(ringElements(), 0.28, 0.31, 2)
	assert.ErrorIs(t, err, lattice.ErrBadBeamDirection, "beam direction must be ±1")

	_, err = lattice.NewModel(ringElements(), math.NaN(), 0.31, 1)
	assert.ErrorIs(t, err, lattice.ErrNotFinite, "NaN tune must error")

	bad := ringElements()
	bad[1].Name = ""
	_, err = lattice.NewModel(bad, 0.28, 0.31, 1)
	assert.ErrorIs(t, err, lattice.ErrEmptyName, "empty element name must error")

	bad = ringElements()
	bad[2].Name = "BPM.A"
	_, err = lattice.NewModel(bad, 0.28, 0.31, 1)
	assert.ErrorIs(t, err, lattice.ErrDuplicateName, "duplicate names must error")

	bad = ringElements()
	bad[0].MuY = math.Inf(1)
	_, err = lattice.NewModel(bad, 0.28, 0.31, 1)
	assert.ErrorIs(t, err, lattice.ErrNotFinite, "infinite phase must error")
}

// TestModel_OrderAndLookup verifies accelerator-sequence order is kept
// verbatim (never sorted) and lookups resolve correctly.
func TestModel_OrderAndLookup(t *testing.T) {
	m, err := lattice.NewModel(ringElements(), 0.28, 0.31, -1)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len(), "element count")
	assert.Equal(t, []string{"BPM.A", "BPM.B", "BPM.C"}, m.Names(), "ring order preserved")
	assert.Equal(t, -1.0, m.BeamDirection(), "beam direction stored")

	i, err := m.Index("BPM.B")
	require.NoError(t, err)
	assert.Equal(t, 1, i, "index lookup")

	e, err := m.Element("BPM.C")
	require.NoError(t, err)
	assert.Equal(t, 20.0, e.S, "element fields round-trip")

	_, err = m.Index("BPM.Z")
	assert.ErrorIs(t, err, lattice.ErrUnknownName, "unknown name must error")
	_, err = m.Element("BPM.Z")
	assert.ErrorIs(t, err, lattice.ErrUnknownName, "unknown name must error")
}

// TestModel_PlaneAccessors checks the per-plane phase and tune selection.
func TestModel_PlaneAccessors(t *testing.T) {
	m, err := lattice.NewModel(ringElements(), 0.28, 0.31, 1)
	require.NoError(t, err)

	e, err := m.Element("BPM.B")
	require.NoError(t, err)
	assert.Equal(t, 0.25, e.Mu(lattice.PlaneX), "MuX selected for X")
	assert.Equal(t, 0.20, e.Mu(lattice.PlaneY), "MuY selected for Y")

	assert.Equal(t, 0.28, m.Tune(lattice.PlaneX), "Q1 selected for X")
	assert.Equal(t, 0.31, m.Tune(lattice.PlaneY), "Q2 selected for Y")
}

// TestModel_CopiesInput: mutating the source slice after construction
// must not reach the model.
func TestModel_CopiesInput(t *testing.T) {
	src := ringElements()
	m, err := lattice.NewModel(src, 0.28, 0.31, 1)
	require.NoError(t, err)

	src[0].S = 999
	assert.Equal(t, 0.0, m.At(0).S, "model owns its element copy")
}

// TestPlane covers the tiny Plane surface.
func TestPlane(t *testing.T) {
	assert.True(t, lattice.PlaneX.Valid(), "PlaneX valid")
	assert.True(t, lattice.PlaneY.Valid(), "PlaneY valid")
	assert.False(t, lattice.Plane(7).Valid(), "out-of-range plane invalid")

	assert.Equal(t, "X", lattice.PlaneX.Label(), "X label")
	assert.Equal(t, "Y", lattice.PlaneY.Label(), "Y label")
	assert.Equal(t, "H", lattice.PlaneX.String(), "horizontal name")
	assert.Equal(t, "V", lattice.PlaneY.String(), "vertical name")
}
