package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhcoptics/betaphase/lattice"
)

// TestNewMeasurement_Validation covers the constructor sentinels.
func TestNewMeasurement_Validation(t *testing.T) {
	_, err := lattice.NewMeasurement(nil, 0.28, 0.001)
	assert.ErrorIs(t, err, lattice.ErrNoSamplesInFile, "empty sample map must error")

	_, err = lattice.NewMeasurement(map[string]float64{"": 0.1}, 0.28, 0.001)
	assert.ErrorIs(t, err, lattice.ErrEmptyName, "empty BPM name must error")

	_, err = lattice.NewMeasurement(map[string]float64{"BPM.A": math.NaN()}, 0.28, 0.001)
	assert.ErrorIs(t, err, lattice.ErrNotFinite, "NaN sample must error")

	_, err = lattice.NewMeasurement(map[string]float64{"BPM.A": 0.1}, math.Inf(1), 0.001)
	assert.ErrorIs(t, err, lattice.ErrNotFinite, "infinite tune must error")

	_, err = lattice.NewMeasurement(map[string]float64{"BPM.A": 0.1}, 0.28, -0.1)
	assert.ErrorIs(t, err, lattice.ErrNotFinite, "negative tune RMS must error")
}

// TestMeasurement_Accessors verifies lookups, headers and the zero-RMS
// passthrough (down-weighting is the tune aggregator's job, not the
// boundary's).
func TestMeasurement_Accessors(t *testing.T) {
	f, err := lattice.NewMeasurement(map[string]float64{"BPM.A": 0.10, "BPM.B": 0.35}, 0.28, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, f.Len(), "observed BPM count")
	assert.Equal(t, 0.28, f.Tune(), "tune header")
	assert.Zero(t, f.TuneRMS(), "zero RMS is legal at the boundary")

	v, ok := f.Phase("BPM.B")
	assert.True(t, ok, "observed BPM found")
	assert.Equal(t, 0.35, v, "sample value round-trips")

	_, ok = f.Phase("BPM.Z")
	assert.False(t, ok, "unobserved BPM reported absent")
}

// TestMeasurement_CopiesInput: the measurement owns its sample map.
func TestMeasurement_CopiesInput(t *testing.T) {
	src := map[string]float64{"BPM.A": 0.10}
	f, err := lattice.NewMeasurement(src, 0.28, 0.001)
	require.NoError(t, err)

	src["BPM.A"] = 0.99
	v, _ := f.Phase("BPM.A")
	assert.Equal(t, 0.10, v, "mutating the source map must not reach the measurement")
}
