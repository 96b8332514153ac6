package phase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhcoptics/betaphase/lattice"
)

// ringModel builds a small test lattice in ring order with the given
// beam direction. Phases advance monotonically; tunes are typical LHC
// fractional values.
func ringModel(t *testing.T, bd float64, elems ...lattice.Element) *lattice.Model {
	t.Helper()
	if len(elems) == 0 {
		elems = []lattice.Element{
			{Name: "BPM.A", S: 0, MuX: 0.00, MuY: 0.00},
			{Name: "BPM.B", S: 10, MuX: 0.25, MuY: 0.20},
			{Name: "BPM.C", S: 20, MuX: 0.55, MuY: 0.45},
			{Name: "BPM.D", S: 30, MuX: 0.80, MuY: 0.70},
		}
	}
	m, err := lattice.NewModel(elems, 0.28, 0.31, bd)
	require.NoError(t, err)
	return m
}

// meas builds a measurement file from a sample map with a fixed,
// well-behaved tune header.
func meas(t *testing.T, phases map[string]float64) *lattice.Measurement {
	t.Helper()
	f, err := lattice.NewMeasurement(phases, 0.28, 0.001)
	require.NoError(t, err)
	return f
}

// measTune builds a measurement file with explicit tune headers.
func measTune(t *testing.T, phases map[string]float64, tune, rms float64) *lattice.Measurement {
	t.Helper()
	f, err := lattice.NewMeasurement(phases, tune, rms)
	require.NoError(t, err)
	return f
}

// wrap1 maps x into [0,1) for expectation arithmetic in tests.
func wrap1(x float64) float64 {
	for x < 0 {
		x++
	}
	for x >= 1 {
		x--
	}
	return x
}
