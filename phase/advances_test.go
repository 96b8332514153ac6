package phase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhcoptics/betaphase/lattice"
	"github.com/lhcoptics/betaphase/matrix"
)

// TestAdvances_Lookup covers the name bookkeeping of a built matrix.
func TestAdvances_Lookup(t *testing.T) {
	adv := freeAdvances(t)

	assert.Equal(t, 4, adv.Len())
	assert.Equal(t, "BPM.C", adv.Name(2))
	assert.Equal(t, ringBPMs, adv.Names())

	i, err := adv.Index("BPM.D")
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = adv.Index("BPM.NOPE")
	assert.ErrorIs(t, err, lattice.ErrUnknownName)

	names := adv.Names()
	names[0] = "clobbered"
	assert.Equal(t, "BPM.A", adv.Name(0), "Names hands out a copy")
}

// TestAdvances_Bounds: grid accessors surface the matrix bound errors
// instead of panicking.
func TestAdvances_Bounds(t *testing.T) {
	adv := freeAdvances(t)

	_, err := adv.Meas(0, 4)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = adv.Model(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = adv.Err(4, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = adv.NFiles(0, -2)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}
