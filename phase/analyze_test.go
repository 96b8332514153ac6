package phase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhcoptics/betaphase/lattice"
	"github.com/lhcoptics/betaphase/phase"
)

// fakeCompensator records the sequencing contract: Offsets first, its
// opaque descriptor handed back verbatim to FreeAdvances, which then
// supplies the free matrix and tune.
type fakeCompensator struct {
	offsetsCalls  int
	advancesCalls int

	gotBPMs       []string
	gotDriven     float64
	gotFree       float64
	gotPlane      lattice.Plane
	gotOffsets    any
	gotModelTune  float64
	gotModel      *lattice.Model
	returnedToken any

	freeTuneOut float64
}

func (c *fakeCompensator) Offsets(bpms []string, drivenTune, freeTune float64, plane lattice.Plane) (any, error) {
	c.offsetsCalls++
	c.gotBPMs = bpms
	c.gotDriven = drivenTune
	c.gotFree = freeTune
	c.gotPlane = plane
	c.returnedToken = &struct{ tag string }{"per-bpm offsets"}
	return c.returnedToken, nil
}

func (c *fakeCompensator) FreeAdvances(model *lattice.Model, files []*lattice.Measurement, bpms []string,
	drivenTune, freeTune float64, offsets any, plane lattice.Plane, modelTune float64) (*phase.Advances, float64, error) {
	c.advancesCalls++
	c.gotOffsets = offsets
	c.gotModelTune = modelTune
	c.gotModel = model
	adv, err := phase.Intersection(model, files, bpms, plane, drivenTune, len(bpms)-1, phase.DefaultOptions())
	if err != nil {
		return nil, 0, err
	}
	return adv, c.freeTuneOut, nil
}

func freeInput(t *testing.T) phase.Input {
	return phase.Input{
		Model: ringModel(t, 1),
		X: phase.PlaneInput{
			Files:       []*lattice.Measurement{ringFile(t, 0), ringFile(t, 0.01)},
			BPMs:        ringBPMs,
			LastTurnBPM: 3,
		},
		Y: phase.PlaneInput{
			Files: []*lattice.Measurement{measTune(t, map[string]float64{
				"BPM.A": 0.01, "BPM.B": 0.22, "BPM.C": 0.47, "BPM.D": 0.72,
			}, 0.31, 0.002)},
			BPMs:        ringBPMs,
			LastTurnBPM: 3,
		},
	}
}

// TestAnalyze_FreeBothPlanes runs the free-motion path end to end.
func TestAnalyze_FreeBothPlanes(t *testing.T) {
	res, err := phase.Analyze(freeInput(t), phase.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, res.X, "horizontal result present")
	require.NotNil(t, res.Y, "vertical result present")

	assert.Equal(t, lattice.PlaneX, res.X.Plane)
	assert.Nil(t, res.X.Driven, "free runs carry no driven matrix")
	assert.InDelta(t, 0.28, res.X.Tune, 1e-12, "both horizontal files agree on the tune")
	assert.Equal(t, res.X.Tune, res.X.FreeTune, "free runs equate the tunes")
	assert.Equal(t, res.X.Tune, res.X.CompensatedTune, "free runs equate the tunes")

	v, verr := res.X.Free.Meas(0, 1)
	require.NoError(t, verr)
	assert.InDelta(t, 0.25, v, 1e-9, "uniform shifts cancel in the A→B advance")

	assert.InDelta(t, 0.31, res.Y.Tune, 1e-12, "vertical tune from its single file")
	v, verr = res.Y.Free.Meas(0, 1)
	require.NoError(t, verr)
	assert.InDelta(t, 0.21, v, 1e-9, "vertical advances use MUY")
}

// TestAnalyze_SkipsEmptyPlane: a plane without files yields a nil
// result slot while the other plane proceeds.
func TestAnalyze_SkipsEmptyPlane(t *testing.T) {
	in := freeInput(t)
	in.Y = phase.PlaneInput{}
	res, err := phase.Analyze(in, phase.DefaultOptions())
	require.NoError(t, err)
	assert.NotNil(t, res.X, "populated plane survives")
	assert.Nil(t, res.Y, "empty plane is skipped, not fatal")
}

// TestAnalyze_UnionPath: UseUnion routes through the union builder,
// which tolerates files with partial BPM coverage.
func TestAnalyze_UnionPath(t *testing.T) {
	in := freeInput(t)
	in.X.Files = append(in.X.Files,
		meas(t, map[string]float64{"BPM.A": 0.05, "BPM.B": 0.30, "BPM.C": 0.63})) // no BPM.D

	opts := phase.DefaultOptions()
	opts.UseUnion = true
	res, err := phase.Analyze(in, opts)
	require.NoError(t, err)

	n, nerr := res.X.Free.NFiles(0, 3)
	require.NoError(t, nerr)
	assert.Equal(t, 2, n, "the gappy file drops out of BPM.D pairs")
	n, _ = res.X.Free.NFiles(0, 1)
	assert.Equal(t, 3, n, "fully covered pairs keep all files")

	// Intersection mode would reject the same input outright.
	opts.UseUnion = false
	_, err = phase.Analyze(in, opts)
	assert.ErrorIs(t, err, phase.ErrMissingSample, "intersection demands full coverage")
}

// TestAnalyze_NoTurnWrapCorrection: disabling the correction is
// equivalent to declaring the last listed BPM the turn boundary.
func TestAnalyze_NoTurnWrapCorrection(t *testing.T) {
	in := freeInput(t)
	in.X.LastTurnBPM = 1

	corrected, err := phase.Analyze(in, phase.DefaultOptions())
	require.NoError(t, err)

	opts := phase.DefaultOptions()
	opts.CorrectTurnWrap = false
	plain, err := phase.Analyze(in, opts)
	require.NoError(t, err)

	c, _ := corrected.X.Free.Meas(0, 2)
	p, _ := plain.X.Free.Meas(0, 2)
	diff := wrap1(c - p)
	assert.InDelta(t, 0.28, math.Min(diff, 1-diff), 1e-9,
		"correction shifts across-boundary pairs by the tune")
}

// TestAnalyze_DrivenSequencing verifies the compensation protocol:
// driven matrix kept, free tune derived from the machine settings, and
// the opaque descriptor passed between the two compensator calls
// untouched.
func TestAnalyze_DrivenSequencing(t *testing.T) {
	comp := &fakeCompensator{freeTuneOut: 0.3101}
	in := freeInput(t)
	in.DrivenModel = ringModel(t, 1,
		lattice.Element{Name: "BPM.A", S: 0, MuX: 0.00, MuY: 0.00},
		lattice.Element{Name: "BPM.B", S: 10, MuX: 0.26, MuY: 0.21},
		lattice.Element{Name: "BPM.C", S: 20, MuX: 0.56, MuY: 0.46},
		lattice.Element{Name: "BPM.D", S: 30, MuX: 0.81, MuY: 0.71})
	in.Y = phase.PlaneInput{} // single plane keeps the fake's records unambiguous
	in.X.DrivenTune = 0.285
	in.X.NaturalTune = 0.275

	opts := phase.DefaultOptions()
	opts.Excitation = phase.ExcitationACDipole
	opts.Compensator = comp

	res, err := phase.Analyze(in, opts)
	require.NoError(t, err)
	require.NotNil(t, res.X)

	assert.Equal(t, 1, comp.offsetsCalls, "Offsets runs once per plane")
	assert.Equal(t, 1, comp.advancesCalls, "FreeAdvances runs once per plane")
	assert.Same(t, comp.returnedToken, comp.gotOffsets, "descriptor passes through verbatim")
	assert.Equal(t, ringBPMs, comp.gotBPMs)
	assert.Equal(t, lattice.PlaneX, comp.gotPlane)
	assert.InDelta(t, 0.28, comp.gotDriven, 1e-12, "measured tune feeds the compensator")
	assert.InDelta(t, 0.28-0.285+0.275, comp.gotFree, 1e-12, "free tune from the setting shift")
	assert.InDelta(t, 0.28, comp.gotModelTune, 1e-12, "fractional model tune handed over")
	assert.Same(t, in.Model, comp.gotModel, "compensation runs against the free model")

	require.NotNil(t, res.X.Driven, "raw driven matrix survives")
	dv, _ := res.X.Driven.Model(0, 1)
	assert.InDelta(t, 0.26, dv, 1e-12, "driven matrix is built against the driven model")
	fv, _ := res.X.Free.Model(0, 1)
	assert.InDelta(t, 0.25, fv, 1e-12, "free matrix comes from the compensator against the free model")

	assert.InDelta(t, 0.28, res.X.Tune, 1e-12)
	assert.InDelta(t, 0.27, res.X.FreeTune, 1e-12)
	assert.Equal(t, 0.3101, res.X.CompensatedTune, "compensated tune passes through")
}

// TestAnalyze_Errors pins the precondition sentinels.
func TestAnalyze_Errors(t *testing.T) {
	opts := phase.DefaultOptions()

	in := freeInput(t)
	in.Model = nil
	_, err := phase.Analyze(in, opts)
	assert.ErrorIs(t, err, phase.ErrNilModel, "nil model")

	in = freeInput(t)
	bad := opts
	bad.Excitation = phase.ExcitationMode(42)
	_, err = phase.Analyze(in, bad)
	assert.ErrorIs(t, err, phase.ErrBadExcitation, "out-of-range excitation mode")

	driven := opts
	driven.Excitation = phase.ExcitationADT
	_, err = phase.Analyze(in, driven)
	assert.ErrorIs(t, err, phase.ErrNoCompensator, "driven mode demands a compensator")

	driven.Compensator = &fakeCompensator{}
	_, err = phase.Analyze(in, driven) // freeInput has no DrivenModel
	assert.ErrorIs(t, err, phase.ErrNilModel, "driven mode demands a driven model")

	in.X = phase.PlaneInput{}
	in.Y = phase.PlaneInput{}
	_, err = phase.Analyze(in, opts)
	assert.ErrorIs(t, err, phase.ErrNoFiles, "both planes empty")
}
