package htm

import (
	"testing"

	"github.com/htm-community/region/utils"
	"github.com/stretchr/testify/assert"
)

func newTestRegion(width, cellsPerCol, segActiveThreshold int) *Region {
	p := NewRegionParams()
	p.InputWidth = width
	p.InputHeight = 1
	p.CellsPerCol = cellsPerCol
	p.SegActiveThreshold = segActiveThreshold
	p.NewSynapseCount = 3
	p.TemporalLearning = true
	return NewHardcodedRegion(p)
}

func TestSynapseDefaults(t *testing.T) {
	r := newTestRegion(4, 1, 1)
	src := newInputCell(r, 0, 0, 0)

	syn := newSynapse(src, 0)
	assert.Equal(t, InitialPermanence, syn.Permanence())

	syn = newSynapse(src, 1.5)
	assert.Equal(t, 1.0, syn.Permanence())

	syn = newSynapse(src, 0.25)
	assert.Equal(t, 0.25, syn.Permanence())
}

func TestSynapsePermanenceBounds(t *testing.T) {
	r := newTestRegion(4, 1, 1)
	src := newInputCell(r, 0, 0, 0)

	syn := newSynapse(src, 0.95)
	syn.IncreasePermanence(0.1)
	assert.Equal(t, 1.0, syn.Permanence())
	syn.IncreasePermanence(0.1)
	assert.Equal(t, 1.0, syn.Permanence())

	syn = newSynapse(src, 0.004)
	syn.DecreasePermanence(0)
	assert.Equal(t, 0.0, syn.Permanence())
	syn.DecreasePermanence(0)
	assert.Equal(t, 0.0, syn.Permanence())

	syn = newSynapse(src, 0.5)
	syn.IncreasePermanence(0)
	assert.Equal(t, 0.5+PermanenceInc, syn.Permanence())
	syn.DecreasePermanence(0)
	assert.Equal(t, utils.RoundPrec(0.5+PermanenceInc-PermanenceDec, 6),
		utils.RoundPrec(syn.Permanence(), 6))
}

func TestSynapseActivity(t *testing.T) {
	r := newTestRegion(4, 1, 1)
	r.SetInput(utils.Make1DBool([]int{1, 0, 0, 0}))

	on := newSynapse(newInputCell(r, 0, 0, 0), 0.3)
	off := newSynapse(newInputCell(r, 1, 0, 1), 0.3)

	assert.True(t, on.IsActive(false))
	assert.False(t, on.IsActive(true))
	assert.False(t, off.IsActive(false))

	on.isConnected = true
	assert.True(t, on.IsActive(true))
}

func TestSegmentProcessAndAdvance(t *testing.T) {
	r := newTestRegion(4, 1, 2)
	r.SetInput(utils.Make1DBool([]int{1, 1, 1, 1}))

	seg := newSegment(r)
	seg.CreateSynapse(newInputCell(r, 0, 0, 0), 0.25)
	seg.CreateSynapse(newInputCell(r, 1, 0, 1), 0.25)
	seg.CreateSynapse(newInputCell(r, 2, 0, 2), 0.1)
	seg.CreateSynapse(newInputCell(r, 3, 0, 3), 0.25)

	seg.ProcessSegment()
	assert.Equal(t, 3, seg.ActiveSynapseCount())
	assert.Equal(t, 4, seg.ActiveAllSynapseCount())
	assert.True(t, seg.IsActive())

	seg.AdvanceTimeStep()
	assert.False(t, seg.IsActive())
	assert.True(t, seg.WasActive())
	assert.Equal(t, 0, seg.ActiveSynapseCount())
	assert.Equal(t, 3, seg.PrevActiveSynapseCount())
	assert.Equal(t, 4, seg.PrevActiveAllSynapseCount())

	seg.AdvanceTimeStep()
	assert.False(t, seg.IsActive())
	assert.False(t, seg.WasActive())
	assert.Equal(t, 0, seg.PrevActiveSynapseCount())
	assert.Equal(t, 0, seg.PrevActiveAllSynapseCount())
}

func TestSegmentBelowThresholdInactive(t *testing.T) {
	r := newTestRegion(4, 1, 3)
	r.SetInput(utils.Make1DBool([]int{1, 1, 0, 0}))

	seg := newSegment(r)
	for i := 0; i < 4; i++ {
		seg.CreateSynapse(newInputCell(r, i, 0, i), 0.3)
	}
	seg.ProcessSegment()
	assert.Equal(t, 2, seg.ActiveSynapseCount())
	assert.False(t, seg.IsActive())
}

func TestSegmentPredictionStepsClamp(t *testing.T) {
	r := newTestRegion(4, 1, 1)
	seg := newSegment(r)

	seg.SetNumPredictionSteps(0)
	assert.Equal(t, 1, seg.PredictionSteps())
	assert.True(t, seg.IsSequence())

	seg.SetNumPredictionSteps(5)
	assert.Equal(t, 5, seg.PredictionSteps())
	assert.False(t, seg.IsSequence())

	seg.SetNumPredictionSteps(99)
	assert.Equal(t, MaxTimeSteps, seg.PredictionSteps())
}

func TestSegmentUpdatePermanencePolicies(t *testing.T) {
	r := newTestRegion(4, 1, 1)
	r.SetInput(utils.Make1DBool([]int{0, 0, 0, 0}))

	seg := newSegment(r)
	s0 := seg.CreateSynapse(newInputCell(r, 0, 0, 0), 0.5)
	s1 := seg.CreateSynapse(newInputCell(r, 1, 0, 1), 0.5)
	s2 := seg.CreateSynapse(newInputCell(r, 2, 0, 2), 0.5)

	seg.UpdatePermanences([]int{0})
	assert.Equal(t, 0.5+r.permanenceInc, s0.Permanence())
	assert.Equal(t, 0.5-r.permanenceDec, s1.Permanence())
	assert.Equal(t, 0.5-r.permanenceDec, s2.Permanence())

	seg.DecreasePermanences([]int{1})
	assert.Equal(t, 0.5+r.permanenceInc, s0.Permanence())
	assert.Equal(t, utils.RoundPrec(0.5-2*r.permanenceDec, 6), utils.RoundPrec(s1.Permanence(), 6))
	assert.Equal(t, 0.5-r.permanenceDec, s2.Permanence())
}

func TestSegmentAdaptPermanences(t *testing.T) {
	r := newTestRegion(4, 1, 1)
	r.SetInput(utils.Make1DBool([]int{1, 0, 0, 0}))

	seg := newSegment(r)
	active := seg.CreateSynapse(newInputCell(r, 0, 0, 0), 0.5)
	inactive := seg.CreateSynapse(newInputCell(r, 1, 0, 1), 0.5)

	seg.AdaptPermanences()
	assert.Equal(t, 0.5+r.permanenceInc, active.Permanence())
	assert.Equal(t, 0.5-r.permanenceDec, inactive.Permanence())
}

func TestWasActiveFromLearning(t *testing.T) {
	r := newTestRegion(3, 1, 1)
	learner := r.GetColumn(1, 0).GetCell(0)
	other := r.GetColumn(2, 0).GetCell(0)

	seg := newSegment(r)
	syn := seg.CreateSynapse(learner, 0.3)
	seg.CreateSynapse(other, 0.3)

	learner.SetActive(true)
	learner.SetLearning(true)
	other.SetActive(true)
	seg.ProcessSegment()
	assert.True(t, seg.IsActive())

	seg.AdvanceTimeStep()
	learner.AdvanceTimeStep()
	other.AdvanceTimeStep()

	assert.True(t, syn.WasActiveFromLearning())
	assert.True(t, seg.WasActiveFromLearning())

	//with no learning source the recount stays below threshold
	r2 := newTestRegion(3, 1, 1)
	cell := r2.GetColumn(1, 0).GetCell(0)
	seg2 := newSegment(r2)
	seg2.CreateSynapse(cell, 0.3)
	cell.SetActive(true)
	seg2.ProcessSegment()
	seg2.AdvanceTimeStep()
	cell.AdvanceTimeStep()
	assert.False(t, seg2.WasActiveFromLearning())
}
