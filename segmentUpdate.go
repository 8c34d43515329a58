package htm

import (
	"github.com/cznic/mathutil"
)

//SegmentUpdate captures a proposed change to one of a cell's segments.
//The active synapses and candidate learning cells are frozen when the
//update is created; the change is only carried out later once the
//cell's prediction is confirmed or abandoned. A segment index of -1
//stands for a segment that does not exist yet and will be created on a
//positive application.
type SegmentUpdate struct {
	cell         *Cell
	segmentIndex int

	activeSynapseIndices []int
	learningCells        []*Cell

	addNewSynapses     bool
	numPredictionSteps int
}

func newSegmentUpdate(cell *Cell, segmentIndex int, seg *Segment, previous bool, addNewSynapses bool) *SegmentUpdate {
	upd := &SegmentUpdate{
		cell:               cell,
		segmentIndex:       segmentIndex,
		addNewSynapses:     addNewSynapses,
		numPredictionSteps: 1,
	}
	if seg != nil {
		upd.activeSynapseIndices = seg.ActiveSynapseIndices(previous)
	}
	if addNewSynapses {
		region := cell.column.region
		eligible := region.learningCells(cell.column, seg)
		synCount := region.newSynapseCount
		if seg != nil {
			synCount = mathutil.Max(0, synCount-len(upd.activeSynapseIndices))
		}
		synCount = mathutil.Min(synCount, len(eligible))
		if synCount > 0 {
			upd.learningCells = region.sampleCells(eligible, synCount)
		}
	}
	return upd
}

func (upd *SegmentUpdate) Cell() *Cell                 { return upd.cell }
func (upd *SegmentUpdate) SegmentIndex() int           { return upd.segmentIndex }
func (upd *SegmentUpdate) NumLearningCells() int       { return len(upd.learningCells) }
func (upd *SegmentUpdate) NumPredictionSteps() int     { return upd.numPredictionSteps }
func (upd *SegmentUpdate) ActiveSynapseIndices() []int { return upd.activeSynapseIndices }

//Define the number of time steps in the future the segment created by
//this update will predict activation in. Clamped to [1, MaxTimeSteps].
func (upd *SegmentUpdate) SetNumPredictionSteps(steps int) {
	upd.numPredictionSteps = mathutil.Min(mathutil.Max(1, steps), MaxTimeSteps)
}

//Carry out this update against its cell. Positive reinforcement
//strengthens the captured synapses and weakens the rest of the
//segment's synapses; negative reinforcement weakens the captured
//synapses only. Under positive reinforcement a missing segment is
//created from the learning cells, and an existing segment grows new
//synapses to them.
func (upd *SegmentUpdate) apply(positive bool) {
	var seg *Segment
	if upd.segmentIndex >= 0 {
		seg = upd.cell.segments[upd.segmentIndex]
	}
	if seg != nil {
		if positive {
			seg.UpdatePermanences(upd.activeSynapseIndices)
		} else {
			seg.DecreasePermanences(upd.activeSynapseIndices)
		}
	}
	if !upd.addNewSynapses || !positive || len(upd.learningCells) == 0 {
		return
	}
	if seg == nil {
		newSeg := upd.cell.CreateSegment(upd.learningCells)
		newSeg.SetNumPredictionSteps(upd.numPredictionSteps)
	} else {
		for _, lc := range upd.learningCells {
			seg.CreateSynapse(lc, InitialPermanence)
		}
	}
}
