package htm

import (
	"github.com/cznic/mathutil"
)

//Cell represents a single context of an input pattern within a column.
//Cells form distal segments to other cells and enter a predicting state
//when one of those segments becomes active. Pending segment updates are
//queued on the cell and applied once the prediction is confirmed or
//abandoned.
type Cell struct {
	column *Column
	index  int

	segments       []*Segment
	segmentUpdates []*SegmentUpdate

	isActive     bool
	wasActive    bool
	isPredicting bool
	wasPredicted bool
	isLearning   bool
	wasLearning  bool

	//Number of time steps until the nearest prediction this cell is
	//making comes due. Only meaningful while isPredicting.
	predictionSteps int
}

func newCell(column *Column, index int) *Cell {
	return &Cell{column: column, index: index}
}

func (c *Cell) Column() *Column    { return c.column }
func (c *Cell) Index() int         { return c.index }
func (c *Cell) IsActive() bool     { return c.isActive }
func (c *Cell) WasActive() bool    { return c.wasActive }
func (c *Cell) IsPredicting() bool { return c.isPredicting }
func (c *Cell) WasPredicted() bool { return c.wasPredicted }
func (c *Cell) IsLearning() bool   { return c.isLearning }
func (c *Cell) WasLearning() bool  { return c.wasLearning }

func (c *Cell) IX() int { return c.column.cx }
func (c *Cell) IY() int { return c.column.cy }

func (c *Cell) NumCellSegments() int      { return len(c.segments) }
func (c *Cell) GetSegment(i int) *Segment { return c.segments[i] }
func (c *Cell) NumPendingUpdates() int    { return len(c.segmentUpdates) }
func (c *Cell) PredictionSteps() int      { return c.predictionSteps }

func (c *Cell) SetActive(active bool)     { c.isActive = active }
func (c *Cell) SetLearning(learning bool) { c.isLearning = learning }

//Marks this cell as predicting or not. When set, the prediction-step
//count is refreshed to the minimum over the cell's currently active
//segments.
func (c *Cell) SetPredicting(predicting bool) {
	c.isPredicting = predicting
	if !predicting {
		return
	}
	c.predictionSteps = MaxTimeSteps
	for _, seg := range c.segments {
		if seg.IsActive() {
			c.predictionSteps = mathutil.Min(c.predictionSteps, seg.PredictionSteps())
		}
	}
}

//Advance this cell to the next time step. Current states become the
//previous states, current states reset, and all segments advance.
func (c *Cell) AdvanceTimeStep() {
	c.wasActive = c.isActive
	c.wasPredicted = c.isPredicting
	c.wasLearning = c.isLearning
	c.isActive = false
	c.isPredicting = false
	c.isLearning = false
	for _, seg := range c.segments {
		seg.AdvanceTimeStep()
	}
}

//Creates a new segment for this cell attached to the learning cells
//with synapses at the default initial permanence. Returns the new
//segment; its index is stable for the life of the cell.
func (c *Cell) CreateSegment(learningCells []*Cell) *Segment {
	seg := newSegment(c.column.region)
	for _, lc := range learningCells {
		seg.CreateSynapse(lc, InitialPermanence)
	}
	c.segments = append(c.segments, seg)
	return seg
}

//Returns the index of the segment that was active in the previous time
//step, or -1 if none was. If multiple segments were active, sequence
//segments are given preference, then the segment with the most activity
//wins.
func (c *Cell) PreviousActiveSegment() int {
	best := -1
	bestSeq := false
	bestCount := 0
	for i, seg := range c.segments {
		if !seg.WasActive() {
			continue
		}
		seq := seg.IsSequence()
		count := seg.PrevActiveSynapseCount()
		if best == -1 || (seq && !bestSeq) || (seq == bestSeq && count > bestCount) {
			best = i
			bestSeq = seq
			bestCount = count
		}
	}
	return best
}

//Returns the index of the segment with the most activity from all
//synapses, connected or not, that predicts activation in numPredictionSteps
//time steps. Considers the previous time step if previous is set. A
//segment must have strictly more active synapses than the minimum match
//threshold to qualify. Returns -1 when no segment matches.
func (c *Cell) BestMatchingSegment(numPredictionSteps int, previous bool) int {
	best := -1
	bestCount := MinSynapsesPerSegmentThreshold
	for i, seg := range c.segments {
		if seg.PredictionSteps() != numPredictionSteps {
			continue
		}
		var count int
		if previous {
			count = seg.PrevActiveAllSynapseCount()
		} else {
			count = seg.ActiveAllSynapseCount()
		}
		if count > bestCount {
			best = i
			bestCount = count
		}
	}
	return best
}

//Queue a new segment update for this cell. The segment index of -1
//stands for a segment not yet created. Active synapses are captured
//from the current or previous time step and, if addNewSynapses is set,
//learning cells are sampled to grow new synapses from when the update
//is later applied. Returns the queued update so callers may refine its
//prediction steps.
func (c *Cell) UpdateSegmentActiveSynapses(previous bool, segmentIndex int, addNewSynapses bool) *SegmentUpdate {
	var seg *Segment
	if segmentIndex >= 0 {
		seg = c.segments[segmentIndex]
	}
	upd := newSegmentUpdate(c, segmentIndex, seg, previous, addNewSynapses)
	c.segmentUpdates = append(c.segmentUpdates, upd)
	return upd
}

//Apply all queued segment updates to this cell and empty the queue.
//Positive reinforcement strengthens the captured synapses and weakens
//the rest; negative reinforcement weakens the captured synapses only.
//New segments and synapses are only grown under positive reinforcement.
func (c *Cell) ApplySegmentUpdates(positive bool) {
	for _, upd := range c.segmentUpdates {
		upd.apply(positive)
	}
	c.segmentUpdates = nil
}

//Returns the number of segments on this cell predicting activation in
//numPredictionSteps time steps. Zero counts all segments.
func (c *Cell) NumSegments(numPredictionSteps int) int {
	if numPredictionSteps == 0 {
		return len(c.segments)
	}
	n := 0
	for _, seg := range c.segments {
		if seg.PredictionSteps() == numPredictionSteps {
			n++
		}
	}
	return n
}
