package htm

import (
	"github.com/cznic/mathutil"
	"github.com/htm-community/region/utils"
)

//Segment is a single dendrite segment forming synapses to other cells or
//input bits. Each segment carries a prediction-step count indicating how
//many time steps in the future its cell expects to activate; a sequence
//segment is one predicting the very next step. A segment is active when
//enough of its connected synapses are individually active.
type Segment struct {
	region          *Region
	synapses        []*Synapse
	predictionSteps int
	isSequence      bool

	isActive  bool
	wasActive bool

	nActiveConn     int
	nPrevActiveConn int
	nActiveAll      int
	nPrevActiveAll  int
}

func newSegment(region *Region) *Segment {
	return &Segment{region: region}
}

func (seg *Segment) IsActive() bool       { return seg.isActive }
func (seg *Segment) WasActive() bool      { return seg.wasActive }
func (seg *Segment) IsSequence() bool     { return seg.isSequence }
func (seg *Segment) NumSynapses() int     { return len(seg.synapses) }
func (seg *Segment) PredictionSteps() int { return seg.predictionSteps }

func (seg *Segment) GetSynapse(i int) *Synapse { return seg.synapses[i] }

//Number of connected synapses active due to the current input.
func (seg *Segment) ActiveSynapseCount() int { return seg.nActiveConn }

//Number of connected synapses active due to the previous input.
func (seg *Segment) PrevActiveSynapseCount() int { return seg.nPrevActiveConn }

//Number of synapses, connected or not, active due to the current input.
func (seg *Segment) ActiveAllSynapseCount() int { return seg.nActiveAll }

//Number of synapses, connected or not, active due to the previous input.
func (seg *Segment) PrevActiveAllSynapseCount() int { return seg.nPrevActiveAll }

//Advance this segment to the next time step. The current state becomes
//the previous state and the current state resets to no activity until
//the segment is next processed.
func (seg *Segment) AdvanceTimeStep() {
	seg.wasActive = seg.isActive
	seg.isActive = false
	seg.nPrevActiveConn = seg.nActiveConn
	seg.nPrevActiveAll = seg.nActiveAll
	seg.nActiveConn = 0
	seg.nActiveAll = 0
	for _, syn := range seg.synapses {
		syn.wasConnected = syn.isConnected
		syn.isConnected = false
	}
}

//Process this segment for the current time step. Refreshes each synapse's
//connection state from its permanence, counts the active synapses and
//determines whether the segment is active. The counts are cached for the
//remainder of the region's processing of this time step.
func (seg *Segment) ProcessSegment() {
	nConn := 0
	nAll := 0
	for _, syn := range seg.synapses {
		syn.isConnected = syn.permanence >= ConnectedPerm
		if syn.source.IsActive() {
			nAll++
			if syn.isConnected {
				nConn++
			}
		}
	}
	seg.nActiveConn = nConn
	seg.nActiveAll = nAll
	seg.isActive = nConn >= seg.region.segActiveThreshold
}

//Define the number of time steps in the future an activation will occur
//in if this segment becomes active. Clamped to [1, MaxTimeSteps]. A
//segment predicting the very next step is a sequence segment.
func (seg *Segment) SetNumPredictionSteps(steps int) {
	seg.predictionSteps = mathutil.Min(mathutil.Max(1, steps), MaxTimeSteps)
	seg.isSequence = seg.predictionSteps == 1
}

//Create a new synapse for this segment attached to the input source.
//Indices of existing synapses are preserved.
func (seg *Segment) CreateSynapse(source InputSource, initPerm float64) *Synapse {
	syn := newSynapse(source, initPerm)
	seg.synapses = append(seg.synapses, syn)
	return syn
}

//Returns the indices of synapses that are connected and active due to
//the current input, or the previous input if previous is set.
func (seg *Segment) ActiveSynapseIndices(previous bool) []int {
	var indices []int
	for i, syn := range seg.synapses {
		if previous {
			if syn.WasActive(true) {
				indices = append(indices, i)
			}
		} else if syn.IsActive(true) {
			indices = append(indices, i)
		}
	}
	return indices
}

//Returns all currently connected synapses on this segment.
func (seg *Segment) ConnectedSynapses() []*Synapse {
	var syns []*Synapse
	for _, syn := range seg.synapses {
		if syn.permanence >= ConnectedPerm {
			syns = append(syns, syn)
		}
	}
	return syns
}

//Returns true if the given cell is already the source of a synapse on
//this segment.
func (seg *Segment) hasSourceCell(cell *Cell) bool {
	for _, syn := range seg.synapses {
		if syn.source == InputSource(cell) {
			return true
		}
	}
	return false
}

//Update permanences of all synapses on this segment based on current
//input activity. Synapses with active sources are increased, all others
//are decreased.
func (seg *Segment) AdaptPermanences() {
	for _, syn := range seg.synapses {
		if syn.source.IsActive() {
			syn.IncreasePermanence(seg.region.permanenceInc)
		} else {
			syn.DecreasePermanence(seg.region.permanenceDec)
		}
	}
}

//Increase or decrease the permanence of every synapse on this segment.
func (seg *Segment) UpdateAllPermanences(increase bool) {
	for _, syn := range seg.synapses {
		if increase {
			syn.IncreasePermanence(seg.region.permanenceInc)
		} else {
			syn.DecreasePermanence(seg.region.permanenceDec)
		}
	}
}

//Increase permanence of the synapses at the given indices and decrease
//the permanence of every other synapse on this segment.
func (seg *Segment) UpdatePermanences(activeIndices []int) {
	for i, syn := range seg.synapses {
		if utils.ContainsInt(i, activeIndices) {
			syn.IncreasePermanence(seg.region.permanenceInc)
		} else {
			syn.DecreasePermanence(seg.region.permanenceDec)
		}
	}
}

//Decrease permanence of the synapses at the given indices only.
func (seg *Segment) DecreasePermanences(activeIndices []int) {
	for i, syn := range seg.synapses {
		if utils.ContainsInt(i, activeIndices) {
			syn.DecreasePermanence(seg.region.permanenceDec)
		}
	}
}

//Returns true if enough synapses on this segment were active due to
//sources that were previously in a learning state.
func (seg *Segment) WasActiveFromLearning() bool {
	c := 0
	for _, syn := range seg.synapses {
		if syn.WasActiveFromLearning() {
			c++
		}
	}
	return c >= seg.region.segActiveThreshold
}
