package htm

import (
	"math"
)

//InputSource is any activation source a synapse may listen to. Distal
//synapses listen to cells in other columns while proximal synapses listen
//to input bits exposed through the region's input buffer.
type InputSource interface {
	IsActive() bool
	WasActive() bool
	WasLearning() bool
	//Position of the source on its grid. Column-grid coordinates for
	//cells, input-space coordinates for input bits.
	IX() int
	IY() int
}

//InputCell exposes a single bit of the region's input buffer. The buffer
//contents change between time steps and the cell re-reads on each access.
type InputCell struct {
	region *Region
	x      int
	y      int
	index  int
}

func newInputCell(region *Region, x, y, index int) *InputCell {
	return &InputCell{region: region, x: x, y: y, index: index}
}

func (ic *InputCell) IsActive() bool {
	return ic.region.inputData[ic.index]
}

func (ic *InputCell) WasActive() bool {
	return false
}

func (ic *InputCell) WasLearning() bool {
	return false
}

func (ic *InputCell) IX() int { return ic.x }
func (ic *InputCell) IY() int { return ic.y }

//Synapse connects an input source to a segment with a permanence value
//representing the connection strength. Connection state is cached per
//time step when the owning segment is processed.
type Synapse struct {
	source       InputSource
	permanence   float64
	isConnected  bool
	wasConnected bool
}

//Creates a new synapse attached to the input source. A zero permanence
//selects the default initial permanence for distal synapses.
func newSynapse(source InputSource, permanence float64) *Synapse {
	syn := Synapse{source: source}
	if permanence == 0 {
		syn.permanence = InitialPermanence
	} else {
		syn.permanence = math.Min(1.0, permanence)
	}
	return &syn
}

func (syn *Synapse) Source() InputSource { return syn.source }
func (syn *Synapse) Permanence() float64 { return syn.permanence }
func (syn *Synapse) IsConnected() bool   { return syn.isConnected }

//Returns true if this synapse is active due to the current input.
//If connectedOnly, the synapse must also be connected.
func (syn *Synapse) IsActive(connectedOnly bool) bool {
	return syn.source.IsActive() && (syn.isConnected || !connectedOnly)
}

//Returns true if this synapse was active due to the previous input.
//If connectedOnly, the synapse must also have been connected.
func (syn *Synapse) WasActive(connectedOnly bool) bool {
	return syn.source.WasActive() && (syn.wasConnected || !connectedOnly)
}

//Returns true if this synapse was active due to the input previously
//being in a learning state.
func (syn *Synapse) WasActiveFromLearning() bool {
	return syn.WasActive(true) && syn.source.WasLearning()
}

//Increases the permanence of this synapse. A zero amount selects the
//default increment.
func (syn *Synapse) IncreasePermanence(amount float64) {
	if amount == 0 {
		amount = PermanenceInc
	}
	syn.permanence = math.Min(1.0, syn.permanence+amount)
}

//Decreases the permanence of this synapse. A zero amount selects the
//default decrement.
func (syn *Synapse) DecreasePermanence(amount float64) {
	if amount == 0 {
		amount = PermanenceDec
	}
	syn.permanence = math.Max(0.0, syn.permanence-amount)
}
