package htm

import (
	"math"

	"github.com/gonum/floats"
)

//Column represents a vertical arrangement of cells sharing the same
//proximal receptive field. The proximal segment connects the column to
//a subset of the region's input bits, while the column's cells form
//distal segments to cells in other columns.
type Column struct {
	region *Region
	cells  []*Cell

	proximal *Segment

	//Position of the column in the column grid.
	cx int
	cy int
	//Center of the column's receptive field in input space.
	ix int
	iy int

	isActive bool
	overlap  int

	boost            float64
	activeDutyCycle  float64
	overlapDutyCycle float64
}

func newColumn(region *Region, cx, cy, ix, iy int) *Column {
	col := &Column{
		region:           region,
		cx:               cx,
		cy:               cy,
		ix:               ix,
		iy:               iy,
		boost:            1.0,
		activeDutyCycle:  1.0,
		overlapDutyCycle: 1.0,
	}
	col.proximal = newSegment(region)
	col.cells = make([]*Cell, region.cellsPerCol)
	for i := range col.cells {
		col.cells[i] = newCell(col, i)
	}
	return col
}

func (col *Column) IsActive() bool            { return col.isActive }
func (col *Column) Overlap() int              { return col.overlap }
func (col *Column) Boost() float64            { return col.boost }
func (col *Column) ActiveDutyCycle() float64  { return col.activeDutyCycle }
func (col *Column) OverlapDutyCycle() float64 { return col.overlapDutyCycle }
func (col *Column) NumCells() int             { return len(col.cells) }
func (col *Column) GetCell(i int) *Cell       { return col.cells[i] }
func (col *Column) ProximalSegment() *Segment { return col.proximal }

func (col *Column) CX() int { return col.cx }
func (col *Column) CY() int { return col.cy }
func (col *Column) IX() int { return col.ix }
func (col *Column) IY() int { return col.iy }

func (col *Column) SetActive(active bool) { col.isActive = active }

//Advance this column to the next time step. All cells and the proximal
//segment advance with it.
func (col *Column) AdvanceTimeStep() {
	for _, cell := range col.cells {
		cell.AdvanceTimeStep()
	}
	col.proximal.AdvanceTimeStep()
}

//Compute and cache this column's overlap with the current input. The
//overlap is the boosted count of connected proximal synapses with
//active sources, or zero when the raw count falls below the region's
//minimum overlap.
func (col *Column) ComputeOverlap() {
	col.proximal.ProcessSegment()
	overlap := float64(col.proximal.ActiveSynapseCount())
	if overlap < col.region.minOverlap {
		col.overlap = 0
	} else {
		col.overlap = int(overlap * col.boost)
	}
}

//Update permanences of the proximal synapses based on the current
//input. Synapses reading active input bits are strengthened, the rest
//are weakened.
func (col *Column) UpdatePermanences() {
	col.proximal.AdaptPermanences()
}

//Increase the permanence of every proximal synapse by the given amount.
func (col *Column) IncreasePermanences(amount float64) {
	for i := 0; i < col.proximal.NumSynapses(); i++ {
		col.proximal.GetSynapse(i).IncreasePermanence(amount)
	}
}

//Returns the cell with the best matching segment predicting activation
//in numPredictionSteps time steps, along with that segment's index. If
//no cell has a matching segment, the cell with the fewest segments is
//returned with segment index -1.
func (col *Column) BestMatchingCell(numPredictionSteps int, previous bool) (*Cell, int) {
	var bestCell *Cell
	bestSeg := -1
	bestCount := 0
	for _, cell := range col.cells {
		segIndex := cell.BestMatchingSegment(numPredictionSteps, previous)
		if segIndex == -1 {
			continue
		}
		seg := cell.GetSegment(segIndex)
		var count int
		if previous {
			count = seg.PrevActiveAllSynapseCount()
		} else {
			count = seg.ActiveAllSynapseCount()
		}
		if count > bestCount {
			bestCell = cell
			bestSeg = segIndex
			bestCount = count
		}
	}
	if bestCell != nil {
		return bestCell, bestSeg
	}
	fewest := col.cells[0]
	for _, cell := range col.cells[1:] {
		if len(cell.segments) < len(fewest.segments) {
			fewest = cell
		}
	}
	return fewest, -1
}

//Update this column's boost and duty cycles from the activity of its
//neighbor columns, and rescue starved columns by raising their proximal
//permanences.
func (col *Column) PerformBoosting(neighbors []*Column) {
	duties := make([]float64, len(neighbors))
	for i, n := range neighbors {
		duties[i] = n.activeDutyCycle
	}
	minDutyCycle := 0.01 * floats.Max(duties)
	col.updateActiveDutyCycle()
	col.boost = col.boostFunction(minDutyCycle)
	col.updateOverlapDutyCycle()
	if col.overlapDutyCycle < minDutyCycle {
		col.IncreasePermanences(0.1 * ConnectedPerm)
	}
}

//Exponential moving average of how often this column has been active
//after inhibition.
func (col *Column) updateActiveDutyCycle() {
	cycle := (1.0 - EmaAlpha) * col.activeDutyCycle
	if col.isActive {
		cycle += EmaAlpha
	}
	col.activeDutyCycle = cycle
}

//Exponential moving average of how often this column has had overlap
//above the region's minimum.
func (col *Column) updateOverlapDutyCycle() {
	cycle := (1.0 - EmaAlpha) * col.overlapDutyCycle
	if float64(col.overlap) > col.region.minOverlap {
		cycle += EmaAlpha
	}
	col.overlapDutyCycle = cycle
}

//Returns the boost to apply given the minimum duty cycle derived from
//this column's neighbors. Columns active often enough are not boosted, a
//never-active column has its boost compounded, and the rest scale
//inversely with their duty cycle.
func (col *Column) boostFunction(minDutyCycle float64) float64 {
	if col.activeDutyCycle > minDutyCycle {
		return 1.0
	}
	if col.activeDutyCycle == 0 {
		return col.boost * 1.05
	}
	return minDutyCycle / col.activeDutyCycle
}

//Euclidean distance in input space from this column's receptive field
//center to the given input position.
func (col *Column) inputDistance(ix, iy int) float64 {
	dx := float64(col.ix - ix)
	dy := float64(col.iy - iy)
	return math.Sqrt(dx*dx + dy*dy)
}
