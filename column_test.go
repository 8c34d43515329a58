package htm

import (
	"testing"

	"github.com/htm-community/region/utils"
	"github.com/stretchr/testify/assert"
)

func TestComputeOverlap(t *testing.T) {
	r := newTestRegion(4, 1, 1)
	r.minOverlap = 2.0
	r.SetInput(utils.Make1DBool([]int{1, 1, 1, 0}))

	col := r.GetColumn(0, 0)
	col.proximal.CreateSynapse(newInputCell(r, 0, 0, 0), 0.3)
	col.proximal.CreateSynapse(newInputCell(r, 1, 0, 1), 0.3)
	col.proximal.CreateSynapse(newInputCell(r, 2, 0, 2), 0.1)
	col.proximal.CreateSynapse(newInputCell(r, 3, 0, 3), 0.3)

	col.ComputeOverlap()
	assert.Equal(t, 2, col.Overlap())

	//boost multiplies the raw overlap
	col.boost = 2.5
	col.ComputeOverlap()
	assert.Equal(t, 5, col.Overlap())

	//raw overlap below the region minimum scores zero
	r.minOverlap = 3.0
	col.boost = 1.0
	col.ComputeOverlap()
	assert.Equal(t, 0, col.Overlap())
}

func TestDutyCycleEMA(t *testing.T) {
	r := newTestRegion(4, 1, 1)
	col := r.GetColumn(0, 0)

	assert.Equal(t, 1.0, col.ActiveDutyCycle())
	col.SetActive(true)
	col.updateActiveDutyCycle()
	assert.Equal(t, 1.0, utils.RoundPrec(col.ActiveDutyCycle(), 6))

	col.SetActive(false)
	col.updateActiveDutyCycle()
	assert.Equal(t, 1.0-EmaAlpha, col.ActiveDutyCycle())

	col.overlap = 0
	col.updateOverlapDutyCycle()
	assert.Equal(t, 1.0-EmaAlpha, col.OverlapDutyCycle())

	col.overlap = 2
	col.updateOverlapDutyCycle()
	assert.True(t, col.OverlapDutyCycle() > 1.0-2*EmaAlpha)
}

func TestBoostFunction(t *testing.T) {
	r := newTestRegion(4, 1, 1)
	col := r.GetColumn(0, 0)

	col.activeDutyCycle = 0.5
	assert.Equal(t, 1.0, col.boostFunction(0.01))

	col.activeDutyCycle = 0.005
	assert.Equal(t, 0.01/0.005, col.boostFunction(0.01))

	col.activeDutyCycle = 0.0
	col.boost = 1.0
	assert.Equal(t, 1.05, col.boostFunction(0.01))
	col.boost = 1.05
	assert.Equal(t, 1.05*1.05, col.boostFunction(0.01))
}

func TestPerformBoostingStarvation(t *testing.T) {
	r := newTestRegion(4, 1, 1)
	col := r.GetColumn(0, 0)
	syn := col.proximal.CreateSynapse(newInputCell(r, 0, 0, 0), 0.1)

	neighbor := r.GetColumn(1, 0)
	neighbor.activeDutyCycle = 1.0

	//overlap duty cycle far below the neighborhood minimum raises the
	//proximal permanences
	col.overlapDutyCycle = 0.001
	col.overlap = 0
	col.PerformBoosting([]*Column{col, neighbor})

	assert.Equal(t, 0.1+0.1*ConnectedPerm, syn.Permanence())
}

func TestBestMatchingCellFallsBackToFewestSegments(t *testing.T) {
	r := newTestRegion(3, 3, 1)
	col := r.GetColumn(0, 0)
	src := r.GetColumn(1, 0).GetCell(0)

	col.GetCell(0).CreateSegment([]*Cell{src})
	col.GetCell(2).CreateSegment([]*Cell{src})

	//no segment matches so the cell with the fewest segments wins
	cell, segIndex := col.BestMatchingCell(1, true)
	assert.Equal(t, col.GetCell(1), cell)
	assert.Equal(t, -1, segIndex)
}

func TestBestMatchingCellPicksMostActive(t *testing.T) {
	r := newTestRegion(3, 2, 1)
	col := r.GetColumn(0, 0)

	weak := col.GetCell(0).CreateSegment(nil)
	weak.SetNumPredictionSteps(1)
	weak.nPrevActiveAll = 2

	strong := col.GetCell(1).CreateSegment(nil)
	strong.SetNumPredictionSteps(1)
	strong.nPrevActiveAll = 4

	cell, segIndex := col.BestMatchingCell(1, true)
	assert.Equal(t, col.GetCell(1), cell)
	assert.Equal(t, 0, segIndex)
}

func TestColumnAdvanceTimeStep(t *testing.T) {
	r := newTestRegion(3, 2, 1)
	r.SetInput(utils.Make1DBool([]int{1, 0, 0}))
	col := r.GetColumn(0, 0)
	col.proximal.CreateSynapse(newInputCell(r, 0, 0, 0), 0.3)
	col.proximal.ProcessSegment()

	cell := col.GetCell(0)
	cell.SetActive(true)
	col.AdvanceTimeStep()

	assert.True(t, cell.WasActive())
	assert.False(t, cell.IsActive())
	assert.Equal(t, 1, col.proximal.PrevActiveSynapseCount())
}
