package htm

import (
	"math"
	"math/rand"

	"github.com/cznic/mathutil"
	"github.com/skelterjohn/go.matrix"
	"github.com/zacg/ints"
)

//Region is a matrix of columns, each containing several cells, that
//implements the cortical learning algorithms. Given a matrix of input
//bits the region first sparsifies the input so only a few columns
//become active, then the cells inside the columns learn the temporal
//transitions between the active sets and begin predicting what will
//happen next.
//
//Each call to RunOnce processes one time step: all columns advance
//their time state, spatial pooling picks the active columns, and
//temporal pooling computes cell activity, predictions and learning
//updates.
type Region struct {
	inputWidth  int
	inputHeight int

	localityRadius     int
	cellsPerCol        int
	segActiveThreshold int
	newSynapseCount    int

	permanenceInc float64
	permanenceDec float64

	pctInputPerCol   float64
	pctMinOverlap    float64
	pctLocalActivity float64

	spatialLearning  bool
	temporalLearning bool
	hardcodedSpatial bool

	width  int
	height int
	xSpace float64
	ySpace float64

	columns []*Column

	minOverlap           float64
	inhibitionRadius     float64
	desiredLocalActivity int

	inputData []bool
	iters     int

	rnd *rand.Rand
}

//Creates a new region from the parameters. The spatial pooler is either
//trained, connecting each column's proximal segment to a random biased
//subset of the input bits, or hardcoded, mapping input bits directly
//onto a matching grid of columns. Panics if the parameters are invalid.
func NewRegion(params RegionParams) *Region {
	params.validate()

	r := &Region{
		inputWidth:         params.InputWidth,
		inputHeight:        params.InputHeight,
		localityRadius:     params.LocalityRadius,
		cellsPerCol:        params.CellsPerCol,
		segActiveThreshold: params.SegActiveThreshold,
		newSynapseCount:    params.NewSynapseCount,
		permanenceInc:      params.PermanenceInc,
		permanenceDec:      params.PermanenceDec,
		temporalLearning:   params.TemporalLearning,
		rnd:                rand.New(rand.NewSource(params.Seed)),
	}
	if r.permanenceInc == 0 {
		r.permanenceInc = PermanenceInc
	}
	if r.permanenceDec == 0 {
		r.permanenceDec = PermanenceDec
	}
	r.inputData = make([]bool, r.inputWidth*r.inputHeight)

	if params.HardcodedSpatial {
		r.initHardcoded()
	} else {
		r.initTrained(params)
	}
	return r
}

//Creates a new region whose columns map one to one onto the input bits,
//skipping spatial pooling entirely.
func NewHardcodedRegion(params RegionParams) *Region {
	params.HardcodedSpatial = true
	return NewRegion(params)
}

//Hardcoded initialization maps input bits directly to columns. The
//normal spatial pooler is disabled and the input sparsification is
//assumed to have been decided by preprocessing outside the region.
//Locality radius does not restrict the temporal pooler: learning cells
//are gathered from the whole region.
func (r *Region) initHardcoded() {
	r.width = r.inputWidth
	r.height = r.inputHeight
	r.xSpace = 1.0
	r.ySpace = 1.0

	r.columns = make([]*Column, r.width*r.height)
	for cy := 0; cy < r.height; cy++ {
		for cx := 0; cx < r.width; cx++ {
			r.columns[cy*r.width+cx] = newColumn(r, cx, cy, cx, cy)
		}
	}

	r.pctInputPerCol = 1.0 / float64(len(r.columns))
	r.pctMinOverlap = 1.0
	r.pctLocalActivity = 1.0
	r.minOverlap = 1.0
	r.desiredLocalActivity = 1

	r.hardcodedSpatial = true
	r.spatialLearning = false
}

//Trained initialization computes a list of potential proximal synapses
//for each column: a random subset of input positions, each assigned a
//permanence close to the connection threshold and biased towards the
//column's natural center over the input space. A non-zero locality
//radius restricts the subset to positions near that center.
func (r *Region) initTrained(params RegionParams) {
	r.pctInputPerCol = params.PctInputPerCol
	r.pctMinOverlap = params.PctMinOverlap
	r.pctLocalActivity = params.PctLocalActivity
	r.spatialLearning = params.SpatialLearning

	//Column grid is relative to the size of the input grid in both
	//dimensions.
	r.width = params.ColGridWidth
	r.height = params.ColGridHeight
	r.xSpace = float64(r.inputWidth-1) / math.Max(1.0, float64(r.width-1))
	r.ySpace = float64(r.inputHeight-1) / math.Max(1.0, float64(r.height-1))

	r.columns = make([]*Column, r.width*r.height)
	for cy := 0; cy < r.height; cy++ {
		for cx := 0; cx < r.width; cx++ {
			ix := int(round(float64(cx) * r.xSpace))
			iy := int(round(float64(cy) * r.ySpace))
			r.columns[cy*r.width+cx] = newColumn(r, cx, cy, ix, iy)
		}
	}

	//How far apart two columns are in terms of input space determines
	//the radius of each receptive field.
	inputRadiusf := float64(r.localityRadius) * r.xSpace

	var synapsesPerSegment int
	if r.localityRadius == 0 {
		synapsesPerSegment = int(round(float64(r.inputWidth*r.inputHeight) * r.pctInputPerCol))
	} else {
		synapsesPerSegment = int(round(inputRadiusf * inputRadiusf * r.pctInputPerCol))
	}

	//The minimum number of inputs that must be active for a column to
	//be considered during the inhibition step.
	r.minOverlap = float64(synapsesPerSegment) * r.pctMinOverlap

	longerSide := mathutil.Max(r.inputWidth, r.inputHeight)
	inputRadius := int(round(inputRadiusf))

	perms := matrix.Zeros(len(r.columns), synapsesPerSegment)
	for i := range r.columns {
		for j := 0; j < synapsesPerSegment; j++ {
			perms.Set(i, j, math.Max(0.0, ConnectedPerm+PermanenceInc*r.rnd.NormFloat64()))
		}
	}

	for i, col := range r.columns {
		minX, maxX := 0, r.inputWidth-1
		minY, maxY := 0, r.inputHeight-1
		if r.localityRadius > 0 {
			minX = mathutil.Max(0, col.ix-inputRadius)
			maxX = mathutil.Min(r.inputWidth-1, col.ix+inputRadius)
			minY = mathutil.Max(0, col.iy-inputRadius)
			maxY = mathutil.Min(r.inputHeight-1, col.iy+inputRadius)
		}

		positions := r.samplePositions(minX, maxX, minY, maxY, synapsesPerSegment)
		for j, pos := range positions {
			icell := newInputCell(r, pos.x, pos.y, pos.y*r.inputWidth+pos.x)
			if params.FullDefaultSpatialPermanence {
				col.proximal.CreateSynapse(icell, 1.0)
				continue
			}
			distance := col.inputDistance(pos.x, pos.y)
			ex := distance / (float64(longerSide) * RadBiasStdDev)
			localityBias := (RadBiasPeak / 0.4) * math.Exp((ex*ex)/-2)
			col.proximal.CreateSynapse(icell, perms.Get(i, j)*localityBias)
		}
	}

	r.inhibitionRadius = r.averageReceptiveFieldSize()

	var dla float64
	if r.localityRadius == 0 {
		dla = r.inhibitionRadius * r.pctLocalActivity
	} else {
		dla = float64(r.localityRadius*r.localityRadius) * r.pctLocalActivity
	}
	r.desiredLocalActivity = mathutil.Max(2, int(round(dla)))
}

func (r *Region) Width() int                { return r.width }
func (r *Region) Height() int               { return r.height }
func (r *Region) InputWidth() int           { return r.inputWidth }
func (r *Region) InputHeight() int          { return r.inputHeight }
func (r *Region) NumColumns() int           { return len(r.columns) }
func (r *Region) CellsPerCol() int          { return r.cellsPerCol }
func (r *Region) LocalityRadius() int       { return r.localityRadius }
func (r *Region) NewSynapseCount() int      { return r.newSynapseCount }
func (r *Region) SegActiveThreshold() int   { return r.segActiveThreshold }
func (r *Region) MinOverlap() float64       { return r.minOverlap }
func (r *Region) InhibitionRadius() float64 { return r.inhibitionRadius }
func (r *Region) DesiredLocalActivity() int { return r.desiredLocalActivity }
func (r *Region) Iterations() int           { return r.iters }

//Returns the column at the given column grid coordinate.
func (r *Region) GetColumn(x, y int) *Column { return r.columns[y*r.width+x] }

//Returns the column at the given serial array index.
func (r *Region) GetColumnByIndex(i int) *Column { return r.columns[i] }

//When hardcoded no spatial pooling is performed; the region instead
//assumes input bits equaling true represent the active columns per
//time step.
func (r *Region) SetSpatialHardcoded(hardcode bool) { r.hardcodedSpatial = hardcode }
func (r *Region) SetSpatialLearning(learn bool)     { r.spatialLearning = learn }
func (r *Region) SetTemporalLearning(learn bool)    { r.temporalLearning = learn }

//Copy the input bits for the next time step into the region's input
//buffer. Panics if the slice length does not match the input area.
func (r *Region) SetInput(input []bool) {
	if len(input) != len(r.inputData) {
		panic("Input length must match the region input area")
	}
	copy(r.inputData, input)
}

//Run one time step iteration for this region. All cells have their
//current state pushed back to be their new previous state and their new
//current state reset to no activity. Then spatial pooling followed by
//temporal pooling is performed for the time step.
func (r *Region) RunOnce() {
	for _, col := range r.columns {
		col.AdvanceTimeStep()
	}
	r.performSpatialPooling()
	r.performTemporalPooling()
	r.iters++
}

//Perform one time step of spatial pooling for the current input. The
//result is a subset of columns being set active. Under spatial learning
//the active columns have their proximal permanences updated, every
//column has its boost updated and the region refreshes its inhibition
//radius.
func (r *Region) performSpatialPooling() {
	//If hardcoded, the inputs correspond directly to the active columns.
	if r.hardcodedSpatial {
		for i, col := range r.columns {
			col.SetActive(r.inputData[i])
		}
		return
	}

	//Phase 1: compute the overlap with the current input for each column.
	for _, col := range r.columns {
		col.ComputeOverlap()
	}

	//Phase 2: compute the winning columns after inhibition. A column is
	//a winner if its overlap reaches the k'th highest overlap among its
	//neighbors, k being the desired local activity.
	for _, col := range r.columns {
		col.SetActive(false)
		if col.overlap > 0 {
			neighborCols := r.neighbors(col)
			minLocalActivity := r.kthScore(neighborCols, r.desiredLocalActivity)
			if col.overlap >= minLocalActivity {
				col.SetActive(true)
			}
		}
	}

	//Phase 3: update synapse permanences, boosts and the inhibition
	//radius.
	if r.spatialLearning {
		for _, col := range r.columns {
			if col.isActive {
				col.UpdatePermanences()
			}
		}
		for _, col := range r.columns {
			col.PerformBoosting(r.neighbors(col))
		}
		r.inhibitionRadius = r.averageReceptiveFieldSize()
	}
}

//Perform one time step of temporal pooling for this region. Computes
//the active and predictive state of every cell for the current time
//step and, under temporal learning, queues and applies segment updates.
func (r *Region) performTemporalPooling() {
	//Phase 1: compute the active state for each cell in a winning
	//column. If the bottom-up input was predicted by a sequence segment
	//those cells become active, otherwise every cell in the column
	//becomes active. Each predicted cell whose segment was active from
	//learning cells becomes a learning cell; if there is none, the best
	//matching cell of the column is selected as the learning cell.
	for _, col := range r.columns {
		if !col.isActive {
			continue
		}
		buPredicted := false
		learningCellChosen := false
		for _, cell := range col.cells {
			if !cell.wasPredicted {
				continue
			}
			segIndex := cell.PreviousActiveSegment()
			if segIndex == -1 {
				continue
			}
			seg := cell.segments[segIndex]
			if seg.IsSequence() {
				buPredicted = true
				cell.SetActive(true)
				if r.temporalLearning && seg.WasActiveFromLearning() {
					learningCellChosen = true
					cell.SetLearning(true)
				}
			}
		}

		if !buPredicted {
			for _, cell := range col.cells {
				cell.SetActive(true)
			}
		}

		if r.temporalLearning && !learningCellChosen {
			bestCell, bestSeg := col.BestMatchingCell(1, true)
			bestCell.SetLearning(true)
			upd := bestCell.UpdateSegmentActiveSynapses(true, bestSeg, true)
			upd.SetNumPredictionSteps(1)
		}
	}

	//Phase 2: compute the predictive state for each cell. A cell turns
	//on its predictive state if one of its segments becomes active. The
	//cell then queues reinforcement of the active segment and of a
	//segment that could have predicted this activation one step earlier.
	for _, col := range r.columns {
		for _, cell := range col.cells {
			for _, seg := range cell.segments {
				seg.ProcessSegment()
			}
			for i, seg := range cell.segments {
				if seg.IsActive() {
					cell.SetPredicting(true)
					if r.temporalLearning {
						cell.UpdateSegmentActiveSynapses(false, i, false)
					}
					break
				}
			}

			if r.temporalLearning && cell.isPredicting {
				predSeg := cell.BestMatchingSegment(cell.predictionSteps+1, true)
				upd := cell.UpdateSegmentActiveSynapses(true, predSeg, true)
				if predSeg == -1 {
					upd.SetNumPredictionSteps(cell.predictionSteps + 1)
				}
			}
		}
	}

	//Phase 3: carry out learning. Queued updates are applied positively
	//once the cell is chosen as a learning cell, or negatively when the
	//cell stops predicting without having become active.
	if !r.temporalLearning {
		return
	}
	for _, col := range r.columns {
		for _, cell := range col.cells {
			if cell.isLearning {
				cell.ApplySegmentUpdates(true)
			} else if !cell.isPredicting && cell.wasPredicted {
				cell.ApplySegmentUpdates(false)
			}
		}
	}
}

//Returns all columns within the inhibition radius of the given column.
//The rectangle extends one extra column on the high side.
func (r *Region) neighbors(col *Column) []*Column {
	irad := int(round(r.inhibitionRadius))
	x0 := mathutil.Max(0, mathutil.Min(col.cx-1, col.cx-irad))
	y0 := mathutil.Max(0, mathutil.Min(col.cy-1, col.cy-irad))
	x1 := mathutil.Min(r.width, mathutil.Max(col.cx+1, col.cx+irad))
	y1 := mathutil.Min(r.height, mathutil.Max(col.cy+1, col.cy+irad))

	x1 = mathutil.Min(r.width, x1+1)
	y1 = mathutil.Min(r.height, y1+1)

	var cols []*Column
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cols = append(cols, r.GetColumn(x, y))
		}
	}
	return cols
}

//Given a list of columns, return the k'th highest overlap value.
func (r *Region) kthScore(cols []*Column, k int) int {
	overlaps := make([]int, len(cols))
	for i, col := range cols {
		overlaps[i] = col.overlap
	}
	inds := make([]int, len(overlaps))
	ints.Argsort(overlaps, inds)
	return overlaps[mathutil.Max(0, len(overlaps)-k)]
}

//The radius of the average connected receptive field size of all the
//columns. The connected receptive field size of a column includes only
//the connected proximal synapses. Used to determine the extent of
//lateral inhibition between columns, in column grid space.
func (r *Region) averageReceptiveFieldSize() float64 {
	n := 0
	sum := 0.0
	for _, col := range r.columns {
		for _, syn := range col.proximal.ConnectedSynapses() {
			d := col.inputDistance(syn.source.IX(), syn.source.IY())
			sum += d / r.xSpace
			n++
		}
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}

//Gather the cells eligible to become sources of new synapses for a
//segment owned by a cell in the given column: cells outside that column
//that were in a learning state in the previous time step and are not
//already sources on the segment. Cells are gathered in column scan
//order so identical seeds sample identically.
func (r *Region) learningCells(ownColumn *Column, seg *Segment) []*Cell {
	var cells []*Cell
	for _, col := range r.columns {
		if col == ownColumn {
			continue
		}
		for _, cell := range col.cells {
			if !cell.wasLearning {
				continue
			}
			if seg != nil && seg.hasSourceCell(cell) {
				continue
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

//Randomly sample m cells from the eligible cells without replacement.
func (r *Region) sampleCells(eligible []*Cell, m int) []*Cell {
	n := len(eligible)
	sample := make([]*Cell, m)
	k := 0
	for i := n - m; i < n; i++ {
		pos := r.rnd.Intn(i + 1)
		item := eligible[pos]
		dup := false
		for _, s := range sample[:k] {
			if s == item {
				dup = true
				break
			}
		}
		if dup {
			sample[k] = eligible[i]
		} else {
			sample[k] = item
		}
		k++
	}
	return sample
}

type inputPos struct {
	x int
	y int
}

//Randomly sample m unique input positions from the inclusive rectangle.
func (r *Region) samplePositions(minX, maxX, minY, maxY, m int) []inputPos {
	var all []inputPos
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			all = append(all, inputPos{x, y})
		}
	}
	if m > len(all) {
		m = len(all)
	}
	n := len(all)
	sample := make([]inputPos, m)
	k := 0
	for i := n - m; i < n; i++ {
		pos := r.rnd.Intn(i + 1)
		item := all[pos]
		dup := false
		for _, s := range sample[:k] {
			if s == item {
				dup = true
				break
			}
		}
		if dup {
			sample[k] = all[i]
		} else {
			sample[k] = item
		}
		k++
	}
	return sample
}

func round(x float64) float64 {
	return math.Floor(x + 0.5)
}
