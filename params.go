package htm

//Permanence and timing constants shared by all regions.
const (
	//Synapses with permanences at or above this value are connected.
	ConnectedPerm = 0.2
	//Initial permanence for newly grown distal synapses.
	InitialPermanence = 0.3
	//Amount permanences of synapses are incremented in learning.
	PermanenceInc = 0.015
	//Amount permanences of synapses are decremented in learning.
	PermanenceDec = 0.005
	//Exponential moving average alpha for column duty cycles.
	EmaAlpha = 0.005
	//Most prediction steps a segment may represent.
	MaxTimeSteps = 10
	//A best matching segment must have strictly more active synapses
	//than this to be considered a match.
	MinSynapsesPerSegmentThreshold = 1

	//Input-bit radius bias peak for default proximal permanences.
	RadBiasPeak = 0.8
	//Input-bit radius standard deviation bias.
	RadBiasStdDev = 0.25
)

type RegionParams struct {
	InputWidth  int
	InputHeight int

	ColGridWidth  int
	ColGridHeight int

	//Percent of input bits each column has potential proximal synapses for.
	PctInputPerCol float64
	//Minimum percent of a column's synapses for the column to be considered
	//during inhibition.
	PctMinOverlap float64
	//Furthest number of columns away to allow proximal synapses. Zero means
	//no restriction.
	LocalityRadius int
	//Approximate percent of columns within the inhibition radius to be
	//winners after inhibition.
	PctLocalActivity float64

	CellsPerCol        int
	SegActiveThreshold int
	NewSynapseCount    int

	PermanenceInc float64
	PermanenceDec float64

	SpatialLearning  bool
	TemporalLearning bool
	HardcodedSpatial bool

	//If true, default all proximal synapses to full permanence (1.0)
	//otherwise use a gaussian centered on the connection threshold.
	FullDefaultSpatialPermanence bool

	Seed int64
}

//Returns default region parameters for a small trained-spatial region.
func NewRegionParams() RegionParams {
	p := RegionParams{}
	p.InputWidth = 64
	p.InputHeight = 64
	p.ColGridWidth = 32
	p.ColGridHeight = 32
	p.PctInputPerCol = 0.05
	p.PctMinOverlap = 0.2
	p.LocalityRadius = 0
	p.PctLocalActivity = 0.02
	p.CellsPerCol = 4
	p.SegActiveThreshold = 3
	p.NewSynapseCount = 5
	p.PermanenceInc = PermanenceInc
	p.PermanenceDec = PermanenceDec
	p.SpatialLearning = true
	p.TemporalLearning = true
	p.HardcodedSpatial = false
	p.FullDefaultSpatialPermanence = false
	p.Seed = 42
	return p
}

func (p RegionParams) validate() {
	if p.CellsPerCol < 1 {
		panic("CellsPerCol must be at least 1")
	}
	if p.SegActiveThreshold < 1 {
		panic("SegActiveThreshold must be at least 1")
	}
	if p.HardcodedSpatial {
		if p.InputWidth*p.InputHeight == 0 {
			panic("Input dimensions must be non-zero")
		}
	} else {
		if p.ColGridWidth*p.ColGridHeight == 0 {
			panic("Column grid dimensions must be non-zero")
		}
		if p.PctInputPerCol <= 0 || p.PctInputPerCol > 1 {
			panic("PctInputPerCol must be within (0,1]")
		}
	}
}
