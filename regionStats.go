//
// Code related to region statistics and inspection queries
//

package htm

import (
	"github.com/gonum/floats"
	"github.com/zacg/ints"
)

//Returns true if the column at the given serial index is active.
func (r *Region) ColumnActive(i int) bool {
	return r.columns[i].isActive
}

func (r *Region) CellActive(colIndex, cellIndex int) bool {
	return r.columns[colIndex].cells[cellIndex].isActive
}

func (r *Region) CellPredicting(colIndex, cellIndex int) bool {
	return r.columns[colIndex].cells[cellIndex].isPredicting
}

func (r *Region) CellLearning(colIndex, cellIndex int) bool {
	return r.columns[colIndex].cells[cellIndex].isLearning
}

//Returns the fewest number of time steps in which the column at the
//given serial index believes an activation will occur. A value of 1
//means the column predicts it will become active in the very next time
//step. Zero means the column is making no prediction.
func (r *Region) ColumnPredictionSteps(colIndex int) int {
	col := r.columns[colIndex]
	p := 0
	for _, cell := range col.cells {
		if cell.isPredicting && (p == 0 || cell.predictionSteps < p) {
			p = cell.predictionSteps
		}
	}
	return p
}

//Returns the current prediction values for each column in the region,
//one entry per column in serial order.
func (r *Region) ColumnPredictions() []int {
	out := make([]int, len(r.columns))
	for i := range r.columns {
		out[i] = r.ColumnPredictionSteps(i)
	}
	return out
}

//Returns the output bit-matrix of the most recently run time step: one
//entry per cell in column serial order, true where the cell is either
//active or predicting.
func (r *Region) Output() []bool {
	out := make([]bool, len(r.columns)*r.cellsPerCol)
	for i, col := range r.columns {
		for c, cell := range col.cells {
			out[i*r.cellsPerCol+c] = cell.isActive || cell.isPredicting
		}
	}
	return out
}

//Calculate both the activation accuracy and the prediction accuracy
//for the last processed time step. The activation accuracy is the
//number of correctly predicted active columns out of the total active
//columns. The prediction accuracy is the number of correctly predicted
//active columns out of the total sequence-segment predicted columns.
func (r *Region) LastAccuracy() (float64, float64) {
	sumP := 0
	sumA := 0
	sumAP := 0
	for _, col := range r.columns {
		if col.isActive {
			sumA++
		}
		for _, cell := range col.cells {
			addP := false
			if cell.wasPredicted {
				for _, seg := range cell.segments {
					if seg.WasActive() && seg.IsSequence() {
						addP = true
						break
					}
				}
			}
			if addP {
				sumP++
				if col.isActive {
					sumAP++
				}
				break
			}
		}
	}

	pctA := 0.0
	pctP := 0.0
	if sumA > 0 {
		pctA = float64(sumAP) / float64(sumA)
	}
	if sumP > 0 {
		pctP = float64(sumAP) / float64(sumP)
	}
	return pctA, pctP
}

//Return the total number of segments in the region that match the
//number of prediction steps. Zero counts all segments regardless of
//prediction steps.
func (r *Region) NumSegments(predictionSteps int) int {
	c := 0
	for _, col := range r.columns {
		for _, cell := range col.cells {
			c += cell.NumSegments(predictionSteps)
		}
	}
	return c
}

//RegionStats holds a snapshot of statistics about the segments and
//synapses in a region. The arrays are length 3 and represent
//[total, sequence, non-sequence] segments respectively.
type RegionStats struct {
	ActivationAccuracy float64
	PredictionAccuracy float64

	TotalSegments  [3]int
	MeanSegments   [3]float64
	MedianSegments [3]int
	MostSegments   [3]int

	PendingSegments int
	MeanPending     float64
	MedianPending   int
	MostPending     int

	TotalSynapses  [3]int
	MeanSynapses   [3]float64
	MedianSynapses [3]int
	MostSynapses   [3]int
}

//Scan the current state of the region and return a snapshot of
//statistics about its segments, synapses and pending updates.
func (r *Region) Stats() RegionStats {
	stats := RegionStats{}
	stats.ActivationAccuracy, stats.PredictionAccuracy = r.LastAccuracy()

	numCells := len(r.columns) * r.cellsPerCol
	segCounts := [3][]float64{}
	synCounts := [3][]float64{}
	var pendCounts []float64

	for _, col := range r.columns {
		for _, cell := range col.cells {
			nAll := len(cell.segments)
			nSeq := 0
			for _, seg := range cell.segments {
				if seg.IsSequence() {
					nSeq++
				}
			}
			cellCounts := [3]int{nAll, nSeq, nAll - nSeq}
			for s := 0; s < 3; s++ {
				segCounts[s] = append(segCounts[s], float64(cellCounts[s]))
				if cellCounts[s] > stats.MostSegments[s] {
					stats.MostSegments[s] = cellCounts[s]
				}
			}

			pendCounts = append(pendCounts, float64(len(cell.segmentUpdates)))
			if len(cell.segmentUpdates) > stats.MostPending {
				stats.MostPending = len(cell.segmentUpdates)
			}

			for _, seg := range cell.segments {
				n := seg.NumSynapses()
				synCounts[0] = append(synCounts[0], float64(n))
				if n > stats.MostSynapses[0] {
					stats.MostSynapses[0] = n
				}
				si := 2
				if seg.IsSequence() {
					si = 1
				}
				synCounts[si] = append(synCounts[si], float64(n))
				if n > stats.MostSynapses[si] {
					stats.MostSynapses[si] = n
				}
			}
		}
	}

	stats.PendingSegments = int(floats.Sum(pendCounts))
	stats.MeanPending = floats.Sum(pendCounts) / float64(numCells)
	stats.MedianPending = medianCount(pendCounts)

	for s := 0; s < 3; s++ {
		stats.TotalSegments[s] = int(floats.Sum(segCounts[s]))
		stats.MeanSegments[s] = floats.Sum(segCounts[s]) / float64(numCells)
		stats.MedianSegments[s] = medianCount(segCounts[s])

		stats.TotalSynapses[s] = int(floats.Sum(synCounts[s]))
		if stats.TotalSegments[s] > 0 {
			stats.MeanSynapses[s] = floats.Sum(synCounts[s]) / float64(stats.TotalSegments[s])
		}
		stats.MedianSynapses[s] = medianCount(synCounts[s])
	}
	return stats
}

//Middle element of the sorted counts, 0 when empty.
func medianCount(counts []float64) int {
	if len(counts) == 0 {
		return 0
	}
	sorted := make([]int, len(counts))
	for i, c := range counts {
		sorted[i] = int(c)
	}
	inds := make([]int, len(sorted))
	ints.Argsort(sorted, inds)
	return sorted[len(sorted)/2]
}
