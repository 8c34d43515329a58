//
// Code related to region printing
//

package htm

import (
	"fmt"
)

//Returns a printable grid of the region's column activity, one row per
//grid row with 1 for active columns and . for inactive ones.
func (r *Region) ColumnActivityString() string {
	result := ""
	for cy := 0; cy < r.height; cy++ {
		for cx := 0; cx < r.width; cx++ {
			if r.GetColumn(cx, cy).isActive {
				result += "1"
			} else {
				result += "."
			}
		}
		result += "\n"
	}
	return result
}

//Returns a printable grid of the region's column predictions, one row
//per grid row with the prediction step count for predicting columns
//and . for the rest.
func (r *Region) PredictionsString() string {
	result := ""
	for cy := 0; cy < r.height; cy++ {
		for cx := 0; cx < r.width; cx++ {
			p := r.ColumnPredictionSteps(cy*r.width + cx)
			if p > 0 {
				result += fmt.Sprintf("%v", p)
			} else {
				result += "."
			}
		}
		result += "\n"
	}
	return result
}

//Print the region's column activity grid to standard output.
func (r *Region) PrintColumnActivity() {
	fmt.Println(r.ColumnActivityString())
}

//Print the region's column prediction grid to standard output.
func (r *Region) PrintPredictions() {
	fmt.Println(r.PredictionsString())
}

func (s RegionStats) String() string {
	result := "Stats: \n"
	result += fmt.Sprintf("ActivationAccuracy %v \n", s.ActivationAccuracy)
	result += fmt.Sprintf("PredictionAccuracy %v \n", s.PredictionAccuracy)
	result += fmt.Sprintf("TotalSegments %v \n", s.TotalSegments)
	result += fmt.Sprintf("MeanSegments %v \n", s.MeanSegments)
	result += fmt.Sprintf("MedianSegments %v \n", s.MedianSegments)
	result += fmt.Sprintf("MostSegments %v \n", s.MostSegments)
	result += fmt.Sprintf("PendingSegments %v \n", s.PendingSegments)
	result += fmt.Sprintf("MeanPending %v \n", s.MeanPending)
	result += fmt.Sprintf("MedianPending %v \n", s.MedianPending)
	result += fmt.Sprintf("MostPending %v \n", s.MostPending)
	result += fmt.Sprintf("TotalSynapses %v \n", s.TotalSynapses)
	result += fmt.Sprintf("MeanSynapses %v \n", s.MeanSynapses)
	result += fmt.Sprintf("MedianSynapses %v \n", s.MedianSynapses)
	result += fmt.Sprintf("MostSynapses %v \n", s.MostSynapses)
	return result
}
