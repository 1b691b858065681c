package voxel

import "gonum.org/v1/gonum/stat"

// Summary is a weighted-sample statistical summary of a volume's voxel
// value distribution, computed from its Histogram rather than by a second
// pass over the raw voxel buffer.
type Summary struct {
	Min, Max   uint16
	Mean       float64
	StdDev     float64
	Median     float64
	VoxelCount uint64
}

// Stats computes a Summary over volume's voxel values using its Histogram
// as a weighted sample: bin index is the value, bin count is the weight.
// Returns the zero Summary if volume has zero voxels.
func Stats(volume *Volume) Summary {
	h := ComputeHistogram(volume)
	return statsFromHistogram(h)
}

func statsFromHistogram(h Histogram) Summary {
	total := h.Total()
	if total == 0 {
		return Summary{}
	}

	var values, weights []float64
	var min, max uint16
	minSet := false
	for v, c := range h {
		if c == 0 {
			continue
		}
		if !minSet {
			min = uint16(v)
			minSet = true
		}
		max = uint16(v)
		values = append(values, float64(v))
		weights = append(weights, float64(c))
	}

	mean := stat.Mean(values, weights)
	stdDev := stat.StdDev(values, mean, weights)
	median := stat.Quantile(0.5, stat.Empirical, values, weights)

	return Summary{
		Min:        min,
		Max:        max,
		Mean:       mean,
		StdDev:     stdDev,
		Median:     median,
		VoxelCount: total,
	}
}
