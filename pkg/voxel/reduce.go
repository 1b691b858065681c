package voxel

// Invert returns a new Volume where every voxel v is replaced by
// (65535 - v). Applying Invert twice reproduces the original volume.
func Invert(volume *Volume, n int) *Volume {
	size := volume.Size()
	out := NewVolume(size, volume.Spacing())
	runPerXSlice(n, size.X, func(x int) {
		for y := 0; y < size.Y; y++ {
			for z := 0; z < size.Z; z++ {
				out.Set(x, y, z, 65535-volume.Get(x, y, z))
			}
		}
	})
	return out
}

// EndianFlip returns a new Volume with the high and low bytes of every
// voxel swapped. Applying EndianFlip twice reproduces the original volume.
func EndianFlip(volume *Volume, n int) *Volume {
	size := volume.Size()
	out := NewVolume(size, volume.Spacing())
	runPerXSlice(n, size.X, func(x int) {
		for y := 0; y < size.Y; y++ {
			for z := 0; z < size.Z; z++ {
				v := volume.Get(x, y, z)
				swapped := (v >> 8) | (v << 8)
				out.Set(x, y, z, swapped)
			}
		}
	})
	return out
}

// Histogram is a 65536-bin count of voxel values, widened to uint32 to
// avoid the silent 16-bit saturation a narrower bin type would suffer on
// any volume with more than 65535 voxels sharing a value.
type Histogram [65536]uint32

// ComputeHistogram tallies every voxel in volume into a Histogram. The sum
// of all bins always equals volume.VoxelCount().
func ComputeHistogram(volume *Volume) Histogram {
	var h Histogram
	for _, v := range volume.Raw() {
		h[v]++
	}
	return h
}

// ComputeWindowedHistogram tallies only voxels in [lo, hi].
func ComputeWindowedHistogram(volume *Volume, lo, hi uint16) Histogram {
	var h Histogram
	for _, v := range volume.Raw() {
		if v >= lo && v <= hi {
			h[v]++
		}
	}
	return h
}

// Total returns the sum of all bin counts.
func (h Histogram) Total() uint64 {
	var total uint64
	for _, c := range h {
		total += uint64(c)
	}
	return total
}
