package voxel

// ApplyKernel convolves volume with kernel using n worker threads and
// returns a new Volume of the same size and spacing. Out-of-bounds taps are
// resolved by "extend by center": rather than clamping to the nearest edge
// voxel (as a typical border-replicate convolution would), an out-of-bounds
// tap is replaced by the center voxel of the current output position. This
// is a deliberate deviation from clamp-to-edge, preserved from the source.
func ApplyKernel(volume *Volume, kernel FilterKernel, n int) *Volume {
	size := volume.Size()
	out := NewVolume(size, volume.Spacing())

	half := kernel.Size() / 2

	runPerXSlice(n, size.X, func(x int) {
		for y := 0; y < size.Y; y++ {
			for z := 0; z < size.Z; z++ {
				center := float64(volume.Get(x, y, z))
				var acc float64
				for a := 0; a < kernel.Size(); a++ {
					sx := x + a - half
					for b := 0; b < kernel.Size(); b++ {
						sy := y + b - half
						for c := 0; c < kernel.Size(); c++ {
							sz := z + c - half
							w := kernel.Weight(a, b, c)
							if w == 0 {
								continue
							}
							var tap float64
							if sx < 0 || sx >= size.X || sy < 0 || sy >= size.Y || sz < 0 || sz >= size.Z {
								tap = center
							} else {
								tap = float64(volume.Get(sx, sy, sz))
							}
							acc += w * tap
						}
					}
				}
				out.Set(x, y, z, clampToU16(acc))
			}
		}
	})

	return out
}
