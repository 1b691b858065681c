package voxel

import "math"

// CutEdgesFraction is CutEdges with threshold given as a fraction of the
// full uint16 range: threshold in [0.0, 1.0] maps linearly to [0, 65535].
// threshold outside that range, or NaN, silently no-ops, returning volume
// unchanged.
func CutEdgesFraction(volume *Volume, threshold float64) *Volume {
	if math.IsNaN(threshold) || threshold < 0.0 || threshold > 1.0 {
		return volume.Clone()
	}
	return CutEdges(volume, uint16(math.Round(threshold*65535)))
}

// CutEdges scans volume for voxels strictly above threshold and crops to
// the tightest axis-aligned bounding box containing them, narrowing each
// of the six bounds in sequence: lo_x, hi_x, lo_y, hi_y, lo_z, hi_z, each
// scan restricted to the bounds already narrowed by the ones before it.
// If no voxel exceeds threshold, the volume is returned unchanged (a clone
// of the full-size input, not an empty volume).
func CutEdges(volume *Volume, threshold uint16) *Volume {
	size := volume.Size()

	loX, hiX := 0, size.X-1
	loY, hiY := 0, size.Y-1
	loZ, hiZ := 0, size.Z-1

	exceeds := func(x, y, z int) bool {
		return volume.Get(x, y, z) > threshold
	}

	found := false

	for x := 0; x <= hiX; x++ {
		if anyExceedsInPlaneX(volume, x, loY, hiY, loZ, hiZ, exceeds) {
			loX = x
			found = true
			break
		}
	}
	if !found {
		return volume.Clone()
	}

	for x := hiX; x >= loX; x-- {
		if anyExceedsInPlaneX(volume, x, loY, hiY, loZ, hiZ, exceeds) {
			hiX = x
			break
		}
	}

	for y := loY; y <= hiY; y++ {
		if anyExceedsInPlaneY(volume, y, loX, hiX, loZ, hiZ, exceeds) {
			loY = y
			break
		}
	}
	for y := hiY; y >= loY; y-- {
		if anyExceedsInPlaneY(volume, y, loX, hiX, loZ, hiZ, exceeds) {
			hiY = y
			break
		}
	}

	for z := loZ; z <= hiZ; z++ {
		if anyExceedsInPlaneZ(volume, z, loX, hiX, loY, hiY, exceeds) {
			loZ = z
			break
		}
	}
	for z := hiZ; z >= loZ; z-- {
		if anyExceedsInPlaneZ(volume, z, loX, hiX, loY, hiY, exceeds) {
			hiZ = z
			break
		}
	}

	outSize := Size{X: hiX - loX + 1, Y: hiY - loY + 1, Z: hiZ - loZ + 1}
	out := NewVolume(outSize, volume.Spacing())
	for x := 0; x < outSize.X; x++ {
		for y := 0; y < outSize.Y; y++ {
			for z := 0; z < outSize.Z; z++ {
				out.Set(x, y, z, volume.Get(loX+x, loY+y, loZ+z))
			}
		}
	}
	return out
}

func anyExceedsInPlaneX(v *Volume, x, loY, hiY, loZ, hiZ int, exceeds func(x, y, z int) bool) bool {
	for y := loY; y <= hiY; y++ {
		for z := loZ; z <= hiZ; z++ {
			if exceeds(x, y, z) {
				return true
			}
		}
	}
	return false
}

func anyExceedsInPlaneY(v *Volume, y, loX, hiX, loZ, hiZ int, exceeds func(x, y, z int) bool) bool {
	for x := loX; x <= hiX; x++ {
		for z := loZ; z <= hiZ; z++ {
			if exceeds(x, y, z) {
				return true
			}
		}
	}
	return false
}

func anyExceedsInPlaneZ(v *Volume, z, loX, hiX, loY, hiY int, exceeds func(x, y, z int) bool) bool {
	for x := loX; x <= hiX; x++ {
		for y := loY; y <= hiY; y++ {
			if exceeds(x, y, z) {
				return true
			}
		}
	}
	return false
}
