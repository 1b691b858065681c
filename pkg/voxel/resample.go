package voxel

import (
	"fmt"
	"math"
)

// ScaleMode selects the interpolation kind used during resampling.
type ScaleMode int

const (
	// Nearest samples the closest source voxel.
	Nearest ScaleMode = iota
	// Trilinear blends the 8 surrounding source voxels.
	Trilinear
	// Tricubic blends a 4x4x4 neighborhood of source voxels with a
	// Catmull-Rom-style cubic.
	Tricubic
)

func (m ScaleMode) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Trilinear:
		return "trilinear"
	case Tricubic:
		return "tricubic"
	default:
		return fmt.Sprintf("ScaleMode(%d)", int(m))
	}
}

// Factor is a per-axis resampling scale triple; every component must be
// strictly positive.
type Factor struct {
	X, Y, Z float64
}

// roundAwayFromZero rounds ties away from zero.
func roundAwayFromZero(v float64) int {
	return int(math.Round(v))
}

// clampToU16 clips a float64 into [0, 65535] and truncates to uint16.
func clampToU16(v float64) uint16 {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

// Scale resamples volume by factor using mode and n worker threads,
// returning a new Volume. A factor with all three components equal to 1.0
// is a no-op: Scale returns an equal clone of volume unchanged. Any
// non-positive factor component is rejected with ErrInvalidArgument.
func Scale(volume *Volume, factor Factor, mode ScaleMode, n int) (*Volume, error) {
	if factor.X <= 0 || factor.Y <= 0 || factor.Z <= 0 {
		return nil, fmt.Errorf("%w: scale factor %+v must be positive on every axis", ErrInvalidArgument, factor)
	}
	if factor.X == 1.0 && factor.Y == 1.0 && factor.Z == 1.0 {
		return volume.Clone(), nil
	}

	size := volume.Size()
	spacing := volume.Spacing()

	outSize := Size{
		X: roundAwayFromZero(float64(size.X) * factor.X),
		Y: roundAwayFromZero(float64(size.Y) * factor.Y),
		Z: roundAwayFromZero(float64(size.Z) * factor.Z),
	}
	outSpacing := Spacing{
		X: spacing.X / factor.X,
		Y: spacing.Y / factor.Y,
		Z: spacing.Z / factor.Z,
	}

	out := NewVolume(outSize, outSpacing)

	sample := sampleFuncFor(mode)

	runPerXSlice(n, outSize.X, func(ox int) {
		px := float64(ox) / factor.X
		for oy := 0; oy < outSize.Y; oy++ {
			py := float64(oy) / factor.Y
			for oz := 0; oz < outSize.Z; oz++ {
				pz := float64(oz) / factor.Z
				out.Set(ox, oy, oz, sample(volume, px, py, pz))
			}
		}
	})

	return out, nil
}

// ScaleNearest resamples using nearest-neighbor interpolation.
func ScaleNearest(volume *Volume, factor Factor, n int) (*Volume, error) {
	return Scale(volume, factor, Nearest, n)
}

// ScaleTrilinear resamples using trilinear interpolation.
func ScaleTrilinear(volume *Volume, factor Factor, n int) (*Volume, error) {
	return Scale(volume, factor, Trilinear, n)
}

// ScaleTricubic resamples using tricubic interpolation.
func ScaleTricubic(volume *Volume, factor Factor, n int) (*Volume, error) {
	return Scale(volume, factor, Tricubic, n)
}

func sampleFuncFor(mode ScaleMode) func(v *Volume, px, py, pz float64) uint16 {
	switch mode {
	case Nearest:
		return sampleNearest
	case Trilinear:
		return sampleTrilinear
	case Tricubic:
		return sampleTricubic
	default:
		return sampleNearest
	}
}

func sampleNearest(v *Volume, px, py, pz float64) uint16 {
	size := v.Size()
	x := clampIndex(roundAwayFromZero(px), size.X)
	y := clampIndex(roundAwayFromZero(py), size.Y)
	z := clampIndex(roundAwayFromZero(pz), size.Z)
	return v.Get(x, y, z)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// sampleTrilinear interpolates the 8 voxels surrounding (px, py, pz) with
// three successive linear blends along z, then y, then x.
func sampleTrilinear(v *Volume, px, py, pz float64) uint16 {
	size := v.Size()

	x0, x1, tx := lowHighFrac(px, size.X)
	y0, y1, ty := lowHighFrac(py, size.Y)
	z0, z1, tz := lowHighFrac(pz, size.Z)

	get := func(x, y, z int) float64 { return float64(v.Get(x, y, z)) }

	c00 := lerp(get(x0, y0, z0), get(x0, y0, z1), tz)
	c01 := lerp(get(x0, y1, z0), get(x0, y1, z1), tz)
	c10 := lerp(get(x1, y0, z0), get(x1, y0, z1), tz)
	c11 := lerp(get(x1, y1, z0), get(x1, y1, z1), tz)

	c0 := lerp(c00, c01, ty)
	c1 := lerp(c10, c11, ty)

	return clampToU16(lerp(c0, c1, tx))
}

// lowHighFrac returns floor(p) clamped into [0,n), min(ceil(p), n-1), and
// the fractional distance p-floor(p).
func lowHighFrac(p float64, n int) (lo, hi int, frac float64) {
	lo = int(math.Floor(p))
	if lo < 0 {
		lo = 0
	}
	if lo > n-1 {
		lo = n - 1
	}
	hi = int(math.Ceil(p))
	if hi > n-1 {
		hi = n - 1
	}
	if hi < lo {
		hi = lo
	}
	frac = p - math.Floor(p)
	return lo, hi, frac
}

// cubic is the Catmull-Rom-style cubic interpolant:
//
//	cubic(v, t) = v1 + 0.5*t*((v2-v0) + t*(2v0-5v1+4v2-v3 + t*(3(v1-v2)+v3-v0)))
func cubic(v0, v1, v2, v3, t float64) float64 {
	return v1 + 0.5*t*((v2-v0)+t*((2*v0-5*v1+4*v2-v3)+t*(3*(v1-v2)+v3-v0)))
}

// tricubicAxis returns the 4 sample indices {x-, x0, x1, x+} and fractional
// offset t for a tricubic neighborhood along one axis, collapsing the
// outer offsets to zero (border replication) at the volume edge.
func tricubicAxis(p float64, n int) (idx [4]int, t float64) {
	x0, x1, frac := lowHighFrac(p, n)
	neg := 0
	if x0 >= 1 {
		neg = 1
	}
	pos := 0
	if x1 < n-1 {
		pos = 1
	}
	idx = [4]int{x0 - neg, x0, x1, x1 + pos}
	return idx, frac
}

// sampleTricubic interpolates a 4x4x4 neighborhood around (px, py, pz),
// reducing z first, then y, then x.
func sampleTricubic(v *Volume, px, py, pz float64) uint16 {
	size := v.Size()

	xi, tx := tricubicAxis(px, size.X)
	yi, ty := tricubicAxis(py, size.Y)
	zi, tz := tricubicAxis(pz, size.Z)

	var plane [4][4]float64 // plane[xi][yi] after reducing z
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			var v0, v1, v2, v3 float64
			v0 = float64(v.Get(xi[a], yi[b], zi[0]))
			v1 = float64(v.Get(xi[a], yi[b], zi[1]))
			v2 = float64(v.Get(xi[a], yi[b], zi[2]))
			v3 = float64(v.Get(xi[a], yi[b], zi[3]))
			plane[a][b] = cubic(v0, v1, v2, v3, tz)
		}
	}

	var line [4]float64 // line[xi] after reducing y
	for a := 0; a < 4; a++ {
		line[a] = cubic(plane[a][0], plane[a][1], plane[a][2], plane[a][3], ty)
	}

	result := cubic(line[0], line[1], line[2], line[3], tx)
	return clampToU16(result)
}
