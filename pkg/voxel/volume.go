// Package voxel implements the numerical core of a volumetric image
// processing toolkit: a dense 3D scalar voxel container, a slice-parallel
// worker pool, and the resampling/filtering/windowing/cropping/reduction
// operations that run over it.
package voxel

import "fmt"

// Axis selects which plane a Slice is anchored to.
type Axis int

const (
	// YZAxis is the plane of fixed x; width=Y, height=Z.
	YZAxis Axis = iota
	// XZAxis is the plane of fixed y; width=X, height=Z.
	XZAxis
	// XYAxis is the plane of fixed z; width=X, height=Y.
	XYAxis
)

func (a Axis) String() string {
	switch a {
	case YZAxis:
		return "YZ"
	case XZAxis:
		return "XZ"
	case XYAxis:
		return "XY"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Size is a positive (X, Y, Z) voxel extent.
type Size struct {
	X, Y, Z int
}

// Spacing is a positive (sx, sy, sz) physical spacing triple, unitless from
// the core's perspective.
type Spacing struct {
	X, Y, Z float64
}

// Volume is a dense scalar field in linear layout, X-fastest, Z-slowest:
// index i = x + X*(y + Y*z). All voxels are unsigned 16-bit.
type Volume struct {
	size    Size
	spacing Spacing
	data    []uint16
}

// NewVolume allocates a zero-filled Volume of the given size and spacing.
// Size components must be positive and their product must fit in an int;
// NewVolume panics otherwise, matching the contract-violation semantics of
// out-of-range voxel access elsewhere in this package.
func NewVolume(size Size, spacing Spacing) *Volume {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		panic(fmt.Errorf("%w: non-positive volume size %+v", ErrInvalidArgument, size))
	}
	n := size.X * size.Y * size.Z
	if n <= 0 || n/size.X/size.Y != size.Z {
		panic(fmt.Errorf("%w: voxel count overflows int for size %+v", ErrInvalidArgument, size))
	}
	return &Volume{
		size:    size,
		spacing: spacing,
		data:    make([]uint16, n),
	}
}

// Size returns the volume's (X, Y, Z) extent.
func (v *Volume) Size() Size { return v.size }

// Spacing returns the volume's per-axis physical spacing.
func (v *Volume) Spacing() Spacing { return v.spacing }

// VoxelCount returns X*Y*Z.
func (v *Volume) VoxelCount() int { return len(v.data) }

// index converts a voxel coordinate to a linear data index. Callers must
// pre-bound x, y, z; index panics otherwise, the Go-idiomatic analogue of
// the source's "may assert in debug, UB in release" contract.
func (v *Volume) index(x, y, z int) int {
	if x < 0 || x >= v.size.X || y < 0 || y >= v.size.Y || z < 0 || z >= v.size.Z {
		panic(fmt.Errorf("%w: (%d,%d,%d) outside size %+v", ErrOutOfRange, x, y, z, v.size))
	}
	return x + v.size.X*(y+v.size.Y*z)
}

// Get returns the voxel value at (x, y, z).
func (v *Volume) Get(x, y, z int) uint16 {
	return v.data[v.index(x, y, z)]
}

// Set stores val at (x, y, z).
func (v *Volume) Set(x, y, z int, val uint16) {
	v.data[v.index(x, y, z)] = val
}

// At is the bounds-checked counterpart to Get: it reports ErrOutOfRange
// instead of panicking, for public API callers that pass caller-controlled
// coordinates.
func (v *Volume) At(x, y, z int) (uint16, error) {
	if x < 0 || x >= v.size.X || y < 0 || y >= v.size.Y || z < 0 || z >= v.size.Z {
		return 0, fmt.Errorf("%w: (%d,%d,%d) outside size %+v", ErrOutOfRange, x, y, z, v.size)
	}
	return v.data[v.index(x, y, z)], nil
}

// Raw returns the volume's underlying linear buffer. Mutating it mutates
// the volume.
func (v *Volume) Raw() []uint16 { return v.data }

// SetRaw replaces the volume's linear buffer. len(data) must equal
// VoxelCount(); otherwise SetRaw reports ErrDimensionMismatch and leaves
// the volume untouched.
func (v *Volume) SetRaw(data []uint16) error {
	if len(data) != len(v.data) {
		return fmt.Errorf("%w: raw buffer has %d voxels, volume has %d", ErrDimensionMismatch, len(data), len(v.data))
	}
	v.data = data
	return nil
}

// Clone returns a deep copy of the volume.
func (v *Volume) Clone() *Volume {
	out := &Volume{size: v.size, spacing: v.spacing, data: make([]uint16, len(v.data))}
	copy(out.data, v.data)
	return out
}

// Slice is a 2D, owned view of one plane of a Volume, anchored to Axis.
// Pixel indexing is row-major over the slice's own (width, height):
// pixel[w,h] = buffer[h + height*w].
type Slice struct {
	axis   Axis
	width  int
	height int
	pixels []uint16
}

// NewSlice allocates a zero-filled Slice of the given axis/width/height.
func NewSlice(axis Axis, width, height int) *Slice {
	return &Slice{axis: axis, width: width, height: height, pixels: make([]uint16, width*height)}
}

// Axis returns the slice's anchor axis.
func (s *Slice) Axis() Axis { return s.axis }

// Width returns the slice's width.
func (s *Slice) Width() int { return s.width }

// Height returns the slice's height.
func (s *Slice) Height() int { return s.height }

func (s *Slice) index(w, h int) int {
	if w < 0 || w >= s.width || h < 0 || h >= s.height {
		panic(fmt.Errorf("%w: (%d,%d) outside slice %dx%d", ErrOutOfRange, w, h, s.width, s.height))
	}
	return h + s.height*w
}

// Pixel returns the value at (w, h) in the slice's own coordinate frame.
func (s *Slice) Pixel(w, h int) uint16 {
	return s.pixels[s.index(w, h)]
}

// SetPixel stores val at (w, h) in the slice's own coordinate frame.
func (s *Slice) SetPixel(w, h int, val uint16) {
	s.pixels[s.index(w, h)] = val
}

// planeExtent returns the (width, height) a Slice of the given axis must
// have for this volume, and the number of slices along that axis.
func (v *Volume) planeExtent(axis Axis) (width, height, count int) {
	switch axis {
	case YZAxis:
		return v.size.Y, v.size.Z, v.size.X
	case XZAxis:
		return v.size.X, v.size.Z, v.size.Y
	case XYAxis:
		return v.size.X, v.size.Y, v.size.Z
	default:
		panic(fmt.Errorf("%w: unknown axis %v", ErrInvalidArgument, axis))
	}
}

// GetSlice extracts the i-th plane along axis as an owned Slice.
func (v *Volume) GetSlice(axis Axis, i int) (*Slice, error) {
	width, height, count := v.planeExtent(axis)
	if i < 0 || i >= count {
		return nil, fmt.Errorf("%w: slice index %d outside [0,%d)", ErrOutOfRange, i, count)
	}
	s := NewSlice(axis, width, height)
	switch axis {
	case YZAxis:
		for y := 0; y < width; y++ {
			for z := 0; z < height; z++ {
				s.SetPixel(y, z, v.Get(i, y, z))
			}
		}
	case XZAxis:
		for x := 0; x < width; x++ {
			for z := 0; z < height; z++ {
				s.SetPixel(x, z, v.Get(x, i, z))
			}
		}
	case XYAxis:
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				s.SetPixel(x, y, v.Get(x, y, i))
			}
		}
	}
	return s, nil
}

// SetSlice writes slice into the i-th plane of its own axis. The slice's
// width/height must match the target axis's plane extent.
func (v *Volume) SetSlice(slice *Slice, i int) error {
	width, height, count := v.planeExtent(slice.axis)
	if slice.width != width || slice.height != height {
		return fmt.Errorf("%w: slice is %dx%d, axis %v expects %dx%d",
			ErrDimensionMismatch, slice.width, slice.height, slice.axis, width, height)
	}
	if i < 0 || i >= count {
		return fmt.Errorf("%w: slice index %d outside [0,%d)", ErrOutOfRange, i, count)
	}
	switch slice.axis {
	case YZAxis:
		for y := 0; y < width; y++ {
			for z := 0; z < height; z++ {
				v.Set(i, y, z, slice.Pixel(y, z))
			}
		}
	case XZAxis:
		for x := 0; x < width; x++ {
			for z := 0; z < height; z++ {
				v.Set(x, i, z, slice.Pixel(x, z))
			}
		}
	case XYAxis:
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				v.Set(x, y, i, slice.Pixel(x, y))
			}
		}
	}
	return nil
}
