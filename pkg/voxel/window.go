package voxel

import (
	"fmt"
	"math"
)

// WindowFunction selects the VOI LUT shape applied by Window.
type WindowFunction int

const (
	// LinearWindow is the DICOM VOI LUT LINEAR function: a ramp with flat
	// shoulders; a width <= 0 is replaced by 1 internally.
	LinearWindow WindowFunction = iota
	// LinearExactWindow is DICOM's LINEAR_EXACT: the same ramp without the
	// off-by-one width adjustment LinearWindow applies.
	LinearExactWindow
	// SigmoidWindow is DICOM's SIGMOID VOI LUT function.
	SigmoidWindow
)

func (f WindowFunction) String() string {
	switch f {
	case LinearWindow:
		return "linear"
	case LinearExactWindow:
		return "linear_exact"
	case SigmoidWindow:
		return "sigmoid"
	default:
		return fmt.Sprintf("WindowFunction(%d)", int(f))
	}
}

// outputMax is the top of the LUT's output extent, [0, outputMax].
const outputMax = 65535.0

// Window applies a VOI LUT windowing function and returns a new Volume;
// center and width are in the volume's own stored units. offset is added to
// every voxel, in 64-bit arithmetic, before the windowing formula is
// applied, matching the original handler's apply(volume, func, center,
// width, offset, threads) signature. width must be positive for
// LinearExactWindow and SigmoidWindow; LinearWindow accepts width <= 0 by
// clamping it to 1 (a documented fallback, not an error).
func Window(volume *Volume, center, width float64, offset int64, fn WindowFunction, n int) (*Volume, error) {
	if fn != LinearWindow && width <= 0 {
		return nil, fmt.Errorf("%w: window width %g must be positive for %v", ErrInvalidArgument, width, fn)
	}

	size := volume.Size()
	out := NewVolume(size, volume.Spacing())

	apply := windowFuncFor(fn, center, width)

	runPerXSlice(n, size.X, func(x int) {
		for y := 0; y < size.Y; y++ {
			for z := 0; z < size.Z; z++ {
				shifted := int64(volume.Get(x, y, z)) + offset
				out.Set(x, y, z, apply(shifted))
			}
		}
	})

	return out, nil
}

func windowFuncFor(fn WindowFunction, center, width float64) func(int64) uint16 {
	switch fn {
	case LinearExactWindow:
		return linearExactWindowFunc(center, width)
	case SigmoidWindow:
		return sigmoidWindowFunc(center, width)
	default:
		return linearWindowFunc(center, width)
	}
}

// linearWindowFunc implements DICOM PS3.3 C.11.2.1.2.1 VOI LUT LINEAR. The
// offset-shifted sample arrives as int64 and is only converted to float64
// for the ramp comparison, keeping the shift itself free of float rounding.
// width <= 0 is clamped to 1.
func linearWindowFunc(center, width float64) func(int64) uint16 {
	if width <= 0 {
		width = 1
	}
	lo := center - 0.5 - (width-1)/2
	hi := center - 0.5 + (width-1)/2
	return func(v int64) uint16 {
		x := float64(v)
		switch {
		case x <= lo:
			return 0
		case x > hi:
			return outputMax
		default:
			return clampToU16(((x-(center-0.5))/(width-1) + 0.5) * outputMax)
		}
	}
}

// linearExactWindowFunc implements DICOM's LINEAR_EXACT VOI LUT function:
// the same ramp as LinearWindow but without the (width-1) off-by-one
// adjustment.
func linearExactWindowFunc(center, width float64) func(int64) uint16 {
	lo := center - width/2
	hi := center + width/2
	return func(v int64) uint16 {
		x := float64(v)
		switch {
		case x <= lo:
			return 0
		case x > hi:
			return outputMax
		default:
			return clampToU16(((x-center)/width + 0.5) * outputMax)
		}
	}
}

// sigmoidWindowFunc implements DICOM's SIGMOID VOI LUT function.
func sigmoidWindowFunc(center, width float64) func(int64) uint16 {
	return func(v int64) uint16 {
		x := float64(v)
		return clampToU16(outputMax / (1 + math.Exp(-4*(x-center)/width)))
	}
}
