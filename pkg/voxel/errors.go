package voxel

import "errors"

// Error taxonomy for the core. Callers distinguish failure classes
// with errors.Is against these sentinels; call sites wrap them with
// fmt.Errorf("...: %w", ...) to attach the offending values.
var (
	// ErrInvalidArgument marks an argument the core can reason about but
	// refuses: a non-positive scale factor, a non-positive window width.
	ErrInvalidArgument = errors.New("voxel: invalid argument")

	// ErrDimensionMismatch marks a size/shape contract violation: a slice
	// whose width/height doesn't match the target axis, a raw buffer whose
	// length doesn't match the voxel count.
	ErrDimensionMismatch = errors.New("voxel: dimension mismatch")

	// ErrOutOfRange marks a coordinate or index outside its valid bound.
	ErrOutOfRange = errors.New("voxel: out of range")
)
