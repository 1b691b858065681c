package voxel

// FilterKernel is a validated K x K x K convolution weight grid, K in
// {3, 5}, stored flat (index = a + K*(b + K*c)) rather than as nested
// slices, per the source's documented intent (a flat buffer avoids pointer
// chasing and matches the value semantics a weight grid should have).
type FilterKernel struct {
	size    int
	weights []float64
}

// identityKernel is the documented fallback for unsupported kernel
// construction: a 3x3x3 grid whose center weight is 1.0 and all others 0.0,
// the no-op convolution.
func identityKernel() FilterKernel {
	w := make([]float64, 27)
	w[1+3*(1+3*1)] = 1.0
	return FilterKernel{size: 3, weights: w}
}

// NewFilterKernel validates size and weights and builds a FilterKernel.
// size must be 3 or 5, and weights must have exactly size^3 entries in
// a+size*(b+size*c) order. On any mismatch this is a documented fallback,
// not an error: NewFilterKernel returns the identity kernel.
func NewFilterKernel(size int, weights []float64) FilterKernel {
	if size != 3 && size != 5 {
		return identityKernel()
	}
	if len(weights) != size*size*size {
		return identityKernel()
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return FilterKernel{size: size, weights: w}
}

// Size returns the kernel's edge length (3 or 5).
func (k FilterKernel) Size() int { return k.size }

// Weight returns the weight at kernel offset (a, b, c), each in [0, Size()).
func (k FilterKernel) Weight(a, b, c int) float64 {
	return k.weights[a+k.size*(b+k.size*c)]
}
