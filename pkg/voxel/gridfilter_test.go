package voxel_test

import (
	"testing"

	"github.com/jpfielding/voxelkit/pkg/voxel"
	"github.com/stretchr/testify/assert"
)

func TestApplyKernel_IdentityLeavesVolumeUnchanged(t *testing.T) {
	v := buildGradientVolume(voxel.Size{X: 5, Y: 5, Z: 5})
	identity := make([]float64, 27)
	identity[1+3*(1+3*1)] = 1.0
	kernel := voxel.NewFilterKernel(3, identity)

	out := voxel.ApplyKernel(v, kernel, 2)
	assert.Equal(t, v.Raw(), out.Raw())
}

func TestApplyKernel_UniformAverageSmoothsConstantVolumeToItself(t *testing.T) {
	size := voxel.Size{X: 6, Y: 6, Z: 6}
	v := voxel.NewVolume(size, voxel.Spacing{X: 1, Y: 1, Z: 1})
	for i := range v.Raw() {
		v.Raw()[i] = 500
	}

	weights := make([]float64, 27)
	for i := range weights {
		weights[i] = 1.0 / 27.0
	}
	kernel := voxel.NewFilterKernel(3, weights)

	out := voxel.ApplyKernel(v, kernel, 2)
	for _, val := range out.Raw() {
		assert.Equal(t, uint16(500), val)
	}
}

func TestApplyKernel_ExtendByCenterAtEdge(t *testing.T) {
	size := voxel.Size{X: 3, Y: 3, Z: 3}
	v := voxel.NewVolume(size, voxel.Spacing{X: 1, Y: 1, Z: 1})
	v.Set(0, 0, 0, 1000)

	// a kernel whose only nonzero weight points one voxel further negative
	// than the corner at (0,0,0) has: the corner's out-of-bounds tap must
	// resolve to the corner's own value (the center), not zero.
	weights := make([]float64, 27)
	weights[0] = 1.0 // offset (-1,-1,-1) relative to center
	kernel := voxel.NewFilterKernel(3, weights)

	out := voxel.ApplyKernel(v, kernel, 1)
	assert.Equal(t, uint16(1000), out.Get(0, 0, 0))
}
