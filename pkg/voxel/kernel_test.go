package voxel_test

import (
	"testing"

	"github.com/jpfielding/voxelkit/pkg/voxel"
	"github.com/stretchr/testify/assert"
)

func TestNewFilterKernel_Valid(t *testing.T) {
	weights := make([]float64, 27)
	weights[13] = 1.0
	k := voxel.NewFilterKernel(3, weights)
	assert.Equal(t, 3, k.Size())
	assert.Equal(t, 1.0, k.Weight(1, 1, 1))
}

func TestNewFilterKernel_FallsBackToIdentity(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		weights []float64
	}{
		{"bad size", 4, make([]float64, 64)},
		{"mismatched weight count", 3, make([]float64, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k := voxel.NewFilterKernel(tc.size, tc.weights)
			assert.Equal(t, 3, k.Size())
			assert.Equal(t, 1.0, k.Weight(1, 1, 1))
			assert.Equal(t, 0.0, k.Weight(0, 0, 0))
		})
	}
}
