package voxel_test

import (
	"testing"

	"github.com/jpfielding/voxelkit/pkg/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_InvertRoundTrip(t *testing.T) {
	v := buildGradientVolume(voxel.Size{X: 4, Y: 4, Z: 4})
	p := voxel.NewProcessor(v.Clone(), 3)
	p.Invert()
	p.Invert()
	assert.Equal(t, v.Raw(), p.Volume().Raw())
}

func TestProcessor_ScaleToSize(t *testing.T) {
	v := buildGradientVolume(voxel.Size{X: 4, Y: 4, Z: 4})
	p := voxel.NewProcessor(v, 2)
	require.NoError(t, p.ScaleToSize(voxel.Size{X: 8, Y: 8, Z: 8}, voxel.Trilinear))
	assert.Equal(t, voxel.Size{X: 8, Y: 8, Z: 8}, p.Volume().Size())
}

func TestProcessor_ScaleToSpacing_UsesCurrentOverTarget(t *testing.T) {
	v := voxel.NewVolume(voxel.Size{X: 4, Y: 4, Z: 4}, voxel.Spacing{X: 2, Y: 2, Z: 2})
	p := voxel.NewProcessor(v, 1)
	// halving the spacing should double the voxel count along each axis
	require.NoError(t, p.ScaleToSpacing(voxel.Spacing{X: 1, Y: 1, Z: 1}, voxel.Trilinear))
	assert.Equal(t, voxel.Size{X: 8, Y: 8, Z: 8}, p.Volume().Size())
}

func TestProcessor_ScaleToEqualSpacing(t *testing.T) {
	v := voxel.NewVolume(voxel.Size{X: 4, Y: 4, Z: 4}, voxel.Spacing{X: 2, Y: 1, Z: 4})
	p := voxel.NewProcessor(v, 1)
	require.NoError(t, p.ScaleToEqualSpacing(voxel.Trilinear))
	spacing := p.Volume().Spacing()
	assert.Equal(t, spacing.X, spacing.Y)
	assert.Equal(t, spacing.Y, spacing.Z)
}

func TestProcessor_ThreadCountDoesNotAffectInvertResult(t *testing.T) {
	v := buildGradientVolume(voxel.Size{X: 5, Y: 5, Z: 5})
	one := voxel.NewProcessor(v.Clone(), 1)
	many := voxel.NewProcessor(v.Clone(), 8)
	one.Invert()
	many.Invert()
	assert.Equal(t, one.Volume().Raw(), many.Volume().Raw())
}

func TestProcessor_Stats(t *testing.T) {
	v := voxel.NewVolume(voxel.Size{X: 2, Y: 2, Z: 2}, voxel.Spacing{X: 1, Y: 1, Z: 1})
	for i := range v.Raw() {
		v.Raw()[i] = 100
	}
	p := voxel.NewProcessor(v, 1)
	s := p.Stats()
	assert.Equal(t, 100.0, s.Mean)
}
