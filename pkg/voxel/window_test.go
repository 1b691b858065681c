package voxel_test

import (
	"testing"

	"github.com/jpfielding/voxelkit/pkg/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowVolume(values ...uint16) *voxel.Volume {
	v := voxel.NewVolume(voxel.Size{X: len(values), Y: 1, Z: 1}, voxel.Spacing{X: 1, Y: 1, Z: 1})
	for i, val := range values {
		v.Set(i, 0, 0, val)
	}
	return v
}

func TestWindow_Linear_BelowAndAboveRange(t *testing.T) {
	v := windowVolume(0, 1000, 2000, 65535)
	out, err := voxel.Window(v, 1000, 200, 0, voxel.LinearWindow, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), out.Get(0, 0, 0))
	assert.Equal(t, uint16(65535), out.Get(3, 0, 0))
}

func TestWindow_Linear_CenterMapsNearMidOutput(t *testing.T) {
	v := windowVolume(1000)
	out, err := voxel.Window(v, 1000, 200, 0, voxel.LinearWindow, 1)
	require.NoError(t, err)
	got := out.Get(0, 0, 0)
	assert.InDelta(t, 32767, int(got), 1000)
}

func TestWindow_LinearExact_RejectsNonPositiveWidth(t *testing.T) {
	v := windowVolume(1000)
	_, err := voxel.Window(v, 1000, 0, 0, voxel.LinearExactWindow, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, voxel.ErrInvalidArgument)
}

func TestWindow_Linear_ZeroWidthIsClampedNotRejected(t *testing.T) {
	v := windowVolume(1000)
	_, err := voxel.Window(v, 1000, 0, 0, voxel.LinearWindow, 1)
	require.NoError(t, err)
}

func TestWindow_Sigmoid_CenterMapsToHalfOutput(t *testing.T) {
	v := windowVolume(1000)
	out, err := voxel.Window(v, 1000, 200, 0, voxel.SigmoidWindow, 1)
	require.NoError(t, err)
	assert.InDelta(t, 32767, int(out.Get(0, 0, 0)), 1)
}

func TestWindow_Linear_OffsetShiftsEffectiveCenter(t *testing.T) {
	v := windowVolume(1000)
	out, err := voxel.Window(v, 1200, 200, 200, voxel.LinearWindow, 1)
	require.NoError(t, err)
	got := out.Get(0, 0, 0)
	assert.InDelta(t, 32767, int(got), 1000)
}

func TestWindow_Linear_OffsetChangesResultRelativeToZeroOffset(t *testing.T) {
	v := windowVolume(1000)
	withoutOffset, err := voxel.Window(v, 1000, 200, 0, voxel.LinearWindow, 1)
	require.NoError(t, err)
	withOffset, err := voxel.Window(v, 1000, 200, 300, voxel.LinearWindow, 1)
	require.NoError(t, err)
	assert.NotEqual(t, withoutOffset.Get(0, 0, 0), withOffset.Get(0, 0, 0))
}
