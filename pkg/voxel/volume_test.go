package voxel_test

import (
	"testing"

	"github.com/jpfielding/voxelkit/pkg/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVolume_RejectsNonPositiveSize(t *testing.T) {
	assert.Panics(t, func() {
		voxel.NewVolume(voxel.Size{X: 0, Y: 4, Z: 4}, voxel.Spacing{X: 1, Y: 1, Z: 1})
	})
	assert.Panics(t, func() {
		voxel.NewVolume(voxel.Size{X: 4, Y: -1, Z: 4}, voxel.Spacing{X: 1, Y: 1, Z: 1})
	})
}

func TestVolume_GetSetRoundTrip(t *testing.T) {
	v := voxel.NewVolume(voxel.Size{X: 4, Y: 5, Z: 6}, voxel.Spacing{X: 1, Y: 1, Z: 1})
	v.Set(1, 2, 3, 4242)
	assert.Equal(t, uint16(4242), v.Get(1, 2, 3))
	assert.Equal(t, 4*5*6, v.VoxelCount())
}

func TestVolume_At_OutOfRange(t *testing.T) {
	v := voxel.NewVolume(voxel.Size{X: 2, Y: 2, Z: 2}, voxel.Spacing{X: 1, Y: 1, Z: 1})
	_, err := v.At(5, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, voxel.ErrOutOfRange)
}

func TestVolume_SetRaw_DimensionMismatch(t *testing.T) {
	v := voxel.NewVolume(voxel.Size{X: 2, Y: 2, Z: 2}, voxel.Spacing{X: 1, Y: 1, Z: 1})
	err := v.SetRaw(make([]uint16, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, voxel.ErrDimensionMismatch)
}

func TestVolume_Clone_IsIndependent(t *testing.T) {
	v := voxel.NewVolume(voxel.Size{X: 2, Y: 2, Z: 2}, voxel.Spacing{X: 1, Y: 1, Z: 1})
	v.Set(0, 0, 0, 10)
	clone := v.Clone()
	clone.Set(0, 0, 0, 20)
	assert.Equal(t, uint16(10), v.Get(0, 0, 0))
	assert.Equal(t, uint16(20), clone.Get(0, 0, 0))
}

func TestVolume_Slice_RoundTrip(t *testing.T) {
	size := voxel.Size{X: 3, Y: 4, Z: 5}
	v := voxel.NewVolume(size, voxel.Spacing{X: 1, Y: 1, Z: 1})
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			for z := 0; z < size.Z; z++ {
				v.Set(x, y, z, uint16(x+y*10+z*100))
			}
		}
	}

	for _, axis := range []voxel.Axis{voxel.YZAxis, voxel.XZAxis, voxel.XYAxis} {
		t.Run(axis.String(), func(t *testing.T) {
			var i int
			switch axis {
			case voxel.YZAxis:
				i = 1
			case voxel.XZAxis:
				i = 2
			case voxel.XYAxis:
				i = 3
			}
			s, err := v.GetSlice(axis, i)
			require.NoError(t, err)

			other := voxel.NewVolume(size, voxel.Spacing{X: 1, Y: 1, Z: 1})
			require.NoError(t, other.SetSlice(s, i))

			for w := 0; w < s.Width(); w++ {
				for h := 0; h < s.Height(); h++ {
					switch axis {
					case voxel.YZAxis:
						assert.Equal(t, v.Get(i, w, h), other.Get(i, w, h))
					case voxel.XZAxis:
						assert.Equal(t, v.Get(w, i, h), other.Get(w, i, h))
					case voxel.XYAxis:
						assert.Equal(t, v.Get(w, h, i), other.Get(w, h, i))
					}
				}
			}
		})
	}
}

func TestVolume_GetSlice_OutOfRange(t *testing.T) {
	v := voxel.NewVolume(voxel.Size{X: 2, Y: 2, Z: 2}, voxel.Spacing{X: 1, Y: 1, Z: 1})
	_, err := v.GetSlice(voxel.XYAxis, 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, voxel.ErrOutOfRange)
}
