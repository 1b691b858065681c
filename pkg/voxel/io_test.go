package voxel_test

import (
	"testing"

	"github.com/jpfielding/voxelkit/pkg/voxel"
	"github.com/stretchr/testify/assert"
)

func TestFrom8Bit_To8Bit(t *testing.T) {
	assert.Equal(t, uint16(0), voxel.From8Bit(0))
	assert.Equal(t, uint16(255*255), voxel.From8Bit(255))

	assert.Equal(t, uint8(0), voxel.To8Bit(0))
	assert.Equal(t, uint8(255), voxel.To8Bit(255*255))
}

func TestRGBColorToMono16_IncorporatesAllChannels(t *testing.T) {
	allRed := voxel.RGBColorToMono16(255, 0, 0)
	allGreen := voxel.RGBColorToMono16(0, 255, 0)
	allBlue := voxel.RGBColorToMono16(0, 0, 255)

	assert.NotEqual(t, allRed, allGreen)
	assert.NotEqual(t, allGreen, allBlue)
	assert.NotEqual(t, allRed, allBlue)
}

func TestRGBColorToMono16_Black(t *testing.T) {
	assert.Equal(t, uint16(0), voxel.RGBColorToMono16(0, 0, 0))
}
