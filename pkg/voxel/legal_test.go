package voxel_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jpfielding/voxelkit/pkg/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintLegalNotice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, voxel.PrintLegalNotice(&buf))
	assert.True(t, strings.Contains(buf.String(), "MIT License"))
}
