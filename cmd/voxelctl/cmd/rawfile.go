package cmd

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/jpfielding/voxelkit/pkg/voxel"
)

// fileRawImporter reads a headerless raw voxel file: just bitsPerVoxel-wide
// samples in X-fastest, Z-slowest order, no header. Size and spacing are
// supplied by the caller, mirroring the source RawReader's contract (the
// file format itself carries no dimensional metadata).
type fileRawImporter struct {
	path         string
	size         voxel.Size
	spacing      voxel.Spacing
	bitsPerVoxel int
}

func (f fileRawImporter) ImportVolume() (*voxel.Volume, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading raw file %q: %w", f.path, err)
	}

	v := voxel.NewVolume(f.size, f.spacing)
	want := v.VoxelCount() * f.bitsPerVoxel / 8
	if len(data) != want {
		return nil, fmt.Errorf("raw file %q has %d bytes, size %+v at %d bits/voxel expects %d",
			f.path, len(data), f.size, f.bitsPerVoxel, want)
	}

	raw := make([]uint16, v.VoxelCount())
	switch f.bitsPerVoxel {
	case 8:
		for i, b := range data {
			raw[i] = voxel.From8Bit(b)
		}
	case 16:
		for i := range raw {
			raw[i] = binary.LittleEndian.Uint16(data[i*2 : i*2+2])
		}
	default:
		return nil, fmt.Errorf("unsupported bits-per-voxel %d", f.bitsPerVoxel)
	}
	if err := v.SetRaw(raw); err != nil {
		return nil, err
	}
	return v, nil
}

// fileRawExporter writes a Volume as a headerless 16-bit little-endian raw
// file.
type fileRawExporter struct {
	path string
}

func (f fileRawExporter) ExportVolume(v *voxel.Volume) error {
	raw := v.Raw()
	out := make([]byte, len(raw)*2)
	for i, val := range raw {
		binary.LittleEndian.PutUint16(out[i*2:i*2+2], val)
	}
	if err := os.WriteFile(f.path, out, 0o644); err != nil {
		return fmt.Errorf("writing raw file %q: %w", f.path, err)
	}
	return nil
}
