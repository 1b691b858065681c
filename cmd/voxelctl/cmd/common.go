package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpfielding/voxelkit/pkg/voxel"
)

// addVolumeFlags adds the flags every subcommand needs to load and save a
// raw voxel volume.
func addVolumeFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("in", "", "path to the input raw volume file")
	pf.String("out", "", "path to write the output raw volume file")
	pf.IntSlice("size", []int{0, 0, 0}, "volume size as X,Y,Z")
	pf.Float64Slice("spacing", []float64{1, 1, 1}, "volume spacing as X,Y,Z")
	pf.Int("bits-per-voxel", 16, "input sample width in bits (8 or 16)")
	pf.Int("threads", 1, "worker thread count for parallel operations")
	_ = cmd.MarkPersistentFlagRequired("in")
	_ = cmd.MarkPersistentFlagRequired("out")
	_ = cmd.MarkPersistentFlagRequired("size")
}

func sizeFromFlags(cmd *cobra.Command) (voxel.Size, error) {
	dims, err := cmd.Flags().GetIntSlice("size")
	if err != nil || len(dims) != 3 {
		return voxel.Size{}, fmt.Errorf("--size requires exactly 3 comma-separated integers")
	}
	return voxel.Size{X: dims[0], Y: dims[1], Z: dims[2]}, nil
}

func spacingFromFlags(cmd *cobra.Command) (voxel.Spacing, error) {
	dims, err := cmd.Flags().GetFloat64Slice("spacing")
	if err != nil || len(dims) != 3 {
		return voxel.Spacing{}, fmt.Errorf("--spacing requires exactly 3 comma-separated numbers")
	}
	return voxel.Spacing{X: dims[0], Y: dims[1], Z: dims[2]}, nil
}

func threadsFromFlags(cmd *cobra.Command) int {
	n, _ := cmd.Flags().GetInt("threads")
	return n
}

func loadProcessor(cmd *cobra.Command) (*voxel.Processor, error) {
	in, _ := cmd.Flags().GetString("in")
	bits, _ := cmd.Flags().GetInt("bits-per-voxel")
	size, err := sizeFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	spacing, err := spacingFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	importer := fileRawImporter{path: in, size: size, spacing: spacing, bitsPerVoxel: bits}
	v, err := importer.ImportVolume()
	if err != nil {
		return nil, err
	}
	return voxel.NewProcessor(v, threadsFromFlags(cmd)), nil
}

func saveProcessor(cmd *cobra.Command, p *voxel.Processor) error {
	out, _ := cmd.Flags().GetString("out")
	exporter := fileRawExporter{path: out}
	return exporter.ExportVolume(p.Volume())
}
