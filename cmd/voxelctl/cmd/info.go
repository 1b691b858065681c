package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpfielding/voxelkit/pkg/voxel"
)

// NewInfoCmd loads a volume, prints its size/spacing and a statistical
// summary, and prints the legal notice.
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "print size, spacing, and a statistical summary of a raw volume",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			bits, _ := cmd.Flags().GetInt("bits-per-voxel")
			size, err := sizeFromFlags(cmd)
			if err != nil {
				return err
			}
			spacing, err := spacingFromFlags(cmd)
			if err != nil {
				return err
			}

			importer := fileRawImporter{path: in, size: size, spacing: spacing, bitsPerVoxel: bits}
			v, err := importer.ImportVolume()
			if err != nil {
				return err
			}
			p := voxel.NewProcessor(v, threadsFromFlags(cmd))

			fmt.Printf("size: %+v\n", v.Size())
			fmt.Printf("spacing: %+v\n", v.Spacing())
			fmt.Printf("voxel count: %d\n", v.VoxelCount())

			summary := p.Stats()
			fmt.Printf("min=%d max=%d mean=%.2f stddev=%.2f median=%.2f\n",
				summary.Min, summary.Max, summary.Mean, summary.StdDev, summary.Median)

			return voxel.PrintLegalNotice(cmd.OutOrStdout())
		},
	}
	pf := cmd.PersistentFlags()
	pf.String("in", "", "path to the input raw volume file")
	pf.IntSlice("size", []int{0, 0, 0}, "volume size as X,Y,Z")
	pf.Float64Slice("spacing", []float64{1, 1, 1}, "volume spacing as X,Y,Z")
	pf.Int("bits-per-voxel", 16, "input sample width in bits (8 or 16)")
	pf.Int("threads", 1, "worker thread count for parallel operations")
	_ = cmd.MarkPersistentFlagRequired("in")
	_ = cmd.MarkPersistentFlagRequired("size")
	return cmd
}
