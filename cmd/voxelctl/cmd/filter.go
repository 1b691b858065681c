package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpfielding/voxelkit/pkg/voxel"
)

// NewFilterCmd applies a 3D convolution kernel to a raw volume. The kernel
// is built from --kernel-size and --weights; a kernel size other than 3 or
// 5, or a weight count other than size^3, yields the identity kernel.
func NewFilterCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "apply a 3D convolution kernel to a raw volume",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProcessor(cmd)
			if err != nil {
				return err
			}

			size, _ := cmd.Flags().GetInt("kernel-size")
			weights, _ := cmd.Flags().GetFloat64Slice("weights")
			if len(weights) == 0 {
				return fmt.Errorf("--weights must list %d values for a %dx%dx%d kernel", size*size*size, size, size, size)
			}

			kernel := voxel.NewFilterKernel(size, weights)
			p.Filter(kernel)

			return saveProcessor(cmd, p)
		},
	}
	addVolumeFlags(cmd)
	pf := cmd.Flags()
	pf.Int("kernel-size", 3, "kernel edge length (3 or 5)")
	pf.Float64Slice("weights", nil, "flat kernel weights, size^3 values, a+size*(b+size*c) order")
	return cmd
}
