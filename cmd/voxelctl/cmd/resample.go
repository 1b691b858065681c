package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpfielding/voxelkit/pkg/voxel"
)

// NewResampleCmd resamples a raw volume by a per-axis scale factor using
// nearest, trilinear, or tricubic interpolation.
func NewResampleCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resample",
		Short: "resample a raw volume (nearest, trilinear, tricubic)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProcessor(cmd)
			if err != nil {
				return err
			}

			factors, _ := cmd.Flags().GetFloat64Slice("factor")
			if len(factors) != 3 {
				return fmt.Errorf("--factor requires exactly 3 comma-separated numbers")
			}
			modeName, _ := cmd.Flags().GetString("mode")
			mode, err := parseScaleMode(modeName)
			if err != nil {
				return err
			}

			factor := voxel.Factor{X: factors[0], Y: factors[1], Z: factors[2]}
			if err := p.Scale(factor, mode); err != nil {
				return err
			}

			return saveProcessor(cmd, p)
		},
	}
	addVolumeFlags(cmd)
	pf := cmd.Flags()
	pf.Float64Slice("factor", []float64{1, 1, 1}, "per-axis scale factor as X,Y,Z")
	pf.String("mode", "trilinear", "interpolation mode (nearest, trilinear, tricubic)")
	return cmd
}

func parseScaleMode(name string) (voxel.ScaleMode, error) {
	switch name {
	case "nearest":
		return voxel.Nearest, nil
	case "trilinear":
		return voxel.Trilinear, nil
	case "tricubic":
		return voxel.Tricubic, nil
	default:
		return 0, fmt.Errorf("unknown interpolation mode %q", name)
	}
}
