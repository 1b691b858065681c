package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpfielding/voxelkit/pkg/voxel"
)

// NewWindowCmd applies a VOI LUT windowing function to a raw volume.
func NewWindowCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "apply a VOI LUT windowing function (linear, linear_exact, sigmoid)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProcessor(cmd)
			if err != nil {
				return err
			}

			center, _ := cmd.Flags().GetFloat64("center")
			width, _ := cmd.Flags().GetFloat64("width")
			offset, _ := cmd.Flags().GetInt64("offset")
			fnName, _ := cmd.Flags().GetString("function")

			fn, err := parseWindowFunction(fnName)
			if err != nil {
				return err
			}

			if err := p.Window(center, width, offset, fn); err != nil {
				return err
			}

			return saveProcessor(cmd, p)
		},
	}
	addVolumeFlags(cmd)
	pf := cmd.Flags()
	pf.Float64("center", 0, "window center")
	pf.Float64("width", 1, "window width")
	pf.Int64("offset", 0, "value added to every voxel before windowing")
	pf.String("function", "linear", "windowing function (linear, linear_exact, sigmoid)")
	return cmd
}

func parseWindowFunction(name string) (voxel.WindowFunction, error) {
	switch name {
	case "linear":
		return voxel.LinearWindow, nil
	case "linear_exact":
		return voxel.LinearExactWindow, nil
	case "sigmoid":
		return voxel.SigmoidWindow, nil
	default:
		return 0, fmt.Errorf("unknown window function %q", name)
	}
}
