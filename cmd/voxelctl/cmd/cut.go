package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCutCmd crops a raw volume to the tightest bounding box of voxels
// exceeding a threshold.
func NewCutCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cut",
		Short: "crop a raw volume to the bounding box of voxels above a threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProcessor(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("threshold-fraction") {
				fraction, _ := cmd.Flags().GetFloat64("threshold-fraction")
				p.CutEdgesFraction(fraction)
				return saveProcessor(cmd, p)
			}

			threshold, _ := cmd.Flags().GetInt("threshold")
			if threshold < 0 || threshold > 65535 {
				return fmt.Errorf("--threshold must be in [0,65535], got %d", threshold)
			}
			p.CutEdges(uint16(threshold))

			return saveProcessor(cmd, p)
		},
	}
	addVolumeFlags(cmd)
	cmd.Flags().Int("threshold", 0, "voxels above this value define the crop region")
	cmd.Flags().Float64("threshold-fraction", 0, "threshold as a fraction of [0,1], mapped to [0,65535]; overrides --threshold, silently no-ops if outside [0,1]")
	return cmd
}
