package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// NewFlipEndianCmd swaps the high and low bytes of every voxel in a raw
// volume.
func NewFlipEndianCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flip-endian",
		Short: "swap the high and low bytes of every voxel",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProcessor(cmd)
			if err != nil {
				return err
			}
			p.FlipEndian()
			return saveProcessor(cmd, p)
		},
	}
	addVolumeFlags(cmd)
	return cmd
}
