package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// NewInvertCmd inverts every voxel in a raw volume.
func NewInvertCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invert",
		Short: "invert every voxel value (65535 - v)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProcessor(cmd)
			if err != nil {
				return err
			}
			p.Invert()
			return saveProcessor(cmd, p)
		},
	}
	addVolumeFlags(cmd)
	return cmd
}
