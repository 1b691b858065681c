// Package cmd implements the voxelctl command tree: a root command plus
// one subcommand per voxel.Processor operation.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/jpfielding/voxelkit/pkg/logging"
)

// NewRoot builds the voxelctl command tree.
func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	root := &cobra.Command{
		Use:   "voxelctl",
		Short: "a CLI to inspect and transform volumetric scalar fields",
		Long:  "voxelctl loads a raw voxel volume, applies one transform, and writes the result back out",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFile, _ := cmd.Flags().GetString("log-file")

			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				level = slog.LevelInfo
			}

			var w io.Writer = os.Stdout
			if logFile != "" {
				w = &lumberjack.Logger{
					Filename:   logFile,
					MaxSize:    100,
					MaxBackups: 3,
					MaxAge:     28,
				}
			}
			slog.SetDefault(logging.Logger(w, logFile != "", level))

			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				slog.WarnContext(ctx, "invalid log level, defaulting to INFO", "level", logLevel, "error", err)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd, 0)
		},
	}

	root.AddCommand(
		NewVersionCmd(gitsha),
		NewInfoCmd(ctx),
		NewWindowCmd(ctx),
		NewFilterCmd(ctx),
		NewResampleCmd(ctx),
		NewCutCmd(ctx),
		NewInvertCmd(ctx),
		NewFlipEndianCmd(ctx),
		NewPipelineCmd(ctx),
	)

	pf := root.PersistentFlags()
	pf.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "path to a rotating log file; defaults to stdout")
	return root
}

func printCommandTree(cmd *cobra.Command, indent int) {
	fmt.Println(strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, sub := range cmd.Commands() {
		printCommandTree(sub, indent+1)
	}
}

// NewVersionCmd reports the build's git SHA.
func NewVersionCmd(gitsha string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(gitsha)
		},
	}
}
