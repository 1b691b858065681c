package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jpfielding/voxelkit/pkg/voxel"
)

// pipelineConfig is the YAML shape of a --config file: default thread
// count, default input spacing, and an ordered list of operations to run
// against the loaded volume.
type pipelineConfig struct {
	Threads int            `yaml:"threads"`
	Spacing voxel.Spacing  `yaml:"spacing"`
	Steps   []pipelineStep `yaml:"steps"`
}

type pipelineStep struct {
	Op             string  `yaml:"op"`
	Center         float64 `yaml:"center,omitempty"`
	Width          float64 `yaml:"width,omitempty"`
	Offset         int64   `yaml:"offset,omitempty"`
	Fn             string  `yaml:"function,omitempty"`
	Factor         float64 `yaml:"factor,omitempty"`
	Mode           string  `yaml:"mode,omitempty"`
	Thresh         int     `yaml:"threshold,omitempty"`
	ThreshFraction float64 `yaml:"threshold_fraction,omitempty"`
}

// NewPipelineCmd loads a YAML config describing a sequence of operations
// and runs them against an input raw volume in order, the Go-native
// analogue of repeating CLI flags across many separate invocations.
func NewPipelineCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "run a sequence of operations described by a YAML config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			raw, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("reading config %q: %w", configPath, err)
			}

			var cfg pipelineConfig
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return fmt.Errorf("parsing config %q: %w", configPath, err)
			}

			in, _ := cmd.Flags().GetString("in")
			bits, _ := cmd.Flags().GetInt("bits-per-voxel")
			size, err := sizeFromFlags(cmd)
			if err != nil {
				return err
			}

			spacing := cfg.Spacing
			if spacing == (voxel.Spacing{}) {
				spacing, err = spacingFromFlags(cmd)
				if err != nil {
					return err
				}
			}

			importer := fileRawImporter{path: in, size: size, spacing: spacing, bitsPerVoxel: bits}
			v, err := importer.ImportVolume()
			if err != nil {
				return err
			}

			threads := cfg.Threads
			if threads < 1 {
				threads = threadsFromFlags(cmd)
			}
			p := voxel.NewProcessor(v, threads)

			for i, step := range cfg.Steps {
				if err := runPipelineStep(p, step); err != nil {
					return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
				}
			}

			return saveProcessor(cmd, p)
		},
	}
	addVolumeFlags(cmd)
	cmd.Flags().String("config", "", "path to a YAML pipeline config")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runPipelineStep(p *voxel.Processor, step pipelineStep) error {
	switch step.Op {
	case "window":
		fn, err := parseWindowFunction(step.Fn)
		if err != nil {
			return err
		}
		return p.Window(step.Center, step.Width, step.Offset, fn)
	case "scale":
		mode, err := parseScaleMode(step.Mode)
		if err != nil {
			return err
		}
		return p.ScaleWithFactor(step.Factor, mode)
	case "cut":
		if step.ThreshFraction != 0 {
			p.CutEdgesFraction(step.ThreshFraction)
			return nil
		}
		if step.Thresh < 0 || step.Thresh > 65535 {
			return fmt.Errorf("threshold %d out of range", step.Thresh)
		}
		p.CutEdges(uint16(step.Thresh))
		return nil
	case "invert":
		p.Invert()
		return nil
	case "flip-endian":
		p.FlipEndian()
		return nil
	default:
		return fmt.Errorf("unknown pipeline op %q", step.Op)
	}
}
