package voxel

import (
	"log/slog"
	"time"

	"github.com/jpfielding/voxelkit/pkg/util"
)

// Processor owns one Volume and a thread count, and composes every
// operation in this package into a single entry point, the Go analogue of
// VolumeDataHandler's public surface. Every operation that transforms the
// volume logs one slog record tagged with a per-call correlation id, naming
// the operation, the volume's size, the thread count used, and the call's
// duration; the accessors (Volume, SetVolume, Histogram, WindowedHistogram,
// Stats) do not log.
type Processor struct {
	volume  *Volume
	threads int
}

// NewProcessor wraps volume with a Processor using threads worker threads
// for every parallel operation. threads < 1 is clamped to 1 by the pool
// itself; NewProcessor does not duplicate that clamp.
func NewProcessor(volume *Volume, threads int) *Processor {
	return &Processor{volume: volume, threads: threads}
}

// Volume returns the Processor's current volume.
func (p *Processor) Volume() *Volume { return p.volume }

// SetVolume replaces the Processor's current volume.
func (p *Processor) SetVolume(v *Volume) { p.volume = v }

func (p *Processor) logOp(op string, start time.Time, err error) {
	id := util.HashUUID(struct {
		Op   string
		Size Size
		At   string
	}{Op: op, Size: p.volume.Size(), At: start.String()})

	attrs := []any{
		slog.String("op", op),
		slog.Any("size", p.volume.Size()),
		slog.Int("threads", p.threads),
		slog.Duration("duration", time.Since(start)),
		slog.String("correlation_id", id),
	}
	if err != nil {
		slog.Warn("voxel operation failed", append(attrs, slog.String("error", err.Error()))...)
		return
	}
	slog.Info("voxel operation complete", attrs...)
}

// Scale resamples the current volume by factor using mode, replacing it.
func (p *Processor) Scale(factor Factor, mode ScaleMode) error {
	start := time.Now()
	out, err := Scale(p.volume, factor, mode, p.threads)
	p.logOp("scale", start, err)
	if err != nil {
		return err
	}
	p.volume = out
	return nil
}

// ScaleWithFactor scales every axis by the same factor.
func (p *Processor) ScaleWithFactor(factor float64, mode ScaleMode) error {
	return p.Scale(Factor{X: factor, Y: factor, Z: factor}, mode)
}

// ScaleToSize scales the current volume so its size matches target exactly.
func (p *Processor) ScaleToSize(target Size, mode ScaleMode) error {
	size := p.volume.Size()
	factor := Factor{
		X: float64(target.X) / float64(size.X),
		Y: float64(target.Y) / float64(size.Y),
		Z: float64(target.Z) / float64(size.Z),
	}
	return p.Scale(factor, mode)
}

// ScaleToSpacing scales the current volume so its spacing matches target.
// factor = current/target on each axis: growing the spacing shrinks the
// voxel grid, and shrinking the spacing grows it.
func (p *Processor) ScaleToSpacing(target Spacing, mode ScaleMode) error {
	spacing := p.volume.Spacing()
	factor := Factor{
		X: spacing.X / target.X,
		Y: spacing.Y / target.Y,
		Z: spacing.Z / target.Z,
	}
	return p.Scale(factor, mode)
}

// ScaleToEqualSpacing scales every axis up to the finest (smallest) spacing
// currently present, leaving the volume with equal spacing on all axes.
func (p *Processor) ScaleToEqualSpacing(mode ScaleMode) error {
	spacing := p.volume.Spacing()
	finest := spacing.X
	if spacing.Y < finest {
		finest = spacing.Y
	}
	if spacing.Z < finest {
		finest = spacing.Z
	}
	return p.ScaleToSpacing(Spacing{X: finest, Y: finest, Z: finest}, mode)
}

// Filter convolves the current volume with kernel, replacing it.
func (p *Processor) Filter(kernel FilterKernel) {
	start := time.Now()
	p.volume = ApplyKernel(p.volume, kernel, p.threads)
	p.logOp("filter", start, nil)
}

// Window applies a VOI LUT windowing function to the current volume,
// replacing it. offset is added to every voxel before the formula is
// applied.
func (p *Processor) Window(center, width float64, offset int64, fn WindowFunction) error {
	start := time.Now()
	out, err := Window(p.volume, center, width, offset, fn, p.threads)
	p.logOp("window", start, err)
	if err != nil {
		return err
	}
	p.volume = out
	return nil
}

// CutEdges crops the current volume to the tightest bounding box of voxels
// exceeding threshold, replacing it.
func (p *Processor) CutEdges(threshold uint16) {
	start := time.Now()
	p.volume = CutEdges(p.volume, threshold)
	p.logOp("cut_edges", start, nil)
}

// CutEdgesFraction is CutEdges with threshold given as a fraction of the
// full uint16 range; invalid fractions no-op.
func (p *Processor) CutEdgesFraction(threshold float64) {
	start := time.Now()
	p.volume = CutEdgesFraction(p.volume, threshold)
	p.logOp("cut_edges_fraction", start, nil)
}

// Invert inverts every voxel in the current volume, replacing it.
func (p *Processor) Invert() {
	start := time.Now()
	p.volume = Invert(p.volume, p.threads)
	p.logOp("invert", start, nil)
}

// FlipEndian swaps the high and low bytes of every voxel, replacing the
// current volume.
func (p *Processor) FlipEndian() {
	start := time.Now()
	p.volume = EndianFlip(p.volume, p.threads)
	p.logOp("flip_endian", start, nil)
}

// Histogram returns the full-range histogram of the current volume.
func (p *Processor) Histogram() Histogram {
	return ComputeHistogram(p.volume)
}

// WindowedHistogram returns the histogram of the current volume restricted
// to [lo, hi].
func (p *Processor) WindowedHistogram(lo, hi uint16) Histogram {
	return ComputeWindowedHistogram(p.volume, lo, hi)
}

// Stats returns a statistical summary of the current volume's voxel
// distribution.
func (p *Processor) Stats() Summary {
	return Stats(p.volume)
}
