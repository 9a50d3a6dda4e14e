package render

import (
	"context"
	"image"
	"image/gif"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/model"
)

// ErrNoFrames is returned when encoding an animation with nothing recorded
var ErrNoFrames = errors.New("animation has no frames")

// Animation collects snapshots and writes them out as a GIF
type Animation struct {
	CellSize int
	Delay    time.Duration
	Workers  int // frames rasterized concurrently, defaults to runtime.NumCPU()

	snapshots []model.Snapshot
}

// NewAnimation creates an empty animation
func NewAnimation(cellSize int, delay time.Duration) *Animation {
	return &Animation{CellSize: cellSize, Delay: delay}
}

// Add records a snapshot as the next frame
func (a *Animation) Add(s model.Snapshot) {
	a.snapshots = append(a.snapshots, s)
}

// Len returns the number of recorded frames
func (a *Animation) Len() int {
	return len(a.snapshots)
}

// Frames rasterizes every recorded snapshot. Snapshots are immutable, so the
// frames are built in parallel.
func (a *Animation) Frames(ctx context.Context) ([]*image.Paletted, error) {
	if len(a.snapshots) == 0 {
		return nil, ErrNoFrames
	}

	workers := a.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		frames   = make([]*image.Paletted, len(a.snapshots))
		eg, gctx = errgroup.WithContext(ctx)
	)
	eg.SetLimit(workers)

	for i, s := range a.snapshots {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			frames[i] = Frame(s, a.CellSize)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[Animation.Frames] failed to rasterize frames")
	}
	return frames, nil
}

// Encode writes the animation to w as a GIF that plays once
func (a *Animation) Encode(ctx context.Context, w io.Writer) error {
	frames, err := a.Frames(ctx)
	if err != nil {
		return err
	}

	var (
		delay  = int(a.Delay / (10 * time.Millisecond))
		delays = make([]int, len(frames))
	)
	for i := range delays {
		delays[i] = delay
	}

	anim := &gif.GIF{
		Image:     frames,
		Delay:     delays,
		LoopCount: -1,
	}
	if err = gif.EncodeAll(w, anim); err != nil {
		return errors.Wrap(err, "[Animation.Encode] failed to encode gif")
	}
	return nil
}

// Save encodes the animation into the file at path
func (a *Animation) Save(ctx context.Context, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[Animation.Save] failed to create file: %+v", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[Animation.Save] failed to close file: %+v", path)
		}
	}()

	return a.Encode(ctx, f)
}
