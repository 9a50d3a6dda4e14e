package render

import (
	"bytes"
	"context"
	"image/gif"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
)

func gridWith(t *testing.T, width, height int, alive ...model.Location) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(width, height)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.MakeAlive(alive); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFrameColors(t *testing.T) {
	const cell = 4
	// 2 rows by 3 columns, only row 1 column 0 alive
	g := gridWith(t, 3, 2, model.Location{X: 1, Y: 0})
	img := Frame(g.Snapshot(), cell)

	if b := img.Bounds(); b.Dx() != 2*cell || b.Dy() != 3*cell {
		t.Fatalf("frame is %dx%d", b.Dx(), b.Dy())
	}

	// column 0 sits at the bottom of the image
	if got := img.ColorIndexAt(1*cell+1, 2*cell+1); got != live {
		t.Fatalf("live cell interior index = %d", got)
	}
	if got := img.ColorIndexAt(0*cell+1, 2*cell+1); got != dead {
		t.Fatalf("dead cell interior index = %d", got)
	}
	if got := img.ColorIndexAt(0, 0); got != live {
		t.Fatalf("cell outline index = %d", got)
	}
}

func TestFrameSmallCellsHaveNoOutline(t *testing.T) {
	g := gridWith(t, 2, 2)
	img := Frame(g.Snapshot(), 1)
	for y := range 2 {
		for x := range 2 {
			if img.ColorIndexAt(x, y) != dead {
				t.Fatalf("pixel (%d,%d) not white", x, y)
			}
		}
	}
}

func TestAnimationEncode(t *testing.T) {
	g := gridWith(t, 10, 10, model.Glider(0, 0)...)
	anim := NewAnimation(2, 100*time.Millisecond)
	anim.Workers = 2
	for range 5 {
		anim.Add(g.Snapshot())
		g.Step()
	}

	var buf bytes.Buffer
	if err := anim.Encode(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Image) != 5 {
		t.Fatalf("decoded %d frames, want 5", len(decoded.Image))
	}
	if decoded.Delay[0] != 10 {
		t.Fatalf("delay = %d, want 10", decoded.Delay[0])
	}
}

func TestAnimationEmpty(t *testing.T) {
	anim := NewAnimation(DefaultCellSize, time.Second)
	if err := anim.Encode(context.Background(), &bytes.Buffer{}); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("error = %v, want ErrNoFrames", err)
	}
}

func TestAnimationCanceled(t *testing.T) {
	anim := NewAnimation(2, time.Second)
	anim.Add(gridWith(t, 4, 4).Snapshot())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := anim.Frames(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestAnimationSave(t *testing.T) {
	anim := NewAnimation(2, 50*time.Millisecond)
	anim.Add(gridWith(t, 4, 4, model.Block(1, 1)...).Snapshot())

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := anim.Save(context.Background(), path); err != nil {
		t.Fatal(err)
	}
	if anim.Len() != 1 {
		t.Fatalf("Len() = %d", anim.Len())
	}
}
