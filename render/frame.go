package render

import (
	"image"
	"image/color"

	"github.com/sheikhrachel/torus-life/model"
)

const (
	dead uint8 = iota
	live
)

// DefaultCellSize is the side length in pixels of one cell
const DefaultCellSize = 16

// minOutlinedCell is the smallest cell side that still gets a black outline
const minOutlinedCell = 3

// Palette maps a cell status to its color: dead cells are white, live cells black
var Palette = color.Palette{color.White, color.Black}

/*
Frame rasterizes a snapshot into a paletted image.

Rows run along the x axis and columns along the y axis, with column 0 at the
bottom of the image. Every cell is outlined in black when it is large enough.
*/
func Frame(s model.Snapshot, cellSize int) *image.Paletted {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	var (
		w   = s.Height() * cellSize
		h   = s.Width() * cellSize
		img = image.NewPaletted(image.Rect(0, 0, w, h), Palette)
	)

	for row := range s.Height() {
		for col := range s.Width() {
			var (
				x0 = row * cellSize
				y0 = (s.Width() - 1 - col) * cellSize
			)
			fill := dead
			if s.Status(row, col) == 1 {
				fill = live
			}
			for dy := range cellSize {
				for dx := range cellSize {
					c := fill
					if cellSize >= minOutlinedCell && isEdge(dx, dy, cellSize) {
						c = live
					}
					img.SetColorIndex(x0+dx, y0+dy, c)
				}
			}
		}
	}
	return img
}

func isEdge(dx, dy, cellSize int) bool {
	return dx == 0 || dy == 0 || dx == cellSize-1 || dy == cellSize-1
}
