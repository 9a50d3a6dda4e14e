package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/rules"
)

const (
	// DefaultWidth is the width used by NewDefaultGrid
	DefaultWidth = 10
	// DefaultHeight is the height used by NewDefaultGrid
	DefaultHeight = 10

	neighborCount = 8
)

// Location addresses a cell as (X, Y): X selects the row and Y the column
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a fixed-size toroidal board of cells
type Grid struct {
	width  int
	height int
	board  [][]*Cell // board[row][col], height rows of width cells
}

// NewGrid creates a grid of height rows by width columns with every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] width: %d, height: %d", width, height)
	}
	board := make([][]*Cell, height)
	for i := range board {
		board[i] = make([]*Cell, width)
		for j := range board[i] {
			board[i][j] = &Cell{status: rules.Dead, nextStatus: rules.Dead}
		}
	}
	return &Grid{
		width:  width,
		height: height,
		board:  board,
	}, nil
}

// NewDefaultGrid creates a 10x10 grid
func NewDefaultGrid() *Grid {
	g, _ := NewGrid(DefaultWidth, DefaultHeight)
	return g
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Status returns the status of the cell at (row, col)
func (g *Grid) Status(row, col int) uint8 {
	return g.board[row][col].status
}

// MakeAlive sets the cell at every location alive. The first location outside
// the board stops the batch; cells set before it stay alive.
func (g *Grid) MakeAlive(locations []Location) error {
	for _, loc := range locations {
		if loc.X < 0 || loc.X >= g.height || loc.Y < 0 || loc.Y >= g.width {
			return &LocationError{Location: loc, Width: g.width, Height: g.height}
		}
		g.board[loc.X][loc.Y].setAlive()
	}
	return nil
}

// NeighborCoordinates returns the eight wrapped neighbors of (row, col) in the
// order left, right, up, down, left-up, left-down, right-up, right-down
func (g *Grid) NeighborCoordinates(row, col int) [neighborCount]Location {
	var (
		prevRow = (row + g.height - 1) % g.height
		nextRow = (row + 1) % g.height
		prevCol = (col + g.width - 1) % g.width
		nextCol = (col + 1) % g.width
	)
	return [neighborCount]Location{
		{X: prevRow, Y: col},
		{X: nextRow, Y: col},
		{X: row, Y: prevCol},
		{X: row, Y: nextCol},
		{X: prevRow, Y: prevCol},
		{X: prevRow, Y: nextCol},
		{X: nextRow, Y: prevCol},
		{X: nextRow, Y: nextCol},
	}
}

// Step advances the grid by one generation. Every cell stages its next status
// from the pre-step board before any cell commits.
func (g *Grid) Step() {
	neighbors := make([]*Cell, neighborCount)
	for row := range g.height {
		for col := range g.width {
			for i, loc := range g.NeighborCoordinates(row, col) {
				neighbors[i] = g.board[loc.X][loc.Y]
			}
			g.board[row][col].Evolve(neighbors)
		}
	}

	for row := range g.height {
		for col := range g.width {
			g.board[row][col].Commit()
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.height {
		for col := range g.width {
			count += int(g.board[row][col].status)
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for row := range g.height {
		for col := range g.width {
			h.Write([]byte{g.board[row][col].status})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Snapshot copies the current statuses into a read-only view
func (g *Grid) Snapshot() Snapshot {
	cells := make([]uint8, 0, g.width*g.height)
	for row := range g.height {
		for col := range g.width {
			cells = append(cells, g.board[row][col].status)
		}
	}
	return Snapshot{width: g.width, height: g.height, cells: cells}
}
