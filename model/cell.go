package model

import (
	"github.com/sheikhrachel/torus-life/rules"
)

// Cell holds the current status of a single grid position and the status
// staged for the next generation
type Cell struct {
	status     uint8
	nextStatus uint8
}

// NewCell creates a cell with the given status, which must be 0 or 1
func NewCell(status int) (*Cell, error) {
	if status != int(rules.Dead) && status != int(rules.Alive) {
		return nil, ErrInvalidStatus
	}
	return &Cell{status: uint8(status), nextStatus: uint8(status)}, nil
}

// Status returns the committed status of the cell
func (c *Cell) Status() uint8 {
	return c.status
}

// NextStatus returns the status staged by the last call to Evolve
func (c *Cell) NextStatus() uint8 {
	return c.nextStatus
}

// Evolve stages the next status from the current status of the neighbors.
// The committed status is left untouched.
func (c *Cell) Evolve(neighbors []*Cell) {
	sum := 0
	for _, n := range neighbors {
		sum += int(n.status)
	}
	c.nextStatus = rules.ApplyConwayRules(sum, c.status)
}

// Commit makes the staged status current
func (c *Cell) Commit() {
	c.status = c.nextStatus
}

func (c *Cell) setAlive() {
	c.status = rules.Alive
}
