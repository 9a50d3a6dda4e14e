package model

// Snapshot is an immutable copy of a grid's statuses taken after a step
type Snapshot struct {
	width  int
	height int
	cells  []uint8 // row-major, cells[row*width+col]
}

// Width returns the width of the captured grid
func (s Snapshot) Width() int {
	return s.width
}

// Height returns the height of the captured grid
func (s Snapshot) Height() int {
	return s.height
}

// Status returns the captured status at (row, col)
func (s Snapshot) Status(row, col int) uint8 {
	return s.cells[row*s.width+col]
}

// Population returns the number of live cells in the snapshot
func (s Snapshot) Population() (count int) {
	for _, c := range s.cells {
		count += int(c)
	}
	return
}
