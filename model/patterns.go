package model

// Glider returns the locations of a glider whose bounding box starts at
// (row, col). On a torus it travels diagonally forever.
func Glider(row, col int) []Location {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	return fromPattern(row, col, pattern)
}

// Blinker returns the locations of a period 2 oscillator lying along a row
func Blinker(row, col int) []Location {
	return []Location{{X: row, Y: col}, {X: row, Y: col + 1}, {X: row, Y: col + 2}}
}

// Block returns the locations of a 2x2 still life
func Block(row, col int) []Location {
	return []Location{
		{X: row, Y: col}, {X: row, Y: col + 1},
		{X: row + 1, Y: col}, {X: row + 1, Y: col + 1},
	}
}

func fromPattern(row, col int, pattern [][]bool) []Location {
	var locs []Location
	for r, line := range pattern {
		for c, alive := range line {
			if alive {
				locs = append(locs, Location{X: row + r, Y: col + c})
			}
		}
	}
	return locs
}
