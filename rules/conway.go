package rules

const (
	// Dead is the status of a dead cell
	Dead uint8 = 0
	// Alive is the status of a live cell
	Alive uint8 = 1
)

/*
ApplyConwayRules returns the next status of a cell given its current status and
the number of live cells among its eight neighbors.

The cases are checked in order:
  - underpopulation: a live cell with fewer than 2 live neighbors dies
  - overpopulation: a live cell with more than 3 live neighbors dies
  - reproduction: a dead cell with exactly 3 live neighbors becomes alive
  - otherwise the status is unchanged
*/
func ApplyConwayRules(liveNeighbors int, status uint8) uint8 {
	switch {
	case liveNeighbors < 2 && status == Alive:
		return Dead
	case liveNeighbors > 3 && status == Alive:
		return Dead
	case liveNeighbors == 3 && status == Dead:
		return Alive
	default:
		return status
	}
}
