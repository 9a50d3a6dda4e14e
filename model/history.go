package model

const historySize = 5

// History remembers recent grid hashes to detect still lifes and short cycles
type History struct {
	hashes []string
}

// Update adds the grid's current state and keeps only the most recent ones
func (h *History) Update(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the grid's current state matches one of the last
// three recorded states
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.Hash()
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == current {
			return true
		}
	}
	return false
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}
