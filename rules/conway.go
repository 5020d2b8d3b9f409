package rules

// Survives reports whether a live cell with the given number of live
// neighbours stays live: fewer than 2 is underpopulation, more than 3 is
// overpopulation.
func Survives(liveNeighbors int) bool {
	return liveNeighbors == 2 || liveNeighbors == 3
}

// Born reports whether a dead cell with the given number of live
// neighbours becomes live: reproduction needs exactly 3.
func Born(liveNeighbors int) bool {
	return liveNeighbors == 3
}

/*
Next returns the next state of a cell under Conway's standard rules.

Equivalent to: (alive && liveNeighbors == 2) || liveNeighbors == 3
*/
func Next(alive bool, liveNeighbors int) bool {
	if alive {
		return Survives(liveNeighbors)
	}
	return Born(liveNeighbors)
}
