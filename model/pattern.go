package model

// Well-known starting patterns, expressed as live-cell coordinates offset
// from a (row, col) anchor so they can be placed anywhere on a grid and
// combined into NewWorld's initial cells.

// Block returns the 2x2 still life anchored at (row, col).
func Block(row, col int) []Coordinate {
	return []Coordinate{
		{Row: row, Col: col},
		{Row: row, Col: col + 1},
		{Row: row + 1, Col: col},
		{Row: row + 1, Col: col + 1},
	}
}

// Blinker returns the period-2 oscillator as a horizontal bar anchored at
// (row, col).
func Blinker(row, col int) []Coordinate {
	return []Coordinate{
		{Row: row, Col: col},
		{Row: row, Col: col + 1},
		{Row: row, Col: col + 2},
	}
}

// Glider returns the classic glider anchored at (row, col), travelling
// down and to the right.
func Glider(row, col int) []Coordinate {
	return []Coordinate{
		{Row: row, Col: col + 1},
		{Row: row + 1, Col: col + 2},
		{Row: row + 2, Col: col},
		{Row: row + 2, Col: col + 1},
		{Row: row + 2, Col: col + 2},
	}
}
