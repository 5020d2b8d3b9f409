package model

import "fmt"

// CellState is the state of a single grid position.
type CellState uint8

const (
	// Dead is the zero value: every cell starts dead.
	Dead CellState = iota
	// Live cells count toward their neighbours' live totals.
	Live
)

func (s CellState) String() string {
	if s == Live {
		return "live"
	}
	return "dead"
}

// Coordinate addresses a cell as (row, column), zero-indexed from the
// top-left corner of the grid.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
