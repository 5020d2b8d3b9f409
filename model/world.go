package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/bshapka/life-in-go/rules"
)

var (
	// ErrInvalidDimension is returned when a world is constructed with a
	// non-positive height or width.
	ErrInvalidDimension = errors.New("world dimensions must be positive")
	// ErrOutOfBounds is returned for coordinates outside [0, height) x [0, width).
	ErrOutOfBounds = errors.New("coordinate is outside the world bounds")
)

// World is one immutable snapshot of the board. Nothing mutates a World
// after construction: NextGeneration returns a fresh snapshot, leaving the
// receiver untouched, so a generation is always computed against a stable
// prior state.
type World struct {
	height int
	width  int
	cells  [][]CellState
}

// NewWorld creates a height x width world with every cell dead except those
// listed in live. Construction is atomic: it either returns a fully built
// world or an error and no world at all.
func NewWorld(height, width int, live []Coordinate) (*World, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewWorld] got %dx%d", height, width)
	}

	cells := make([][]CellState, height)
	for row := range cells {
		cells[row] = make([]CellState, width)
	}

	world := &World{height: height, width: width, cells: cells}
	for _, c := range live {
		if !world.inBounds(c.Row, c.Col) {
			return nil, errors.Wrapf(ErrOutOfBounds, "[NewWorld] live cell %v not in %dx%d world", c, height, width)
		}
		cells[c.Row][c.Col] = Live
	}

	return world, nil
}

// RandomWorld creates a height x width world where each cell is live
// independently with the given probability.
func RandomWorld(height, width int, density float64) (*World, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[RandomWorld] got %dx%d", height, width)
	}

	cells := make([][]CellState, height)
	for row := range cells {
		cells[row] = make([]CellState, width)
		for col := 0; col < width; col++ {
			if rand.Float64() < density {
				cells[row][col] = Live
			}
		}
	}

	return &World{height: height, width: width, cells: cells}, nil
}

// Height returns the number of rows.
func (w *World) Height() int {
	return w.height
}

// Width returns the number of columns.
func (w *World) Width() int {
	return w.width
}

// CellState returns the state of the cell at (row, col), or ErrOutOfBounds
// when the coordinate lies outside the grid.
func (w *World) CellState(row, col int) (CellState, error) {
	if !w.inBounds(row, col) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[CellState] (%d,%d) not in %dx%d world", row, col, w.height, w.width)
	}
	return w.cells[row][col], nil
}

// IsLive reports whether the cell at (row, col) is live. Positions outside
// the grid are dead.
func (w *World) IsLive(row, col int) bool {
	return w.inBounds(row, col) && w.cells[row][col] == Live
}

// LiveNeighborCount counts live cells among the eight Moore neighbours of
// (row, col). The universe is finite and does not wrap: neighbour positions
// outside the grid always count as dead.
func (w *World) LiveNeighborCount(row, col int) int {
	count := 0

	// Clamp the 3x3 window to the grid once instead of bounds-checking
	// every neighbour.
	minRow := max(0, row-1)
	maxRow := min(w.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(w.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // the cell itself is not a neighbour
			}
			if w.cells[r][c] == Live {
				count++
			}
		}
	}

	return count
}

// NextGeneration computes the next snapshot under Conway's standard rules.
// Every next state is derived from the receiver's neighbour counts before
// any of them becomes visible, so evaluation order never affects the
// result. The receiver is unchanged.
func (w *World) NextGeneration() *World {
	next := make([][]CellState, w.height)
	for row := 0; row < w.height; row++ {
		next[row] = make([]CellState, w.width)
		for col := 0; col < w.width; col++ {
			alive := w.cells[row][col] == Live
			if rules.Next(alive, w.LiveNeighborCount(row, col)) {
				next[row][col] = Live
			}
		}
	}
	return &World{height: w.height, width: w.width, cells: next}
}

// Population returns the total number of live cells.
func (w *World) Population() (count int) {
	for row := 0; row < w.height; row++ {
		for col := 0; col < w.width; col++ {
			if w.cells[row][col] == Live {
				count++
			}
		}
	}
	return
}

// LiveCells returns the coordinates of every live cell in row-major order.
func (w *World) LiveCells() []Coordinate {
	cells := make([]Coordinate, 0, 16)
	for row := 0; row < w.height; row++ {
		for col := 0; col < w.width; col++ {
			if w.cells[row][col] == Live {
				cells = append(cells, Coordinate{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Fingerprint returns an md5 hex digest of the cell states in row-major
// order. Worlds of equal dimensions share a fingerprint exactly when their
// grids match cell for cell.
func (w *World) Fingerprint() string {
	h := md5.New()
	for row := 0; row < w.height; row++ {
		for col := 0; col < w.width; col++ {
			if w.cells[row][col] == Live {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (w *World) inBounds(row, col int) bool {
	return row >= 0 && row < w.height && col >= 0 && col < w.width
}
