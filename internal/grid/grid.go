// Package grid provides the dense 2D container underlying all spatial data.
package grid

import "fmt"

// Position identifies a cell as (column, row), 0-indexed.
type Position struct {
	X, Y int
}

// Grid is a fixed cols×rows container addressed by (x, y), with x selecting
// the column and y the row. Dimensions never change after construction.
// Cells start at the zero value of T.
type Grid[T any] struct {
	cols, rows int
	cells      []T // row-major: cells[y*cols+x]
}

// New allocates a cols×rows grid.
func New[T any](cols, rows int) *Grid[T] {
	return &Grid[T]{
		cols:  cols,
		rows:  rows,
		cells: make([]T, cols*rows),
	}
}

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Get returns the value at cell (x, y).
func (g *Grid[T]) Get(x, y int) T {
	return g.cells[g.index(x, y)]
}

// Set stores v at cell (x, y).
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.index(x, y)] = v
}

// Positions returns every (x, y) pair on the grid. The traversal order is
// row-major and stable across calls, so "first matching" scans over it are
// reproducible.
func (g *Grid[T]) Positions() []Position {
	positions := make([]Position, 0, g.cols*g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			positions = append(positions, Position{X: x, Y: y})
		}
	}
	return positions
}

// index converts (x, y) to a flat offset. Out-of-range coordinates are a
// programming error: callers only iterate coordinates the grid produced.
func (g *Grid[T]) index(x, y int) int {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		panic(fmt.Sprintf("grid: cell (%d,%d) out of range for %dx%d grid", x, y, g.cols, g.rows))
	}
	return y*g.cols + x
}
