// Package board pairs a terrain grid with an occupancy grid of equal
// dimensions and owns placement, movement, and adjacency queries.
package board

import (
	"fmt"

	"github.com/samdwyer/skirmish/internal/grid"
)

// Occupant is anything that can sit on a board cell. The board stamps the
// occupant's stored position whenever it stores or moves a reference, so an
// occupant's coordinates always match the cell that references it.
type Occupant interface {
	SetPosition(x, y int)
}

// OccupiedError reports an attempt to place or move onto an occupied cell.
// Callers are expected to have excluded occupied destinations before
// offering a move, so seeing this during normal play signals a logic fault.
type OccupiedError struct {
	X, Y int
}

func (e OccupiedError) Error() string {
	return fmt.Sprintf("cell (%d,%d) is occupied", e.X, e.Y)
}

// Board pairs a terrain grid, set once at construction and thereafter
// read-only, with a mutable occupancy grid. At most one occupant per cell.
type Board struct {
	terrain   *grid.Grid[Terrain]
	occupancy *grid.Grid[Occupant]
}

// New builds a board over a fully populated terrain grid.
func New(terrain *grid.Grid[Terrain]) *Board {
	return &Board{
		terrain:   terrain,
		occupancy: grid.New[Occupant](terrain.Cols(), terrain.Rows()),
	}
}

// NewFilled builds a cols×rows board whose every cell holds the same
// terrain. Mostly useful in tests.
func NewFilled(cols, rows int, t Terrain) *Board {
	terrain := grid.New[Terrain](cols, rows)
	for _, p := range terrain.Positions() {
		terrain.Set(p.X, p.Y, t)
	}
	return New(terrain)
}

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.terrain.Cols() }

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.terrain.Rows() }

// TerrainAt returns the terrain at cell (x, y).
func (b *Board) TerrainAt(x, y int) Terrain {
	return b.terrain.Get(x, y)
}

// At returns the occupant at cell (x, y), or nil.
func (b *Board) At(x, y int) Occupant {
	return b.occupancy.Get(x, y)
}

// Place stores an occupant at (x, y) and stamps its position. It is used
// once per occupant, at entry into play; subsequent relocation goes through
// Move.
func (b *Board) Place(x, y int, o Occupant) error {
	if b.occupancy.Get(x, y) != nil {
		return OccupiedError{X: x, Y: y}
	}
	b.occupancy.Set(x, y, o)
	o.SetPosition(x, y)
	return nil
}

// Move transfers the occupant at the source cell to the destination and
// clears the source. It does not verify the move is within anyone's range
// or that the source is occupied; that validation belongs to the layer
// generating move choices.
func (b *Board) Move(fromX, fromY, toX, toY int) error {
	if b.occupancy.Get(toX, toY) != nil {
		return OccupiedError{X: toX, Y: toY}
	}
	o := b.occupancy.Get(fromX, fromY)
	b.occupancy.Set(toX, toY, o)
	b.occupancy.Set(fromX, fromY, nil)
	if o != nil {
		o.SetPosition(toX, toY)
	}
	return nil
}

// Remove clears the occupancy of cell (x, y).
func (b *Board) Remove(x, y int) {
	b.occupancy.Set(x, y, nil)
}

// Positions returns every cell coordinate on the board, in the terrain
// grid's stable traversal order.
func (b *Board) Positions() []grid.Position {
	return b.terrain.Positions()
}

// IsWithin reports whether the Manhattan distance between (x1, y1) and
// (x2, y2) is at most d. This is the sole distance metric used for both
// movement reachability and action range.
func (b *Board) IsWithin(d, x1, y1, x2, y2 int) bool {
	return abs(x1-x2)+abs(y1-y2) <= d
}

// Near returns every board position within Manhattan distance d of (x, y),
// including (x, y) itself.
func (b *Board) Near(d, x, y int) []grid.Position {
	var near []grid.Position
	for _, p := range b.Positions() {
		if b.IsWithin(d, x, y, p.X, p.Y) {
			near = append(near, p)
		}
	}
	return near
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
