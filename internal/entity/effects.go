package entity

import (
	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/grid"
)

// The effect half of every choice the engine offers is one of the
// operation types below. Each carries explicit parameters rather than
// closing over ambient state, so the interpreter can apply it without
// hidden aliasing.

// MoveOp moves a unit from its current cell to To. The board stamps the
// unit's stored position as part of the transfer.
type MoveOp struct {
	Board *board.Board
	Unit  *Unit
	To    grid.Position
}

// Apply performs the move. Range validation already happened when the
// choice was generated, so an occupied destination here is a logic fault
// surfacing as OccupiedError.
func (op MoveOp) Apply() (any, error) {
	return nil, op.Board.Move(op.Unit.X, op.Unit.Y, op.To.X, op.To.Y)
}

// SelectUnitOp yields the unit the player picked to act this round.
type SelectUnitOp struct {
	Unit *Unit
}

func (op SelectUnitOp) Apply() (any, error) { return op.Unit, nil }

// SelectActionOp yields the action kind the player picked; target
// selection happens separately against fresh board state.
type SelectActionOp struct {
	Kind *ActionKind
}

func (op SelectActionOp) Apply() (any, error) { return op.Kind, nil }

// ResolveOp resolves a generated action instance against its notifier.
type ResolveOp struct {
	Action   *Action
	Notifier Notifier
}

func (op ResolveOp) Apply() (any, error) {
	return nil, op.Action.Resolve(op.Notifier)
}
