// Package entity provides units and the actions they can take.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/choice"
)

// Owner identifies the player a unit belongs to. Ownership is fixed at
// creation, never transfers, and is compared by identity for friend/enemy
// checks.
type Owner interface {
	Name() string
}

// Notifier receives the free-text event messages the engine broadcasts:
// damage dealt, healing applied, deaths, turn notices.
type Notifier interface {
	Broadcast(msg string)
}

// Unit is a single combatant. It is created detached and enters play
// exactly once through Board.Place, which stamps its position; it stays on
// the board until its health reaches zero.
type Unit struct {
	ID       string
	Owner    Owner
	Name     string
	Glyph    rune
	Color    string // hex color for renderers, e.g. "#AAAAAA"
	Health   int
	Movement int
	Actions  []*ActionKind
	X, Y     int

	acted bool
}

// NewUnit creates a detached unit with the given stats and capability
// list. The owner is stamped when the unit joins a player's roster.
func NewUnit(name string, health, movement int, kinds ...*ActionKind) *Unit {
	return &Unit{
		ID:       uuid.NewString(),
		Name:     name,
		Glyph:    '@',
		Health:   health,
		Movement: movement,
		Actions:  kinds,
	}
}

// SetPosition stamps the unit's stored coordinates. The board calls this
// whenever it stores the unit's reference, keeping the stored (x, y) equal
// to the occupancy cell that references the unit.
func (u *Unit) SetPosition(x, y int) {
	u.X, u.Y = x, y
}

// Dead reports whether health has reached zero. Health is never clamped,
// so it may sit below zero.
func (u *Unit) Dead() bool { return u.Health <= 0 }

// Alive reports the opposite of Dead.
func (u *Unit) Alive() bool { return !u.Dead() }

// EnemyOf reports whether other is owned by a different player. A nil unit
// is neither enemy nor friend.
func (u *Unit) EnemyOf(other *Unit) bool {
	return other != nil && other.Owner != u.Owner
}

// FriendOf reports whether other is owned by the same player.
func (u *Unit) FriendOf(other *Unit) bool {
	return other != nil && other.Owner == u.Owner
}

// Hurt applies damage through the single injury/death path; healing is a
// negative amount through the same entry point. It is a no-op on a dead
// unit, which is what makes the death broadcast fire exactly once.
func (u *Unit) Hurt(amount int, n Notifier) {
	if u.Dead() {
		return
	}
	u.Health -= amount
	if u.Dead() && n != nil {
		n.Broadcast(u.Name + " dies")
	}
}

// MarkDone records that the unit has acted this round.
func (u *Unit) MarkDone() { u.acted = true }

// NewTurn clears the acted flag. Called for every unit a player owns at
// the start of that player's turn.
func (u *Unit) NewTurn() { u.acted = false }

// Ready reports whether the unit may still be selected this round.
func (u *Unit) Ready() bool { return u.Alive() && !u.acted }

// MoveChoices returns one choice per unoccupied position within the unit's
// movement range, Manhattan distance. The unit's own cell is occupied by
// itself and never offered.
func (u *Unit) MoveChoices(b *board.Board) []*choice.Choice {
	var choices []*choice.Choice
	for _, p := range b.Near(u.Movement, u.X, u.Y) {
		if b.At(p.X, p.Y) != nil {
			continue
		}
		choices = append(choices, &choice.Choice{
			Rep:    choice.Rep{"Move", p.X, p.Y},
			Effect: MoveOp{Board: b, Unit: u, To: p},
		})
	}
	return choices
}

// ActionChoices returns one choice per action kind in the unit's
// capability list. Selecting a kind is separate from selecting its target.
func (u *Unit) ActionChoices() []*choice.Choice {
	choices := make([]*choice.Choice, 0, len(u.Actions))
	for _, k := range u.Actions {
		choices = append(choices, &choice.Choice{
			Rep:    choice.Rep{"Action", k.Name},
			Effect: SelectActionOp{Kind: k},
		})
	}
	return choices
}

// Ensure units can sit on boards.
var _ board.Occupant = (*Unit)(nil)
