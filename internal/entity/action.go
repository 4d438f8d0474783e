package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/choice"
)

// ErrNotImplemented reports an action kind whose effect rule has no
// concrete behavior. That is a configuration fault, not a runtime
// condition to recover from.
var ErrNotImplemented = errors.New("action effect not implemented")

// TargetRule selects which occupants an action may target.
type TargetRule string

const (
	// TargetEnemy keeps positions whose occupant is an enemy of the
	// acting unit. This is the default rule.
	TargetEnemy TargetRule = "enemy"
	// TargetFriend keeps positions whose occupant is a friend.
	TargetFriend TargetRule = "friend"
)

// EffectRule selects what resolving an action does to its target.
type EffectRule string

const (
	EffectDamage EffectRule = "damage"
	EffectHeal   EffectRule = "heal"
)

// ActionKind is the static configuration of one action variant. Kinds
// differ only in targeting rule, range, and the magnitude and verb used on
// resolution; every kind is expressible through these extension points.
type ActionKind struct {
	ID     string
	Name   string
	Verb   string // e.g. "bites", "mends"
	Range  int    // Manhattan targeting range
	Power  int
	Target TargetRule
	Effect EffectRule
}

// Eligible reports whether occupant is a legal target for unit under this
// kind's targeting rule. A nil occupant is never eligible.
func (k *ActionKind) Eligible(unit, occupant *Unit) bool {
	if k.Target == TargetFriend {
		return unit.FriendOf(occupant)
	}
	return unit.EnemyOf(occupant)
}

// Generate scans the positions within the kind's range of the unit and
// returns one action instance per eligible occupant. Instances are
// produced fresh each time the engine asks; they are never stored.
func (k *ActionKind) Generate(unit *Unit, b *board.Board) []*Action {
	var actions []*Action
	for _, p := range b.Near(k.Range, unit.X, unit.Y) {
		if !k.Eligible(unit, unitAt(b, p.X, p.Y)) {
			continue
		}
		actions = append(actions, &Action{Kind: k, Unit: unit, Board: b, X: p.X, Y: p.Y})
	}
	return actions
}

// Choices wraps Generate's instances as choices whose effects resolve
// against n.
func (k *ActionKind) Choices(unit *Unit, b *board.Board, n Notifier) []*choice.Choice {
	actions := k.Generate(unit, b)
	choices := make([]*choice.Choice, 0, len(actions))
	for _, a := range actions {
		choices = append(choices, &choice.Choice{
			Rep:    a.Rep(),
			Effect: ResolveOp{Action: a, Notifier: n},
		})
	}
	return choices
}

// Action is a generated instance of an action kind aimed at one position.
type Action struct {
	Kind  *ActionKind
	Unit  *Unit
	Board *board.Board
	X, Y  int
}

// Rep returns the instance's choice representation: the kind's name
// followed by the target coordinates.
func (a *Action) Rep() choice.Rep {
	return choice.Rep{a.Kind.Name, a.X, a.Y}
}

// Target returns whatever occupies the targeted cell at call time. The
// occupant may have changed since the action was generated, so it is
// always re-fetched, never cached.
func (a *Action) Target() *Unit {
	return unitAt(a.Board, a.X, a.Y)
}

// Resolve applies the kind's effect to the current occupant of the target
// cell and broadcasts what happened. A target that dies is removed from
// the occupancy grid so it no longer blocks terrain.
func (a *Action) Resolve(n Notifier) error {
	target := a.Target()
	if target == nil {
		return nil
	}
	switch a.Kind.Effect {
	case EffectDamage:
		n.Broadcast(fmt.Sprintf("%s %s %s for %d damage", a.Unit.Name, a.Kind.Verb, target.Name, a.Kind.Power))
		target.Hurt(a.Kind.Power, n)
		if target.Dead() {
			a.Board.Remove(target.X, target.Y)
		}
	case EffectHeal:
		n.Broadcast(fmt.Sprintf("%s %s %s for %d health", a.Unit.Name, a.Kind.Verb, target.Name, a.Kind.Power))
		target.Hurt(-a.Kind.Power, n)
	default:
		return fmt.Errorf("action kind %q: %w", a.Kind.ID, ErrNotImplemented)
	}
	return nil
}

// unitAt returns the unit occupying (x, y), or nil.
func unitAt(b *board.Board, x, y int) *Unit {
	u, _ := b.At(x, y).(*Unit)
	return u
}
