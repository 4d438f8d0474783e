package game

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/skirmish/internal/choice"
	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/player"
	"github.com/samdwyer/skirmish/internal/telemetry"
)

// ErrNotImplemented reports that an abstract rule-set hook was invoked
// without a concrete implementation. That is a configuration fault.
var ErrNotImplemented = errors.New("ruleset not implemented")

// Ruleset supplies the concrete turn sequence for a scenario. The engine
// defines only the scaffolding around it; Standard is the template most
// rule-sets follow.
type Ruleset interface {
	Name() string
	Turn(ctx context.Context, g *Game, p player.Player) error
}

// UnimplementedRuleset can be embedded by partial rule-sets; its hooks
// fail with ErrNotImplemented until overridden.
type UnimplementedRuleset struct{}

func (UnimplementedRuleset) Name() string { return "unimplemented" }

func (UnimplementedRuleset) Turn(context.Context, *Game, player.Player) error {
	return ErrNotImplemented
}

// Standard implements the five-step decision sequence: pick a unit,
// optionally move it, optionally pick an action kind, pick the action's
// target, mark the unit done; repeated until the player opts out.
type Standard struct {
	Title string
}

// Name returns the scenario title, or a default.
func (r Standard) Name() string {
	if r.Title != "" {
		return r.Title
	}
	return "Skirmish"
}

// Turn drives one player's turn. Exiting unit selection, by picking Done
// or exhausting the roster, ends the turn.
func (r Standard) Turn(ctx context.Context, g *Game, p player.Player) error {
	_, span := telemetry.Tracer("game").Start(ctx, "game.turn")
	defer span.End()
	span.SetAttributes(attribute.String("turn.player", p.Name()))

	p.NewTurn()
	acted := 0
	err := choice.ChooseAllOrDone(p, unitChoices(p), func(v any) error {
		if err := r.act(g, p, v.(*entity.Unit)); err != nil {
			return err
		}
		acted++
		return nil
	})
	span.SetAttributes(attribute.Int("turn.units_acted", acted))
	if err != nil {
		return err
	}
	g.Broadcast(p.Name() + " ends their turn")
	return nil
}

// act drives one selected unit through movement, action-kind, and target
// selection, with a full redraw after each mutating step.
func (r Standard) act(g *Game, p player.Player, u *entity.Unit) error {
	if _, err := choice.Choose(p, u.MoveChoices(g.Board())); err != nil {
		return err
	}
	g.RenderAll()

	err := choice.ChooseOrDone(p, u.ActionChoices(), func(v any) error {
		kind := v.(*entity.ActionKind)
		_, err := choice.Choose(p, kind.Choices(u, g.Board(), g))
		return err
	})
	if err != nil {
		return err
	}

	u.MarkDone()
	g.RenderAll()
	return nil
}

// unitChoices offers one choice per living, not-yet-acted unit the player
// owns, tagged by board position.
func unitChoices(p player.Player) []*choice.Choice {
	var choices []*choice.Choice
	for _, u := range p.Units() {
		if !u.Ready() {
			continue
		}
		choices = append(choices, &choice.Choice{
			Rep:    choice.Rep{"Unit", u.X, u.Y},
			Effect: entity.SelectUnitOp{Unit: u},
		})
	}
	return choices
}
