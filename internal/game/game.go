// Package game orchestrates maps, players, and the per-unit decision
// sequence, and detects terminal conditions.
package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/player"
	"github.com/samdwyer/skirmish/internal/telemetry"
)

// Map pairs a board with an optional callback run when the map becomes
// active. Scenario builders use the callback to populate rosters and place
// units.
type Map struct {
	Board   *board.Board
	OnStart func(g *Game) error
}

// Game is the sole owner of whose turn it is and which map is active.
type Game struct {
	rules       Ruleset
	maps        []Map
	players     []player.Player
	mapIndex    int
	playerIndex int
}

// New assembles a game from a rule-set, its maps in play order, and its
// players in turn order.
func New(rules Ruleset, maps []Map, players []player.Player) *Game {
	return &Game{rules: rules, maps: maps, players: players}
}

// Board returns the active map's board.
func (g *Game) Board() *board.Board {
	return g.maps[g.mapIndex].Board
}

// Players returns the players in registration order.
func (g *Game) Players() []player.Player {
	return g.players
}

// Broadcast fans an event message out to every player in registration
// order.
func (g *Game) Broadcast(msg string) {
	for _, p := range g.players {
		p.Notify(msg)
	}
}

// RenderAll requests a full board redraw from every player.
func (g *Game) RenderAll() {
	b := g.Board()
	for _, p := range g.players {
		p.Render(b)
	}
}

// Run broadcasts a welcome, then plays every map in sequence. Each map
// runs turns circularly across the players until the map is done.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.ruleset", g.rules.Name()),
		attribute.Int("game.maps", len(g.maps)),
		attribute.Int("game.players", len(g.players)),
	)

	g.Broadcast("Welcome to " + g.rules.Name())
	for g.mapIndex = 0; g.mapIndex < len(g.maps); g.mapIndex++ {
		if err := g.runMap(ctx); err != nil {
			return err
		}
	}
	return nil
}

// runMap plays the active map to completion.
func (g *Game) runMap(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.map")
	defer span.End()

	m := g.maps[g.mapIndex]
	if m.OnStart != nil {
		if err := m.OnStart(g); err != nil {
			return err
		}
	}
	g.RenderAll()

	turns := 0
	for !g.MapDone() {
		p := g.players[g.playerIndex]
		if err := g.rules.Turn(ctx, g, p); err != nil {
			return err
		}
		g.playerIndex = (g.playerIndex + 1) % len(g.players)
		turns++
	}
	g.Broadcast("Level finished")

	span.SetAttributes(
		attribute.Int("map.index", g.mapIndex),
		attribute.Int("map.turns", turns),
	)
	return nil
}

// MapDone reports whether the active map is over: true as soon as at most
// one player retains living units.
func (g *Game) MapDone() bool {
	withLiving := 0
	for _, p := range g.players {
		for _, u := range p.Units() {
			if u.Alive() {
				withLiving++
				break
			}
		}
	}
	return withLiving <= 1
}

// Games broadcast to units' notifiers.
var _ entity.Notifier = (*Game)(nil)
