// Package world builds boards from glyph layouts and realizes scenario
// definitions against a set of players.
package world

import (
	"errors"
	"fmt"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/game"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/grid"
	"github.com/samdwyer/skirmish/internal/player"
)

// ParseLayout converts rows of terrain glyphs into a populated board.
// Every row must have the same width and every glyph must be a known
// terrain.
func ParseLayout(rows []string, terrains *gamedata.TerrainRegistry) (*board.Board, error) {
	if len(rows) == 0 {
		return nil, errors.New("world: empty layout")
	}
	width := len([]rune(rows[0]))
	terrain := grid.New[board.Terrain](width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("world: layout row %d is %d wide, want %d", y, len(runes), width)
		}
		for x, glyph := range runes {
			def := terrains.GetByGlyph(glyph)
			if def == nil {
				return nil, fmt.Errorf("world: unknown terrain glyph %q at (%d,%d)", glyph, x, y)
			}
			terrain.Set(x, y, board.NewTerrain(def.Name))
		}
	}
	return board.New(terrain), nil
}

// BuildKinds converts every action definition into a shared ActionKind.
// Definitions that omit a range get the default melee range of 1.
func BuildKinds(actions *gamedata.ActionRegistry) map[string]*entity.ActionKind {
	kinds := make(map[string]*entity.ActionKind, actions.Count())
	for _, def := range actions.All() {
		r := def.Range
		if r <= 0 {
			r = 1
		}
		kinds[def.ID] = &entity.ActionKind{
			ID:     def.ID,
			Name:   def.Name,
			Verb:   def.Verb,
			Range:  r,
			Power:  def.Power,
			Target: entity.TargetRule(def.Target),
			Effect: entity.EffectRule(def.Effect),
		}
	}
	return kinds
}

// BuildScenario realizes every map in a scenario definition. Boards are
// parsed eagerly; spawning happens through each map's OnStart callback so
// rosters hold only the active map's units.
func BuildScenario(def *gamedata.ScenarioDef, terrains *gamedata.TerrainRegistry,
	units *gamedata.UnitRegistry, actions *gamedata.ActionRegistry,
	players []player.Player) ([]game.Map, error) {

	kinds := BuildKinds(actions)

	var maps []game.Map
	for mi, md := range def.Maps {
		b, err := ParseLayout(md.Layout, terrains)
		if err != nil {
			return nil, fmt.Errorf("world: scenario %q map %d: %w", def.ID, mi, err)
		}
		spawns := md.Spawns
		maps = append(maps, game.Map{
			Board: b,
			OnStart: func(g *game.Game) error {
				for _, p := range players {
					p.Reset()
				}
				for _, sp := range spawns {
					if err := spawn(b, sp, units, kinds, players); err != nil {
						return err
					}
				}
				return nil
			},
		})
	}
	return maps, nil
}

// spawn builds one unit from its definition and places it on the board
// under the owning player.
func spawn(b *board.Board, sp gamedata.SpawnDef, units *gamedata.UnitRegistry,
	kinds map[string]*entity.ActionKind, players []player.Player) error {

	if sp.Player < 0 || sp.Player >= len(players) {
		return fmt.Errorf("world: spawn references player %d of %d", sp.Player, len(players))
	}
	def := units.GetByID(sp.Unit)
	if def == nil {
		return fmt.Errorf("world: spawn references unknown unit %q", sp.Unit)
	}

	var ks []*entity.ActionKind
	for _, id := range def.Actions {
		k, ok := kinds[id]
		if !ok {
			return fmt.Errorf("world: unit %q references unknown action %q", def.ID, id)
		}
		ks = append(ks, k)
	}

	u := entity.NewUnit(def.Name, def.Health, def.Movement, ks...)
	u.Glyph = def.GlyphRune()
	u.Color = def.Color
	players[sp.Player].Add(u)
	return b.Place(sp.X, sp.Y, u)
}
