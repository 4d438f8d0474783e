package world

import (
	"testing"

	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/player"
)

func TestParseLayout(t *testing.T) {
	terrains := gamedata.MustLoadTerrainRegistry()
	rows := []string{
		"..~",
		".^.",
	}

	b, err := ParseLayout(rows, terrains)
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}
	if b.Cols() != 3 || b.Rows() != 2 {
		t.Fatalf("Expected 3x2 board, got %dx%d", b.Cols(), b.Rows())
	}
	if got := b.TerrainAt(2, 0).Name(); got != "Swamp" {
		t.Errorf("TerrainAt(2,0) = %s, want Swamp", got)
	}
	if got := b.TerrainAt(1, 1).Name(); got != "Ridge" {
		t.Errorf("TerrainAt(1,1) = %s, want Ridge", got)
	}
	if got := b.TerrainAt(0, 0).Name(); got != "Plain" {
		t.Errorf("TerrainAt(0,0) = %s, want Plain", got)
	}
}

func TestParseLayoutRejectsUnknownGlyph(t *testing.T) {
	terrains := gamedata.MustLoadTerrainRegistry()
	if _, err := ParseLayout([]string{"..X"}, terrains); err == nil {
		t.Error("Expected error for unknown glyph")
	}
}

func TestParseLayoutRejectsRaggedRows(t *testing.T) {
	terrains := gamedata.MustLoadTerrainRegistry()
	if _, err := ParseLayout([]string{"...", ".."}, terrains); err == nil {
		t.Error("Expected error for ragged rows")
	}
}

func TestParseLayoutRejectsEmpty(t *testing.T) {
	terrains := gamedata.MustLoadTerrainRegistry()
	if _, err := ParseLayout(nil, terrains); err == nil {
		t.Error("Expected error for empty layout")
	}
}

func TestBuildKindsDefaultsRange(t *testing.T) {
	actions := gamedata.MustLoadActionRegistry()
	kinds := BuildKinds(actions)

	bite, ok := kinds["bite"]
	if !ok {
		t.Fatal("Expected bite kind")
	}
	if bite.Range != 1 {
		t.Errorf("Expected default range 1, got %d", bite.Range)
	}

	sting, ok := kinds["sting"]
	if !ok {
		t.Fatal("Expected sting kind")
	}
	if sting.Range != 2 {
		t.Errorf("Expected sting range 2, got %d", sting.Range)
	}
}

func TestBuildScenario(t *testing.T) {
	terrains := gamedata.MustLoadTerrainRegistry()
	units := gamedata.MustLoadUnitRegistry()
	actions := gamedata.MustLoadActionRegistry()
	scenario := gamedata.MustLoadScenarioRegistry().GetByID("skirmish")
	if scenario == nil {
		t.Fatal("Expected skirmish scenario")
	}

	players := []player.Player{
		player.NewScripted("Red", 0),
		player.NewScripted("Blue", 0),
	}
	maps, err := BuildScenario(scenario, terrains, units, actions, players)
	if err != nil {
		t.Fatalf("BuildScenario failed: %v", err)
	}
	if len(maps) != len(scenario.Maps) {
		t.Fatalf("Expected %d maps, got %d", len(scenario.Maps), len(maps))
	}

	// Boards are built eagerly, but nothing spawns before OnStart.
	for _, p := range players {
		if len(p.Units()) != 0 {
			t.Fatalf("%s has %d units before OnStart", p.Name(), len(p.Units()))
		}
	}

	if err := maps[0].OnStart(nil); err != nil {
		t.Fatalf("OnStart failed: %v", err)
	}
	for pi, p := range players {
		want := 0
		for _, sp := range scenario.Maps[0].Spawns {
			if sp.Player == pi {
				want++
			}
		}
		if len(p.Units()) != want {
			t.Errorf("%s has %d units, want %d", p.Name(), len(p.Units()), want)
		}
	}
	for _, sp := range scenario.Maps[0].Spawns {
		if maps[0].Board.At(sp.X, sp.Y) == nil {
			t.Errorf("No occupant at spawn point (%d,%d)", sp.X, sp.Y)
		}
	}

	// Advancing to the next map resets every roster before spawning.
	if err := maps[1].OnStart(nil); err != nil {
		t.Fatalf("Second OnStart failed: %v", err)
	}
	for pi, p := range players {
		want := 0
		for _, sp := range scenario.Maps[1].Spawns {
			if sp.Player == pi {
				want++
			}
		}
		if len(p.Units()) != want {
			t.Errorf("%s has %d units on map 2, want %d", p.Name(), len(p.Units()), want)
		}
	}
}

func TestBuildScenarioUnitsCarryKinds(t *testing.T) {
	terrains := gamedata.MustLoadTerrainRegistry()
	units := gamedata.MustLoadUnitRegistry()
	actions := gamedata.MustLoadActionRegistry()
	scenario := gamedata.MustLoadScenarioRegistry().GetByID("skirmish")

	players := []player.Player{
		player.NewScripted("Red", 0),
		player.NewScripted("Blue", 0),
	}
	maps, err := BuildScenario(scenario, terrains, units, actions, players)
	if err != nil {
		t.Fatalf("BuildScenario failed: %v", err)
	}
	if err := maps[0].OnStart(nil); err != nil {
		t.Fatalf("OnStart failed: %v", err)
	}

	for _, p := range players {
		for _, u := range p.Units() {
			if len(u.Actions) == 0 {
				t.Errorf("Unit %s spawned without action kinds", u.Name)
			}
			if u.Owner != nil && u.Owner.Name() != p.Name() {
				t.Errorf("Unit %s owned by %s, want %s", u.Name, u.Owner.Name(), p.Name())
			}
		}
	}
}

func TestSpawnRejectsBadPlayerIndex(t *testing.T) {
	terrains := gamedata.MustLoadTerrainRegistry()
	units := gamedata.MustLoadUnitRegistry()
	actions := gamedata.MustLoadActionRegistry()
	scenario := gamedata.MustLoadScenarioRegistry().GetByID("skirmish")

	// One player short of what the scenario's spawns reference.
	players := []player.Player{player.NewScripted("Red", 0)}
	maps, err := BuildScenario(scenario, terrains, units, actions, players)
	if err != nil {
		t.Fatalf("BuildScenario failed: %v", err)
	}
	if err := maps[0].OnStart(nil); err == nil {
		t.Error("Expected error for spawn referencing a missing player")
	}
}
