package player

import (
	"testing"

	"github.com/samdwyer/skirmish/internal/choice"
	"github.com/samdwyer/skirmish/internal/entity"
)

func TestAddStampsOwner(t *testing.T) {
	r := NewRoster("Red")
	u := entity.NewUnit("wolf", 10, 2)

	r.Add(u)
	if u.Owner != r {
		t.Error("Add did not stamp the roster as owner")
	}
	if len(r.Units()) != 1 || r.Units()[0] != u {
		t.Error("Roster does not hold the added unit")
	}
}

func TestCrossRosterUnitsAreEnemies(t *testing.T) {
	red, blue := NewRoster("Red"), NewRoster("Blue")
	a := entity.NewUnit("wolf", 10, 2)
	b := entity.NewUnit("bear", 14, 1)
	c := entity.NewUnit("wasp", 6, 3)
	red.Add(a)
	red.Add(b)
	blue.Add(c)

	if !a.FriendOf(b) {
		t.Error("Units on the same roster are not friends")
	}
	if !a.EnemyOf(c) {
		t.Error("Units on different rosters are not enemies")
	}
}

func TestResetEmptiesRoster(t *testing.T) {
	r := NewRoster("Red")
	r.Add(entity.NewUnit("wolf", 10, 2))

	r.Reset()
	if len(r.Units()) != 0 {
		t.Errorf("Expected empty roster after Reset, got %d units", len(r.Units()))
	}
}

func TestNewTurnReadiesUnits(t *testing.T) {
	r := NewRoster("Red")
	u := entity.NewUnit("wolf", 10, 2)
	r.Add(u)
	u.MarkDone()

	r.NewTurn()
	if !u.Ready() {
		t.Error("Unit not ready after NewTurn")
	}
}

func TestScriptedClampsPick(t *testing.T) {
	p := NewScripted("Red", 5)
	choices := []*choice.Choice{
		{Rep: choice.Rep{"a"}},
		{Rep: choice.Rep{"b"}},
	}

	if got := p.SelectOne(choices); got != choices[1] {
		t.Errorf("Expected pick clamped to last choice, got %v", got.Rep)
	}

	p.Pick = 0
	if got := p.SelectOne(choices); got != choices[0] {
		t.Errorf("Expected first choice, got %v", got.Rep)
	}
}

func TestRandomStaysInSet(t *testing.T) {
	p := NewRandom("Blue", 7)
	choices := []*choice.Choice{
		{Rep: choice.Rep{"a"}},
		{Rep: choice.Rep{"b"}},
		{Rep: choice.Rep{"c"}},
	}

	for i := 0; i < 50; i++ {
		got := p.SelectOne(choices)
		if choice.Find(choices, got.Rep) == nil {
			t.Fatalf("SelectOne returned %v, not in the offered set", got.Rep)
		}
	}
}

func TestRandomReproducible(t *testing.T) {
	choices := []*choice.Choice{
		{Rep: choice.Rep{"a"}},
		{Rep: choice.Rep{"b"}},
		{Rep: choice.Rep{"c"}},
	}

	a, b := NewRandom("A", 42), NewRandom("B", 42)
	for i := 0; i < 20; i++ {
		if a.SelectOne(choices) != b.SelectOne(choices) {
			t.Fatal("Same seed produced different picks")
		}
	}
}
