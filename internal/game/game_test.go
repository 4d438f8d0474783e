package game

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/player"
)

// echo is a scripted player that records every broadcast it receives.
type echo struct {
	*player.Scripted
	msgs []string
}

func newEcho(name string) *echo {
	return &echo{Scripted: player.NewScripted(name, 0)}
}

func (e *echo) Notify(msg string) { e.msgs = append(e.msgs, msg) }

func (e *echo) count(msg string) int {
	n := 0
	for _, m := range e.msgs {
		if m == msg {
			n++
		}
	}
	return n
}

func duelBoard() *board.Board {
	return board.NewFilled(2, 1, board.NewTerrain("Plain"))
}

func bite() *entity.ActionKind {
	return &entity.ActionKind{
		ID:     "bite",
		Name:   "Bite",
		Verb:   "bites",
		Range:  1,
		Power:  4,
		Target: entity.TargetEnemy,
		Effect: entity.EffectDamage,
	}
}

// duel places one immobile biter per player on a 2x1 board.
func duel(t *testing.T) (*board.Board, *echo, *echo, *entity.Unit, *entity.Unit) {
	t.Helper()
	b := duelBoard()
	red, blue := newEcho("Red"), newEcho("Blue")

	ripper := entity.NewUnit("Ripper", 10, 0, bite())
	fang := entity.NewUnit("Fang", 10, 0, bite())
	red.Add(ripper)
	blue.Add(fang)
	if err := b.Place(0, 0, ripper); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if err := b.Place(1, 0, fang); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	return b, red, blue, ripper, fang
}

func TestRunPlaysDuelToCompletion(t *testing.T) {
	b, red, blue, ripper, fang := duel(t)

	g := New(Standard{}, []Map{{Board: b}}, []player.Player{red, blue})
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Red strikes first every round, so Fang falls first.
	if fang.Alive() {
		t.Fatalf("Expected Fang dead, health %d", fang.Health)
	}
	if fang.Health != -2 {
		t.Errorf("Expected Fang at -2 health, got %d", fang.Health)
	}
	if ripper.Health != 2 {
		t.Errorf("Expected Ripper at 2 health, got %d", ripper.Health)
	}
	if b.At(1, 0) != nil {
		t.Error("Dead unit still occupies its cell")
	}

	for _, p := range []*echo{red, blue} {
		if p.count("Welcome to Skirmish") != 1 {
			t.Errorf("%s: expected one welcome, got %d", p.Name(), p.count("Welcome to Skirmish"))
		}
		if p.count("Fang dies") != 1 {
			t.Errorf("%s: expected one death notice, got %d", p.Name(), p.count("Fang dies"))
		}
		if p.count("Level finished") != 1 {
			t.Errorf("%s: expected one level notice, got %d", p.Name(), p.count("Level finished"))
		}
	}
	if len(red.msgs) != len(blue.msgs) {
		t.Errorf("Broadcast fan-out uneven: %d vs %d messages", len(red.msgs), len(blue.msgs))
	}
}

func TestRunUsesRulesetTitle(t *testing.T) {
	b, red, blue, _, fang := duel(t)
	fang.Hurt(10, nil)
	b.Remove(1, 0)

	g := New(Standard{Title: "Skirmish at the Ford"}, []Map{{Board: b}}, []player.Player{red, blue})
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if red.count("Welcome to Skirmish at the Ford") != 1 {
		t.Errorf("Expected titled welcome, got %v", red.msgs)
	}
}

func TestMapDone(t *testing.T) {
	b, red, blue, _, fang := duel(t)
	g := New(Standard{}, []Map{{Board: b}}, []player.Player{red, blue})

	if g.MapDone() {
		t.Error("Map done while both players have living units")
	}
	fang.Hurt(10, nil)
	if !g.MapDone() {
		t.Error("Map not done with one side wiped out")
	}
}

func TestOnStartPopulatesMap(t *testing.T) {
	b := duelBoard()
	red, blue := newEcho("Red"), newEcho("Blue")

	started := 0
	m := Map{Board: b, OnStart: func(g *Game) error {
		started++
		ripper := entity.NewUnit("Ripper", 10, 0, bite())
		red.Add(ripper)
		return b.Place(0, 0, ripper)
	}}

	g := New(Standard{}, []Map{m}, []player.Player{red, blue})
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if started != 1 {
		t.Errorf("Expected OnStart once, got %d", started)
	}
	// Only Red has units, so the map ends before any turn is taken.
	if red.count("Red ends their turn") != 0 {
		t.Error("Turn taken on an already-decided map")
	}
}

func TestOnStartErrorAborts(t *testing.T) {
	b := duelBoard()
	red, blue := newEcho("Red"), newEcho("Blue")
	boom := errors.New("boom")

	g := New(Standard{}, []Map{{Board: b, OnStart: func(*Game) error { return boom }}}, []player.Player{red, blue})
	if err := g.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Expected OnStart error, got %v", err)
	}
}

func TestUnimplementedRuleset(t *testing.T) {
	b, red, blue, _, _ := duel(t)

	g := New(UnimplementedRuleset{}, []Map{{Board: b}}, []player.Player{red, blue})
	if err := g.Run(context.Background()); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Expected ErrNotImplemented, got %v", err)
	}
}

func TestBroadcastOrder(t *testing.T) {
	b := duelBoard()
	red, blue := newEcho("Red"), newEcho("Blue")
	g := New(Standard{}, []Map{{Board: b}}, []player.Player{red, blue})

	g.Broadcast("hello")
	if len(red.msgs) != 1 || len(blue.msgs) != 1 {
		t.Fatal("Broadcast did not reach every player")
	}
	if red.msgs[0] != "hello" || blue.msgs[0] != "hello" {
		t.Error("Broadcast delivered the wrong message")
	}
}
