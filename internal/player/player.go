// Package player defines the capability set the engine requires from every
// player, plus the non-interactive variants. The interactive variant lives
// in the ui package; all variants look identical to the engine.
package player

import (
	"math/rand"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/choice"
	"github.com/samdwyer/skirmish/internal/entity"
)

// Player is the engine's only boundary: a blocking selection capability
// plus event and redraw notifications, over a roster of units. SelectOne
// must return a member of the offered set.
type Player interface {
	Name() string
	SelectOne(choices []*choice.Choice) *choice.Choice
	Notify(msg string)
	Render(b *board.Board)
	Units() []*entity.Unit
	Add(u *entity.Unit)
	Reset()
	NewTurn()
}

// Roster is the common base concrete players embed: a name and the units
// it owns. The roster itself serves as the units' owner identity, so two
// units are friends exactly when they share a roster.
type Roster struct {
	name  string
	units []*entity.Unit
}

// NewRoster creates an empty roster.
func NewRoster(name string) *Roster {
	return &Roster{name: name}
}

// Name returns the player's name.
func (r *Roster) Name() string { return r.name }

// Add places a unit under this player's ownership. Ownership never
// transfers afterwards.
func (r *Roster) Add(u *entity.Unit) {
	u.Owner = r
	r.units = append(r.units, u)
}

// Units returns the roster in the order units were added, dead included.
func (r *Roster) Units() []*entity.Unit { return r.units }

// Reset empties the roster. Called when a new map begins.
func (r *Roster) Reset() { r.units = nil }

// NewTurn clears every owned unit's acted flag at the start of this
// player's turn.
func (r *Roster) NewTurn() {
	for _, u := range r.units {
		u.NewTurn()
	}
}

// Scripted always picks a fixed position in the offered set, clamped to
// the set's length. Useful in tests and as a trivial automated opponent.
type Scripted struct {
	*Roster
	Pick int
}

// NewScripted creates a scripted player that picks the choice at index
// pick, or the last choice when fewer are offered.
func NewScripted(name string, pick int) *Scripted {
	return &Scripted{Roster: NewRoster(name), Pick: pick}
}

func (p *Scripted) SelectOne(choices []*choice.Choice) *choice.Choice {
	i := p.Pick
	if i >= len(choices) {
		i = len(choices) - 1
	}
	return choices[i]
}

func (p *Scripted) Notify(string)       {}
func (p *Scripted) Render(*board.Board) {}

// Random picks uniformly from the offered set using its own seeded rng,
// giving reproducible automated play.
type Random struct {
	*Roster
	rng *rand.Rand
}

// NewRandom creates a random player seeded for reproducibility.
func NewRandom(name string, seed int64) *Random {
	return &Random{Roster: NewRoster(name), rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) SelectOne(choices []*choice.Choice) *choice.Choice {
	return choices[p.rng.Intn(len(choices))]
}

func (p *Random) Notify(string)       {}
func (p *Random) Render(*board.Board) {}

var (
	_ Player = (*Scripted)(nil)
	_ Player = (*Random)(nil)
)
