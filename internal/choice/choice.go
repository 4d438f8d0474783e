// Package choice implements the decision protocol between the engine and
// players. Every decision point becomes a set of choices, each pairing an
// opaque, serializable representation with a deferred effect; presentation
// layers render representations and echo one back to select it.
package choice

import (
	"fmt"
	"slices"
	"strings"
)

// Rep is the only channel through which a presentation layer learns what an
// option means: an ordered list of strings and ints, always starting with a
// tag naming the decision kind, e.g. {"Move", 3, 2} or {"Done"}.
type Rep []any

// String renders the representation for display, e.g. "Move 3 2".
func (r Rep) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

// Equal reports whether two representations carry the same values.
func (r Rep) Equal(other Rep) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Effect is the deferred half of a choice: a discriminated operation with
// explicit parameters, applied by the engine once the choice is selected.
// Apply returns the operation's result value, if any.
type Effect interface {
	Apply() (any, error)
}

// Choice pairs what an option means with what selecting it does.
type Choice struct {
	Rep    Rep
	Effect Effect
}

type noop struct{}

func (noop) Apply() (any, error) { return nil, nil }

// Done is the reserved choice that lets a player opt out of an optional
// decision. It performs no mutation and is compared by pointer.
var Done = &Choice{Rep: Rep{"Done"}, Effect: noop{}}

// Find returns the choice whose representation equals rep, or nil. A
// representation echoed back unmodified within one decision point always
// resolves to the choice it came from.
func Find(choices []*Choice, rep Rep) *Choice {
	for _, c := range choices {
		if c.Rep.Equal(rep) {
			return c
		}
	}
	return nil
}

// Selector is the blocking selection capability every player provides. The
// returned choice must be a member of the offered slice; the engine does
// not proceed while the call is outstanding.
type Selector interface {
	SelectOne(choices []*Choice) *Choice
}

// Choose asks the selector to pick one choice and applies its effect. When
// there is nothing meaningful to decide, because the set is empty or holds
// only Done, the selector is never invoked and no effect runs.
func Choose(s Selector, choices []*Choice) (any, error) {
	if len(choices) == 0 || (len(choices) == 1 && choices[0] == Done) {
		return nil, nil
	}
	return pick(s, choices).Effect.Apply()
}

// ChooseOrDone offers the choices plus Done exactly once. If the player
// picks a real choice, its effect is applied and the result handed to fn.
func ChooseOrDone(s Selector, choices []*Choice, fn func(any) error) error {
	if len(choices) == 0 {
		return nil
	}
	offered := append(slices.Clone(choices), Done)
	picked := pick(s, offered)
	if picked == Done {
		return nil
	}
	v, err := picked.Effect.Apply()
	if err != nil {
		return err
	}
	return fn(v)
}

// ChooseAllOrDone repeatedly offers the remaining choices plus Done,
// applying each picked effect and handing its result to fn, until the
// player picks Done or the set is exhausted.
func ChooseAllOrDone(s Selector, choices []*Choice, fn func(any) error) error {
	work := slices.Clone(choices)
	for len(work) > 0 {
		offered := append(slices.Clone(work), Done)
		picked := pick(s, offered)
		if picked == Done {
			return nil
		}
		v, err := picked.Effect.Apply()
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
		work = slices.DeleteFunc(work, func(c *Choice) bool { return c == picked })
	}
	return nil
}

// pick delegates to the selector and asserts that the result is a member of
// the offered set. A violation is a contract breach, not a condition to
// recover from.
func pick(s Selector, offered []*Choice) *Choice {
	picked := s.SelectOne(offered)
	if !slices.Contains(offered, picked) {
		panic(fmt.Sprintf("choice: selector returned %v, not among the offered choices", picked))
	}
	return picked
}
