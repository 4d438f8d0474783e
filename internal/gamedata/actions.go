package gamedata

import "errors"

// ActionDef defines an action kind loaded from JSON. A kind is fully
// described by its targeting rule, range, and the magnitude/verb applied
// when it resolves.
type ActionDef struct {
	ID     string `json:"id"`              // Unique identifier (e.g. "bite")
	Name   string `json:"name"`            // Display name (e.g. "Bite")
	Verb   string `json:"verb"`            // Broadcast verb (e.g. "bites")
	Range  int    `json:"range,omitempty"` // Manhattan targeting range; 0 means the default of 1
	Power  int    `json:"power"`           // Damage dealt or health restored
	Target string `json:"target"`          // "enemy" or "friend"
	Effect string `json:"effect"`          // "damage" or "heal"
}

// ActionsFile represents the structure of actions.json.
type ActionsFile struct {
	Actions []ActionDef `json:"actions"`
}

// LoadActions loads action definitions from the embedded actions.json.
func LoadActions() ([]ActionDef, error) {
	file, err := Load[ActionsFile]("actions.json")
	if err != nil {
		return nil, err
	}
	return file.Actions, nil
}

// ActionRegistry holds loaded action definitions and provides lookup.
type ActionRegistry struct {
	actions []ActionDef
}

// NewActionRegistry creates a registry from loaded definitions.
func NewActionRegistry(actions []ActionDef) *ActionRegistry {
	return &ActionRegistry{actions: actions}
}

// LoadActionRegistry loads and creates a registry from actions.json.
func LoadActionRegistry() (*ActionRegistry, error) {
	actions, err := LoadActions()
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, errors.New("no actions loaded from actions.json")
	}
	return NewActionRegistry(actions), nil
}

// MustLoadActionRegistry loads a registry, panicking on error.
func MustLoadActionRegistry() *ActionRegistry {
	registry, err := LoadActionRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the action definition with the given ID, or nil.
func (r *ActionRegistry) GetByID(id string) *ActionDef {
	for i := range r.actions {
		if r.actions[i].ID == id {
			return &r.actions[i]
		}
	}
	return nil
}

// All returns all action definitions.
func (r *ActionRegistry) All() []ActionDef { return r.actions }

// Count returns the number of action kinds in the registry.
func (r *ActionRegistry) Count() int { return len(r.actions) }
