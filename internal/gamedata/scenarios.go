package gamedata

import "errors"

// SpawnDef places one unit on a map at start: which player owns it (index
// into the game's player order), which unit kind, and where.
type SpawnDef struct {
	Player int    `json:"player"`
	Unit   string `json:"unit"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// MapDef describes one map of a scenario: a glyph layout, one string per
// row, plus the units placed when the map begins.
type MapDef struct {
	Layout []string   `json:"layout"`
	Spawns []SpawnDef `json:"spawns"`
}

// ScenarioDef names an ordered sequence of maps.
type ScenarioDef struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Maps []MapDef `json:"maps"`
}

// ScenariosFile represents the structure of scenarios.json.
type ScenariosFile struct {
	Scenarios []ScenarioDef `json:"scenarios"`
}

// LoadScenarios loads scenario definitions from the embedded
// scenarios.json.
func LoadScenarios() ([]ScenarioDef, error) {
	file, err := Load[ScenariosFile]("scenarios.json")
	if err != nil {
		return nil, err
	}
	return file.Scenarios, nil
}

// ScenarioRegistry holds loaded scenario definitions.
type ScenarioRegistry struct {
	scenarios []ScenarioDef
}

// NewScenarioRegistry creates a registry from loaded definitions.
func NewScenarioRegistry(scenarios []ScenarioDef) *ScenarioRegistry {
	return &ScenarioRegistry{scenarios: scenarios}
}

// LoadScenarioRegistry loads and creates a registry from scenarios.json.
func LoadScenarioRegistry() (*ScenarioRegistry, error) {
	scenarios, err := LoadScenarios()
	if err != nil {
		return nil, err
	}
	if len(scenarios) == 0 {
		return nil, errors.New("no scenarios loaded from scenarios.json")
	}
	return NewScenarioRegistry(scenarios), nil
}

// MustLoadScenarioRegistry loads a registry, panicking on error.
func MustLoadScenarioRegistry() *ScenarioRegistry {
	registry, err := LoadScenarioRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the scenario with the given ID, or nil.
func (r *ScenarioRegistry) GetByID(id string) *ScenarioDef {
	for i := range r.scenarios {
		if r.scenarios[i].ID == id {
			return &r.scenarios[i]
		}
	}
	return nil
}

// All returns all scenario definitions.
func (r *ScenarioRegistry) All() []ScenarioDef { return r.scenarios }

// Count returns the number of scenarios in the registry.
func (r *ScenarioRegistry) Count() int { return len(r.scenarios) }
