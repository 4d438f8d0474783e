package gamedata

import "errors"

// UnitDef defines a unit kind loaded from JSON.
type UnitDef struct {
	ID       string   `json:"id"`       // Unique identifier (e.g. "wolf")
	Name     string   `json:"name"`     // Display name (e.g. "Wolf")
	Glyph    string   `json:"glyph"`    // Single character for rendering
	Color    string   `json:"color"`    // Hex color code (e.g. "#AAAAAA")
	Health   int      `json:"health"`   // Starting health
	Movement int      `json:"movement"` // Movement range, Manhattan
	Actions  []string `json:"actions"`  // Action kind ids, in capability order
}

// GlyphRune returns the glyph as a rune for rendering.
func (u *UnitDef) GlyphRune() rune {
	if len(u.Glyph) == 0 {
		return '?'
	}
	return []rune(u.Glyph)[0]
}

// UnitsFile represents the structure of units.json.
type UnitsFile struct {
	Units []UnitDef `json:"units"`
}

// LoadUnits loads unit definitions from the embedded units.json.
func LoadUnits() ([]UnitDef, error) {
	file, err := Load[UnitsFile]("units.json")
	if err != nil {
		return nil, err
	}
	return file.Units, nil
}

// UnitRegistry holds loaded unit definitions and provides lookup.
type UnitRegistry struct {
	units []UnitDef
}

// NewUnitRegistry creates a registry from loaded definitions.
func NewUnitRegistry(units []UnitDef) *UnitRegistry {
	return &UnitRegistry{units: units}
}

// LoadUnitRegistry loads and creates a registry from units.json.
func LoadUnitRegistry() (*UnitRegistry, error) {
	units, err := LoadUnits()
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, errors.New("no units loaded from units.json")
	}
	return NewUnitRegistry(units), nil
}

// MustLoadUnitRegistry loads a registry, panicking on error.
func MustLoadUnitRegistry() *UnitRegistry {
	registry, err := LoadUnitRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the unit definition with the given ID, or nil.
func (r *UnitRegistry) GetByID(id string) *UnitDef {
	for i := range r.units {
		if r.units[i].ID == id {
			return &r.units[i]
		}
	}
	return nil
}

// All returns all unit definitions.
func (r *UnitRegistry) All() []UnitDef { return r.units }

// Count returns the number of unit kinds in the registry.
func (r *UnitRegistry) Count() int { return len(r.units) }
