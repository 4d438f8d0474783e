package gamedata

import "errors"

// TerrainDef maps a layout glyph to a terrain kind. Terrain is purely
// structural; it carries no gameplay behavior of its own.
type TerrainDef struct {
	Glyph string `json:"glyph"` // Single character used in map layouts
	Name  string `json:"name"`  // Display name (e.g. "Plain")
}

// GlyphRune returns the glyph as a rune.
func (t *TerrainDef) GlyphRune() rune {
	if len(t.Glyph) == 0 {
		return '?'
	}
	return []rune(t.Glyph)[0]
}

// TerrainsFile represents the structure of terrain.json.
type TerrainsFile struct {
	Terrains []TerrainDef `json:"terrains"`
}

// LoadTerrains loads terrain definitions from the embedded terrain.json.
func LoadTerrains() ([]TerrainDef, error) {
	file, err := Load[TerrainsFile]("terrain.json")
	if err != nil {
		return nil, err
	}
	return file.Terrains, nil
}

// TerrainRegistry holds loaded terrain definitions keyed by glyph.
type TerrainRegistry struct {
	terrains []TerrainDef
}

// NewTerrainRegistry creates a registry from loaded definitions.
func NewTerrainRegistry(terrains []TerrainDef) *TerrainRegistry {
	return &TerrainRegistry{terrains: terrains}
}

// LoadTerrainRegistry loads and creates a registry from terrain.json.
func LoadTerrainRegistry() (*TerrainRegistry, error) {
	terrains, err := LoadTerrains()
	if err != nil {
		return nil, err
	}
	if len(terrains) == 0 {
		return nil, errors.New("no terrains loaded from terrain.json")
	}
	return NewTerrainRegistry(terrains), nil
}

// MustLoadTerrainRegistry loads a registry, panicking on error.
func MustLoadTerrainRegistry() *TerrainRegistry {
	registry, err := LoadTerrainRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByGlyph returns the terrain definition for a layout glyph, or nil.
func (r *TerrainRegistry) GetByGlyph(glyph rune) *TerrainDef {
	for i := range r.terrains {
		if r.terrains[i].GlyphRune() == glyph {
			return &r.terrains[i]
		}
	}
	return nil
}

// GlyphFor returns the glyph for a terrain display name, or '.' when the
// name is unknown.
func (r *TerrainRegistry) GlyphFor(name string) rune {
	for i := range r.terrains {
		if r.terrains[i].Name == name {
			return r.terrains[i].GlyphRune()
		}
	}
	return '.'
}

// All returns all terrain definitions.
func (r *TerrainRegistry) All() []TerrainDef { return r.terrains }

// Count returns the number of terrain kinds in the registry.
func (r *TerrainRegistry) Count() int { return len(r.terrains) }
