package board

// Terrain is an immutable terrain kind identified by its display name.
// Every board cell carries one.
type Terrain struct {
	name string
}

// NewTerrain creates a terrain kind with the given display name.
func NewTerrain(name string) Terrain {
	return Terrain{name: name}
}

// Name returns the terrain's display name.
func (t Terrain) Name() string { return t.name }
