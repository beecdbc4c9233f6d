// internal/assets/prefabs.go
package assets

import (
	"fmt"
	"image/color"

	"go-corn-defense/internal/defs"
)

// Prefab is a resolved renderable: the debug view draws every entity as a
// flat colored circle.
type Prefab struct {
	Color  color.RGBA
	Radius float64
}

// PrefabManager resolves symbolic prefab names to renderables. Resolution
// of an unknown name is an error, never a silent skip: it means missing
// content, and the caller decides how loudly to fail.
type PrefabManager struct {
	prefabs map[string]Prefab
}

func NewPrefabManager() *PrefabManager {
	return &PrefabManager{prefabs: make(map[string]Prefab)}
}

// LoadFromLibrary caches every prefab currently in the defs library.
func (m *PrefabManager) LoadFromLibrary() {
	for id, def := range defs.PrefabLibrary {
		m.prefabs[id] = Prefab{
			Color:  color.RGBA{def.Color[0], def.Color[1], def.Color[2], def.Color[3]},
			Radius: def.Radius,
		}
	}
}

// Resolve returns the prefab registered under name.
func (m *PrefabManager) Resolve(name string) (Prefab, error) {
	p, ok := m.prefabs[name]
	if !ok {
		return Prefab{}, fmt.Errorf("unknown prefab %q", name)
	}
	return p, nil
}
