// internal/scene/scene.go
package scene

import "go-corn-defense/internal/types"

// Manager tracks the currently active scene root. Systems that spawn
// scene-parented entities ask for the current root and skip the spawn when
// no scene is active (between levels, or in the menu).
type Manager struct {
	root   types.EntityID
	active bool
}

func NewManager() *Manager {
	return &Manager{}
}

// Enter marks root as the active scene root.
func (m *Manager) Enter(root types.EntityID) {
	m.root = root
	m.active = true
}

// Exit clears the active scene.
func (m *Manager) Exit() {
	m.root = 0
	m.active = false
}

// Current returns the active scene root, if any.
func (m *Manager) Current() (types.EntityID, bool) {
	return m.root, m.active
}
