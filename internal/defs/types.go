// internal/defs/types.go
package defs

// TowerDefinition describes a placeable tower archetype.
type TowerDefinition struct {
	ID              string  `json:"id"`
	Range           float64 `json:"range"`
	Damage          float64 `json:"damage"`
	AttackCooldown  float64 `json:"attack_cooldown"`
	ProjectileSpeed float64 `json:"projectile_speed"`
	// Prefab is the tower's own visual; Projectile names the visual of the
	// shots it fires. An empty Projectile is a content bug caught at fire
	// time, not at load time.
	Prefab     string `json:"prefab"`
	Projectile string `json:"projectile"`
}

// EnemyDefinition describes a spawnable enemy archetype.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Health float64 `json:"health"`
	Speed  float64 `json:"speed"`
	Radius float64 `json:"radius"`
	Prefab string  `json:"prefab"`
}

// PrefabDefinition is a named renderable: the debug view draws prefabs as
// flat circles.
type PrefabDefinition struct {
	ID     string  `json:"id"`
	Color  [4]uint8 `json:"color"`
	Radius float64 `json:"radius"`
}
