// internal/defs/builtin.go
package defs

// UseBuiltin installs the compiled-in definition set. Used when the data
// files are unavailable and by tests that need a populated library.
func UseBuiltin() {
	TowerLibrary = map[string]TowerDefinition{
		"gun_tower": {
			ID:              "gun_tower",
			Range:           10,
			Damage:          5,
			AttackCooldown:  1.0,
			ProjectileSpeed: 20,
			Prefab:          "gun_tower",
			Projectile:      "popcorn",
		},
		"cannon_tower": {
			ID:              "cannon_tower",
			Range:           8,
			Damage:          12,
			AttackCooldown:  2.5,
			ProjectileSpeed: 14,
			Prefab:          "cannon_tower",
			Projectile:      "roasted_corn",
		},
	}

	EnemyLibrary = map[string]EnemyDefinition{
		"corn_walker": {
			ID:     "corn_walker",
			Health: 20,
			Speed:  2.0,
			Radius: 0.4,
			Prefab: "corn_walker",
		},
	}

	PrefabLibrary = map[string]PrefabDefinition{
		"gun_tower":    {ID: "gun_tower", Color: [4]uint8{90, 160, 220, 255}, Radius: 0.45},
		"cannon_tower": {ID: "cannon_tower", Color: [4]uint8{70, 110, 180, 255}, Radius: 0.55},
		"corn_walker":  {ID: "corn_walker", Color: [4]uint8{200, 80, 80, 255}, Radius: 0.4},
		"popcorn":      {ID: "popcorn", Color: [4]uint8{245, 240, 210, 255}, Radius: 0.15},
		"roasted_corn": {ID: "roasted_corn", Color: [4]uint8{210, 160, 60, 255}, Radius: 0.2},
		"corn":         {ID: "corn", Color: [4]uint8{240, 210, 60, 255}, Radius: 0.3},
	}
}
