// internal/component/projectile.go
package component

import "go-corn-defense/pkg/vec3"

// Projectile is a fired shot in flight. Damage is copied from the firing
// tower at spawn time; a later tower upgrade must not retroactively change
// shots already in the air.
type Projectile struct {
	Velocity vec3.Vec3
	Damage   float64
	Lifetime float64 // seconds remaining, counts down each tick
}
