// internal/component/transform.go
package component

import (
	"math"

	"go-corn-defense/pkg/vec3"
)

// Transform holds an entity's world position and facing. Rotation is a yaw
// around the up axis; towers only ever turn in the horizontal plane.
type Transform struct {
	Position vec3.Vec3
	Yaw      float64
}

// Forward returns the horizontal unit vector the entity is facing.
// Yaw 0 faces +Z, so Yaw = atan2(dx, dz) points at (dx, dz).
func (t *Transform) Forward() vec3.Vec3 {
	return vec3.Vec3{X: math.Sin(t.Yaw), Z: math.Cos(t.Yaw)}
}
