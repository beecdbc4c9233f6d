// internal/system/space.go
package system

import (
	"go-corn-defense/internal/entity"
	"go-corn-defense/internal/physics"
	"go-corn-defense/internal/types"
	"go-corn-defense/pkg/vec3"
)

// Space is the slice of the physics engine the simulation stages consume.
// Stages receive it by injection so tests can substitute their own engine
// state without a running game.
type Space interface {
	AddBody(owner types.EntityID, pos vec3.Vec3, radius float64, mask physics.Mask) physics.BodyID
	RemoveBody(id physics.BodyID)
	SetPosition(id physics.BodyID, pos vec3.Vec3)
	OwnerOf(id physics.BodyID) (types.EntityID, bool)
	QuerySphere(center vec3.Vec3, radius float64, mask physics.Mask) []physics.BodyID
	CollisionStarts() []physics.CollisionStarted
}

// SceneSource is the narrow current-scene lookup used as a spawn parent for
// reward drops.
type SceneSource interface {
	Current() (types.EntityID, bool)
}

// removeProjectile despawns a projectile entity and its collider. Safe to
// call twice for the same id: the second call finds nothing to remove.
func removeProjectile(ecs *entity.ECS, space Space, id types.EntityID) {
	if bodyID, ok := ecs.Bodies[id]; ok {
		space.RemoveBody(bodyID)
	}
	ecs.Despawn(id)
}
