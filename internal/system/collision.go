// internal/system/collision.go
package system

import (
	"go-corn-defense/internal/entity"
	"go-corn-defense/internal/physics"
	"go-corn-defense/internal/types"
)

// CollisionSystem turns collision-start notifications into damage. Only
// projectile-vs-enemy pairs matter; anything else the physics engine
// reports is ignored. A projectile is consumed by its first contact, so a
// second notification naming it in the same pass finds nothing and is a
// no-op.
type CollisionSystem struct {
	ecs   *entity.ECS
	space Space
}

func NewCollisionSystem(ecs *entity.ECS, space Space) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, space: space}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	for _, hit := range s.space.CollisionStarts() {
		projID, enemyID, ok := s.match(hit)
		if !ok {
			continue
		}

		proj := s.ecs.Projectiles[projID]
		if health, alive := s.ecs.Healths[enemyID]; alive {
			health.Value -= proj.Damage
		}
		// The projectile is spent on first contact whether or not the
		// damage landed.
		removeProjectile(s.ecs, s.space, projID)
	}
}

// match resolves a body pair to (projectile, enemy) entities, in either
// order. Both sides go through the body -> owner indirection.
func (s *CollisionSystem) match(hit physics.CollisionStarted) (projID, enemyID types.EntityID, ok bool) {
	a, okA := s.space.OwnerOf(hit.A)
	b, okB := s.space.OwnerOf(hit.B)
	if !okA || !okB {
		return 0, 0, false
	}

	if s.isProjectile(a) && s.isEnemy(b) {
		return a, b, true
	}
	if s.isProjectile(b) && s.isEnemy(a) {
		return b, a, true
	}
	return 0, 0, false
}

func (s *CollisionSystem) isProjectile(id types.EntityID) bool {
	_, ok := s.ecs.Projectiles[id]
	return ok
}

func (s *CollisionSystem) isEnemy(id types.EntityID) bool {
	_, ok := s.ecs.Enemies[id]
	return ok
}
