// internal/system/projectile.go
package system

import (
	"go-corn-defense/internal/entity"
)

// ProjectileSystem integrates projectile movement and expires shots by
// lifetime. Impact handling lives in the collision system; this stage never
// looks at collision state.
type ProjectileSystem struct {
	ecs   *entity.ECS
	space Space
}

func NewProjectileSystem(ecs *entity.ECS, space Space) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, space: space}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		proj.Lifetime -= deltaTime
		if proj.Lifetime <= 0 {
			// Expired shots go away this tick, before the collision pass
			// can see them.
			removeProjectile(s.ecs, s.space, id)
			continue
		}

		tr := s.ecs.Transforms[id]
		if tr == nil {
			removeProjectile(s.ecs, s.space, id)
			continue
		}
		tr.Position = tr.Position.Add(proj.Velocity.Scale(deltaTime))
		if bodyID, ok := s.ecs.Bodies[id]; ok {
			s.space.SetPosition(bodyID, tr.Position)
		}
	}
}
