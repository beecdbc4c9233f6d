// internal/system/combat.go
package system

import (
	"fmt"
	"math"

	"go-corn-defense/internal/assets"
	"go-corn-defense/internal/component"
	"go-corn-defense/internal/config"
	"go-corn-defense/internal/defs"
	"go-corn-defense/internal/entity"
	"go-corn-defense/internal/event"
	"go-corn-defense/internal/physics"
	"go-corn-defense/internal/types"
	"go-corn-defense/pkg/vec3"
)

// CombatSystem decides when towers fire and spawns their projectiles. A
// tower fires only when its cooldown has elapsed and it is actually facing
// the target; otherwise it holds while the rotation system catches up.
type CombatSystem struct {
	ecs        *entity.ECS
	space      Space
	prefabs    *assets.PrefabManager
	dispatcher *event.Dispatcher
	tuning     config.Tuning
}

func NewCombatSystem(ecs *entity.ECS, space Space, prefabs *assets.PrefabManager,
	dispatcher *event.Dispatcher, tuning config.Tuning) *CombatSystem {
	return &CombatSystem{
		ecs:        ecs,
		space:      space,
		prefabs:    prefabs,
		dispatcher: dispatcher,
		tuning:     tuning,
	}
}

// Update ticks cooldowns and fires eligible towers. A tower whose archetype
// cannot be mapped to a projectile visual is a content bug: the error
// aborts the pass and reaches the tick boundary instead of being swallowed.
func (s *CombatSystem) Update(deltaTime float64) error {
	for _, cooldown := range s.ecs.Cooldowns {
		if cooldown.Remaining > 0 {
			cooldown.Remaining -= deltaTime
		}
	}

	for id, tower := range s.ecs.Towers {
		cooldown := s.ecs.Cooldowns[id]
		if cooldown == nil || !cooldown.Ready() {
			continue
		}
		target, ok := s.ecs.Targets.Get(id)
		if !ok {
			continue
		}

		towerTr := s.ecs.Transforms[id]
		targetTr := s.ecs.Transforms[target]
		if towerTr == nil || targetTr == nil {
			// Stale target; the next targeting pass clears it.
			continue
		}

		aimPoint := targetTr.Position.Add(vec3.Up(config.AimOffsetY))
		toTarget, ok := aimPoint.Sub(towerTr.Position).Normalize()
		if !ok {
			continue
		}
		if towerTr.Forward().Dot(toTarget) < s.tuning.MinFacingAccuracy {
			continue
		}

		if err := s.fire(id, tower, towerTr, aimPoint); err != nil {
			return err
		}
		cooldown.Remaining = tower.AttackCooldown
	}

	return nil
}

func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower,
	towerTr *component.Transform, aimPoint vec3.Vec3) error {
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok || def.Projectile == "" {
		return fmt.Errorf("unrecognized tower archetype %q", tower.DefID)
	}
	prefab, err := s.prefabs.Resolve(def.Projectile)
	if err != nil {
		return fmt.Errorf("tower %q projectile: %w", tower.DefID, err)
	}

	muzzle := towerTr.Position.Add(vec3.Up(config.MuzzleOffsetY))
	dir, ok := aimPoint.Sub(muzzle).Normalize()
	if !ok {
		return nil
	}

	projID := s.ecs.NewEntity()
	s.ecs.Transforms[projID] = &component.Transform{
		Position: muzzle,
		Yaw:      math.Atan2(dir.X, dir.Z),
	}
	s.ecs.Projectiles[projID] = &component.Projectile{
		Velocity: dir.Scale(tower.ProjectileSpeed),
		Damage:   tower.Damage,
		Lifetime: s.tuning.ProjectileLifetime,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  prefab.Color,
		Radius: prefab.Radius,
	}
	s.ecs.Bodies[projID] = s.space.AddBody(projID, muzzle, config.ProjectileRadius, physics.MaskProjectile)

	s.dispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: towerID})
	return nil
}
