// internal/system/targeting.go
package system

import (
	"log"
	"math"

	"go-corn-defense/internal/entity"
	"go-corn-defense/internal/physics"
	"go-corn-defense/internal/types"
)

// TargetingSystem keeps the tower -> enemy target edges valid. It runs in
// two phases every tick: drop edges to targets that moved out of range,
// then find targets for towers that have none.
type TargetingSystem struct {
	ecs   *entity.ECS
	space Space
}

func NewTargetingSystem(ecs *entity.ECS, space Space) *TargetingSystem {
	return &TargetingSystem{ecs: ecs, space: space}
}

func (s *TargetingSystem) Update(deltaTime float64) {
	s.invalidate()
	s.acquire()
}

// invalidate clears every edge whose target left the tower's range. A
// transform missing on either side means the entity vanished without the
// despawn path clearing the edge; report it and treat the target as gone,
// but keep processing the other towers.
func (s *TargetingSystem) invalidate() {
	for id, tower := range s.ecs.Towers {
		target, ok := s.ecs.Targets.Get(id)
		if !ok {
			continue
		}

		towerTr := s.ecs.Transforms[id]
		targetTr := s.ecs.Transforms[target]
		if towerTr == nil || targetTr == nil {
			log.Printf("targeting: stale reference on tower %d -> %d, dropping edge", id, target)
			s.ecs.Targets.Clear(id)
			continue
		}

		if towerTr.Position.Distance(targetTr.Position) > tower.Range {
			s.ecs.Targets.Clear(id)
		}
	}
}

// acquire assigns the best in-range enemy to every untargeted tower: the
// live enemy with the least path remaining. Ties keep the first candidate
// seen in query order; the query imposes no gameplay-meaningful ranking,
// only "a" minimal-progress target is promised.
func (s *TargetingSystem) acquire() {
	for id, tower := range s.ecs.Towers {
		if _, ok := s.ecs.Targets.Get(id); ok {
			continue
		}
		towerTr := s.ecs.Transforms[id]
		if towerTr == nil {
			continue
		}

		var best types.EntityID
		least := math.MaxFloat64
		found := false

		for _, bodyID := range s.space.QuerySphere(towerTr.Position, tower.Range, physics.MaskEnemy) {
			owner, ok := s.space.OwnerOf(bodyID)
			if !ok {
				continue
			}
			enemy, ok := s.ecs.Enemies[owner]
			if !ok {
				continue
			}
			if _, alive := s.ecs.Healths[owner]; !alive {
				continue
			}
			// The query overlaps collider surfaces; range is measured
			// center to center, same as the invalidation pass.
			enemyTr := s.ecs.Transforms[owner]
			if enemyTr == nil || towerTr.Position.Distance(enemyTr.Position) > tower.Range {
				continue
			}
			if enemy.PathRemaining < least {
				least = enemy.PathRemaining
				best = owner
				found = true
			}
		}

		if found {
			s.ecs.Targets.Set(id, best)
		}
	}
}
