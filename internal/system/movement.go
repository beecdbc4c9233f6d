// internal/system/movement.go
package system

import (
	"go-corn-defense/internal/entity"
	"go-corn-defense/internal/event"
	"go-corn-defense/pkg/vec3"
)

// MovementSystem walks enemies along the level path and maintains their
// remaining-distance signal, which targeting uses as priority. The path
// itself is precomputed level data; no pathfinding happens here.
type MovementSystem struct {
	ecs        *entity.ECS
	space      Space
	dispatcher *event.Dispatcher
	path       []vec3.Vec3
	// tail[i] is the path length from waypoint i to the objective.
	tail []float64
}

func NewMovementSystem(ecs *entity.ECS, space Space, dispatcher *event.Dispatcher, path []vec3.Vec3) *MovementSystem {
	tail := make([]float64, len(path))
	for i := len(path) - 2; i >= 0; i-- {
		tail[i] = tail[i+1] + path[i].Distance(path[i+1])
	}
	return &MovementSystem{
		ecs:        ecs,
		space:      space,
		dispatcher: dispatcher,
		path:       path,
		tail:       tail,
	}
}

// Path returns the level waypoints.
func (s *MovementSystem) Path() []vec3.Vec3 {
	return s.path
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		tr := s.ecs.Transforms[id]
		if tr == nil {
			continue
		}

		budget := enemy.Speed * deltaTime
		for budget > 0 && enemy.PathIndex < len(s.path) {
			next := s.path[enemy.PathIndex]
			toNext := next.Sub(tr.Position)
			dist := toNext.Length()

			if dist <= budget {
				tr.Position = next
				enemy.PathIndex++
				budget -= dist
				continue
			}

			dir, ok := toNext.Normalize()
			if ok {
				tr.Position = tr.Position.Add(dir.Scale(budget))
			}
			budget = 0
		}

		if enemy.PathIndex >= len(s.path) {
			enemy.ReachedEnd = true
			if bodyID, ok := s.ecs.Bodies[id]; ok {
				s.space.RemoveBody(bodyID)
			}
			s.ecs.Despawn(id)
			s.dispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: id})
			continue
		}

		enemy.PathRemaining = tr.Position.Distance(s.path[enemy.PathIndex]) + s.tail[enemy.PathIndex]
		if bodyID, ok := s.ecs.Bodies[id]; ok {
			s.space.SetPosition(bodyID, tr.Position)
		}
	}
}
