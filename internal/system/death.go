// internal/system/death.go
package system

import (
	"fmt"

	"go-corn-defense/internal/assets"
	"go-corn-defense/internal/component"
	"go-corn-defense/internal/config"
	"go-corn-defense/internal/entity"
	"go-corn-defense/internal/event"
	"go-corn-defense/internal/types"
	"go-corn-defense/pkg/vec3"
)

// RewardPrefab is the visual dropped where an enemy dies.
const RewardPrefab = "corn"

// DeathSystem despawns every entity whose health reached zero and drops a
// reward where an enemy fell. It runs after collision resolution so a kill
// and its despawn land on the same tick.
type DeathSystem struct {
	ecs        *entity.ECS
	space      Space
	scenes     SceneSource
	prefabs    *assets.PrefabManager
	dispatcher *event.Dispatcher
}

func NewDeathSystem(ecs *entity.ECS, space Space, scenes SceneSource,
	prefabs *assets.PrefabManager, dispatcher *event.Dispatcher) *DeathSystem {
	return &DeathSystem{
		ecs:        ecs,
		space:      space,
		scenes:     scenes,
		prefabs:    prefabs,
		dispatcher: dispatcher,
	}
}

func (s *DeathSystem) Update(deltaTime float64) error {
	for id, health := range s.ecs.Healths {
		if health.Value > 0 {
			continue
		}

		_, wasEnemy := s.ecs.Enemies[id]
		var lastPos vec3.Vec3
		if tr := s.ecs.Transforms[id]; tr != nil {
			lastPos = tr.Position
		}

		if bodyID, ok := s.ecs.Bodies[id]; ok {
			s.space.RemoveBody(bodyID)
		}
		s.ecs.Despawn(id)

		if !wasEnemy {
			continue
		}
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})

		// Rewards are parented into the active scene; with no scene there
		// is nowhere to put them, so the drop is skipped, not deferred.
		root, ok := s.scenes.Current()
		if !ok {
			continue
		}
		if err := s.spawnReward(lastPos, root); err != nil {
			return err
		}
	}

	return nil
}

func (s *DeathSystem) spawnReward(at vec3.Vec3, root types.EntityID) error {
	prefab, err := s.prefabs.Resolve(RewardPrefab)
	if err != nil {
		return fmt.Errorf("reward drop: %w", err)
	}

	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{
		Position: at.Add(vec3.Up(config.RewardOffsetY)),
	}
	s.ecs.Rewards[id] = &component.Reward{Amount: config.RewardAmount}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  prefab.Color,
		Radius: prefab.Radius,
	}
	s.ecs.Parents[id] = root
	return nil
}
