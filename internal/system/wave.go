// internal/system/wave.go
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

// WaveSystem spawns enemies at the path entrance on a timer. Waves are a
// fixed size with a pause in between.
type WaveSystem struct {
	ecs        *entity.ECS
	space      Space
	prefabs    *assets.PrefabManager
	dispatcher *event.Dispatcher
	entrance   vec3.Vec3

	Wave       int
	spawned    int
	spawnTimer float64
	pauseTimer float64
}

func NewWaveSystem(ecs *entity.ECS, space Space, prefabs *assets.PrefabManager,
	dispatcher *event.Dispatcher, entrance vec3.Vec3) *WaveSystem {
	return &WaveSystem{
		ecs:        ecs,
		space:      space,
		prefabs:    prefabs,
		dispatcher: dispatcher,
		entrance:   entrance,
		Wave:       1,
	}
}

func (s *WaveSystem) Update(deltaTime float64) error {
	if s.spawned >= config.EnemiesPerWave {
		s.pauseTimer -= deltaTime
		if s.pauseTimer <= 0 {
			s.Wave++
			s.spawned = 0
			s.spawnTimer = 0
		}
		return nil
	}

	s.spawnTimer -= deltaTime
	if s.spawnTimer > 0 {
		return nil
	}
	s.spawnTimer = config.SpawnInterval

	if _, err := s.SpawnEnemy("corn_walker"); err != nil {
		return err
	}
	s.spawned++
	if s.spawned >= config.EnemiesPerWave {
		s.pauseTimer = config.WavePause
	}
	return nil
}

// SpawnEnemy creates an enemy of the given archetype at the path entrance.
func (s *WaveSystem) SpawnEnemy(defID string) (types.EntityID, error) {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		return 0, fmt.Errorf("unknown enemy archetype %q", defID)
	}
	prefab, err := s.prefabs.Resolve(def.Prefab)
	if err != nil {
		return 0, fmt.Errorf("enemy %q: %w", defID, err)
	}

	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: s.entrance}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:         defID,
		Speed:         def.Speed,
		PathIndex:     1,
		PathRemaining: math.MaxFloat64, // settled by the first movement pass
	}
	s.ecs.AttachHealth(id, def.Health)
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  prefab.Color,
		Radius: prefab.Radius,
	}
	s.ecs.Bodies[id] = s.space.AddBody(id, s.entrance, def.Radius, physics.MaskEnemy)

	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return id, nil
}
