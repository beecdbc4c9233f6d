// internal/entity/ecs.go
package entity

import (
	"go-corn-defense/internal/component"
	"go-corn-defense/internal/physics"
	"go-corn-defense/internal/types"
)

// ECS is the component storage for the whole simulation. Systems receive it
// by pointer and read or write only the maps their stage owns.
type ECS struct {
	NextID      types.EntityID
	Transforms  map[types.EntityID]*component.Transform
	Towers      map[types.EntityID]*component.Tower
	Cooldowns   map[types.EntityID]*component.Cooldown
	Enemies     map[types.EntityID]*component.Enemy
	Healths     map[types.EntityID]*component.Health
	MaxHealths  map[types.EntityID]*component.MaxHealth
	Projectiles map[types.EntityID]*component.Projectile
	Renderables map[types.EntityID]*component.Renderable
	Rewards     map[types.EntityID]*component.Reward

	// Bodies maps an entity to its collider in the physics engine. Systems
	// that despawn entities are responsible for removing the body as well.
	Bodies map[types.EntityID]physics.BodyID

	// Parents records scene ownership; scene teardown despawns all children.
	Parents map[types.EntityID]types.EntityID

	Targets *TargetStore
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Transforms:  make(map[types.EntityID]*component.Transform),
		Towers:      make(map[types.EntityID]*component.Tower),
		Cooldowns:   make(map[types.EntityID]*component.Cooldown),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Healths:     make(map[types.EntityID]*component.Health),
		MaxHealths:  make(map[types.EntityID]*component.MaxHealth),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Rewards:     make(map[types.EntityID]*component.Reward),
		Bodies:      make(map[types.EntityID]physics.BodyID),
		Parents:     make(map[types.EntityID]types.EntityID),
		Targets:     NewTargetStore(),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AttachHealth attaches the write-once MaxHealth and derives the initial
// mutable Health from it. Health must only ever be created through here.
func (ecs *ECS) AttachHealth(id types.EntityID, max float64) {
	ecs.MaxHealths[id] = &component.MaxHealth{Value: max}
	ecs.Healths[id] = &component.Health{Value: max}
}

// Despawn removes the entity from every component map and drops its target
// edges in both directions. The caller removes the physics body, if any,
// before calling (the body id is gone from Bodies afterwards).
func (ecs *ECS) Despawn(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Towers, id)
	delete(ecs.Cooldowns, id)
	delete(ecs.Enemies, id)
	delete(ecs.Healths, id)
	delete(ecs.MaxHealths, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
	delete(ecs.Rewards, id)
	delete(ecs.Bodies, id)
	delete(ecs.Parents, id)
	ecs.Targets.Clear(id)
	ecs.Targets.ClearTarget(id)
}
