// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-corn-defense/internal/assets"
	"go-corn-defense/internal/component"
	"go-corn-defense/internal/config"
	"go-corn-defense/internal/defs"
	"go-corn-defense/internal/entity"
	"go-corn-defense/internal/event"
	"go-corn-defense/internal/physics"
	"go-corn-defense/internal/scene"
	"go-corn-defense/internal/system"
	"go-corn-defense/internal/types"
	"go-corn-defense/pkg/vec3"
)

// LevelPath is the fixed enemy route for the single built-in level, in
// world units on the X/Z plane.
var LevelPath = []vec3.Vec3{
	{X: -11, Z: -6},
	{X: 4, Z: -6},
	{X: 4, Z: 5},
	{X: 11, Z: 5},
}

// Game owns the simulation state and runs the combat stages in their fixed
// per-tick order: targeting, rotation, firing, projectile movement, physics
// step, collision resolution, death lifecycle. A later stage always sees
// the committed writes of the earlier ones.
type Game struct {
	ECS             *entity.ECS
	Space           *physics.Engine
	Prefabs         *assets.PrefabManager
	Scenes          *scene.Manager
	EventDispatcher *event.Dispatcher

	TargetingSystem  *system.TargetingSystem
	RotationSystem   *system.RotationSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	CollisionSystem  *system.CollisionSystem
	DeathSystem      *system.DeathSystem
	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	RenderSystem     *system.RenderSystem

	BaseHealth int
	Kills      int

	gameTime  float64
	sceneRoot types.EntityID
}

// NewGame wires the systems. The defs libraries must be populated before
// calling.
func NewGame(tuning config.Tuning) *Game {
	ecs := entity.NewECS()
	space := physics.NewEngine()
	dispatcher := event.NewDispatcher()
	scenes := scene.NewManager()
	prefabs := assets.NewPrefabManager()
	prefabs.LoadFromLibrary()

	g := &Game{
		ECS:             ecs,
		Space:           space,
		Prefabs:         prefabs,
		Scenes:          scenes,
		EventDispatcher: dispatcher,
		BaseHealth:      config.BaseHealth,
	}

	g.TargetingSystem = system.NewTargetingSystem(ecs, space)
	g.RotationSystem = system.NewRotationSystem(ecs, tuning)
	g.CombatSystem = system.NewCombatSystem(ecs, space, prefabs, dispatcher, tuning)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, space)
	g.CollisionSystem = system.NewCollisionSystem(ecs, space)
	g.DeathSystem = system.NewDeathSystem(ecs, space, scenes, prefabs, dispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, space, dispatcher, LevelPath)
	g.WaveSystem = system.NewWaveSystem(ecs, space, prefabs, dispatcher, LevelPath[0])
	g.RenderSystem = system.NewRenderSystem(ecs, LevelPath)

	dispatcher.Subscribe(event.EnemyKilled, g)
	dispatcher.Subscribe(event.EnemyLeaked, g)

	// The level root anchors scene-parented spawns (reward drops).
	g.sceneRoot = ecs.NewEntity()
	scenes.Enter(g.sceneRoot)

	return g
}

// PlaceTower creates a tower of the given archetype at pos.
func (g *Game) PlaceTower(defID string, pos vec3.Vec3) (types.EntityID, error) {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		return 0, fmt.Errorf("unknown tower archetype %q", defID)
	}
	prefab, err := g.Prefabs.Resolve(def.Prefab)
	if err != nil {
		return 0, fmt.Errorf("tower %q: %w", defID, err)
	}

	id := g.ECS.NewEntity()
	g.ECS.Transforms[id] = &component.Transform{Position: pos}
	g.ECS.Towers[id] = &component.Tower{
		DefID:           defID,
		Range:           def.Range,
		Damage:          def.Damage,
		AttackCooldown:  def.AttackCooldown,
		ProjectileSpeed: def.ProjectileSpeed,
	}
	g.ECS.Cooldowns[id] = &component.Cooldown{}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  prefab.Color,
		Radius: prefab.Radius,
	}
	g.ECS.Bodies[id] = g.Space.AddBody(id, pos, prefab.Radius, physics.MaskTower)
	g.ECS.Parents[id] = g.sceneRoot
	return id, nil
}

// Update advances the simulation by one tick. Fatal stage errors (missing
// content) are reported here, at the tick boundary; they indicate data
// bugs, not player-facing failures.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime

	if err := g.WaveSystem.Update(deltaTime); err != nil {
		log.Printf("wave: %v", err)
	}
	g.MovementSystem.Update(deltaTime)
	g.TargetingSystem.Update(deltaTime)
	g.RotationSystem.Update(deltaTime)
	if err := g.CombatSystem.Update(deltaTime); err != nil {
		log.Printf("combat: %v", err)
	}
	g.ProjectileSystem.Update(deltaTime)
	g.Space.Step()
	g.CollisionSystem.Update(deltaTime)
	if err := g.DeathSystem.Update(deltaTime); err != nil {
		log.Printf("death: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
}

// OnEvent keeps the match score. Implements event.Listener.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		g.Kills++
	case event.EnemyLeaked:
		g.BaseHealth--
	}
}

// GameTime returns total simulated seconds.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// Teardown despawns everything parented to the level root and deactivates
// the scene.
func (g *Game) Teardown() {
	for id, parent := range g.ECS.Parents {
		if parent != g.sceneRoot {
			continue
		}
		if bodyID, ok := g.ECS.Bodies[id]; ok {
			g.Space.RemoveBody(bodyID)
		}
		g.ECS.Despawn(id)
	}
	g.ECS.Despawn(g.sceneRoot)
	g.Scenes.Exit()
}
