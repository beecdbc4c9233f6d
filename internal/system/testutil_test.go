package system

import (
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

// testWorld bundles the shared state every stage needs.
type testWorld struct {
	ecs        *entity.ECS
	space      *physics.Engine
	prefabs    *assets.PrefabManager
	dispatcher *event.Dispatcher
}

func newTestWorld() *testWorld {
	defs.UseBuiltin()
	prefabs := assets.NewPrefabManager()
	prefabs.LoadFromLibrary()
	return &testWorld{
		ecs:        entity.NewECS(),
		space:      physics.NewEngine(),
		prefabs:    prefabs,
		dispatcher: event.NewDispatcher(),
	}
}

func (w *testWorld) addTower(defID string, pos vec3.Vec3) types.EntityID {
	def := defs.TowerLibrary[defID]
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = &component.Transform{Position: pos}
	w.ecs.Towers[id] = &component.Tower{
		DefID:           defID,
		Range:           def.Range,
		Damage:          def.Damage,
		AttackCooldown:  def.AttackCooldown,
		ProjectileSpeed: def.ProjectileSpeed,
	}
	w.ecs.Cooldowns[id] = &component.Cooldown{}
	w.ecs.Bodies[id] = w.space.AddBody(id, pos, 0.45, physics.MaskTower)
	return id
}

func (w *testWorld) addEnemy(pos vec3.Vec3, health, pathRemaining float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = &component.Transform{Position: pos}
	w.ecs.Enemies[id] = &component.Enemy{
		DefID:         "corn_walker",
		Speed:         2,
		PathIndex:     1,
		PathRemaining: pathRemaining,
	}
	w.ecs.AttachHealth(id, health)
	w.ecs.Bodies[id] = w.space.AddBody(id, pos, 0.4, physics.MaskEnemy)
	return id
}

func (w *testWorld) addProjectile(pos, velocity vec3.Vec3, damage, lifetime float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = &component.Transform{Position: pos}
	w.ecs.Projectiles[id] = &component.Projectile{
		Velocity: velocity,
		Damage:   damage,
		Lifetime: lifetime,
	}
	w.ecs.Bodies[id] = w.space.AddBody(id, pos, config.ProjectileRadius, physics.MaskProjectile)
	return id
}

// aimAt points the tower's facing straight at the target position.
func (w *testWorld) aimAt(tower types.EntityID, at vec3.Vec3) {
	tr := w.ecs.Transforms[tower]
	dir := at.Sub(tr.Position)
	tr.Yaw = math.Atan2(dir.X, dir.Z)
}

// fixedScene is a SceneSource with a fixed answer.
type fixedScene struct {
	root   types.EntityID
	active bool
}

func (s fixedScene) Current() (types.EntityID, bool) {
	return s.root, s.active
}

// recorder collects dispatched events.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
