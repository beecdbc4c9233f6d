package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-corn-defense/internal/config"
	"go-corn-defense/internal/defs"
	"go-corn-defense/internal/event"
	"go-corn-defense/pkg/vec3"
)

type eventCounter struct {
	counts map[event.EventType]int
}

func newEventCounter() *eventCounter {
	return &eventCounter{counts: make(map[event.EventType]int)}
}

func (c *eventCounter) OnEvent(e event.Event) {
	c.counts[e.Type]++
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	defs.UseBuiltin()
	g := NewGame(config.DefaultTuning())
	for _, p := range []struct {
		defID string
		pos   vec3.Vec3
	}{
		{"gun_tower", vec3.New(0, 0, -3)},
		{"cannon_tower", vec3.New(7, 0, 2)},
	} {
		_, err := g.PlaceTower(p.defID, p.pos)
		require.NoError(t, err)
	}
	return g
}

// checkTick asserts the structural invariants that must hold at every tick
// boundary, whatever the simulation happens to be doing.
func checkTick(t *testing.T, g *Game) {
	t.Helper()

	for towerID, tower := range g.ECS.Towers {
		target, ok := g.ECS.Targets.Get(towerID)
		if !ok {
			continue
		}
		targetTr := g.ECS.Transforms[target]
		require.NotNil(t, targetTr, "target edge points at a live entity")
		require.Contains(t, g.ECS.Enemies, target)
		dist := g.ECS.Transforms[towerID].Position.Distance(targetTr.Position)
		require.LessOrEqual(t, dist, tower.Range+1e-9, "targets stay inside range")
	}

	for id, proj := range g.ECS.Projectiles {
		require.Greater(t, proj.Lifetime, 0.0, "expired shots are gone by tick end")
		require.Contains(t, g.ECS.Transforms, id)
		require.Contains(t, g.ECS.Bodies, id)
	}

	for id, bodyID := range g.ECS.Bodies {
		owner, ok := g.Space.OwnerOf(bodyID)
		require.True(t, ok, "every tracked body is live in the engine")
		require.Equal(t, id, owner)
	}

	for _, cd := range g.ECS.Cooldowns {
		require.LessOrEqual(t, cd.Remaining, defs.TowerLibrary["cannon_tower"].AttackCooldown)
	}
}

func TestGame_SimulationRunsAndResolves(t *testing.T) {
	g := newTestGame(t)
	counter := newEventCounter()
	g.EventDispatcher.Subscribe(event.EnemySpawned, counter)
	g.EventDispatcher.Subscribe(event.EnemyKilled, counter)
	g.EventDispatcher.Subscribe(event.EnemyLeaked, counter)

	const dt = 1.0 / 60
	for tick := 0; tick < 60*90; tick++ {
		g.Update(dt)
		if tick%30 == 0 {
			checkTick(t, g)
		}
		if g.BaseHealth <= 0 {
			break
		}
	}

	spawned := counter.counts[event.EnemySpawned]
	killed := counter.counts[event.EnemyKilled]
	leaked := counter.counts[event.EnemyLeaked]

	assert.Greater(t, spawned, 0)
	assert.Greater(t, killed+leaked, 0, "the field does not fill up forever")
	assert.Equal(t, spawned, killed+leaked+len(g.ECS.Enemies), "every spawn is accounted for")
	assert.Equal(t, killed, g.Kills)
	assert.Equal(t, config.BaseHealth-leaked, g.BaseHealth)
	assert.Equal(t, killed, len(g.ECS.Rewards), "one drop per kill")
	assert.Greater(t, g.GameTime(), 0.0)
}

func TestGame_PlaceTowerUnknownArchetype(t *testing.T) {
	defs.UseBuiltin()
	g := NewGame(config.DefaultTuning())

	_, err := g.PlaceTower("butter_cannon", vec3.New(0, 0, 0))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tower archetype")
}

func TestGame_TeardownClearsSceneEntities(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 60*10; i++ {
		g.Update(1.0 / 60)
	}

	g.Teardown()

	assert.Empty(t, g.ECS.Towers)
	assert.Empty(t, g.ECS.Rewards)
	_, active := g.Scenes.Current()
	assert.False(t, active)
}
