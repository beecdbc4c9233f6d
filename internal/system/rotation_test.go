package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-corn-defense/internal/config"
	"go-corn-defense/internal/utils"
	"go-corn-defense/pkg/vec3"
)

func TestRotationSystem_TurnsTowardTarget(t *testing.T) {
	w := newTestWorld()
	rs := NewRotationSystem(w.ecs, config.DefaultTuning())

	tower := w.addTower("gun_tower", vec3.New(0, 0, 0))
	enemy := w.addEnemy(vec3.New(5, 0, 0), 20, 1) // bearing pi/2
	w.ecs.Targets.Set(tower, enemy)

	rs.Update(0.05)

	// One step of rotation speed 8 rad/s over 0.05s.
	assert.InDelta(t, 0.4, w.ecs.Transforms[tower].Yaw, 1e-9)

	// Enough updates and the facing settles exactly on the bearing.
	for i := 0; i < 60; i++ {
		rs.Update(0.05)
	}
	assert.Equal(t, math.Pi/2, w.ecs.Transforms[tower].Yaw)
}

func TestRotationSystem_SnapsInsideThreshold(t *testing.T) {
	w := newTestWorld()
	rs := NewRotationSystem(w.ecs, config.DefaultTuning())

	tower := w.addTower("gun_tower", vec3.New(0, 0, 0))
	enemy := w.addEnemy(vec3.New(5, 0, 0), 20, 1)
	w.ecs.Targets.Set(tower, enemy)
	w.ecs.Transforms[tower].Yaw = math.Pi/2 - 0.1

	rs.Update(0.001)

	assert.Equal(t, math.Pi/2, w.ecs.Transforms[tower].Yaw)
}

func TestRotationSystem_TakesShortestArc(t *testing.T) {
	w := newTestWorld()
	rs := NewRotationSystem(w.ecs, config.DefaultTuning())

	tower := w.addTower("gun_tower", vec3.New(0, 0, 0))
	enemy := w.addEnemy(vec3.New(-1, 0, -5), 20, 1)
	w.ecs.Targets.Set(tower, enemy)
	w.ecs.Transforms[tower].Yaw = math.Pi - 0.3 // just shy of pi

	dir := vec3.New(-1, 0, -5)
	bearing := math.Atan2(dir.X, dir.Z) // just past -pi
	require.Less(t, bearing, 0.0)

	rs.Update(0.05)

	// Crossing the pi seam is shorter than sweeping back through zero, so
	// one step wraps the yaw onto the negative side.
	yaw := w.ecs.Transforms[tower].Yaw
	assert.Less(t, yaw, 0.0)
	assert.InDelta(t, utils.NormalizeAngle(math.Pi+0.1), yaw, 1e-9)
}

func TestRotationSystem_IdleTowerHoldsFacing(t *testing.T) {
	w := newTestWorld()
	rs := NewRotationSystem(w.ecs, config.DefaultTuning())

	tower := w.addTower("gun_tower", vec3.New(0, 0, 0))
	w.addEnemy(vec3.New(5, 0, 0), 20, 1) // in range, but no edge set

	rs.Update(0.05)

	assert.Equal(t, 0.0, w.ecs.Transforms[tower].Yaw)
}
