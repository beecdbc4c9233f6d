package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-corn-defense/internal/physics"
	"go-corn-defense/pkg/vec3"
)

func TestProjectileSystem_IntegratesMotion(t *testing.T) {
	w := newTestWorld()
	ps := NewProjectileSystem(w.ecs, w.space)

	id := w.addProjectile(vec3.New(0, 0.5, 0), vec3.New(0, 0, 10), 5, 3)

	ps.Update(0.1)

	assert.Equal(t, vec3.New(0, 0.5, 1), w.ecs.Transforms[id].Position)
	assert.InDelta(t, 2.9, w.ecs.Projectiles[id].Lifetime, 1e-9)

	// The physics body follows the transform.
	got := w.space.QuerySphere(vec3.New(0, 0.5, 1), 0.01, physics.MaskAll)
	if assert.Len(t, got, 1) {
		owner, ok := w.space.OwnerOf(got[0])
		require.True(t, ok)
		assert.Equal(t, id, owner)
	}
}

func TestProjectileSystem_ExpiresByLifetime(t *testing.T) {
	w := newTestWorld()
	ps := NewProjectileSystem(w.ecs, w.space)

	id := w.addProjectile(vec3.New(0, 0.5, 0), vec3.New(0, 0, 10), 5, 0.5)

	for i := 0; i < 4; i++ {
		ps.Update(0.1)
	}
	require.Contains(t, w.ecs.Projectiles, id)
	require.Equal(t, vec3.New(0, 0.5, 4), w.ecs.Transforms[id].Position)

	ps.Update(0.1)

	// The expiring tick removes the shot without moving it first.
	assert.NotContains(t, w.ecs.Projectiles, id)
	assert.NotContains(t, w.ecs.Transforms, id)
	assert.NotContains(t, w.ecs.Bodies, id)
	assert.Empty(t, w.space.QuerySphere(vec3.New(0, 0, 0), 100, physics.MaskAll))
}

func TestProjectileSystem_MissingTransformCleansUp(t *testing.T) {
	w := newTestWorld()
	ps := NewProjectileSystem(w.ecs, w.space)

	id := w.addProjectile(vec3.New(0, 0.5, 0), vec3.New(0, 0, 10), 5, 3)
	delete(w.ecs.Transforms, id)

	ps.Update(0.1)

	assert.NotContains(t, w.ecs.Projectiles, id)
	assert.NotContains(t, w.ecs.Bodies, id)
}
