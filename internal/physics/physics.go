// internal/physics/physics.go
package physics

import (
	"sort"

	"go-corn-defense/internal/types"
	"go-corn-defense/pkg/vec3"
)

// BodyID identifies a collider registered with the engine.
type BodyID uint64

// Mask is a collision category bitmask.
type Mask uint32

const (
	MaskTower Mask = 1 << iota
	MaskEnemy
	MaskProjectile
	MaskTerrain

	MaskAll Mask = ^Mask(0)
)

// CollisionStarted names two bodies that began overlapping during the last
// Step. The pair is reported exactly once until the bodies separate.
type CollisionStarted struct {
	A, B BodyID
}

type body struct {
	id     BodyID
	owner  types.EntityID
	pos    vec3.Vec3
	radius float64
	mask   Mask
}

type pairKey struct {
	lo, hi BodyID
}

func keyOf(a, b BodyID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Engine is a sphere-overlap spatial index. It answers radius queries and
// reports collision starts between registered bodies. Brute-force pair
// checks are fine at this entity count.
type Engine struct {
	nextID   BodyID
	bodies   map[BodyID]*body
	touching map[pairKey]struct{}
	queue    []CollisionStarted
}

func NewEngine() *Engine {
	return &Engine{
		nextID:   1,
		bodies:   make(map[BodyID]*body),
		touching: make(map[pairKey]struct{}),
	}
}

func (e *Engine) AddBody(owner types.EntityID, pos vec3.Vec3, radius float64, mask Mask) BodyID {
	id := e.nextID
	e.nextID++
	e.bodies[id] = &body{id: id, owner: owner, pos: pos, radius: radius, mask: mask}
	return id
}

// RemoveBody drops the body and forgets its active contacts, so a later
// overlap at the same spot fires a fresh CollisionStarted.
func (e *Engine) RemoveBody(id BodyID) {
	delete(e.bodies, id)
	for key := range e.touching {
		if key.lo == id || key.hi == id {
			delete(e.touching, key)
		}
	}
}

func (e *Engine) SetPosition(id BodyID, pos vec3.Vec3) {
	if b, ok := e.bodies[id]; ok {
		b.pos = pos
	}
}

// OwnerOf resolves a body handle to the entity that owns it. This is the
// collider indirection: callers never assume a body id is an entity id.
func (e *Engine) OwnerOf(id BodyID) (types.EntityID, bool) {
	b, ok := e.bodies[id]
	if !ok {
		return 0, false
	}
	return b.owner, true
}

// QuerySphere returns the bodies matching mask whose spheres overlap a
// sphere of the given radius at center, in ascending body-id order. The
// ordering is an implementation detail; callers may rely on it being stable
// for a fixed engine state but not on any particular ranking.
func (e *Engine) QuerySphere(center vec3.Vec3, radius float64, mask Mask) []BodyID {
	var out []BodyID
	for id, b := range e.bodies {
		if b.mask&mask == 0 {
			continue
		}
		if center.Distance(b.pos) <= radius+b.radius {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Step detects newly overlapping pairs and queues a CollisionStarted for
// each. Pairs that stopped overlapping are forgotten. Same-category pairs
// are skipped; only cross-category contacts matter to the game.
func (e *Engine) Step() {
	ids := make([]BodyID, 0, len(e.bodies))
	for id := range e.bodies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	now := make(map[pairKey]struct{})
	for i := 0; i < len(ids); i++ {
		a := e.bodies[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			b := e.bodies[ids[j]]
			if a.mask == b.mask {
				continue
			}
			if a.pos.Distance(b.pos) > a.radius+b.radius {
				continue
			}
			key := keyOf(a.id, b.id)
			now[key] = struct{}{}
			if _, seen := e.touching[key]; !seen {
				e.queue = append(e.queue, CollisionStarted{A: key.lo, B: key.hi})
			}
		}
	}
	e.touching = now
}

// CollisionStarts drains the queued collision-start notifications.
func (e *Engine) CollisionStarts() []CollisionStarted {
	out := e.queue
	e.queue = nil
	return out
}
