// internal/entity/targets.go
package entity

import (
	"sort"

	"go-corn-defense/internal/types"
)

// TargetStore is the tower -> enemy targeting relation. Each attacker holds
// at most one outgoing edge; the reverse index (which attackers engage a
// given enemy) is maintained in the same mutation, so the two views can
// never disagree between ticks.
type TargetStore struct {
	forward map[types.EntityID]types.EntityID
	reverse map[types.EntityID]map[types.EntityID]struct{}
}

func NewTargetStore() *TargetStore {
	return &TargetStore{
		forward: make(map[types.EntityID]types.EntityID),
		reverse: make(map[types.EntityID]map[types.EntityID]struct{}),
	}
}

// Set points attacker at target, replacing any previous edge.
func (ts *TargetStore) Set(attacker, target types.EntityID) {
	ts.Clear(attacker)
	ts.forward[attacker] = target
	set, ok := ts.reverse[target]
	if !ok {
		set = make(map[types.EntityID]struct{})
		ts.reverse[target] = set
	}
	set[attacker] = struct{}{}
}

// Clear removes the attacker's outgoing edge, if any.
func (ts *TargetStore) Clear(attacker types.EntityID) {
	target, ok := ts.forward[attacker]
	if !ok {
		return
	}
	delete(ts.forward, attacker)
	if set, ok := ts.reverse[target]; ok {
		delete(set, attacker)
		if len(set) == 0 {
			delete(ts.reverse, target)
		}
	}
}

// ClearTarget drops every edge pointing at target. Used when the target
// entity despawns.
func (ts *TargetStore) ClearTarget(target types.EntityID) {
	for attacker := range ts.reverse[target] {
		delete(ts.forward, attacker)
	}
	delete(ts.reverse, target)
}

func (ts *TargetStore) Get(attacker types.EntityID) (types.EntityID, bool) {
	target, ok := ts.forward[attacker]
	return target, ok
}

// AttackersOf returns the attackers currently engaging target, in ascending
// id order.
func (ts *TargetStore) AttackersOf(target types.EntityID) []types.EntityID {
	set := ts.reverse[target]
	if len(set) == 0 {
		return nil
	}
	out := make([]types.EntityID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of attackers holding an edge.
func (ts *TargetStore) Len() int {
	return len(ts.forward)
}
