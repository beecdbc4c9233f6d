// internal/component/reward.go
package component

// Reward marks a pickup dropped where an enemy died. It is parented into
// the active scene and torn down with it.
type Reward struct {
	Amount int
}
