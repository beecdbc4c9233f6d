// internal/component/enemy.go
package component

// Enemy is a hostile agent walking the level path.
type Enemy struct {
	DefID string // ID from enemies.json
	Speed float64

	// PathIndex is the next waypoint to walk toward. PathRemaining is the
	// distance left to the objective and is the tower targeting priority:
	// lower means closer to the objective, which makes it a better target.
	PathIndex     int
	PathRemaining float64
	ReachedEnd    bool
}
