// internal/component/combat.go
package component

// Cooldown gates firing. Remaining counts down every tick and is reset to
// the tower's AttackCooldown on a successful shot.
type Cooldown struct {
	Remaining float64
}

// Ready reports whether the owner may fire this tick.
func (c *Cooldown) Ready() bool {
	return c.Remaining <= 0
}
