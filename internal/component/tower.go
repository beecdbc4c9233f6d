// internal/component/tower.go
package component

// Tower holds the immutable combat stats of a stationary attacker.
// Stats are copied from the tower definition at placement time.
type Tower struct {
	DefID           string // ID from towers.json
	Range           float64
	Damage          float64
	AttackCooldown  float64 // seconds between shots
	ProjectileSpeed float64
}
