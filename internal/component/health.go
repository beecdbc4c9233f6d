// internal/component/health.go
package component

// Health is mutable hit points. The value is not clamped: the collision
// resolver may push it below zero, and anything at or below zero is
// despawned by the death system on the same tick.
type Health struct {
	Value float64
}

// MaxHealth is a write-once configuration value. Attaching it initializes
// Health to the same value (see entity.AttachHealth).
type MaxHealth struct {
	Value float64
}
