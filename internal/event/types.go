// internal/event/types.go
package event

const (
	EnemySpawned EventType = "EnemySpawned"
	EnemyKilled  EventType = "EnemyKilled"  // Data: types.EntityID of the dead enemy
	EnemyLeaked  EventType = "EnemyLeaked"  // enemy reached the objective
	TowerFired   EventType = "TowerFired"   // Data: types.EntityID of the firing tower
)
