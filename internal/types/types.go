// internal/types/types.go
package types

// EntityID identifies a single entity in the ECS. IDs are never reused
// within a session.
type EntityID uint64
