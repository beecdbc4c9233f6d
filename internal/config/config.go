// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640

	// WorldScale maps world units (X/Z plane) to screen pixels.
	WorldScale    = 40.0
	MaxDeltaTime  = 0.06
	BaseHealth    = 20
	RewardAmount  = 1

	// Combat policy. Tuning may override the first four at startup.
	RotationSpeed      = 8.0  // rad/s toward the target bearing
	SnapThreshold      = 0.15 // rad; below this the facing snaps
	MinFacingAccuracy  = 0.9  // dot(forward, to-target) needed to fire
	ProjectileLifetime = 3.0  // seconds

	MuzzleOffsetY = 0.5
	AimOffsetY    = 0.5
	RewardOffsetY = 1.5

	ProjectileRadius = 0.15 // collider radius, world units

	SpawnInterval   = 1.5
	EnemiesPerWave  = 8
	WavePause       = 4.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PathColor       = color.RGBA{70, 100, 120, 220}
	HUDTextColor    = color.RGBA{230, 230, 230, 255}
)
