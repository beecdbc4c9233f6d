// internal/utils/math.go
package utils

import "math"

// NormalizeAngle wraps an angle into [-pi, pi].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleDiff returns the signed shortest rotation from one angle to another.
func AngleDiff(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// RotateToward moves from toward to by at most maxDelta radians along the
// shortest arc.
func RotateToward(from, to, maxDelta float64) float64 {
	diff := AngleDiff(from, to)
	if math.Abs(diff) <= maxDelta {
		return NormalizeAngle(to)
	}
	if diff < 0 {
		maxDelta = -maxDelta
	}
	return NormalizeAngle(from + maxDelta)
}
