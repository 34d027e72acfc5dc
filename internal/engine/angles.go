package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clamp01 limits t to [0, 1].
func Clamp01(t float32) float32 {
	return rl.Clamp(t, 0, 1)
}

// SmoothFactor is the per-frame interpolation amount for a smoothing rate k
// applied over dt seconds.
func SmoothFactor(k, dt float32) float32 {
	return Clamp01(k * dt)
}

// DeltaAngle returns the shortest signed difference to - from in degrees,
// in the range [-180, 180).
func DeltaAngle(from, to float32) float32 {
	d := float32(math.Mod(float64(to-from)+180, 360))
	if d < 0 {
		d += 360
	}
	return d - 180
}

// LerpAngle moves from toward to along the shorter arc. For two rotations that
// differ only in this angle this equals a quaternion slerp with the same t.
func LerpAngle(from, to, t float32) float32 {
	return from + DeltaAngle(from, to)*Clamp01(t)
}
