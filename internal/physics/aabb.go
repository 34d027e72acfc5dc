// Package physics holds the collision primitives the rigidbody and the
// world use: box overlap resolution and ray casts.
package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3Scale(size, 0.5)
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Intersects reports strict overlap; boxes that only touch do not intersect,
// so a body resting on the floor is left alone.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// Resolve returns the minimum translation that pushes a out of b, or the zero
// vector if they don't overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	candidates := [6]rl.Vector3{
		{X: b.Max.X - a.Min.X},
		{X: b.Min.X - a.Max.X},
		{Y: b.Max.Y - a.Min.Y},
		{Y: b.Min.Y - a.Max.Y},
		{Z: b.Max.Z - a.Min.Z},
		{Z: b.Min.Z - a.Max.Z},
	}

	best := candidates[0]
	bestLen := rl.Vector3Length(best)
	for _, c := range candidates[1:] {
		if l := rl.Vector3Length(c); l < bestLen {
			best, bestLen = c, l
		}
	}
	return best
}
