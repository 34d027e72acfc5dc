package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast intersects the ray origin + t*direction (t in [0, maxDistance])
// with the box using the slab method. A ray starting inside the box hits the
// face it leaves through. direction need not be normalized; Distance is
// measured along the normalized direction.
func (a AABB) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	if direction == (rl.Vector3{}) {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{a.Min.X, a.Min.Y, a.Min.Z}
	hi := [3]float32{a.Max.X, a.Max.Y, a.Max.Z}

	tmin, tmax := float32(-1e30), float32(1e30)
	enterAxis, exitAxis := -1, -1
	var enterSign, exitSign float32

	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		// sign of the face normal the ray enters through on this axis
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin, enterAxis, enterSign = t1, i, sign
		}
		if t2 < tmax {
			tmax, exitAxis, exitSign = t2, i, -sign
		}
	}

	if tmin > tmax || tmax < 0 {
		return RaycastHit{}, false
	}

	t, axis, sign := tmin, enterAxis, enterSign
	if t < 0 {
		t, axis, sign = tmax, exitAxis, exitSign
	}
	if t > maxDistance || axis < 0 {
		return RaycastHit{}, false
	}

	var n [3]float32
	n[axis] = sign
	return RaycastHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
		Normal:   rl.Vector3{X: n[0], Y: n[1], Z: n[2]},
		Distance: t,
	}, true
}
