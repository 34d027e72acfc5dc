package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 2, Y: 4, Z: 6})

	if box.Min != (rl.Vector3{X: 0, Y: 0, Z: 0}) || box.Max != (rl.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("got %+v", box)
	}
	if box.Center() != (rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Center() = %v", box.Center())
	}
	if box.Size() != (rl.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Size() = %v", box.Size())
	}
}

func TestIntersectsTouchingIsNotOverlap(t *testing.T) {
	floor := NewAABBFromCenter(rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10})
	resting := NewAABBFromCenter(rl.Vector3{Y: 1}, rl.Vector3{X: 1, Y: 2, Z: 1})
	sunk := NewAABBFromCenter(rl.Vector3{Y: 0.9}, rl.Vector3{X: 1, Y: 2, Z: 1})

	if resting.Intersects(floor) {
		t.Error("a box resting on the floor should not intersect it")
	}
	if !sunk.Intersects(floor) {
		t.Error("a box sunk into the floor should intersect it")
	}
}

func TestResolvePicksShallowestAxis(t *testing.T) {
	wall := NewAABBFromCenter(rl.Vector3{X: 2}, rl.Vector3{X: 2, Y: 4, Z: 4})

	tests := []struct {
		name string
		box  AABB
		want rl.Vector3
	}{
		{
			name: "pushed back out along -X",
			box:  NewAABBFromCenter(rl.Vector3{X: 0.75}, rl.Vector3{X: 1, Y: 1, Z: 1}),
			want: rl.Vector3{X: -0.25},
		},
		{
			name: "pushed out along +X",
			box:  NewAABBFromCenter(rl.Vector3{X: 3.25}, rl.Vector3{X: 1, Y: 1, Z: 1}),
			want: rl.Vector3{X: 0.25},
		},
		{
			name: "no overlap",
			box:  NewAABBFromCenter(rl.Vector3{X: -3}, rl.Vector3{X: 1, Y: 1, Z: 1}),
			want: rl.Vector3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Resolve(wall); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRaycast(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{Z: -5}, rl.Vector3{X: 2, Y: 2, Z: 2})

	tests := []struct {
		name       string
		origin     rl.Vector3
		dir        rl.Vector3
		max        float32
		wantHit    bool
		wantDist   float32
		wantNormal rl.Vector3
	}{
		{"straight ahead", rl.Vector3{}, rl.Vector3{Z: -1}, 100, true, 4, rl.Vector3{Z: 1}},
		{"unnormalized", rl.Vector3{}, rl.Vector3{Z: -10}, 100, true, 4, rl.Vector3{Z: 1}},
		{"from above", rl.Vector3{Y: 10, Z: -5}, rl.Vector3{Y: -1}, 100, true, 9, rl.Vector3{Y: 1}},
		{"from the side", rl.Vector3{X: -6, Z: -5}, rl.Vector3{X: 1}, 100, true, 5, rl.Vector3{X: -1}},
		{"out of range", rl.Vector3{}, rl.Vector3{Z: -1}, 3, false, 0, rl.Vector3{}},
		{"pointing away", rl.Vector3{}, rl.Vector3{Z: 1}, 100, false, 0, rl.Vector3{}},
		{"parallel miss", rl.Vector3{Y: 3}, rl.Vector3{Z: -1}, 100, false, 0, rl.Vector3{}},
		{"from inside", rl.Vector3{Z: -5}, rl.Vector3{X: 1}, 100, true, 1, rl.Vector3{X: 1}},
		{"zero direction", rl.Vector3{}, rl.Vector3{}, 100, false, 0, rl.Vector3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := box.Raycast(tt.origin, tt.dir, tt.max)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if !ok {
				return
			}
			if hit.Distance != tt.wantDist {
				t.Errorf("Distance = %v, want %v", hit.Distance, tt.wantDist)
			}
			if hit.Normal != tt.wantNormal {
				t.Errorf("Normal = %v, want %v", hit.Normal, tt.wantNormal)
			}
		})
	}
}
