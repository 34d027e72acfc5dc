package components

import (
	"fpsrig/internal/engine"
	"fpsrig/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Serializable {
		return NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

// BoxCollider is an axis-aligned box around the object's world position.
// Rotation is ignored.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	g := b.GetGameObject()
	center := rl.Vector3Add(g.WorldPosition(), b.Offset)
	return physics.NewAABBFromCenter(center, b.Size)
}

// TypeName implements engine.Serializable
func (b *BoxCollider) TypeName() string {
	return "BoxCollider"
}

// Serialize implements engine.Serializable
func (b *BoxCollider) Serialize() map[string]any {
	return map[string]any{
		"type":   "BoxCollider",
		"size":   []float32{b.Size.X, b.Size.Y, b.Size.Z},
		"offset": []float32{b.Offset.X, b.Offset.Y, b.Offset.Z},
	}
}

// Deserialize implements engine.Serializable
func (b *BoxCollider) Deserialize(data map[string]any) {
	if v, ok := vec3(data["size"]); ok {
		b.Size = v
	}
	if v, ok := vec3(data["offset"]); ok {
		b.Offset = v
	}
}

// vec3 reads a JSON [x, y, z] array.
func vec3(v any) (rl.Vector3, bool) {
	arr, ok := v.([]any)
	if !ok || len(arr) != 3 {
		return rl.Vector3{}, false
	}
	var out [3]float32
	for i, e := range arr {
		f, ok := e.(float64)
		if !ok {
			return rl.Vector3{}, false
		}
		out[i] = float32(f)
	}
	return rl.Vector3{X: out[0], Y: out[1], Z: out[2]}, true
}
