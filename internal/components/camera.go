package components

import (
	"fpsrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable {
		return NewCamera()
	})
}

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Projection: rl.CameraPerspective,
	}
}

// TypeName implements engine.Serializable
func (c *Camera) TypeName() string {
	return "Camera"
}

// Serialize implements engine.Serializable
func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"type":   "Camera",
		"fov":    c.FOV,
		"isMain": c.IsMain,
	}
}

// Deserialize implements engine.Serializable
func (c *Camera) Deserialize(data map[string]any) {
	if f, ok := data["fov"].(float64); ok {
		c.FOV = float32(f)
	}
	if m, ok := data["isMain"].(bool); ok {
		c.IsMain = m
	}
}

// GetRaylibCamera views along the object's world forward axis, so the body's
// yaw, the camera's pitch and any roll all show up.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	eye := g.WorldPosition()
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, g.WorldForward()),
		Up:         g.WorldUp(),
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
