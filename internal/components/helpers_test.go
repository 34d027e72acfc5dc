package components

import (
	"math"
	"testing"

	"fpsrig/internal/engine"
	"fpsrig/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func nearVec(a, b rl.Vector3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

type rig struct {
	scene  *engine.Scene
	body   *engine.GameObject
	camera *engine.GameObject
	input  *input.Static
	cursor *input.CursorState
}

// newPlayer builds Player{Rigidbody, FPSController} -> Camera{Camera} in a
// fresh scene and starts it.
func newPlayer(t *testing.T, cfg ControllerConfig) (*rig, *FPSController) {
	t.Helper()
	r := newRig()
	r.body.AddComponent(NewRigidbody())
	fps := NewFPSController(cfg)
	fps.UseInput(r.input, r.cursor)
	r.body.AddComponent(fps)
	r.scene.Start()
	if err := fps.Err(); err != nil {
		t.Fatalf("controller failed to start: %v", err)
	}
	return r, fps
}

func newRig() *rig {
	r := &rig{
		scene:  engine.NewScene("Test"),
		body:   engine.NewGameObject("Player"),
		camera: engine.NewGameObject("Camera"),
		input:  &input.Static{},
		cursor: &input.CursorState{},
	}
	r.camera.AddComponent(NewCamera())
	r.camera.Transform.Position = rl.Vector3{Y: 1.6}
	r.body.AddChild(r.camera)
	r.scene.AddGameObject(r.body)
	r.scene.AddGameObject(r.camera)
	return r
}
