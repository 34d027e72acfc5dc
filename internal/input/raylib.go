package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bindings maps keys to the movement axes and run modifier.
type Bindings struct {
	Forward, Back, Left, Right int32
	Run                        []int32
	MouseScale                 float32 // look units per pixel of mouse travel
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward:    rl.KeyW,
		Back:       rl.KeyS,
		Left:       rl.KeyA,
		Right:      rl.KeyD,
		Run:        []int32{rl.KeyLeftShift, rl.KeyRightShift},
		MouseScale: 0.1,
	}
}

type device interface {
	IsKeyDown(key int32) bool
	MouseDelta() rl.Vector2
}

type raylibDevice struct{}

func (raylibDevice) IsKeyDown(key int32) bool { return rl.IsKeyDown(key) }

func (raylibDevice) MouseDelta() rl.Vector2 { return rl.GetMouseDelta() }

// Raylib reads WASD, mouse motion and shift from the open raylib window.
type Raylib struct {
	Bindings Bindings
	dev      device
}

func NewRaylib(b Bindings) *Raylib {
	return &Raylib{Bindings: b, dev: raylibDevice{}}
}

func (r *Raylib) Sample() State {
	b := r.Bindings
	mouse := r.dev.MouseDelta()

	var s State
	s.Move.X = r.axis(b.Left, b.Right)
	s.Move.Y = r.axis(b.Back, b.Forward)
	// Screen Y grows downward; moving the mouse up looks up.
	s.Look = rl.Vector2{X: mouse.X * b.MouseScale, Y: -mouse.Y * b.MouseScale}
	for _, k := range b.Run {
		if r.dev.IsKeyDown(k) {
			s.Run = true
			break
		}
	}
	return s
}

func (r *Raylib) axis(neg, pos int32) float32 {
	var v float32
	if r.dev.IsKeyDown(pos) {
		v++
	}
	if r.dev.IsKeyDown(neg) {
		v--
	}
	return v
}
