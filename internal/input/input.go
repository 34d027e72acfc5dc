// Package input samples player intent for the first-person controllers.
//
// Components never poll devices directly; they hold a Provider and call
// Sample once per Update or FixedUpdate.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is one sample of player intent. Move and Look components are roughly
// in [-1, 1] and are not normalized.
type State struct {
	Move rl.Vector2 // X strafes right, Y walks forward
	Look rl.Vector2 // X turns right, Y looks up
	Run  bool
}

type Provider interface {
	Sample() State
}

// None is the provider used when no input backend is attached.
type None struct{}

func (None) Sample() State { return State{} }

// Static returns whatever State currently holds. Scripted drivers and tests
// set it between frames.
type Static struct {
	State State
}

func (s *Static) Sample() State {
	return s.State
}
