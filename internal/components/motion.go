package components

import (
	"fpsrig/internal/engine"
	"fpsrig/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MotionIntegrator eases a body toward a body-relative movement target once
// per fixed step. It keeps no state besides the last target for diagnostics.
type MotionIntegrator struct {
	LastTarget rl.Vector3
}

// MoveTarget is where one step of movement would land: the movement axis is
// normalized, mapped onto the body's right/forward axes and scaled by speed.
func MoveTarget(pos rl.Vector3, body engine.Transform, move rl.Vector2, speed float32) rl.Vector3 {
	if move != (rl.Vector2{}) {
		move = rl.Vector2Normalize(move)
	}
	dir := rl.Vector3Add(
		rl.Vector3Scale(body.Right(), move.X),
		rl.Vector3Scale(body.Forward(), move.Y),
	)
	return rl.Vector3Add(pos, rl.Vector3Scale(dir, speed))
}

// Step returns the body's next position for this fixed step.
func (m *MotionIntegrator) Step(pos rl.Vector3, body engine.Transform, in input.State, cfg ControllerConfig, dt float32) rl.Vector3 {
	speed := cfg.Speed(in.Run) * dt
	m.LastTarget = MoveTarget(pos, body, in.Move, speed)
	return rl.Vector3Lerp(pos, m.LastTarget, engine.SmoothFactor(cfg.MoveSmoothing, dt))
}
