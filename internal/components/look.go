package components

import (
	"fpsrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LookState is the authoritative look orientation in degrees. Pitch stays
// within the configured limit, yaw is unbounded.
type LookState struct {
	Pitch float32
	Yaw   float32
}

// LookIntegrator accumulates look input and eases the camera's pitch and the
// body's yaw toward it. The displayed rotations lag the accumulator; the
// clamp applies to the accumulator only.
type LookIntegrator struct {
	State LookState
}

// Reset seeds the accumulator from the current camera pitch and body yaw so
// the view does not jump when a controller starts. The stored pitch is
// wrapped to [-180, 180) first, so 350 seeds as -10.
func (l *LookIntegrator) Reset(camera, body *engine.Transform, limit float32) {
	l.State.Pitch = rl.Clamp(engine.DeltaAngle(0, camera.Rotation.X), -limit, limit)
	l.State.Yaw = body.Rotation.Y
}

// Accumulate adds one frame of look input.
func (l *LookIntegrator) Accumulate(look rl.Vector2, cfg ControllerConfig, dt float32) {
	step := cfg.Sensitivity * dt
	l.State.Yaw += look.X * step
	if cfg.Invert {
		l.State.Pitch += look.Y * step
	} else {
		l.State.Pitch -= look.Y * step
	}
	l.State.Pitch = rl.Clamp(l.State.Pitch, -cfg.PitchLimit, cfg.PitchLimit)
}

// Apply moves the camera pitch and body yaw toward the accumulator. Only those
// two angles are written; camera yaw, body pitch and both rolls are kept.
// camera and body may be the same transform.
func (l *LookIntegrator) Apply(camera, body *engine.Transform, smoothing, dt float32) {
	f := engine.SmoothFactor(smoothing, dt)
	if f == 0 {
		return
	}
	camera.Rotation.X = engine.LerpAngle(camera.Rotation.X, l.State.Pitch, f)
	body.Rotation.Y = engine.LerpAngle(body.Rotation.Y, l.State.Yaw, f)
}

// Update runs one frame: accumulate then apply.
func (l *LookIntegrator) Update(look rl.Vector2, cfg ControllerConfig, dt float32, camera, body *engine.Transform) {
	l.Accumulate(look, cfg, dt)
	l.Apply(camera, body, cfg.LookSmoothing, dt)
}
