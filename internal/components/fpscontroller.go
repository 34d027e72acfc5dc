package components

import (
	"fmt"

	"fpsrig/internal/engine"
)

// FPSController is a first-person look-and-move controller. The body it sits
// on carries yaw and a Rigidbody; a child camera carries pitch.
//
//	Player (Rigidbody, BoxCollider, FPSController)
//	  └─ Camera (Camera)
type FPSController struct {
	engine.BaseComponent
	lookRig

	motion MotionIntegrator
	body   *Rigidbody
}

func NewFPSController(cfg ControllerConfig) *FPSController {
	f := &FPSController{}
	f.config = cfg
	return f
}

func (f *FPSController) Start() {
	g := f.GetGameObject()
	if !f.start(g, "FPSimpleController") {
		return
	}
	f.body = engine.GetComponent[*Rigidbody](g)
	if f.body == nil {
		f.fail(g, "FPSimpleController", fmt.Errorf("FPSimpleController on %q: %w", g.Name, ErrMissingBody))
	}
}

// Update integrates look input once per rendered frame.
func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || f.cam == nil || f.halted() {
		return
	}
	f.updateLook(g, deltaTime)
}

// FixedUpdate moves the body once per physics step.
func (f *FPSController) FixedUpdate(fixedDeltaTime float32) {
	g := f.GetGameObject()
	if g == nil || f.body == nil || f.halted() {
		return
	}
	pos := g.Transform.Position
	next := f.motion.Step(pos, g.Transform, f.sample(), f.config, fixedDeltaTime)
	f.body.MovePosition(next)
}

// LastMoveTarget is the unsmoothed target of the most recent physics step.
func (f *FPSController) LastMoveTarget() (x, y, z float32) {
	t := f.motion.LastTarget
	return t.X, t.Y, t.Z
}
