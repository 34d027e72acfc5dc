package components

import "fpsrig/internal/engine"

// MouseLook is the look-only controller: yaw on its own object, pitch on the
// camera, no movement.
type MouseLook struct {
	engine.BaseComponent
	lookRig
}

func NewMouseLook(cfg ControllerConfig) *MouseLook {
	m := &MouseLook{}
	m.config = cfg
	return m
}

func (m *MouseLook) Start() {
	m.start(m.GetGameObject(), "MouseLook")
}

func (m *MouseLook) Update(deltaTime float32) {
	g := m.GetGameObject()
	if g == nil || m.cam == nil || m.halted() {
		return
	}
	m.updateLook(g, deltaTime)
}
