package components

import "fpsrig/internal/engine"

func init() {
	engine.RegisterScript("FPSimpleController", engine.ScriptType{
		New:       fpsFactory,
		Serialize: fpsSerializer,
		Apply:     fpsApplier,
	})
	engine.RegisterScript("MouseLook", engine.ScriptType{
		New:       mouseLookFactory,
		Serialize: mouseLookSerializer,
		Apply:     mouseLookApplier,
	})
}

// Property names are the scene-file keys.

func fpsFactory(props map[string]any) engine.Component {
	f := NewFPSController(DefaultFPSConfig())
	for name, v := range props {
		applyRigProp(&f.lookRig, name, v)
	}
	return f
}

func fpsSerializer(c engine.Component) map[string]any {
	f, ok := c.(*FPSController)
	if !ok {
		return nil
	}
	cfg := f.config
	return map[string]any{
		"walkSpeed":      cfg.WalkSpeed,
		"runSpeed":       cfg.RunSpeed,
		"smoothMovement": cfg.MoveSmoothing,
		"sensitivity":    cfg.Sensitivity,
		"smooth":         cfg.LookSmoothing,
		"invertedCamera": cfg.Invert,
		"pitchLimit":     cfg.PitchLimit,
		"camera":         f.cameraProp(),
	}
}

func fpsApplier(c engine.Component, propName string, value any) bool {
	f, ok := c.(*FPSController)
	if !ok {
		return false
	}
	return applyRigProp(&f.lookRig, propName, value)
}

func mouseLookFactory(props map[string]any) engine.Component {
	m := NewMouseLook(DefaultMouseLookConfig())
	for name, v := range props {
		applyRigProp(&m.lookRig, name, v)
	}
	return m
}

func mouseLookSerializer(c engine.Component) map[string]any {
	m, ok := c.(*MouseLook)
	if !ok {
		return nil
	}
	cfg := m.config
	return map[string]any{
		"sensitivity":    cfg.Sensitivity,
		"smooth":         cfg.LookSmoothing,
		"invertedCamera": cfg.Invert,
		"pitchLimit":     cfg.PitchLimit,
		"camera":         m.cameraProp(),
	}
}

func mouseLookApplier(c engine.Component, propName string, value any) bool {
	m, ok := c.(*MouseLook)
	if !ok {
		return false
	}
	return applyRigProp(&m.lookRig, propName, value)
}

// cameraProp is the camera name to save. A camera wired by reference is
// saved under its resolved name.
func (r *lookRig) cameraProp() string {
	if r.cam != nil {
		return r.cam.Name
	}
	return r.CameraName
}

// applyRigProp sets one named property, replacing the config as a whole.
func applyRigProp(r *lookRig, name string, value any) bool {
	if name == "camera" {
		s, ok := value.(string)
		if ok {
			r.CameraName = s
		}
		return ok
	}
	if name == "invertedCamera" {
		b, ok := value.(bool)
		if ok {
			cfg := r.config
			cfg.Invert = b
			r.Configure(cfg)
		}
		return ok
	}

	f, ok := value.(float64)
	if !ok {
		return false
	}
	cfg := r.config
	switch name {
	case "walkSpeed":
		cfg.WalkSpeed = float32(f)
	case "runSpeed":
		cfg.RunSpeed = float32(f)
	case "smoothMovement":
		cfg.MoveSmoothing = float32(f)
	case "sensitivity":
		cfg.Sensitivity = float32(f)
	case "smooth":
		cfg.LookSmoothing = float32(f)
	case "pitchLimit":
		cfg.PitchLimit = float32(f)
	default:
		return false
	}
	r.Configure(cfg)
	return true
}
