package components

import (
	"fmt"
	"log/slog"

	"fpsrig/internal/engine"
	"fpsrig/internal/input"
)

// InputConsumer is implemented by components that sample player input.
// The game injects its provider and cursor after a scene is loaded.
type InputConsumer interface {
	UseInput(p input.Provider, c input.Cursor)
}

// lookRig is the part shared by the controllers: camera lookup, input, config
// and the look accumulator.
type lookRig struct {
	Camera     engine.GameObjectRef
	CameraName string // child looked up by name when Camera is unset
	Input      input.Provider
	Cursor     input.Cursor

	config ControllerConfig
	look   LookIntegrator
	cam    *engine.GameObject
	err    error
}

func (r *lookRig) UseInput(p input.Provider, c input.Cursor) {
	r.Input = p
	r.Cursor = c
}

// Configure replaces the tuning. Safe between frames; the look accumulator
// is kept.
func (r *lookRig) Configure(cfg ControllerConfig) {
	r.config = cfg
}

func (r *lookRig) Config() ControllerConfig {
	return r.config
}

// LookAngles implements engine.LookProvider.
func (r *lookRig) LookAngles() (pitch, yaw float32) {
	return r.look.State.Pitch, r.look.State.Yaw
}

// CameraObject is the resolved camera, nil before Start or on error.
func (r *lookRig) CameraObject() *engine.GameObject {
	return r.cam
}

// Err reports why the controller halted, if it did.
func (r *lookRig) Err() error {
	return r.err
}

func (r *lookRig) halted() bool {
	return r.err != nil
}

func (r *lookRig) sample() input.State {
	if r.Input == nil {
		return input.State{}
	}
	return r.Input.Sample()
}

// start resolves the camera, seeds the accumulator and captures the cursor.
func (r *lookRig) start(g *engine.GameObject, kind string) bool {
	if g == nil {
		return false
	}
	r.cam = resolveCamera(g, r.Camera, r.CameraName)
	if r.cam == nil {
		r.fail(g, kind, fmt.Errorf("%s on %q: %w", kind, g.Name, ErrMissingCamera))
		return false
	}
	r.look.Reset(&r.cam.Transform, &g.Transform, r.config.PitchLimit)
	if r.Cursor != nil {
		r.Cursor.Capture()
	}
	slog.Info("controller started",
		"controller", kind,
		"object", g.Name,
		"camera", r.cam.Name,
		"pitch", r.look.State.Pitch,
		"yaw", r.look.State.Yaw,
	)
	return true
}

func (r *lookRig) fail(g *engine.GameObject, kind string, err error) {
	r.err = err
	slog.Error("controller halted", "controller", kind, "object", g.Name, "error", err)
}

func (r *lookRig) updateLook(g *engine.GameObject, dt float32) {
	r.look.Update(r.sample().Look, r.config, dt, &r.cam.Transform, &g.Transform)
}

// resolveCamera tries the explicit reference, then an object by name, then the
// first child carrying a Camera component, then g itself.
func resolveCamera(g *engine.GameObject, ref engine.GameObjectRef, name string) *engine.GameObject {
	if cam := ref.Get(g.Scene); cam != nil {
		return cam
	}
	if name != "" {
		if cam := g.FindChild(name); cam != nil {
			return cam
		}
		if g.Scene != nil {
			if cam := g.Scene.FindByName(name); cam != nil {
				return cam
			}
		}
		return nil
	}
	for _, child := range g.Children {
		if engine.GetComponent[*Camera](child) != nil {
			return child
		}
	}
	if engine.GetComponent[*Camera](g) != nil {
		return g
	}
	return nil
}
