package game

import (
	"fpsrig/internal/components"
	"fpsrig/internal/config"
	"fpsrig/internal/engine"
)

// rig is what the game needs from either look controller.
type rig interface {
	engine.Component
	engine.LookProvider
	components.InputConsumer
	Config() components.ControllerConfig
	Configure(components.ControllerConfig)
	Err() error
	CameraObject() *engine.GameObject
}

// baseConfig returns the tuning a variant starts from.
func baseConfig(variant string) components.ControllerConfig {
	if variant == config.VariantMouseLook {
		return components.DefaultMouseLookConfig()
	}
	return components.DefaultFPSConfig()
}

// applyOverrides copies every set field of o over cfg.
func applyOverrides(cfg components.ControllerConfig, o config.ControllerConfig) components.ControllerConfig {
	if o.WalkSpeed != nil {
		cfg.WalkSpeed = *o.WalkSpeed
	}
	if o.RunSpeed != nil {
		cfg.RunSpeed = *o.RunSpeed
	}
	if o.SmoothMovement != nil {
		cfg.MoveSmoothing = *o.SmoothMovement
	}
	if o.Sensitivity != nil {
		cfg.Sensitivity = *o.Sensitivity
	}
	if o.Smooth != nil {
		cfg.LookSmoothing = *o.Smooth
	}
	if o.InvertedCamera != nil {
		cfg.Invert = *o.InvertedCamera
	}
	if o.PitchLimit != nil {
		cfg.PitchLimit = *o.PitchLimit
	}
	return cfg
}

// newController builds the configured variant with its overrides applied.
func newController(o config.ControllerConfig) rig {
	cfg := applyOverrides(baseConfig(o.Variant), o)
	if o.Variant == config.VariantMouseLook {
		return components.NewMouseLook(cfg)
	}
	return components.NewFPSController(cfg)
}

// findRig returns the first controller in the scene and the object carrying it.
func findRig(scene *engine.Scene) (rig, *engine.GameObject) {
	for _, g := range scene.GameObjects {
		if r := engine.FindComponent[rig](g); r != nil {
			return r, g
		}
	}
	return nil, nil
}
