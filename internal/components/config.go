package components

import "math"

// SnapSmoothing makes every smoothing factor saturate, so rotations jump
// straight to their target.
const SnapSmoothing float32 = math.MaxFloat32

// ControllerConfig holds the tunables for a first-person controller. Values are
// not validated: zero or negative speeds and smoothing simply stop the
// corresponding motion.
type ControllerConfig struct {
	WalkSpeed     float32 // units per second
	RunSpeed      float32 // units per second while the run modifier is held
	MoveSmoothing float32 // per-second easing rate toward the step target
	Sensitivity   float32 // degrees per second per unit of look axis
	LookSmoothing float32 // per-second slerp rate toward the look target
	Invert        bool    // look up when the look axis points down
	PitchLimit    float32 // degrees either side of level
}

// DefaultFPSConfig is the FPSimpleController tuning.
func DefaultFPSConfig() ControllerConfig {
	return ControllerConfig{
		WalkSpeed:     5,
		RunSpeed:      10,
		MoveSmoothing: 40,
		Sensitivity:   120,
		LookSmoothing: 20,
		PitchLimit:    90,
	}
}

// DefaultMouseLookConfig is the look-only tuning: no smoothing, 80 degree limit.
func DefaultMouseLookConfig() ControllerConfig {
	return ControllerConfig{
		Sensitivity:   3,
		LookSmoothing: SnapSmoothing,
		PitchLimit:    80,
	}
}

// Speed returns the movement speed for the run modifier.
func (c ControllerConfig) Speed(run bool) float32 {
	if run {
		return c.RunSpeed
	}
	return c.WalkSpeed
}
