package game

import (
	"testing"

	"fpsrig/internal/components"
	"fpsrig/internal/config"
)

func ptr[T any](v T) *T { return &v }

func TestApplyOverrides(t *testing.T) {
	base := components.DefaultFPSConfig()

	if got := applyOverrides(base, config.ControllerConfig{}); got != base {
		t.Errorf("no overrides changed config to %+v", got)
	}

	got := applyOverrides(base, config.ControllerConfig{
		WalkSpeed:      ptr[float32](2),
		RunSpeed:       ptr[float32](4),
		SmoothMovement: ptr[float32](0),
		Sensitivity:    ptr[float32](60),
		Smooth:         ptr[float32](5),
		InvertedCamera: ptr(true),
		PitchLimit:     ptr[float32](45),
	})
	want := components.ControllerConfig{
		WalkSpeed:     2,
		RunSpeed:      4,
		MoveSmoothing: 0,
		Sensitivity:   60,
		LookSmoothing: 5,
		Invert:        true,
		PitchLimit:    45,
	}
	if got != want {
		t.Errorf("applyOverrides = %+v, want %+v", got, want)
	}
}

func TestTune(t *testing.T) {
	cfg := components.DefaultMouseLookConfig()

	if _, changed := tune(cfg, cfg.Sensitivity, cfg.Invert); changed {
		t.Error("unchanged values reported as a change")
	}
	next, changed := tune(cfg, 4.5, true)
	if !changed || next.Sensitivity != 4.5 || !next.Invert {
		t.Errorf("tune = %+v, %v", next, changed)
	}
	if next.PitchLimit != cfg.PitchLimit || next.LookSmoothing != cfg.LookSmoothing {
		t.Error("tune should only touch sensitivity and invert")
	}
}
