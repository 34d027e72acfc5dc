package components

import (
	"testing"

	"fpsrig/internal/engine"
	"fpsrig/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestMoveTargetWalkScenario(t *testing.T) {
	cfg := ControllerConfig{WalkSpeed: 5, RunSpeed: 10}
	pos := rl.Vector3{X: 1, Y: 2, Z: 3}

	tests := []struct {
		name string
		body engine.Transform
		run  bool
		want rl.Vector3
	}{
		{"walk facing -Z", engine.Transform{}, false, rl.Vector3{Z: -0.1}},
		{"run facing -Z", engine.Transform{}, true, rl.Vector3{Z: -0.2}},
		{"walk after turning right", engine.Transform{Rotation: rl.Vector3{Y: 90}}, false, rl.Vector3{X: 0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := MoveTarget(pos, tt.body, rl.Vector2{Y: 1}, cfg.Speed(tt.run)*0.02)
			if got := rl.Vector3Subtract(target, pos); !nearVec(got, tt.want) {
				t.Errorf("displacement = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveTargetNormalizesDiagonal(t *testing.T) {
	target := MoveTarget(rl.Vector3{}, engine.Transform{}, rl.Vector2{X: 1, Y: 1}, 1)
	if l := rl.Vector3Length(target); !near(l, 1) {
		t.Errorf("diagonal displacement length = %v, want 1", l)
	}
	if target.X <= 0 || target.Z >= 0 {
		t.Errorf("diagonal should go right and forward, got %v", target)
	}
}

func TestMoveTargetZeroInputNoDrift(t *testing.T) {
	pos := rl.Vector3{X: 4, Y: 1, Z: -2}
	body := engine.Transform{Rotation: rl.Vector3{Y: 33}}

	if got := MoveTarget(pos, body, rl.Vector2{}, 0.2); got != pos {
		t.Errorf("zero input target = %v, want %v", got, pos)
	}
}

func TestMotionStepEasesTowardTarget(t *testing.T) {
	cfg := ControllerConfig{WalkSpeed: 5, MoveSmoothing: 25}
	var m MotionIntegrator

	next := m.Step(rl.Vector3{}, engine.Transform{}, input.State{Move: rl.Vector2{Y: 1}}, cfg, 0.02)

	if !nearVec(m.LastTarget, rl.Vector3{Z: -0.1}) {
		t.Errorf("LastTarget = %v, want (0, 0, -0.1)", m.LastTarget)
	}
	// 25 * 0.02 = halfway.
	if !nearVec(next, rl.Vector3{Z: -0.05}) {
		t.Errorf("next = %v, want (0, 0, -0.05)", next)
	}
}

func TestMotionStepZeroDeltaTime(t *testing.T) {
	cfg := DefaultFPSConfig()
	var m MotionIntegrator
	pos := rl.Vector3{X: 1, Y: 1, Z: 1}

	next := m.Step(pos, engine.Transform{}, input.State{Move: rl.Vector2{X: 1, Y: 1}, Run: true}, cfg, 0)
	if next != pos {
		t.Errorf("dt=0 moved the body to %v", next)
	}
}

func TestMotionStepDegenerateConfig(t *testing.T) {
	var m MotionIntegrator
	pos := rl.Vector3{Y: 1}
	in := input.State{Move: rl.Vector2{Y: 1}}

	if next := m.Step(pos, engine.Transform{}, in, ControllerConfig{WalkSpeed: 5}, 0.02); next != pos {
		t.Errorf("zero smoothing should hold position, got %v", next)
	}
	if next := m.Step(pos, engine.Transform{}, in, ControllerConfig{MoveSmoothing: 50}, 0.02); next != pos {
		t.Errorf("zero speed should hold position, got %v", next)
	}
}
