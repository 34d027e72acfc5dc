// Package game runs the first-person demo: window, input, fixed-step loop,
// world drawing and the tuning HUD.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"fpsrig/internal/components"
	"fpsrig/internal/config"
	"fpsrig/internal/engine"
	"fpsrig/internal/input"
	"fpsrig/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrNoController = errors.New("scene has no look controller")

// lookRange is how far the HUD probes for the object under the crosshair.
const lookRange = 50

type Game struct {
	Config *config.Config
	World  *world.World
	Player *engine.GameObject

	rig     rig
	cursor  input.Cursor
	stepper *engine.FixedStepper
	hud     *hud

	lastSteps int // fixed steps run in the last frame
	quit      bool
}

// New builds the world described by cfg: the scene file when one is set,
// otherwise the default layout with the configured controller variant.
// No raylib calls are made until Run.
func New(cfg *config.Config) (*Game, error) {
	w := world.New()
	if cfg.Scene.Path != "" {
		if err := w.LoadScene(cfg.Scene.Path); err != nil {
			return nil, err
		}
	} else {
		w.BuildDefault(newController(cfg.Controller))
	}

	r, player := findRig(w.Scene)
	if r == nil {
		return nil, fmt.Errorf("%s: %w", sceneName(cfg), ErrNoController)
	}
	if cfg.Scene.Path != "" {
		r.Configure(applyOverrides(r.Config(), cfg.Controller))
	}

	g := &Game{
		Config:  cfg,
		World:   w,
		Player:  player,
		rig:     r,
		stepper: engine.NewFixedStepper(cfg.Loop.FixedStep, cfg.Loop.MaxSteps),
	}
	g.hud = newHUD(r.Config())

	bindings := input.DefaultBindings()
	bindings.MouseScale = cfg.Input.MouseScale
	cursor := &input.RaylibCursor{}
	cursor.Changed.AddListener(func(captured bool) {
		slog.Debug("cursor", "captured", captured)
	})
	g.attachInput(input.NewRaylib(bindings), cursor)
	return g, nil
}

func sceneName(cfg *config.Config) string {
	if cfg.Scene.Path != "" {
		return cfg.Scene.Path
	}
	return "default scene"
}

// attachInput hands p and c to every input consumer in the scene. The
// provider is gated on c so a released cursor freezes the player.
func (g *Game) attachInput(p input.Provider, c input.Cursor) {
	g.cursor = c
	gated := input.Gated{Provider: p, Cursor: c}
	for _, obj := range g.World.Scene.GameObjects {
		for _, comp := range obj.Components() {
			if ic, ok := comp.(components.InputConsumer); ok {
				ic.UseInput(gated, c)
			}
		}
	}
}

// Start starts the scene and reports a controller that halted on start.
func (g *Game) Start() error {
	g.World.Scene.Start()
	return g.rig.Err()
}

// Step runs one rendered frame of simulation: Update once, then as many
// fixed steps as the accumulated time allows. Returns the fixed step count.
func (g *Game) Step(dt float32) int {
	g.World.Scene.Update(dt)
	g.lastSteps = g.stepper.Run(dt, g.World.Scene.FixedUpdate)
	return g.lastSteps
}

// LookTarget is the first collider under the crosshair, ignoring the player.
func (g *Game) LookTarget() (world.RaycastHit, bool) {
	eye := g.rig.CameraObject()
	if eye == nil {
		return world.RaycastHit{}, false
	}
	return g.World.Raycast(eye.WorldPosition(), eye.WorldForward(), lookRange, g.Player)
}

func (g *Game) Run() error {
	wc := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(wc.Width, wc.Height, wc.Title)
	defer rl.CloseWindow()

	// Escape releases the cursor instead of closing the window.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(wc.TargetFPS)
	initHUDStyle()

	if err := g.Start(); err != nil {
		return err
	}
	slog.Info("game started", "objects", len(g.World.Scene.GameObjects), "fixed_step", g.stepper.Step)

	for !g.quit && !rl.WindowShouldClose() {
		g.handleCursor()
		g.Step(rl.GetFrameTime())
		g.Draw()
	}
	return nil
}

// handleCursor: Escape releases a captured cursor and quits when already
// released; a click outside the HUD recaptures.
func (g *Game) handleCursor() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		if g.cursor.Captured() {
			g.cursor.Release()
		} else {
			g.quit = true
		}
		return
	}
	if !g.cursor.Captured() && rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
		!rl.CheckCollisionPointRec(rl.GetMousePosition(), g.hud.bounds) {
		g.cursor.Capture()
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	if cam := g.World.MainCamera(); cam != nil {
		g.World.Draw(cam.GetRaylibCamera())
	}
	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Shift to run, Mouse to look", 10, 10, 20, rl.LightGray)
	if g.cursor.Captured() {
		rl.DrawText("Esc to release the cursor", 10, 35, 20, rl.LightGray)
	} else {
		rl.DrawText("Click to capture, Esc again to quit", 10, 35, 20, rl.LightGray)
	}
	rl.DrawFPS(10, 60)

	cx, cy := int32(rl.GetScreenWidth()/2), int32(rl.GetScreenHeight()/2)
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.White)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.White)

	if err := g.rig.Err(); err != nil {
		rl.DrawText(err.Error(), 10, 85, 20, rl.Red)
	}
	g.hud.draw(g)
}

// RunHeadless simulates frames at a fixed dt with no window and no input,
// then logs where the player ended up.
func (g *Game) RunHeadless(frames int, dt float32) error {
	g.attachInput(input.None{}, &input.CursorState{})
	if err := g.Start(); err != nil {
		return err
	}
	steps := 0
	for i := 0; i < frames; i++ {
		steps += g.Step(dt)
	}
	pitch, yaw := g.rig.LookAngles()
	slog.Info("headless run finished",
		"frames", frames,
		"fixed_steps", steps,
		"position", g.Player.Transform.Position,
		"pitch", pitch,
		"yaw", yaw,
	)
	return nil
}
