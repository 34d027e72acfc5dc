package game

import (
	"fmt"
	"log/slog"

	"fpsrig/internal/components"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel     = rl.NewColor(18, 18, 24, 220)
	colorElement   = rl.NewColor(28, 28, 38, 255)
	colorHover     = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextMuted = rl.NewColor(119, 119, 119, 255)
)

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// hud shows the look accumulator and lets the player retune sensitivity and
// inversion. Controls only react while the cursor is released.
type hud struct {
	bounds  rl.Rectangle
	sensMax float32
}

func newHUD(cfg components.ControllerConfig) *hud {
	return &hud{
		bounds:  rl.Rectangle{X: 10, Y: 115, Width: 300, Height: 140},
		sensMax: max(cfg.Sensitivity*2, 1),
	}
}

// tune returns cfg with the HUD's values and whether anything changed.
func tune(cfg components.ControllerConfig, sensitivity float32, invert bool) (components.ControllerConfig, bool) {
	if cfg.Sensitivity == sensitivity && cfg.Invert == invert {
		return cfg, false
	}
	cfg.Sensitivity = sensitivity
	cfg.Invert = invert
	return cfg, true
}

func (h *hud) draw(g *Game) {
	rl.DrawRectangleRec(h.bounds, colorPanel)
	x, y := int32(h.bounds.X)+10, int32(h.bounds.Y)+10

	pitch, yaw := g.rig.LookAngles()
	rl.DrawText(fmt.Sprintf("pitch %6.1f   yaw %8.1f", pitch, yaw), x, y, 16, colorText)
	pos := g.Player.Transform.Position
	rl.DrawText(fmt.Sprintf("pos (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z), x, y+20, 16, colorText)
	target := "nothing"
	if hit, ok := g.LookTarget(); ok {
		target = fmt.Sprintf("%s at %.1f", hit.GameObject.Name, hit.Distance)
	}
	rl.DrawText(fmt.Sprintf("fixed steps %d   target %s", g.lastSteps, target), x, y+40, 16, colorTextMuted)

	cfg := g.rig.Config()
	if g.cursor.Captured() {
		rl.DrawText(fmt.Sprintf("sensitivity %.1f  invert %v", cfg.Sensitivity, cfg.Invert), x, y+70, 16, colorTextMuted)
		return
	}

	fx, fy := float32(x), float32(y)
	sens := gui.Slider(rl.Rectangle{X: fx + 90, Y: fy + 68, Width: 140, Height: 18},
		"Sensitivity", fmt.Sprintf("%.1f", cfg.Sensitivity), cfg.Sensitivity, 0, h.sensMax)
	invert := gui.CheckBox(rl.Rectangle{X: fx, Y: fy + 96, Width: 18, Height: 18}, "Invert look", cfg.Invert)

	if next, changed := tune(cfg, sens, invert); changed {
		g.rig.Configure(next)
		slog.Debug("controller retuned", "sensitivity", next.Sensitivity, "invert", next.Invert)
	}
}
