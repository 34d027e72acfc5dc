package input

import (
	"fpsrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cursor hides and locks the pointer while the player is looking around.
type Cursor interface {
	Capture()
	Release()
	Captured() bool
}

// CursorState tracks capture and notifies listeners on change. It performs no
// device calls, so it also serves headless runs.
type CursorState struct {
	Changed  engine.Event[bool]
	captured bool
}

func (c *CursorState) Capture() { c.set(true) }

func (c *CursorState) Release() { c.set(false) }

func (c *CursorState) Captured() bool { return c.captured }

func (c *CursorState) set(captured bool) {
	if c.captured == captured {
		return
	}
	c.captured = captured
	c.Changed.Invoke(captured)
}

// RaylibCursor captures the window's pointer. Requires an open window.
type RaylibCursor struct {
	CursorState
}

func (c *RaylibCursor) Capture() {
	rl.DisableCursor()
	c.set(true)
}

func (c *RaylibCursor) Release() {
	rl.EnableCursor()
	c.set(false)
}
