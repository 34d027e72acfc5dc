package world

import (
	"fpsrig/internal/components"
	"fpsrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw renders every box collider in the scene from cam. Objects tagged as
// the player are skipped; the camera sits inside them.
func (w *World) Draw(cam rl.Camera3D) {
	rl.BeginMode3D(cam)
	for _, g := range w.Scene.GameObjects {
		if !g.Active || g.HasTag(PlayerTag) {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](g)
		if box == nil {
			continue
		}
		aabb := box.GetAABB()
		center, size := aabb.Center(), aabb.Size()
		rl.DrawCubeV(center, size, w.Color(g))
		rl.DrawCubeWiresV(center, size, rl.Black)
	}
	rl.DrawGrid(int32(FloorSize), 1)
	rl.EndMode3D()
}
