// Package world owns the playable scene: static geometry, the player rig and
// the collision queries components reach through engine.WorldAccess.
package world

import (
	"fmt"
	"log/slog"
	"slices"

	"fpsrig/internal/components"
	"fpsrig/internal/engine"
	"fpsrig/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	FloorSize   = 40.0
	EyeHeight   = 1.6
	PlayerName  = "Player"
	CameraName  = "Camera"
	PlayerTag   = "player"
	defaultTint = "LightGray"
)

type World struct {
	Scene  *engine.Scene
	colors map[uint64]rl.Color
}

func New() *World {
	w := &World{
		Scene:  engine.NewScene("Main"),
		colors: make(map[uint64]rl.Color),
	}
	w.Scene.World = w
	return w
}

// GetCollidableObjects implements engine.WorldAccess.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var out []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if g.Active && engine.GetComponent[*components.BoxCollider](g) != nil {
			out = append(out, g)
		}
	}
	return out
}

// SpawnObject implements engine.WorldAccess. The object is started right away.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	g.Start()
}

// Destroy implements engine.WorldAccess.
func (w *World) Destroy(g *engine.GameObject) {
	w.Scene.RemoveGameObject(g)
	delete(w.colors, g.UID)
}

// Tint sets the draw color of g.
func (w *World) Tint(g *engine.GameObject, c rl.Color) {
	w.colors[g.UID] = c
}

func (w *World) Color(g *engine.GameObject) rl.Color {
	if c, ok := w.colors[g.UID]; ok {
		return c
	}
	return lookupColor(defaultTint)
}

// RaycastHit is the nearest collider a ray struck.
type RaycastHit struct {
	physics.RaycastHit
	GameObject *engine.GameObject
}

// Raycast returns the closest box collider along the ray within maxDistance.
// Objects in ignore, typically the caster's own body, are skipped.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore ...*engine.GameObject) (RaycastHit, bool) {
	var closest RaycastHit
	found := false
	for _, g := range w.GetCollidableObjects() {
		if slices.Contains(ignore, g) {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](g)
		hit, ok := box.GetAABB().Raycast(origin, direction, maxDistance)
		if !ok || (found && hit.Distance >= closest.Distance) {
			continue
		}
		closest = RaycastHit{RaycastHit: hit, GameObject: g}
		found = true
	}
	return closest, found
}

// MainCamera returns the camera marked IsMain, else the first camera found.
func (w *World) MainCamera() *components.Camera {
	var first *components.Camera
	for _, g := range w.Scene.GameObjects {
		cam := engine.GetComponent[*components.Camera](g)
		if cam == nil {
			continue
		}
		if cam.IsMain {
			return cam
		}
		if first == nil {
			first = cam
		}
	}
	return first
}

// BuildDefault lays out a floor, a few walls and crates, and a player rig
// driven by controller:
//
//	Player (Rigidbody, BoxCollider, controller)
//	  └─ Camera (Camera)
//
// MouseLook gets the same rig; it simply never moves the body.
func (w *World) BuildDefault(controller engine.Component) *engine.GameObject {
	w.addBox("Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: FloorSize, Y: 1, Z: FloorSize}, rl.DarkGray)

	half := float32(FloorSize / 2)
	w.addBox("WallNorth", rl.Vector3{Y: 1.5, Z: -half}, rl.Vector3{X: FloorSize, Y: 3, Z: 1}, rl.Gray)
	w.addBox("WallSouth", rl.Vector3{Y: 1.5, Z: half}, rl.Vector3{X: FloorSize, Y: 3, Z: 1}, rl.Gray)
	w.addBox("WallEast", rl.Vector3{X: half, Y: 1.5}, rl.Vector3{X: 1, Y: 3, Z: FloorSize}, rl.Gray)
	w.addBox("WallWest", rl.Vector3{X: -half, Y: 1.5}, rl.Vector3{X: 1, Y: 3, Z: FloorSize}, rl.Gray)

	crateColors := []rl.Color{rl.Red, rl.Orange, rl.Gold, rl.Lime, rl.SkyBlue, rl.Purple}
	for i, c := range crateColors {
		x := float32(i-len(crateColors)/2) * 4
		w.addBox(fmt.Sprintf("Crate_%d", i), rl.Vector3{X: x, Y: 0.75, Z: -8}, rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5}, c)
	}

	player := engine.NewGameObject(PlayerName)
	player.Tags = []string{PlayerTag}
	player.Transform.Position = rl.Vector3{Y: 0.9, Z: 4}
	player.AddComponent(components.NewRigidbody())
	player.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6}))
	player.AddComponent(controller)

	cam := engine.NewGameObject(CameraName)
	cam.Transform.Position = rl.Vector3{Y: EyeHeight - 0.9}
	camera := components.NewCamera()
	camera.IsMain = true
	cam.AddComponent(camera)
	player.AddChild(cam)

	w.Scene.AddGameObject(player)
	w.Scene.AddGameObject(cam)

	slog.Debug("default world built", "objects", len(w.Scene.GameObjects))
	return player
}

func (w *World) addBox(name string, pos, size rl.Vector3, c rl.Color) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	w.Scene.AddGameObject(g)
	w.Tint(g, c)
	return g
}
