package components

import (
	"fpsrig/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rigidbody", func() engine.Serializable {
		return NewRigidbody()
	})
}

// Rigidbody is the physics body controllers move through MovePosition.
// Integration is left to the caller; this body only resolves overlaps.
type Rigidbody struct {
	engine.BaseComponent
	DetectCollisions bool

	lastDisplacement rl.Vector3
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{DetectCollisions: true}
}

// TypeName implements engine.Serializable
func (r *Rigidbody) TypeName() string {
	return "Rigidbody"
}

// Serialize implements engine.Serializable
func (r *Rigidbody) Serialize() map[string]any {
	return map[string]any{
		"type":             "Rigidbody",
		"detectCollisions": r.DetectCollisions,
	}
}

// Deserialize implements engine.Serializable
func (r *Rigidbody) Deserialize(data map[string]any) {
	if v, ok := data["detectCollisions"].(bool); ok {
		r.DetectCollisions = v
	}
}

// MovePosition moves the body to target, then pushes it out of any collider
// it overlaps. Returns the position it ended up at.
func (r *Rigidbody) MovePosition(target rl.Vector3) rl.Vector3 {
	g := r.GetGameObject()
	if g == nil {
		return target
	}
	start := g.Transform.Position
	g.Transform.Position = target

	self := engine.GetComponent[*BoxCollider](g)
	if r.DetectCollisions && self != nil {
		for _, other := range collidables(g) {
			if other == g {
				continue
			}
			col := engine.GetComponent[*BoxCollider](other)
			if col == nil {
				continue
			}
			push := self.GetAABB().Resolve(col.GetAABB())
			g.Transform.Position = rl.Vector3Add(g.Transform.Position, push)
		}
	}

	r.lastDisplacement = rl.Vector3Subtract(g.Transform.Position, start)
	return g.Transform.Position
}

// LastDisplacement is how far the last MovePosition actually moved the body.
func (r *Rigidbody) LastDisplacement() rl.Vector3 {
	return r.lastDisplacement
}

func collidables(g *engine.GameObject) []*engine.GameObject {
	if g.Scene == nil {
		return nil
	}
	if g.Scene.World != nil {
		return g.Scene.World.GetCollidableObjects()
	}
	return g.Scene.GameObjects
}
