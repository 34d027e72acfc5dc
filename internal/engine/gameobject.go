package engine

import (
	"slices"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

// Transform is a local transform relative to the parent GameObject.
// Rotation holds Euler angles in degrees: X is pitch (positive looks down),
// Y is yaw (positive turns right) and Z is roll (positive banks right).
// Angles compose as yaw, then pitch, then roll, with -Z as forward.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

var (
	axisRight   = rl.Vector3{X: 1}
	axisUp      = rl.Vector3{Y: 1}
	axisForward = rl.Vector3{Z: -1}
)

// Quaternion returns the local rotation as a quaternion.
func (t Transform) Quaternion() rl.Quaternion {
	return EulerToQuaternion(t.Rotation)
}

// EulerToQuaternion converts pitch/yaw/roll degrees using the Transform convention.
func EulerToQuaternion(rot rl.Vector3) rl.Quaternion {
	qYaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, -rot.Y*rl.Deg2rad)
	qPitch := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, -rot.X*rl.Deg2rad)
	qRoll := rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, -rot.Z*rl.Deg2rad)
	return rl.QuaternionMultiply(rl.QuaternionMultiply(qYaw, qPitch), qRoll)
}

// Forward is the local -Z axis after rotation.
func (t Transform) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(axisForward, t.Quaternion())
}

// Right is the local +X axis after rotation.
func (t Transform) Right() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(axisRight, t.Quaternion())
}

// Up is the local +Y axis after rotation.
func (t Transform) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(axisUp, t.Quaternion())
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:       nextUID.Add(1),
		Name:      name,
		Active:    true,
		Transform: Transform{Scale: rl.Vector3One()},
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of concrete type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	return FindComponent[T](g)
}

// FindComponent returns the first component implementing interface T.
func FindComponent[T any](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	// started is set first so a component that spawns children during Start
	// can't re-enter this object.
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) FixedUpdate(fixedDeltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if f, ok := c.(FixedUpdater); ok {
			f.FixedUpdate(fixedDeltaTime)
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	if i := slices.Index(g.Children, child); i >= 0 {
		g.Children = slices.Delete(g.Children, i, i+1)
		child.Parent = nil
	}
}

// FindChild returns the first direct child with the given name.
func (g *GameObject) FindChild(name string) *GameObject {
	for _, c := range g.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	offset := rl.Vector3Multiply(g.Transform.Position, g.Parent.WorldScale())
	offset = rl.Vector3RotateByQuaternion(offset, g.Parent.WorldQuaternion())
	return rl.Vector3Add(g.Parent.WorldPosition(), offset)
}

// WorldQuaternion is the parent chain's rotation composed with the local one.
func (g *GameObject) WorldQuaternion() rl.Quaternion {
	local := g.Transform.Quaternion()
	if g.Parent == nil {
		return local
	}
	return rl.QuaternionMultiply(g.Parent.WorldQuaternion(), local)
}

// WorldForward is the object's -Z axis in world space.
func (g *GameObject) WorldForward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(axisForward, g.WorldQuaternion())
}

// WorldUp is the object's +Y axis in world space.
func (g *GameObject) WorldUp() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(axisUp, g.WorldQuaternion())
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	return rl.Vector3Multiply(g.Parent.WorldScale(), g.Transform.Scale)
}
