package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approxVec(a, b rl.Vector3) bool {
	const eps = 1e-4
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"player", "controllable"}

	if !obj.HasTag("player") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("crate") {
		t.Error("HasTag should return false for non-existent tag")
	}

	if NewGameObject("Test2").HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Player")
	child := NewGameObject("Camera")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}
	if parent.FindChild("Camera") != child {
		t.Error("FindChild should return the added child")
	}

	other := NewGameObject("Other")
	other.AddChild(child)
	if len(parent.Children) != 0 {
		t.Error("reparenting should detach the child from its old parent")
	}
	if child.Parent != other {
		t.Error("Child.Parent should follow reparenting")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}
	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}
	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if comp.GetGameObject() != obj {
		t.Error("Component game object should be set")
	}
	if GetComponent[*BaseComponent](obj) != comp {
		t.Error("GetComponent failed to find component")
	}
	if GetComponent[*fixedCounter](obj) != nil {
		t.Error("GetComponent should return nil for a missing type")
	}
	if GetComponent[*BaseComponent](nil) != nil {
		t.Error("GetComponent on nil GameObject should return nil")
	}
}

func TestGameObjectFindComponentByInterface(t *testing.T) {
	obj := NewGameObject("Test")
	counter := &fixedCounter{}
	obj.AddComponent(&BaseComponent{})
	obj.AddComponent(counter)

	found := FindComponent[FixedUpdater](obj)
	if found != counter {
		t.Error("FindComponent should match by interface")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	obj.Start() // no-op
}

func TestTransformDirections(t *testing.T) {
	tests := []struct {
		name    string
		rot     rl.Vector3
		forward rl.Vector3
		right   rl.Vector3
	}{
		{"identity", rl.Vector3{}, rl.Vector3{Z: -1}, rl.Vector3{X: 1}},
		{"yaw right 90", rl.Vector3{Y: 90}, rl.Vector3{X: 1}, rl.Vector3{Z: 1}},
		{"yaw left 90", rl.Vector3{Y: -90}, rl.Vector3{X: -1}, rl.Vector3{Z: -1}},
		{"pitch down 90", rl.Vector3{X: 90}, rl.Vector3{Y: -1}, rl.Vector3{X: 1}},
		{"pitch up 90", rl.Vector3{X: -90}, rl.Vector3{Y: 1}, rl.Vector3{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Transform{Rotation: tt.rot}
			if got := tr.Forward(); !approxVec(got, tt.forward) {
				t.Errorf("Forward() = %v, want %v", got, tt.forward)
			}
			if got := tr.Right(); !approxVec(got, tt.right) {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
		})
	}
}

func TestTransformRollBanksRight(t *testing.T) {
	tr := Transform{Rotation: rl.Vector3{Z: 90}}
	if got := tr.Right(); !approxVec(got, rl.Vector3{Y: -1}) {
		t.Errorf("Right() with roll 90 = %v, want right side pointing down", got)
	}
	if got := tr.Forward(); !approxVec(got, rl.Vector3{Z: -1}) {
		t.Errorf("roll should not change Forward(), got %v", got)
	}
}

func TestWorldPositionFollowsParentYaw(t *testing.T) {
	parent := NewGameObject("Player")
	parent.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	parent.Transform.Rotation = rl.Vector3{Y: 90}

	child := NewGameObject("Camera")
	child.Transform.Position = rl.Vector3{Z: -2}
	parent.AddChild(child)

	if got := child.WorldPosition(); !approxVec(got, rl.Vector3{X: 3, Y: 2, Z: 3}) {
		t.Errorf("WorldPosition() = %v, want (3, 2, 3)", got)
	}
}

func TestWorldForwardComposesYawAndPitch(t *testing.T) {
	body := NewGameObject("Player")
	body.Transform.Rotation = rl.Vector3{Y: 90}

	cam := NewGameObject("Camera")
	cam.Transform.Rotation = rl.Vector3{X: 45}
	body.AddChild(cam)

	s := float32(math.Sqrt2 / 2)
	if got := cam.WorldForward(); !approxVec(got, rl.Vector3{X: s, Y: -s}) {
		t.Errorf("WorldForward() = %v, want looking right and down", got)
	}
	if got := cam.WorldUp(); got.Y <= 0 {
		t.Errorf("WorldUp() = %v, want positive Y", got)
	}
}
