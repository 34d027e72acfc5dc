package engine

// GameObjectRef names another object by UID without holding it. Resolve it
// through the scene each time; a removed object resolves to nil.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g, or the empty reference for nil.
func RefTo(g *GameObject) GameObjectRef {
	if g == nil {
		return GameObjectRef{}
	}
	return GameObjectRef{UID: g.UID}
}

// Get resolves the reference in scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if !r.IsValid() || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid only checks that a UID is set, not that the object still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	*r = RefTo(g)
}

func (r *GameObjectRef) Clear() {
	*r = GameObjectRef{}
}
