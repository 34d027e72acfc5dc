package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// FixedUpdater is implemented by components that run on the fixed physics step.
// The scene calls FixedUpdate zero or more times per rendered frame.
type FixedUpdater interface {
	FixedUpdate(fixedDeltaTime float32)
}

// LookProvider is implemented by components that own a view orientation.
// Used by the game loop and HUD to read the authoritative look angles.
type LookProvider interface {
	LookAngles() (pitch, yaw float32)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
