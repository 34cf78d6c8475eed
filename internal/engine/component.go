package engine

// Component is a unit of per-frame behaviour attached to a GameObject.
// The scheduler that owns the frame loop drives the lifecycle:
// Init once before the first Tick, Tick once per frame, Release on teardown.
type Component interface {
	Init() error
	Tick(deltaTime float32)
	Release()
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Init() error { return nil }

func (b *BaseComponent) Tick(deltaTime float32) {}

func (b *BaseComponent) Release() {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
