package engine

import "errors"

// Scene is the per-frame scheduler: it ticks its GameObjects in insertion order.
type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject detaches g from the scene and releases it.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			g.Release()
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Init() error {
	var errs []error
	for _, g := range s.GameObjects {
		if err := g.Init(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Scene) Tick(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Tick(deltaTime)
	}
}

func (s *Scene) Release() {
	for _, g := range s.GameObjects {
		g.Release()
	}
}
