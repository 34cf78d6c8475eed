package engine

import (
	"errors"
	"fmt"
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees: X pitch, Y yaw
	Scale    rl.Vector3
}

type GameObject struct {
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	released   bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// Init initializes every component once. Failures are logged and returned
// joined; the remaining components are still initialized.
func (g *GameObject) Init() error {
	if g.started {
		return nil
	}
	g.started = true

	var errs []error
	for _, c := range g.components {
		if err := c.Init(); err != nil {
			log.Printf("Engine: %s: component init failed: %v", g.Name, err)
			errs = append(errs, fmt.Errorf("%s: %w", g.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (g *GameObject) Tick(deltaTime float32) {
	if !g.Active || g.released {
		return
	}
	for _, c := range g.components {
		c.Tick(deltaTime)
	}
}

// Release tears down components in reverse attach order. Safe to call twice.
func (g *GameObject) Release() {
	if g.released {
		return
	}
	g.released = true
	for i := len(g.components) - 1; i >= 0; i-- {
		g.components[i].Release()
	}
}

func (g *GameObject) Released() bool {
	return g.released
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	// Only yaw carries a child's offset; pitch on a pivot never moves its children.
	yawRad := float64(parentRot.Y) * math.Pi / 180
	cos, sin := float32(math.Cos(yawRad)), float32(math.Sin(yawRad))
	rotated := rl.Vector3{
		X: scaled.X*cos - scaled.Z*sin,
		Y: scaled.Y,
		Z: scaled.X*sin + scaled.Z*cos,
	}
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// Forward returns the unit look direction built from world pitch (X) and yaw (Y).
// Yaw 0 faces +X and increasing yaw turns toward +Z.
func (g *GameObject) Forward() rl.Vector3 {
	rot := g.WorldRotation()
	yawRad := float64(rot.Y) * math.Pi / 180
	pitchRad := float64(rot.X) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// Right returns the horizontal unit vector to the right of Forward.
func (g *GameObject) Right() rl.Vector3 {
	yawRad := float64(g.WorldRotation().Y) * math.Pi / 180
	return rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
}
