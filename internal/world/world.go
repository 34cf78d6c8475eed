package world

import (
	"firstperson/internal/engine"
	"firstperson/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StaticTag marks level geometry in the scene.
const StaticTag = "static"

type World struct {
	Scene     *engine.Scene
	Level     *Level
	Collision *physics.World
	Renderer  *Renderer
}

// New builds the scene and collision set for level. Every box becomes a
// tagged GameObject so it can be found by name.
func New(level *Level) *World {
	w := &World{
		Scene:     engine.NewScene("Main"),
		Level:     level,
		Collision: level.Collision(),
		Renderer:  NewRenderer(),
	}

	for _, b := range level.Boxes {
		g := engine.NewGameObject(b.Name)
		g.Tags = []string{StaticTag}
		g.Transform.Position = b.Center()
		g.Transform.Scale = b.Extent()
		w.Scene.AddGameObject(g)
	}
	return w
}

// SpawnTransform is where a fresh player body starts.
func (w *World) SpawnTransform() engine.Transform {
	return engine.Transform{
		Position: w.Level.Spawn,
		Rotation: rl.Vector3{Y: w.Level.SpawnYaw},
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Tick(deltaTime)
}

func (w *World) Draw(camera rl.Camera3D) {
	w.Renderer.Draw(camera, w.Level.Boxes)
}
