package camera

import (
	"math"

	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSCamera renders from a camera pivot GameObject. The pivot carries pitch;
// yaw comes from its parent body.
type FPSCamera struct {
	Pivot *engine.GameObject
	Fovy  float32
}

func New(pivot *engine.GameObject) *FPSCamera {
	return &FPSCamera{
		Pivot: pivot,
		Fovy:  45,
	}
}

func (c *FPSCamera) Position() rl.Vector3 {
	return c.Pivot.WorldPosition()
}

func (c *FPSCamera) Yaw() float32 {
	return c.Pivot.WorldRotation().Y
}

func (c *FPSCamera) Pitch() float32 {
	return c.Pivot.WorldRotation().X
}

func (c *FPSCamera) GetRaylibCamera() rl.Camera3D {
	yawRad := float64(c.Yaw()) * math.Pi / 180
	pitchRad := float64(c.Pitch()) * math.Pi / 180
	pos := c.Position()

	target := rl.Vector3{
		X: pos.X + float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		Y: pos.Y + float32(math.Sin(pitchRad)),
		Z: pos.Z + float32(math.Sin(yawRad)*math.Cos(pitchRad)),
	}

	return rl.Camera3D{
		Position:   pos,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
