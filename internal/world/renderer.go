package world

import rl "github.com/gen2brain/raylib-go/raylib"

type Renderer struct {
	Background rl.Color
	Wireframe  bool
	GridSlices int32

	// Boxes drawn and culled in the last frame.
	Drawn  int
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: rl.NewColor(20, 20, 30, 255),
		Wireframe:  true,
		GridSlices: 40,
	}
}

// Draw renders the visible level boxes from the given camera. Must be called
// between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, boxes []BoxDef) {
	rl.ClearBackground(r.Background)

	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := ExtractFrustum(camera, aspect)
	r.Drawn, r.Culled = 0, 0

	rl.BeginMode3D(camera)
	for _, b := range boxes {
		if !frustum.ContainsBox(b.Bounds()) {
			r.Culled++
			continue
		}
		r.Drawn++

		center := b.Center()
		size := b.Extent()
		rl.DrawCubeV(center, size, b.Tint())
		if r.Wireframe {
			rl.DrawCubeWiresV(center, size, rl.Fade(rl.Black, 0.4))
		}
	}
	if r.GridSlices > 0 {
		rl.DrawGrid(r.GridSlices, 1)
	}
	rl.EndMode3D()
}
