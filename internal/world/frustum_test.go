package world

import (
	"testing"

	"firstperson/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestFrustumContainsBox(t *testing.T) {
	camera := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{X: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(camera, 16.0/9.0)

	unit := rl.Vector3{X: 1, Y: 1, Z: 1}
	tests := []struct {
		name string
		box  physics.AABB
		want bool
	}{
		{"ahead", physics.NewAABBFromCenter(rl.Vector3{X: 10}, unit), true},
		{"behind", physics.NewAABBFromCenter(rl.Vector3{X: -10}, unit), false},
		{"far left", physics.NewAABBFromCenter(rl.Vector3{X: 5, Z: -50}, unit), false},
		{"straddling the edge", physics.NewAABBFromCenter(rl.Vector3{X: 10}, rl.Vector3{X: 1, Y: 1, Z: 40}), true},
		{"beyond far plane", physics.NewAABBFromCenter(rl.Vector3{X: 2000}, unit), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsBox(tt.box); got != tt.want {
				t.Errorf("ContainsBox() = %v, want %v", got, tt.want)
			}
		})
	}
}
