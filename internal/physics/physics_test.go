package physics

import (
	"testing"

	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABBIntersectsIsStrict(t *testing.T) {
	floor := NewAABBFromCenter(rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10})

	tests := []struct {
		name string
		box  AABB
		want bool
	}{
		{"resting on top", NewAABBFromCenter(rl.Vector3{Y: 0.5}, rl.Vector3{X: 1, Y: 1, Z: 1}), false},
		{"sunk in", NewAABBFromCenter(rl.Vector3{Y: 0.4}, rl.Vector3{X: 1, Y: 1, Z: 1}), true},
		{"far away", NewAABBFromCenter(rl.Vector3{X: 20}, rl.Vector3{X: 1, Y: 1, Z: 1}), false},
		{"touching side", NewAABBFromCenter(rl.Vector3{X: 5.5, Y: -0.5}, rl.Vector3{X: 1, Y: 1, Z: 1}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.Intersects(floor))
			assert.Equal(t, tt.want, floor.Intersects(tt.box))
		})
	}
}

func TestAABBResolvePicksShallowestAxis(t *testing.T) {
	floor := NewAABBFromCenter(rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10})
	body := NewAABBFromCenter(rl.Vector3{Y: 0.4}, rl.Vector3{X: 1, Y: 1, Z: 1})

	push := body.Resolve(floor)
	assert.InDelta(t, 0.1, float64(push.Y), 1e-6)
	assert.Zero(t, push.X)
	assert.Zero(t, push.Z)

	wall := NewAABBFromCenter(rl.Vector3{X: 2}, rl.Vector3{X: 1, Y: 4, Z: 4})
	body = NewAABBFromCenter(rl.Vector3{X: 1.2}, rl.Vector3{X: 1, Y: 1, Z: 1})
	push = body.Resolve(wall)
	assert.InDelta(t, -0.2, float64(push.X), 1e-6)

	assert.Equal(t, rl.Vector3{}, body.Resolve(NewAABBFromCenter(rl.Vector3{X: 50}, rl.Vector3{X: 1, Y: 1, Z: 1})))
}

func TestWorldQuery(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{Name: "floor", Bounds: NewAABBFromCenter(rl.Vector3{Y: -0.5}, rl.Vector3{X: 40, Y: 1, Z: 40})})
	w.AddBox(Box{Name: "crate", Bounds: NewAABBFromCenter(rl.Vector3{X: -12, Y: 0.5, Z: -12}, rl.Vector3{X: 1, Y: 1, Z: 1})})
	w.AddBox(Box{Name: "pillar", Bounds: NewAABBFromCenter(rl.Vector3{X: 8, Y: 2, Z: 8}, rl.Vector3{X: 1, Y: 4, Z: 1})})

	names := func(boxes []Box) []string {
		var out []string
		for _, b := range boxes {
			out = append(out, b.Name)
		}
		return out
	}

	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []string{"floor", "crate"}, names(w.Query(NewAABBFromCenter(rl.Vector3{X: -12, Y: 0.2, Z: -12}, rl.Vector3{X: 1, Y: 1, Z: 1}))))
	assert.Equal(t, []string{"pillar"}, names(w.Query(NewAABBFromCenter(rl.Vector3{X: 8, Y: 3, Z: 8}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}))))
	assert.Empty(t, w.Query(NewAABBFromCenter(rl.Vector3{Y: 10}, rl.Vector3{X: 1, Y: 1, Z: 1})))
	assert.True(t, w.Blocked(NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})))
}

// testBody places a body standing on a 20x20 floor whose top is y=0.
func testBody(t *testing.T, extra ...Box) (*CharacterBody, *engine.GameObject) {
	t.Helper()
	w := NewWorld()
	w.AddBox(Box{Name: "floor", Bounds: NewAABBFromCenter(rl.Vector3{Y: -0.5}, rl.Vector3{X: 20, Y: 1, Z: 20})})
	for _, b := range extra {
		w.AddBox(b)
	}

	g := engine.NewGameObject("Player")
	body := NewCharacterBody(w)
	g.AddComponent(body)
	g.Transform.Position = rl.Vector3{Y: body.Height / 2}
	require.NoError(t, g.Init())
	return body, g
}

func TestCharacterBodyLandsOnFloor(t *testing.T) {
	body, g := testBody(t)
	g.Transform.Position.Y = 2

	grounded := body.Move(rl.Vector3{Y: -1.5})

	assert.True(t, grounded)
	assert.True(t, body.IsGrounded())
	assert.InDelta(t, 0.9, float64(g.Transform.Position.Y), 1e-5)
}

func TestCharacterBodyStaysGroundedAtRest(t *testing.T) {
	body, g := testBody(t)

	for i := 0; i < 120; i++ {
		require.True(t, body.Move(rl.Vector3{}), "frame %d", i)
	}
	assert.InDelta(t, 0.9, float64(g.Transform.Position.Y), 1e-5)

	for i := 0; i < 60; i++ {
		require.True(t, body.Move(rl.Vector3{X: 0.05}), "walking frame %d", i)
	}
}

func TestCharacterBodyAirborneWhenRising(t *testing.T) {
	body, _ := testBody(t)

	assert.False(t, body.Move(rl.Vector3{Y: 0.1}))
}

func TestCharacterBodyBlockedByWall(t *testing.T) {
	wall := Box{Name: "wall", Bounds: NewAABBFromCenter(rl.Vector3{X: 2, Y: 1}, rl.Vector3{X: 1, Y: 2, Z: 4})}
	body, g := testBody(t, wall)

	body.Move(rl.Vector3{X: 1.5})

	assert.InDelta(t, 1.1, float64(g.Transform.Position.X), 1e-5)
	assert.InDelta(t, 0.9, float64(g.Transform.Position.Y), 1e-5)
	assert.True(t, body.IsGrounded())
}

func TestCharacterBodyClimbsLowStep(t *testing.T) {
	step := Box{Name: "step", Bounds: NewAABBFromCenter(rl.Vector3{X: 1, Y: 0.15}, rl.Vector3{X: 1, Y: 0.3, Z: 4})}
	body, g := testBody(t, step)

	assert.True(t, body.Move(rl.Vector3{X: 0.3}))
	assert.InDelta(t, 0.3, float64(g.Transform.Position.X), 1e-5)
	assert.Greater(t, g.Transform.Position.Y, float32(1.2))

	assert.True(t, body.Move(rl.Vector3{}))
	assert.InDelta(t, 1.2, float64(g.Transform.Position.Y), 1e-5, "settles on the step top")
}

func TestCharacterBodyStopsAtTallStep(t *testing.T) {
	step := Box{Name: "ledge", Bounds: NewAABBFromCenter(rl.Vector3{X: 1, Y: 0.3}, rl.Vector3{X: 1, Y: 0.6, Z: 4})}
	body, g := testBody(t, step)

	body.Move(rl.Vector3{X: 0.3})

	assert.InDelta(t, 0.1, float64(g.Transform.Position.X), 1e-5)
	assert.InDelta(t, 0.9, float64(g.Transform.Position.Y), 1e-5)
}

func TestCharacterBodyWalksOffEdge(t *testing.T) {
	body, g := testBody(t)
	g.Transform.Position.X = 9.5

	assert.False(t, body.Move(rl.Vector3{X: 1}))
}

func TestCharacterBodyWithoutWorldMovesFreely(t *testing.T) {
	g := engine.NewGameObject("Ghost")
	body := NewCharacterBody(nil)
	g.AddComponent(body)

	assert.False(t, body.Move(rl.Vector3{X: 1, Y: -2, Z: 3}))
	assert.Equal(t, rl.Vector3{X: 1, Y: -2, Z: 3}, g.Transform.Position)
}
