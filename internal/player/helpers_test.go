package player

import (
	"io"
	"log"
	"testing"

	"firstperson/internal/animation"
	"firstperson/internal/config"
	"firstperson/internal/engine"
	"firstperson/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

const frame = float32(1.0 / 60.0)

// fakeMover stands in for the collide-and-move primitive. Tests flip
// grounded between frames to script contact.
type fakeMover struct {
	grounded bool
	moves    []rl.Vector3
}

func (f *fakeMover) Move(d rl.Vector3) bool {
	f.moves = append(f.moves, d)
	return f.grounded
}

func (f *fakeMover) IsGrounded() bool { return f.grounded }

func (f *fakeMover) last() rl.Vector3 {
	if len(f.moves) == 0 {
		return rl.Vector3{}
	}
	return f.moves[len(f.moves)-1]
}

type rig struct {
	character *Character
	body      *engine.GameObject
	camera    *engine.GameObject
	mover     *fakeMover
	input     *input.State
	params    *animation.Parameters
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newRig(t *testing.T, tuning config.Tuning) *rig {
	t.Helper()

	body := engine.NewGameObject("Player")
	camera := engine.NewGameObject("CameraPivot")
	body.AddChild(camera)

	r := &rig{
		body:   body,
		camera: camera,
		mover:  &fakeMover{grounded: true},
		input:  input.NewState(),
		params: animation.NewParameters(),
	}
	r.character = NewCharacter(body, Options{
		Camera: camera,
		Mover:  r.mover,
		Anim:   r.params,
		Tuning: tuning,
		Logger: quietLogger(),
	})
	body.AddComponent(r.character)
	r.character.AttachInput(r.input)
	require.NoError(t, body.Init())
	return r
}

func (r *rig) tick(n int) {
	for i := 0; i < n; i++ {
		r.body.Tick(frame)
	}
}

func bufferedTuning() config.Tuning {
	t := config.DefaultTuning()
	t.JumpPolicy = config.JumpPolicyBuffered
	return t
}

func impulseTuning() config.Tuning {
	t := config.DefaultTuning()
	t.JumpPolicy = config.JumpPolicyImpulse
	return t
}

func horizontalLength(v rl.Vector3) float32 {
	return rl.Vector3Length(rl.Vector3{X: v.X, Z: v.Z})
}
