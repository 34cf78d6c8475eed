package player

import rl "github.com/gen2brain/raylib-go/raylib"

// InputSurface is the per-frame input snapshot the character reads.
// input.State implements it.
type InputSurface interface {
	Move() rl.Vector2
	LookDelta() rl.Vector2
	JumpPressed() bool
	DashPressed() bool
	ConsumeJump()
	ConsumeDash()
	ResetLookThisFrame()
	Release()
}

// Mover is the collide-and-move primitive. Move applies a displacement for
// the frame and reports whether the body rests on support afterwards.
type Mover interface {
	Move(displacement rl.Vector3) bool
	IsGrounded() bool
}

// AnimationSink receives derived animation parameters once per frame.
type AnimationSink interface {
	SetFloat(name string, value float32)
	SetBool(name string, value bool)
}

// Animation parameter names.
const (
	ParamStrafe     = "Strafe"
	ParamForward    = "Forward"
	ParamIsGrounded = "IsGrounded"
	ParamJumpCount  = "JumpCount"
)
