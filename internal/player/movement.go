package player

import (
	"math"

	"firstperson/internal/config"
	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// JumpKind tells OnJumped listeners which jump fired.
type JumpKind int

const (
	GroundJump JumpKind = iota
	AirJump
)

func (k JumpKind) String() string {
	if k == AirJump {
		return "air"
	}
	return "ground"
}

// neverGrounded parks timeSinceGrounded after a jump so the coyote window
// cannot reopen until the next ground contact.
const neverGrounded = float32(math.MaxFloat32)

// JumpVelocity is the launch speed that peaks at height h under gravity g.
func JumpVelocity(h, g float32) float32 {
	return float32(math.Sqrt(2 * float64(h) * math.Abs(float64(g))))
}

// MovementController owns the per-frame movement state machine: grounded and
// coyote tracking, jump charges, vertical integration, camera look and the
// single collide-and-move call.
//
// A frame is split in two so abilities can run in between:
// BeginFrame refreshes grounded state, Integrate consumes impulses and moves.
type MovementController struct {
	tuning *config.Tuning
	input  InputSurface
	mover  Mover
	body   *engine.GameObject
	camera *engine.GameObject
	anim   AnimationSink

	grounded             bool
	verticalVelocity     float32
	timeSinceGrounded    float32
	remainingJumpCharges int
	jumpCount            int
	externalImpulse      rl.Vector3
	verticalRotation     float32
	lastDisplacement     rl.Vector3

	OnJumped engine.EventWithArg[JumpKind]
	OnLanded engine.Event
}

// NewMovementController wires the controller to its collaborators. camera and
// anim may be nil; body is the object yawed by look input.
func NewMovementController(tuning *config.Tuning, mover Mover, body, camera *engine.GameObject, anim AnimationSink) *MovementController {
	m := &MovementController{
		tuning:            tuning,
		mover:             mover,
		body:              body,
		camera:            camera,
		anim:              anim,
		timeSinceGrounded: neverGrounded,
	}
	if camera != nil {
		m.verticalRotation = camera.Transform.Rotation.X
	}
	m.clampPitch()
	return m
}

// clampPitch forces the pitch back inside the current limits.
func (m *MovementController) clampPitch() {
	m.verticalRotation = rl.Clamp(m.verticalRotation, m.tuning.PitchMin(), m.tuning.PitchMax())
	if m.camera != nil {
		m.camera.Transform.Rotation.X = m.verticalRotation
	}
}

func (m *MovementController) SetInput(in InputSurface) {
	m.input = in
}

// BeginFrame reads the grounded result of the previous move and updates the
// coyote timer and charge pool.
func (m *MovementController) BeginFrame(deltaTime float32) {
	wasGrounded := m.grounded
	m.grounded = m.mover.IsGrounded()

	if m.grounded {
		m.timeSinceGrounded = 0
		m.remainingJumpCharges = 1
		m.jumpCount = 0
		if !wasGrounded {
			m.OnLanded.Invoke()
		}
		return
	}
	if m.timeSinceGrounded < neverGrounded {
		m.timeSinceGrounded += deltaTime
	}
}

// Integrate resolves horizontal motion, jumps and gravity, performs the move,
// then updates the camera and the animation sink.
func (m *MovementController) Integrate(deltaTime float32) {
	if m.input == nil {
		return
	}

	horizontal := rl.Vector3Add(m.horizontalDisplacement(deltaTime), m.externalImpulse)
	m.externalImpulse = rl.Vector3{}

	if m.input.JumpPressed() {
		m.handleJump()
	}

	m.verticalVelocity += m.tuning.Gravity * m.tuning.GravityMultiplier * deltaTime
	if m.grounded && m.verticalVelocity < 0 {
		m.verticalVelocity = 0
	}

	m.lastDisplacement = rl.Vector3{
		X: horizontal.X,
		Y: m.verticalVelocity * deltaTime,
		Z: horizontal.Z,
	}
	m.mover.Move(m.lastDisplacement)

	m.updateCamera()
	m.updateAnimation()
}

// ApplyImpulse is the only way abilities affect velocity. A non-zero vertical
// component replaces the vertical velocity; horizontal components accumulate
// as displacement and are applied once, on the next Integrate.
func (m *MovementController) ApplyImpulse(v rl.Vector3) {
	if v.Y != 0 {
		m.verticalVelocity = v.Y
	}
	m.externalImpulse.X += v.X
	m.externalImpulse.Z += v.Z
}

// CanGroundJump reports whether a jump press would count as a ground jump:
// grounded, or still inside the coyote window.
func (m *MovementController) CanGroundJump() bool {
	return m.grounded || m.timeSinceGrounded <= m.tuning.GroundedBufferSeconds
}

func (m *MovementController) handleJump() {
	canGround := m.CanGroundJump()

	if m.tuning.JumpPolicy == config.JumpPolicyBuffered {
		switch {
		case canGround && m.remainingJumpCharges >= 1:
			m.groundJump()
			m.remainingJumpCharges = 0
			if m.tuning.EnableDoubleJump {
				m.remainingJumpCharges = 1
			}
		case m.tuning.EnableDoubleJump && m.remainingJumpCharges > 0 && !canGround:
			m.verticalVelocity = JumpVelocity(m.tuning.DoubleJumpHeight, m.tuning.Gravity)
			m.remainingJumpCharges--
			m.jumpCount++
			m.OnJumped.Invoke(AirJump)
		}
		return
	}

	if canGround {
		m.groundJump()
		m.remainingJumpCharges = 0
	}
}

func (m *MovementController) groundJump() {
	m.verticalVelocity = JumpVelocity(m.tuning.JumpHeight, m.tuning.Gravity)
	m.timeSinceGrounded = neverGrounded
	m.jumpCount = 1
	m.OnJumped.Invoke(GroundJump)
}

func (m *MovementController) horizontalDisplacement(deltaTime float32) rl.Vector3 {
	move := m.input.Move()
	if (move == rl.Vector2{}) || m.camera == nil {
		return rl.Vector3{}
	}

	forward := flatten(m.camera.Forward())
	right := flatten(m.camera.Right())
	dir := rl.Vector3Add(rl.Vector3Scale(forward, move.Y), rl.Vector3Scale(right, move.X))
	if rl.Vector3Length(dir) > 1 {
		dir = rl.Vector3Normalize(dir)
	}
	return rl.Vector3Scale(dir, m.tuning.MovementSpeed*deltaTime)
}

// Pitch only ever touches the camera pivot; yaw turns the body.
func (m *MovementController) updateCamera() {
	look := m.input.LookDelta()
	if (look == rl.Vector2{}) || m.camera == nil {
		return
	}

	sensitivity := m.tuning.MouseSensitivity
	if m.body != nil {
		m.body.Transform.Rotation.Y = wrapDegrees(m.body.Transform.Rotation.Y + look.X*sensitivity)
	}
	m.verticalRotation = rl.Clamp(
		m.verticalRotation-look.Y*sensitivity,
		m.tuning.PitchMin(),
		m.tuning.PitchMax(),
	)
	m.camera.Transform.Rotation.X = m.verticalRotation
}

// updateAnimation publishes JumpCount as jumps since the last ground contact:
// 0 grounded, 1 after the ground jump, 2 after the air jump.
func (m *MovementController) updateAnimation() {
	if m.anim == nil {
		return
	}

	move := m.input.Move()
	m.anim.SetFloat(ParamStrafe, move.X)
	m.anim.SetFloat(ParamForward, move.Y)
	m.anim.SetBool(ParamIsGrounded, m.mover.IsGrounded())
	if m.tuning.JumpPolicy == config.JumpPolicyBuffered {
		var count float32
		if m.tuning.EnableDoubleJump {
			count = float32(m.jumpCount)
		}
		m.anim.SetFloat(ParamJumpCount, count)
	}
}

// CameraForward is the camera's look direction, or the body's when there is
// no camera pivot.
func (m *MovementController) CameraForward() rl.Vector3 {
	switch {
	case m.camera != nil:
		return m.camera.Forward()
	case m.body != nil:
		return m.body.Forward()
	default:
		return rl.Vector3{}
	}
}

func (m *MovementController) IsGrounded() bool             { return m.grounded }
func (m *MovementController) VerticalVelocity() float32    { return m.verticalVelocity }
func (m *MovementController) TimeSinceGrounded() float32   { return m.timeSinceGrounded }
func (m *MovementController) RemainingJumpCharges() int    { return m.remainingJumpCharges }
func (m *MovementController) JumpCount() int               { return m.jumpCount }
func (m *MovementController) Pitch() float32               { return m.verticalRotation }
func (m *MovementController) LastDisplacement() rl.Vector3 { return m.lastDisplacement }
func (m *MovementController) PendingImpulse() rl.Vector3   { return m.externalImpulse }

func (m *MovementController) Yaw() float32 {
	if m.body == nil {
		return 0
	}
	return m.body.Transform.Rotation.Y
}

// flatten drops the vertical component and renormalizes.
func flatten(v rl.Vector3) rl.Vector3 {
	v.Y = 0
	if rl.Vector3Length(v) == 0 {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(v)
}

func wrapDegrees(deg float32) float32 {
	deg = float32(math.Mod(float64(deg), 360))
	if deg < 0 {
		deg += 360
	}
	return deg
}
