package player

import (
	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DoubleJumpAbility grants one mid-air jump per ground cycle by injecting a
// purely vertical impulse.
type DoubleJumpAbility struct {
	AbilityBase
	remainingJumps int

	OnDoubleJump engine.EventWithArg[float32]
}

func NewDoubleJumpAbility(ctx AbilityContext) *DoubleJumpAbility {
	return &DoubleJumpAbility{AbilityBase: newAbilityBase(ctx, ctx.Tuning.EnableDoubleJump)}
}

func (d *DoubleJumpAbility) Name() string { return "DoubleJump" }

func (d *DoubleJumpAbility) RemainingJumps() int { return d.remainingJumps }

func (d *DoubleJumpAbility) Tick(deltaTime float32) {
	if !d.enabled {
		return
	}

	movement := d.ctx.Movement
	if movement.IsGrounded() {
		d.remainingJumps = 1
	}

	// Inside the coyote window the press belongs to the ground jump.
	if !d.ctx.Input.JumpPressed() || movement.CanGroundJump() || d.remainingJumps <= 0 {
		return
	}

	velocity := JumpVelocity(d.ctx.Tuning.DoubleJumpHeight, d.ctx.Tuning.Gravity)
	movement.ApplyImpulse(rl.Vector3{Y: velocity})
	d.remainingJumps--
	d.OnDoubleJump.Invoke(velocity)
}
