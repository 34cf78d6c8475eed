package player

import (
	"firstperson/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ability is an optional movement module ticked between
// MovementController.BeginFrame and Integrate.
type Ability interface {
	Name() string
	Tick(deltaTime float32)
	SetEnabled(enabled bool)
	Enabled() bool
}

// MovementView is the slice of the movement controller an ability may use.
// Abilities read state and push impulses; they never touch fields directly.
type MovementView interface {
	IsGrounded() bool
	CanGroundJump() bool
	CameraForward() rl.Vector3
	ApplyImpulse(v rl.Vector3)
}

// Presses is the read-only view of the edge flags an ability observes.
// Consuming them is left to the character once every ability has ticked.
type Presses interface {
	JumpPressed() bool
	DashPressed() bool
}

// AbilityContext carries the references handed to an ability at creation.
type AbilityContext struct {
	Movement MovementView
	Input    Presses
	Tuning   *config.Tuning
}

// AbilityBase holds the shared enable flag and context.
type AbilityBase struct {
	ctx     AbilityContext
	enabled bool
}

func newAbilityBase(ctx AbilityContext, enabled bool) AbilityBase {
	return AbilityBase{ctx: ctx, enabled: enabled}
}

func (a *AbilityBase) SetEnabled(enabled bool) { a.enabled = enabled }
func (a *AbilityBase) Enabled() bool           { return a.enabled }
