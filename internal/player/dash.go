package player

import (
	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DashAbility moves the character at constant speed along the horizontal
// camera forward captured at dash start, covering DashDistance over
// DashDuration. Presses during an active dash are ignored.
type DashAbility struct {
	AbilityBase
	dashing   bool
	timer     float32
	direction rl.Vector3
	speed     float32

	OnDashStarted engine.EventWithArg[rl.Vector3]
	OnDashEnded   engine.Event
}

func NewDashAbility(ctx AbilityContext) *DashAbility {
	return &DashAbility{AbilityBase: newAbilityBase(ctx, ctx.Tuning.DashEnabled)}
}

func (d *DashAbility) Name() string { return "Dash" }

func (d *DashAbility) Dashing() bool         { return d.dashing }
func (d *DashAbility) Remaining() float32    { return d.timer }
func (d *DashAbility) Direction() rl.Vector3 { return d.direction }

func (d *DashAbility) Tick(deltaTime float32) {
	if !d.enabled {
		return
	}

	if d.ctx.Input.DashPressed() && !d.dashing {
		d.start()
	}
	if !d.dashing {
		return
	}

	// The last step is trimmed to the time left so the total is exact.
	step := deltaTime
	if step > d.timer {
		step = d.timer
	}
	d.timer -= deltaTime
	if step > 0 {
		d.ctx.Movement.ApplyImpulse(rl.Vector3Scale(d.direction, d.speed*step))
	}
	if d.timer <= 0 {
		d.stop()
	}
}

func (d *DashAbility) start() {
	tuning := d.ctx.Tuning
	d.direction = flatten(d.ctx.Movement.CameraForward())
	d.speed = tuning.DashDistance / tuning.DashDuration
	d.timer = tuning.DashDuration
	d.dashing = true
	d.OnDashStarted.Invoke(d.direction)
}

func (d *DashAbility) stop() {
	d.dashing = false
	d.timer = 0
	d.OnDashEnded.Invoke()
}

// SetEnabled cancels a running dash when the ability is switched off.
func (d *DashAbility) SetEnabled(enabled bool) {
	if !enabled && d.dashing {
		d.stop()
	}
	d.AbilityBase.SetEnabled(enabled)
}
