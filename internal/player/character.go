package player

import (
	"errors"
	"fmt"
	"log"

	"firstperson/internal/config"
	"firstperson/internal/engine"
)

var (
	// ErrMissingInput is returned by Init when no input surface was attached.
	ErrMissingInput = errors.New("player: input surface not attached")
	// ErrMissingMover is returned by Init when Options.Mover was nil.
	ErrMissingMover = errors.New("player: mover not set")
)

// Options configures a Character. Camera and Anim are optional.
type Options struct {
	Camera *engine.GameObject
	Mover  Mover
	Anim   AnimationSink
	Tuning config.Tuning
	Logger *log.Logger
}

// Character composes the movement controller and its abilities and runs them
// in a fixed order each frame:
//
//	movement.BeginFrame -> abilities -> movement.Integrate -> consume input edges
//
// Abilities therefore see pre-integration state and their impulses land in
// the same frame.
type Character struct {
	engine.BaseComponent

	tuning    *config.Tuning
	movement  *MovementController
	abilities []Ability
	input     InputSurface
	logger    *log.Logger
	enabled   bool

	doubleJump *DoubleJumpAbility
	dash       *DashAbility
}

// NewCharacter builds the character for body. Abilities are created here and
// receive their references explicitly.
func NewCharacter(body *engine.GameObject, opts Options) *Character {
	tuning := opts.Tuning.Clamped()
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	c := &Character{
		tuning: &tuning,
		logger: logger,
	}
	c.movement = NewMovementController(c.tuning, opts.Mover, body, opts.Camera, opts.Anim)
	c.installAbilities()
	return c
}

// installAbilities picks the double jump owner from the jump policy. Under the
// buffered policy the controller grants the air charge itself, so the ability
// is left out.
func (c *Character) installAbilities() {
	ctx := AbilityContext{
		Movement: c.movement,
		Input:    inputProxy{c},
		Tuning:   c.tuning,
	}

	c.abilities = nil
	if c.tuning.JumpPolicy == config.JumpPolicyImpulse {
		c.doubleJump = NewDoubleJumpAbility(ctx)
		c.abilities = append(c.abilities, c.doubleJump)
	} else {
		c.doubleJump = nil
	}
	c.dash = NewDashAbility(ctx)
	c.abilities = append(c.abilities, c.dash)
}

// AttachInput sets the input surface. Must happen before Init.
func (c *Character) AttachInput(in InputSurface) {
	c.input = in
	c.movement.SetInput(in)
}

// Init checks the collaborators and tuning. On error the character stays
// disabled and Tick does nothing.
func (c *Character) Init() error {
	c.enabled = false
	name := "character"
	if g := c.GetGameObject(); g != nil {
		name = g.Name
	}

	if c.movement.mover == nil {
		c.logger.Printf("Player: %s has no mover, controller disabled", name)
		return fmt.Errorf("%s: %w", name, ErrMissingMover)
	}
	if err := c.tuning.Validate(); err != nil {
		c.logger.Printf("Player: %s: %v, controller disabled", name, err)
		return fmt.Errorf("%s: %w", name, err)
	}
	if c.input == nil {
		c.logger.Printf("Player: %s requires an input surface, controller disabled", name)
		return fmt.Errorf("%s: %w", name, ErrMissingInput)
	}
	c.enabled = true
	return nil
}

func (c *Character) Tick(deltaTime float32) {
	if !c.enabled {
		return
	}

	c.movement.BeginFrame(deltaTime)
	for _, a := range c.abilities {
		a.Tick(deltaTime)
	}
	c.movement.Integrate(deltaTime)

	c.input.ConsumeJump()
	c.input.ConsumeDash()
	c.input.ResetLookThisFrame()
}

// Release frees the input binding. The character stays disabled afterwards.
func (c *Character) Release() {
	c.enabled = false
	if c.input != nil {
		c.input.Release()
		c.input = nil
		c.movement.SetInput(nil)
	}
}

// SetTuning applies new tuning live. A jump policy change reinstalls the
// abilities; otherwise their running state is kept.
func (c *Character) SetTuning(t config.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t = t.Clamped()
	policyChanged := t.JumpPolicy != c.tuning.JumpPolicy

	*c.tuning = t
	c.movement.clampPitch()
	if policyChanged {
		c.logger.Printf("Player: jump policy now %s", t.JumpPolicy)
		c.installAbilities()
		return nil
	}
	if c.doubleJump != nil {
		c.doubleJump.SetEnabled(t.EnableDoubleJump)
	}
	c.dash.SetEnabled(t.DashEnabled)
	return nil
}

func (c *Character) Tuning() config.Tuning          { return *c.tuning }
func (c *Character) Enabled() bool                  { return c.enabled }
func (c *Character) Movement() *MovementController  { return c.movement }
func (c *Character) Abilities() []Ability           { return c.abilities }
func (c *Character) DoubleJump() *DoubleJumpAbility { return c.doubleJump }
func (c *Character) Dash() *DashAbility             { return c.dash }

// inputProxy lets abilities built before AttachInput read the surface
// attached later.
type inputProxy struct{ c *Character }

func (p inputProxy) JumpPressed() bool { return p.c.input != nil && p.c.input.JumpPressed() }
func (p inputProxy) DashPressed() bool { return p.c.input != nil && p.c.input.DashPressed() }
