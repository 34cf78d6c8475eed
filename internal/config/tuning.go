package config

import (
	"errors"
	"fmt"
	"math"
)

// JumpPolicy selects which component owns the mid-air jump.
type JumpPolicy string

const (
	// JumpPolicyBuffered keeps the double jump inside the movement controller.
	JumpPolicyBuffered JumpPolicy = "buffered"
	// JumpPolicyImpulse leaves the double jump to the ability module.
	JumpPolicyImpulse JumpPolicy = "impulse"
)

var ErrUnknownJumpPolicy = errors.New("unknown jump policy")

const (
	minMouseSensitivity = 0.01
	minDashDuration     = 0.01
)

// Tuning holds every externally configurable movement constant.
type Tuning struct {
	MovementSpeed         float32    `yaml:"movement_speed"`
	JumpHeight            float32    `yaml:"jump_height"`
	DoubleJumpHeight      float32    `yaml:"double_jump_height"`
	EnableDoubleJump      bool       `yaml:"enable_double_jump"`
	GroundedBufferSeconds float32    `yaml:"grounded_buffer_seconds"`
	Gravity               float32    `yaml:"gravity"`
	GravityMultiplier     float32    `yaml:"gravity_multiplier"`
	MouseSensitivity      float32    `yaml:"mouse_sensitivity"`
	PitchLimits           [2]float32 `yaml:"pitch_limits"`
	DashEnabled           bool       `yaml:"dash_enabled"`
	DashDistance          float32    `yaml:"dash_distance"`
	DashDuration          float32    `yaml:"dash_duration"`
	JumpPolicy            JumpPolicy `yaml:"jump_policy"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MovementSpeed:         5,
		JumpHeight:            2,
		DoubleJumpHeight:      1.5,
		EnableDoubleJump:      true,
		GroundedBufferSeconds: 0.15,
		Gravity:               -9.81,
		GravityMultiplier:     1,
		MouseSensitivity:      0.15,
		PitchLimits:           [2]float32{-60, 60},
		DashEnabled:           true,
		DashDistance:          5,
		DashDuration:          0.2,
		JumpPolicy:            JumpPolicyImpulse,
	}
}

func (t Tuning) Validate() error {
	switch t.JumpPolicy {
	case JumpPolicyBuffered, JumpPolicyImpulse:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownJumpPolicy, t.JumpPolicy)
	}
}

// Clamped returns a copy with every field forced into its documented domain.
// NaN and infinite values fall back to the defaults.
func (t Tuning) Clamped() Tuning {
	def := DefaultTuning()
	for _, f := range []struct{ v, def *float32 }{
		{&t.MovementSpeed, &def.MovementSpeed},
		{&t.JumpHeight, &def.JumpHeight},
		{&t.DoubleJumpHeight, &def.DoubleJumpHeight},
		{&t.GroundedBufferSeconds, &def.GroundedBufferSeconds},
		{&t.Gravity, &def.Gravity},
		{&t.GravityMultiplier, &def.GravityMultiplier},
		{&t.MouseSensitivity, &def.MouseSensitivity},
		{&t.PitchLimits[0], &def.PitchLimits[0]},
		{&t.PitchLimits[1], &def.PitchLimits[1]},
		{&t.DashDistance, &def.DashDistance},
		{&t.DashDuration, &def.DashDuration},
	} {
		if !isFinite(*f.v) {
			*f.v = *f.def
		}
	}

	t.MovementSpeed = atLeast(t.MovementSpeed, 0)
	t.JumpHeight = atLeast(t.JumpHeight, 0)
	t.DoubleJumpHeight = atLeast(t.DoubleJumpHeight, 0)
	t.GroundedBufferSeconds = atLeast(t.GroundedBufferSeconds, 0)
	t.GravityMultiplier = atLeast(t.GravityMultiplier, 0)
	t.DashDistance = atLeast(t.DashDistance, 0)
	t.DashDuration = atLeast(t.DashDuration, minDashDuration)

	if t.Gravity > 0 {
		t.Gravity = -t.Gravity
	}

	if t.MouseSensitivity < minMouseSensitivity {
		t.MouseSensitivity = minMouseSensitivity
	}
	if t.MouseSensitivity > 1 {
		t.MouseSensitivity = 1
	}

	if t.PitchLimits[0] > t.PitchLimits[1] {
		t.PitchLimits[0], t.PitchLimits[1] = t.PitchLimits[1], t.PitchLimits[0]
	}

	if t.JumpPolicy == "" {
		t.JumpPolicy = JumpPolicyImpulse
	}
	return t
}

// PitchMin and PitchMax are the camera pivot limits in degrees.
func (t Tuning) PitchMin() float32 { return t.PitchLimits[0] }
func (t Tuning) PitchMax() float32 { return t.PitchLimits[1] }

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func atLeast(v, min float32) float32 {
	if v < min {
		return min
	}
	return v
}
