package input

import rl "github.com/gen2brain/raylib-go/raylib"

// State is the current-frame input snapshot for one character.
//
// The platform layer writes it (SetMove, AddLook, PressJump, PressDash) and
// the character reads it. Jump and dash are edge-triggered: a press stays
// visible until the matching Consume call, so every reader in the same frame
// sees it exactly once.
type State struct {
	move        rl.Vector2
	lookDelta   rl.Vector2
	jumpPressed bool
	dashPressed bool

	enabled bool
	release func()
}

func NewState() *State {
	return &State{enabled: true}
}

func (s *State) Move() rl.Vector2      { return s.move }
func (s *State) LookDelta() rl.Vector2 { return s.lookDelta }
func (s *State) JumpPressed() bool     { return s.jumpPressed }
func (s *State) DashPressed() bool     { return s.dashPressed }

// SetMove stores the continuous move axes; magnitude is clamped to 1.
func (s *State) SetMove(v rl.Vector2) {
	if !s.enabled {
		return
	}
	if l := rl.Vector2Length(v); l > 1 {
		v = rl.Vector2Scale(v, 1/l)
	}
	s.move = v
}

// AddLook accumulates look delta until ResetLookThisFrame.
func (s *State) AddLook(delta rl.Vector2) {
	if !s.enabled {
		return
	}
	s.lookDelta = rl.Vector2Add(s.lookDelta, delta)
}

func (s *State) PressJump() {
	if s.enabled {
		s.jumpPressed = true
	}
}

func (s *State) PressDash() {
	if s.enabled {
		s.dashPressed = true
	}
}

func (s *State) ConsumeJump()        { s.jumpPressed = false }
func (s *State) ConsumeDash()        { s.dashPressed = false }
func (s *State) ResetLookThisFrame() { s.lookDelta = rl.Vector2{} }

// Enable resumes accepting platform writes.
func (s *State) Enable() { s.enabled = true }

// Disable drops pending input and ignores writes until Enable.
func (s *State) Disable() {
	s.enabled = false
	s.clear()
}

func (s *State) Enabled() bool { return s.enabled }

// Release unbinds the state from its source and disables it. Safe to call
// more than once.
func (s *State) Release() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
	s.Disable()
}

func (s *State) clear() {
	s.move = rl.Vector2{}
	s.lookDelta = rl.Vector2{}
	s.jumpPressed = false
	s.dashPressed = false
}
