package input

import (
	"errors"
	"fmt"
	"strings"

	"firstperson/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrUnknownKey = errors.New("unknown key")

var keyByName = map[string]int32{
	"space":       rl.KeySpace,
	"left_shift":  rl.KeyLeftShift,
	"right_shift": rl.KeyRightShift,
	"left_ctrl":   rl.KeyLeftControl,
	"left_alt":    rl.KeyLeftAlt,
	"tab":         rl.KeyTab,
	"enter":       rl.KeyEnter,
	"up":          rl.KeyUp,
	"down":        rl.KeyDown,
	"left":        rl.KeyLeft,
	"right":       rl.KeyRight,
}

// ParseKey maps a config key name ("w", "space", "left_shift") to a raylib key code.
func ParseKey(name string) (int32, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return rl.KeyA + int32(c-'a'), nil
		case c >= '0' && c <= '9':
			return rl.KeyZero + int32(c-'0'), nil
		}
	}
	if key, ok := keyByName[name]; ok {
		return key, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

type keyMap struct {
	forward, back, left, right int32
	jump, dash                 int32
}

// Poller samples raylib's keyboard and mouse once per frame and writes the
// result into every bound State.
type Poller struct {
	keys   keyMap
	states []*State
}

func NewPoller(b config.Bindings) (*Poller, error) {
	var km keyMap
	for _, k := range []struct {
		dst  *int32
		name string
	}{
		{&km.forward, b.Forward},
		{&km.back, b.Back},
		{&km.left, b.Left},
		{&km.right, b.Right},
		{&km.jump, b.Jump},
		{&km.dash, b.Dash},
	} {
		code, err := ParseKey(k.name)
		if err != nil {
			return nil, fmt.Errorf("input binding: %w", err)
		}
		*k.dst = code
	}
	return &Poller{keys: km}, nil
}

// Bind attaches s to the poller. s.Release detaches it again.
func (p *Poller) Bind(s *State) {
	for _, bound := range p.states {
		if bound == s {
			return
		}
	}
	p.states = append(p.states, s)
	s.release = func() { p.unbind(s) }
	s.Enable()
}

func (p *Poller) unbind(s *State) {
	for i, bound := range p.states {
		if bound == s {
			p.states = append(p.states[:i], p.states[i+1:]...)
			return
		}
	}
}

// BoundCount returns how many states are receiving input.
func (p *Poller) BoundCount() int {
	return len(p.states)
}

// Poll reads the devices. Call once per frame before ticking the scene.
func (p *Poller) Poll() {
	var move rl.Vector2
	if rl.IsKeyDown(p.keys.forward) {
		move.Y++
	}
	if rl.IsKeyDown(p.keys.back) {
		move.Y--
	}
	if rl.IsKeyDown(p.keys.right) {
		move.X++
	}
	if rl.IsKeyDown(p.keys.left) {
		move.X--
	}
	look := rl.GetMouseDelta()
	jump := rl.IsKeyPressed(p.keys.jump)
	dash := rl.IsKeyPressed(p.keys.dash)

	for _, s := range p.states {
		s.SetMove(move)
		s.AddLook(look)
		if jump {
			s.PressJump()
		}
		if dash {
			s.PressDash()
		}
	}
}
