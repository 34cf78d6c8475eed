package input

import (
	"testing"

	"firstperson/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateEdgeFlagsLastUntilConsumed(t *testing.T) {
	s := NewState()

	s.PressJump()
	s.PressDash()
	assert.True(t, s.JumpPressed())
	assert.True(t, s.JumpPressed(), "reading must not consume")
	assert.True(t, s.DashPressed())

	s.ConsumeJump()
	assert.False(t, s.JumpPressed())
	assert.True(t, s.DashPressed(), "consumes are independent")

	s.ConsumeDash()
	assert.False(t, s.DashPressed())
}

func TestStateLookAccumulatesUntilReset(t *testing.T) {
	s := NewState()

	s.AddLook(rl.Vector2{X: 2, Y: 1})
	s.AddLook(rl.Vector2{X: 3, Y: -4})
	assert.Equal(t, rl.Vector2{X: 5, Y: -3}, s.LookDelta())

	s.ResetLookThisFrame()
	assert.Equal(t, rl.Vector2{}, s.LookDelta())
}

func TestStateMoveIsClampedToUnitLength(t *testing.T) {
	s := NewState()

	s.SetMove(rl.Vector2{X: 1, Y: 1})
	assert.InDelta(t, 1.0, float64(rl.Vector2Length(s.Move())), 1e-5)

	s.SetMove(rl.Vector2{X: 0.3, Y: 0})
	assert.Equal(t, rl.Vector2{X: 0.3}, s.Move())
}

func TestStateDisabledIgnoresWrites(t *testing.T) {
	s := NewState()
	s.PressJump()
	s.Disable()

	assert.False(t, s.JumpPressed(), "disable drops pending presses")

	s.PressJump()
	s.PressDash()
	s.SetMove(rl.Vector2{Y: 1})
	s.AddLook(rl.Vector2{X: 1})

	assert.False(t, s.JumpPressed())
	assert.False(t, s.DashPressed())
	assert.Equal(t, rl.Vector2{}, s.Move())
	assert.Equal(t, rl.Vector2{}, s.LookDelta())

	s.Enable()
	s.PressJump()
	assert.True(t, s.JumpPressed())
}

func TestPollerBindAndRelease(t *testing.T) {
	p, err := NewPoller(config.Default().Input)
	require.NoError(t, err)

	first := NewState()
	second := NewState()
	p.Bind(first)
	p.Bind(first)
	p.Bind(second)
	assert.Equal(t, 2, p.BoundCount())

	first.Release()
	first.Release()
	assert.Equal(t, 1, p.BoundCount())
	assert.False(t, first.Enabled())

	// A respawned character reuses a fresh state without leaking the old one.
	respawned := NewState()
	p.Bind(respawned)
	second.Release()
	assert.Equal(t, 1, p.BoundCount())
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		want    int32
		wantErr bool
	}{
		{name: "w", want: rl.KeyW},
		{name: "A", want: rl.KeyA},
		{name: "7", want: rl.KeySeven},
		{name: "space", want: rl.KeySpace},
		{name: " Left_Shift ", want: rl.KeyLeftShift},
		{name: "hyperspace", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPollerRejectsUnknownBinding(t *testing.T) {
	b := config.Default().Input
	b.Dash = "warp"

	_, err := NewPoller(b)
	assert.ErrorIs(t, err, ErrUnknownKey)
}
