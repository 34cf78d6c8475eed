package game

import (
	"os"
	"path/filepath"
	"testing"

	"firstperson/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLevel = `{
  "spawn": [0, 3, 0],
  "boxes": [
    {"name": "Floor", "position": [0, -0.5, 0], "size": [30, 1, 30], "color": "LightGray"}
  ]
}`

func newTestGame(t *testing.T, yaml string) *Game {
	t.Helper()
	dir := t.TempDir()

	levelPath := filepath.Join(dir, "level.json")
	require.NoError(t, os.WriteFile(levelPath, []byte(testLevel), 0o644))

	configPath := filepath.Join(dir, "player.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0o644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	cfg.Level = levelPath

	g, err := New(cfg, configPath)
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g
}

func TestNewSpawnsBoundPlayer(t *testing.T) {
	g := newTestGame(t, "player:\n  movement_speed: 7\n")

	require.NotNil(t, g.Player)
	assert.True(t, g.Character.Enabled())
	assert.Equal(t, 1, g.Input.BoundCount())
	assert.Equal(t, float32(3), g.Player.Transform.Position.Y)
	assert.Equal(t, float32(7), g.Character.Tuning().MovementSpeed)
	assert.Same(t, g.Player, g.World.Scene.FindByName("Player"))
}

func TestPlayerFallsOntoFloor(t *testing.T) {
	g := newTestGame(t, "")

	for i := 0; i < 180; i++ {
		g.World.Update(1.0 / 60)
	}

	assert.True(t, g.Character.Movement().IsGrounded())
	assert.InDelta(t, 0.9, float64(g.Player.Transform.Position.Y), 1e-3)
	assert.Contains(t, g.Events(), "landed")
}

func TestReloadConfig(t *testing.T) {
	g := newTestGame(t, "player:\n  jump_height: 2\n")

	require.NoError(t, os.WriteFile(g.ConfigPath, []byte("player:\n  jump_height: 3.5\n  jump_policy: buffered\n"), 0o644))
	require.NoError(t, g.ReloadConfig())
	assert.Equal(t, float32(3.5), g.Character.Tuning().JumpHeight)
	assert.Equal(t, config.JumpPolicyBuffered, g.Config.Player.JumpPolicy)
	assert.Nil(t, g.Character.DoubleJump())

	require.NoError(t, os.WriteFile(g.ConfigPath, []byte("player: [oops"), 0o644))
	assert.Error(t, g.ReloadConfig())
	assert.Equal(t, float32(3.5), g.Character.Tuning().JumpHeight, "previous tuning kept")

	require.NoError(t, os.WriteFile(g.ConfigPath, []byte("player:\n  jump_policy: sideways\n"), 0o644))
	err := g.ReloadConfig()
	assert.ErrorIs(t, err, config.ErrUnknownJumpPolicy)
	assert.Equal(t, config.JumpPolicyBuffered, g.Character.Tuning().JumpPolicy)
}

func TestRespawnRebindsInput(t *testing.T) {
	g := newTestGame(t, "")
	old := g.Player

	g.Respawn()

	assert.True(t, old.Released())
	assert.NotSame(t, old, g.Player)
	assert.Equal(t, 1, g.Input.BoundCount())
	assert.True(t, g.Character.Enabled())
	assert.Len(t, g.World.Scene.FindByTag("player"), 1)
}

func TestNewFailsOnMissingLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Level = filepath.Join(t.TempDir(), "nope.json")

	_, err := New(cfg, "player.yaml")
	assert.Error(t, err)
}

func TestSliderRangesCoverDefaults(t *testing.T) {
	tuning := config.DefaultTuning()
	for _, f := range sliderFields(&tuning) {
		assert.GreaterOrEqual(t, *f.Value, f.Min, f.Label)
		assert.LessOrEqual(t, *f.Value, f.Max, f.Label)
	}

	fields := toggleFields(&tuning)
	*fields[1].Value = false
	assert.False(t, tuning.DashEnabled, "fields point into the tuning")
}

func TestSamePath(t *testing.T) {
	assert.True(t, samePath("assets/config/player.yaml", "./assets/config/../config/player.yaml"))
	assert.False(t, samePath("assets/config/player.yaml", "assets/config/other.yaml"))
}
