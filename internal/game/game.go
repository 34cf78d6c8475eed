package game

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"firstperson/internal/animation"
	"firstperson/internal/camera"
	"firstperson/internal/config"
	"firstperson/internal/engine"
	"firstperson/internal/input"
	"firstperson/internal/physics"
	"firstperson/internal/player"
	"firstperson/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// EyeOffset is the camera pivot height above the body center.
const EyeOffset = 0.7

// KillY is the height below which the player is respawned.
const KillY = -30

var _ player.Mover = (*physics.CharacterBody)(nil)
var _ player.InputSurface = (*input.State)(nil)
var _ player.AnimationSink = (*animation.Parameters)(nil)

type Game struct {
	Config     *config.Config
	ConfigPath string
	World      *world.World
	Input      *input.Poller
	Params     *animation.Parameters

	Player    *engine.GameObject
	Pivot     *engine.GameObject
	Body      *physics.CharacterBody
	Character *player.Character
	Camera    *camera.FPSCamera

	DebugMode bool
	Panel     *TuningPanel

	state   *input.State
	logger  *log.Logger
	watcher *config.Watcher
	events  []string

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New loads the level and spawns the player. No window is needed until Run.
func New(cfg *config.Config, configPath string) (*Game, error) {
	level, err := world.LoadLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	poller, err := input.NewPoller(cfg.Input)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config:     cfg,
		ConfigPath: configPath,
		World:      world.New(level),
		Input:      poller,
		Params:     animation.NewParameters(),
		Panel:      NewTuningPanel(),
		logger:     log.Default(),
	}
	if err := g.spawnPlayer(); err != nil {
		// The character stays disabled; the rest of the scene still runs.
		g.logger.Printf("Game: %v", err)
	}
	if err := g.World.Scene.Init(); err != nil {
		g.logger.Printf("Game: scene init: %v", err)
	}
	return g, nil
}

func (g *Game) spawnPlayer() error {
	body := engine.NewGameObject("Player")
	body.Tags = []string{"player"}
	body.Transform = g.World.SpawnTransform()

	pivot := engine.NewGameObject("CameraPivot")
	pivot.Transform.Position = rl.Vector3{Y: EyeOffset}
	body.AddChild(pivot)

	mover := physics.NewCharacterBody(g.World.Collision)
	body.AddComponent(mover)

	state := input.NewState()
	g.Input.Bind(state)

	character := player.NewCharacter(body, player.Options{
		Camera: pivot,
		Mover:  mover,
		Anim:   g.Params,
		Tuning: g.Config.Player,
		Logger: g.logger,
	})
	character.AttachInput(state)
	body.AddComponent(character)
	g.hookEvents(character)

	g.World.Scene.AddGameObject(body)
	g.Player = body
	g.Pivot = pivot
	g.Body = mover
	g.Character = character
	g.Camera = camera.New(pivot)
	g.state = state

	return body.Init()
}

func (g *Game) hookEvents(c *player.Character) {
	m := c.Movement()
	m.OnJumped.AddListener(func(kind player.JumpKind) {
		g.note(fmt.Sprintf("%s jump", kind))
	})
	m.OnLanded.AddListener(func() {
		g.note("landed")
	})
	g.hookAbilityEvents(c)
}

// hookAbilityEvents subscribes to the current abilities. A jump policy change
// replaces them, so this runs again after one.
func (g *Game) hookAbilityEvents(c *player.Character) {
	if dj := c.DoubleJump(); dj != nil {
		dj.OnDoubleJump.AddListener(func(v float32) {
			g.note(fmt.Sprintf("double jump %.2f m/s", v))
		})
	}
	c.Dash().OnDashStarted.AddListener(func(dir rl.Vector3) {
		g.note(fmt.Sprintf("dash (%.2f, %.2f)", dir.X, dir.Z))
	})
}

const maxEvents = 6

func (g *Game) note(event string) {
	g.events = append(g.events, event)
	if len(g.events) > maxEvents {
		g.events = g.events[len(g.events)-maxEvents:]
	}
}

// Respawn releases the current player, which unbinds its input, and spawns a
// fresh one at the level spawn.
func (g *Game) Respawn() {
	g.logger.Printf("Game: respawning %s", g.Player.Name)
	g.World.Scene.RemoveGameObject(g.Player)
	if err := g.spawnPlayer(); err != nil {
		g.logger.Printf("Game: respawn: %v", err)
	}
}

// ReloadConfig applies the player tuning from the config file. On error the
// current tuning is kept.
func (g *Game) ReloadConfig() error {
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		return fmt.Errorf("reload %s: %w", g.ConfigPath, err)
	}
	return g.applyTuning(cfg.Player)
}

func (g *Game) applyTuning(t config.Tuning) error {
	policy := g.Character.Tuning().JumpPolicy
	if err := g.Character.SetTuning(t); err != nil {
		return err
	}
	g.Config.Player = g.Character.Tuning()
	if g.Config.Player.JumpPolicy != policy {
		g.hookAbilityEvents(g.Character)
	}
	return nil
}

// WatchConfig starts hot reload for the config file.
func (g *Game) WatchConfig() error {
	w, err := config.NewWatcher(g.ConfigPath)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

// drainWatcher applies pending reloads without blocking the frame.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			if !samePath(name, g.ConfigPath) {
				continue
			}
			if err := g.ReloadConfig(); err != nil {
				g.logger.Printf("Config: %v, keeping previous tuning", err)
				continue
			}
			g.logger.Printf("Config: reloaded %s", g.ConfigPath)
		case err := <-g.watcher.Errors:
			g.logger.Printf("Config: watcher: %v", err)
		default:
			return
		}
	}
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func (g *Game) Run() {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.TargetFPS)
	rl.DisableCursor()
	applyPanelStyle()

	if err := g.WatchConfig(); err != nil {
		g.logger.Printf("Config: hot reload disabled: %v", err)
	}
	defer g.Close()

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
}

func (g *Game) Update(deltaTime float32) {
	updateStart := time.Now()

	g.drainWatcher()

	if rl.IsKeyPressed(rl.KeyTab) {
		g.togglePanel()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	// The panel owns the mouse while open.
	if !g.Panel.Open {
		g.Input.Poll()
	}
	g.World.Update(deltaTime)

	if g.Player.Transform.Position.Y < KillY {
		g.Respawn()
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// togglePanel opens or closes the tuning panel. The cursor lock and player
// input follow it.
func (g *Game) togglePanel() {
	g.Panel.Open = !g.Panel.Open
	if g.Panel.Open {
		g.state.Disable()
		rl.EnableCursor()
	} else {
		g.state.Enable()
		rl.DisableCursor()
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()

	drawStart := time.Now()
	g.World.Draw(g.Camera.GetRaylibCamera())
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space to jump, Shift to dash, Mouse to look", 10, 10, 20, rl.LightGray)
	rl.DrawText("Tab for tuning, F1 for debug", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	cx, cy := rl.GetScreenWidth()/2, rl.GetScreenHeight()/2
	rl.DrawLine(int32(cx-8), int32(cy), int32(cx+8), int32(cy), rl.White)
	rl.DrawLine(int32(cx), int32(cy-8), int32(cx), int32(cy+8), rl.White)

	if g.DebugMode {
		g.drawDebug()
	}

	if g.Panel.Open {
		if t, changed := g.Panel.Draw(g.Character.Tuning()); changed {
			if err := g.applyTuning(t); err != nil {
				g.logger.Printf("Game: tuning: %v", err)
			}
		}
	}
}

func (g *Game) drawDebug() {
	y := int32(90)
	line := func(text string, color rl.Color) {
		rl.DrawText(text, 10, y, 16, color)
		y += 20
	}

	m := g.Character.Movement()
	pos := g.Player.Transform.Position
	line(fmt.Sprintf("Position: (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z), rl.Yellow)
	line(fmt.Sprintf("Yaw %.1f  Pitch %.1f", m.Yaw(), m.Pitch()), rl.Yellow)
	line(fmt.Sprintf("Grounded %v  vY %.2f  charges %d", m.IsGrounded(), m.VerticalVelocity(), m.RemainingJumpCharges()), rl.Yellow)
	line(fmt.Sprintf("Policy %s  dashing %v", g.Character.Tuning().JumpPolicy, g.Character.Dash().Dashing()), rl.Yellow)

	for _, name := range g.Params.Names() {
		if v, ok := g.Params.Float(name); ok {
			line(fmt.Sprintf("%s = %.2f", name, v), rl.SkyBlue)
		} else if b, ok := g.Params.Bool(name); ok {
			line(fmt.Sprintf("%s = %v", name, b), rl.SkyBlue)
		}
	}
	for _, e := range g.events {
		line(e, rl.Lime)
	}

	line(fmt.Sprintf("Update: %.2f ms", g.updateMs), rl.Green)
	line(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), rl.Green)
}

// Close releases the scene and stops hot reload.
func (g *Game) Close() {
	g.World.Scene.Release()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.logger.Printf("Config: close watcher: %v", err)
		}
		g.watcher = nil
	}
}

// Events returns the most recent ability and movement events, oldest first.
func (g *Game) Events() []string {
	return g.events
}
