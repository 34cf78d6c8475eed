package game

import (
	"fmt"

	"firstperson/internal/config"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgDark        = rl.NewColor(10, 10, 15, 255)
	colorBgPanel       = rl.NewColor(18, 18, 24, 235)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

func applyPanelStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

type sliderField struct {
	Label    string
	Value    *float32
	Min, Max float32
}

type toggleField struct {
	Label string
	Value *bool
}

func sliderFields(t *config.Tuning) []sliderField {
	return []sliderField{
		{"Move speed", &t.MovementSpeed, 0, 20},
		{"Jump height", &t.JumpHeight, 0, 6},
		{"Double jump height", &t.DoubleJumpHeight, 0, 6},
		{"Coyote time", &t.GroundedBufferSeconds, 0, 0.5},
		{"Gravity", &t.Gravity, -40, 0},
		{"Gravity scale", &t.GravityMultiplier, 0, 4},
		{"Mouse sensitivity", &t.MouseSensitivity, 0.01, 1},
		{"Pitch min", &t.PitchLimits[0], -89, 0},
		{"Pitch max", &t.PitchLimits[1], 0, 89},
		{"Dash distance", &t.DashDistance, 0, 15},
		{"Dash duration", &t.DashDuration, 0.01, 1},
	}
}

func toggleFields(t *config.Tuning) []toggleField {
	return []toggleField{
		{"Double jump", &t.EnableDoubleJump},
		{"Dash", &t.DashEnabled},
	}
}

// TuningPanel is the in-game editor for player tuning.
type TuningPanel struct {
	Open   bool
	Bounds rl.Rectangle
}

func NewTuningPanel() *TuningPanel {
	return &TuningPanel{
		Bounds: rl.Rectangle{X: 20, Y: 100, Width: 360, Height: 430},
	}
}

const (
	rowHeight    = 24
	rowSpacing   = 6
	labelWidth   = 140
	valuePadding = 50
)

// Draw renders the panel over t and returns the edited tuning, and whether
// any field changed this frame.
func (p *TuningPanel) Draw(t config.Tuning) (config.Tuning, bool) {
	before := t

	rl.DrawRectangleRec(p.Bounds, colorBgPanel)
	rl.DrawRectangleLinesEx(p.Bounds, 1, colorAccent)
	rl.DrawText("Player tuning", int32(p.Bounds.X)+10, int32(p.Bounds.Y)+8, 18, colorTextPrimary)

	y := p.Bounds.Y + 36
	x := p.Bounds.X + 10
	sliderWidth := p.Bounds.Width - labelWidth - valuePadding - 20

	for _, f := range sliderFields(&t) {
		rl.DrawText(f.Label, int32(x), int32(y)+5, 14, colorTextSecondary)
		bounds := rl.Rectangle{X: x + labelWidth, Y: y, Width: sliderWidth, Height: rowHeight}
		*f.Value = gui.Slider(bounds, "", fmt.Sprintf("%.2f", *f.Value), *f.Value, f.Min, f.Max)
		y += rowHeight + rowSpacing
	}

	for _, f := range toggleFields(&t) {
		bounds := rl.Rectangle{X: x, Y: y, Width: rowHeight - 4, Height: rowHeight - 4}
		*f.Value = gui.CheckBox(bounds, f.Label, *f.Value)
		y += rowHeight + rowSpacing
	}

	buffered := t.JumpPolicy == config.JumpPolicyBuffered
	bounds := rl.Rectangle{X: x, Y: y, Width: rowHeight - 4, Height: rowHeight - 4}
	if gui.CheckBox(bounds, "Buffered jump policy", buffered) {
		t.JumpPolicy = config.JumpPolicyBuffered
	} else {
		t.JumpPolicy = config.JumpPolicyImpulse
	}

	return t, t != before
}
