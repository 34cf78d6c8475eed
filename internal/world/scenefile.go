package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"firstperson/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrBadBoxSize = errors.New("box size must be positive on every axis")

// --- JSON types ---

type LevelFile struct {
	Spawn    [3]float32 `json:"spawn"`
	SpawnYaw float32    `json:"spawnYaw,omitempty"`
	Boxes    []BoxDef   `json:"boxes"`
}

type BoxDef struct {
	Name     string     `json:"name"`
	Position [3]float32 `json:"position"`
	Size     [3]float32 `json:"size"`
	Color    string     `json:"color,omitempty"`
}

func (b BoxDef) Center() rl.Vector3 {
	return rl.Vector3{X: b.Position[0], Y: b.Position[1], Z: b.Position[2]}
}

func (b BoxDef) Extent() rl.Vector3 {
	return rl.Vector3{X: b.Size[0], Y: b.Size[1], Z: b.Size[2]}
}

func (b BoxDef) Bounds() physics.AABB {
	return physics.NewAABBFromCenter(b.Center(), b.Extent())
}

func (b BoxDef) Tint() rl.Color {
	return lookupColor(b.Color)
}

// Level is a parsed, validated level file.
type Level struct {
	Spawn    rl.Vector3
	SpawnYaw float32
	Boxes    []BoxDef
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

// lookupColor accepts a named color or #rrggbb / #rrggbbaa. Anything else is white.
func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	if hex, ok := strings.CutPrefix(name, "#"); ok {
		var r, g, b, a uint8
		a = 255
		switch len(hex) {
		case 6:
			if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err == nil {
				return rl.NewColor(r, g, b, a)
			}
		case 8:
			if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err == nil {
				return rl.NewColor(r, g, b, a)
			}
		}
	}
	return rl.White
}

// --- Loading ---

func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseLevel(data)
}

func ParseLevel(data []byte) (*Level, error) {
	var lf LevelFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}

	for i, b := range lf.Boxes {
		if b.Size[0] <= 0 || b.Size[1] <= 0 || b.Size[2] <= 0 {
			return nil, fmt.Errorf("box %d %q: %w", i, b.Name, ErrBadBoxSize)
		}
		if b.Name == "" {
			lf.Boxes[i].Name = fmt.Sprintf("Box_%d", i)
		}
	}

	return &Level{
		Spawn:    rl.Vector3{X: lf.Spawn[0], Y: lf.Spawn[1], Z: lf.Spawn[2]},
		SpawnYaw: lf.SpawnYaw,
		Boxes:    lf.Boxes,
	}, nil
}

// Collision builds the static collision set for the level.
func (l *Level) Collision() *physics.World {
	w := physics.NewWorld()
	for _, b := range l.Boxes {
		w.AddBox(physics.Box{Name: b.Name, Bounds: b.Bounds()})
	}
	return w
}
