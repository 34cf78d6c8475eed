package physics

import (
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - boxes are bucketed into every cell they span
const CellSize = 5.0

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / CellSize))),
		Y: int(math.Floor(float64(pos.Y / CellSize))),
		Z: int(math.Floor(float64(pos.Z / CellSize))),
	}
}

// Box is a static, axis-aligned level collider.
type Box struct {
	Name   string
	Bounds AABB
}

// World is the static collision set a character moves through.
type World struct {
	boxes []Box
	grid  map[CellKey][]int
}

func NewWorld() *World {
	return &World{grid: make(map[CellKey][]int)}
}

// AddBox registers a collider and returns its index.
func (w *World) AddBox(b Box) int {
	idx := len(w.boxes)
	w.boxes = append(w.boxes, b)
	forEachCell(b.Bounds, func(key CellKey) {
		w.grid[key] = append(w.grid[key], idx)
	})
	return idx
}

func (w *World) Boxes() []Box {
	return w.boxes
}

func (w *World) Len() int {
	return len(w.boxes)
}

// Query returns every box strictly overlapping region, in insertion order.
func (w *World) Query(region AABB) []Box {
	seen := make(map[int]bool)
	var hits []int
	forEachCell(region, func(key CellKey) {
		for _, idx := range w.grid[key] {
			if seen[idx] {
				continue
			}
			seen[idx] = true
			if w.boxes[idx].Bounds.Intersects(region) {
				hits = append(hits, idx)
			}
		}
	})

	sort.Ints(hits)
	boxes := make([]Box, len(hits))
	for i, idx := range hits {
		boxes[i] = w.boxes[idx]
	}
	return boxes
}

// Blocked reports whether region overlaps any box.
func (w *World) Blocked(region AABB) bool {
	return len(w.Query(region)) > 0
}

func forEachCell(region AABB, fn func(CellKey)) {
	lo := posToCell(region.Min)
	hi := posToCell(region.Max)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				fn(CellKey{X: x, Y: y, Z: z})
			}
		}
	}
}
