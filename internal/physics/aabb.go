package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Translate(v rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Add(a.Min, v), Max: rl.Vector3Add(a.Max, v)}
}

// Intersects reports a strict overlap. Boxes that only share a face do not
// intersect, so a body resting on a floor is not in contact with it.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	// Penetration depth in each direction
	candidates := [...]rl.Vector3{
		{X: b.Max.X - a.Min.X},
		{X: -(a.Max.X - b.Min.X)},
		{Y: b.Max.Y - a.Min.Y},
		{Y: -(a.Max.Y - b.Min.Y)},
		{Z: b.Max.Z - a.Min.Z},
		{Z: -(a.Max.Z - b.Min.Z)},
	}

	result := candidates[0]
	min := depth(result)
	for _, c := range candidates[1:] {
		if d := depth(c); d < min {
			min = d
			result = c
		}
	}
	return result
}

func depth(v rl.Vector3) float32 {
	d := v.X + v.Y + v.Z
	if d < 0 {
		return -d
	}
	return d
}
