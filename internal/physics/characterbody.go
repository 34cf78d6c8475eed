package physics

import (
	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// groundSkin is how far below the feet the ground probe reaches.
const groundSkin = 0.05

// stepClearance lifts a climbed step slightly above its top.
const stepClearance = 0.01

// CharacterBody moves its GameObject through a World with collision and stair
// stepping. The GameObject position is the center of the body box.
type CharacterBody struct {
	engine.BaseComponent

	Height     float32 // Total height of the body box
	Radius     float32 // Half-width of the body box
	StepHeight float32 // Max height of steps to climb

	world    *World
	grounded bool
}

func NewCharacterBody(world *World) *CharacterBody {
	return &CharacterBody{
		Height:     1.8,
		Radius:     0.4,
		StepHeight: 0.4,
		world:      world,
	}
}

// Bounds returns the body box at the current position.
func (c *CharacterBody) Bounds() AABB {
	g := c.GetGameObject()
	if g == nil {
		return AABB{}
	}
	return c.boundsAt(g.Transform.Position)
}

func (c *CharacterBody) boundsAt(pos rl.Vector3) AABB {
	return NewAABBFromCenter(pos, rl.Vector3{X: c.Radius * 2, Y: c.Height, Z: c.Radius * 2})
}

// Move applies motion horizontally, then vertically, and reports whether the
// body ends the move resting on support.
func (c *CharacterBody) Move(motion rl.Vector3) bool {
	g := c.GetGameObject()
	if g == nil {
		return false
	}

	c.grounded = false
	if c.world == nil || c.world.Len() == 0 {
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
		return false
	}

	horizontal := rl.Vector3{X: motion.X, Z: motion.Z}
	if horizontal.X != 0 || horizontal.Z != 0 {
		c.moveWithCollision(g, horizontal)
	}

	if motion.Y != 0 {
		c.moveWithCollision(g, rl.Vector3{Y: motion.Y})
	}

	// Resting contact produces no overlap, so probe just below the feet.
	if !c.grounded && motion.Y <= 0 {
		c.grounded = c.snapToGround(g)
	}
	return c.grounded
}

func (c *CharacterBody) IsGrounded() bool {
	return c.grounded
}

func (c *CharacterBody) moveWithCollision(g *engine.GameObject, motion rl.Vector3) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	bounds := c.boundsAt(g.Transform.Position)

	for _, box := range c.world.Query(bounds) {
		if !bounds.Intersects(box.Bounds) {
			continue
		}

		pushOut := bounds.Resolve(box.Bounds)
		isHorizontalCollision := (pushOut.X != 0 || pushOut.Z != 0) && pushOut.Y == 0

		if isHorizontalCollision && motion.Y == 0 && c.tryStepUp(g, bounds, box) {
			bounds = c.boundsAt(g.Transform.Position)
			continue
		}

		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		bounds = c.boundsAt(g.Transform.Position)

		if pushOut.Y > 0 {
			c.grounded = true
		}
	}
}

func (c *CharacterBody) tryStepUp(g *engine.GameObject, bounds AABB, box Box) bool {
	stepHeight := box.Bounds.Max.Y - bounds.Min.Y
	if stepHeight <= 0 || stepHeight > c.StepHeight {
		return false
	}

	raised := g.Transform.Position
	raised.Y += stepHeight + stepClearance
	if c.world.Blocked(c.boundsAt(raised)) {
		return false
	}

	g.Transform.Position = raised
	c.grounded = true
	return true
}

// snapToGround looks for support within groundSkin under the feet and, if
// found, settles the body on the highest such surface.
func (c *CharacterBody) snapToGround(g *engine.GameObject) bool {
	bounds := c.boundsAt(g.Transform.Position)
	feet := bounds.Min.Y
	probe := AABB{
		Min: rl.Vector3{X: bounds.Min.X, Y: feet - groundSkin, Z: bounds.Min.Z},
		Max: rl.Vector3{X: bounds.Max.X, Y: feet, Z: bounds.Max.Z},
	}

	found := false
	var top float32
	for _, box := range c.world.Query(probe) {
		// Walls beside the body are not support.
		if box.Bounds.Max.Y > feet+groundSkin {
			continue
		}
		if !found || box.Bounds.Max.Y > top {
			top = box.Bounds.Max.Y
			found = true
		}
	}
	if found {
		g.Transform.Position.Y += top - feet
	}
	return found
}
