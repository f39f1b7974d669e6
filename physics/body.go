package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/vmath"
)

// Body is the movement sink for one actor
// Move applies a displacement with collision; Grounded reflects the most recent Move
type Body interface {
	Move(delta mgl64.Vec3)
	Grounded() bool
	Position() mgl64.Vec3
}

// Capsule is a kinematic capsule over a flat ground plane with optional square walls
// Position is the capsule foot, i.e. the point resting on the ground
type Capsule struct {
	Radius    float64
	Height    float64
	SkinWidth float64
	GroundY   float64
	// Extent is the arena half-size, zero for unbounded
	Extent float64

	pos      mgl64.Vec3
	grounded bool
	moves    int
}

// NewCapsule places a capsule at pos using the physics tuning
func NewCapsule(cfg config.Physics, pos mgl64.Vec3) *Capsule {
	c := &Capsule{
		Radius:    cfg.Capsule.Radius,
		Height:    cfg.Capsule.Height,
		SkinWidth: cfg.Capsule.SkinWidth,
		GroundY:   cfg.GroundY,
		Extent:    cfg.ArenaExtent,
		pos:       pos,
	}
	if pos.Y() <= c.GroundY+c.SkinWidth {
		c.pos[1] = c.GroundY
		c.grounded = true
	}
	return c
}

// Move displaces the capsule, resolving against the ground and the walls
// Grounded is set only when the move pressed into the ground, mirroring a character controller that
// reports contact from the last move's collision flags
func (c *Capsule) Move(delta mgl64.Vec3) {
	c.moves++
	next := c.pos.Add(delta)

	if c.Extent > 0 {
		limit := c.Extent - c.Radius
		if limit < 0 {
			limit = 0
		}
		next[0] = vmath.Clamp(next[0], -limit, limit)
		next[2] = vmath.Clamp(next[2], -limit, limit)
	}

	c.grounded = false
	if delta.Y() <= 0 && next.Y() <= c.GroundY+c.SkinWidth {
		next[1] = c.GroundY
		c.grounded = true
	} else if next.Y() < c.GroundY {
		next[1] = c.GroundY
	}

	c.pos = next
}

func (c *Capsule) Grounded() bool { return c.grounded }

func (c *Capsule) Position() mgl64.Vec3 { return c.pos }

// Moves counts Move calls since creation
func (c *Capsule) Moves() int { return c.moves }

// Top is the world position of the capsule head
func (c *Capsule) Top() mgl64.Vec3 {
	return c.pos.Add(mgl64.Vec3{0, c.Height, 0})
}

// Altitude is the foot height above ground
func (c *Capsule) Altitude() float64 {
	return c.pos.Y() - c.GroundY
}

// Teleport places the capsule without collision, grounding it if placed on the floor
func (c *Capsule) Teleport(pos mgl64.Vec3) {
	c.pos = pos
	c.grounded = pos.Y() <= c.GroundY+c.SkinWidth
	if c.grounded {
		c.pos[1] = c.GroundY
	}
}
