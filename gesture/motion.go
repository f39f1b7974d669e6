package gesture

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/event"
	"github.com/lixenwraith/doomdash/parameter"
)

// decalRotation faces the slam decal down onto the ground
var decalRotation = mgl64.QuatRotate(mgl64.DegToRad(parameter.DecalPitchDegrees), mgl64.Vec3{1, 0, 0})

// Integrate advances the active gesture by one frame and returns the displacement it produces
// The displacement is not applied here; the frame driver combines both hands into one move
// Charging and idle hands return the zero vector
func (c *Controller) Integrate(dt float64, body Body) mgl64.Vec3 {
	st := &c.state
	if !st.Moving() {
		return mgl64.Vec3{}
	}

	step := math.Max(0, math.Min(c.cfg.Speed*dt, st.DistanceRemaining))
	move := st.Direction.Mul(step)
	st.DistanceRemaining -= step

	if st.DistanceRemaining <= parameter.GestureEndEpsilon {
		c.finish(body)
	}

	return move
}

// finish releases the gate, leaves the slam mark and returns the hand to idle
func (c *Controller) finish(body Body) {
	k := c.state.Kind

	if c.ports.Gate != nil {
		c.ports.Gate.End()
	}

	if k == KindSlam && body != nil && body.Grounded() && c.ports.Decals != nil {
		pos := body.Position().Add(mgl64.Vec3{0, parameter.DecalLift, 0})
		c.ports.Decals.Spawn(pos, decalRotation)
		c.emit(event.EventDecalSpawned, &event.DecalPayload{Hand: c.side.String(), Position: pos})
	}

	c.state.Kind = KindNone
	c.state.DistanceRemaining = 0

	c.emit(event.EventGestureEnded, &event.GesturePayload{
		Hand:      c.side.String(),
		Gesture:   k.String(),
		Direction: c.state.Direction,
		Distance:  c.budget,
	})
	c.budget = 0
}
