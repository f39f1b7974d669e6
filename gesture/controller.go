package gesture

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/event"
	"github.com/lixenwraith/doomdash/parameter"
	"github.com/lixenwraith/doomdash/vmath"
)

// Sample is one frame of input for a hand
type Sample struct {
	Grip    bool
	Trigger bool
	// Position is the hand position in rig-local space
	Position mgl64.Vec3
	// HeadForward is the headset forward direction; only its horizontal part aims a dash
	HeadForward mgl64.Vec3
}

// Controller classifies one hand's motion into gestures and integrates the active one
// Both hands use the same type; they differ only in the input bound to them
type Controller struct {
	side  Side
	cfg   config.Gesture
	ports Ports

	state    HandState
	velocity mgl64.Vec3
	// budget is the distance the active gesture started with
	budget float64
	frame  uint64
}

func NewController(side Side, cfg config.Gesture, ports Ports) *Controller {
	return &Controller{
		side:  side,
		cfg:   cfg,
		ports: ports,
	}
}

// Seed sets the reference position for the first velocity sample
func (c *Controller) Seed(position mgl64.Vec3) {
	c.state.LastPosition = position
}

func (c *Controller) Side() Side { return c.side }

// State returns a copy of the hand state
func (c *Controller) State() HandState { return c.state }

// Velocity is the hand velocity derived in the last Update
func (c *Controller) Velocity() mgl64.Vec3 { return c.velocity }

// ChargeFraction is charge time over its cap, in [0, 1]
func (c *Controller) ChargeFraction() float64 {
	if c.cfg.Dash.MaxChargeTime <= 0 {
		return 1
	}
	return vmath.Clamp01(c.state.ChargeTime / c.cfg.Dash.MaxChargeTime)
}

// Update runs the classifier for one frame
// Checks run in a fixed order and each start guards the later checks, so at most one gesture starts per frame
func (c *Controller) Update(s Sample, dt float64) {
	c.frame++
	st := &c.state

	v := vmath.Velocity(st.LastPosition, s.Position, dt)
	c.velocity = v

	// A charge started this frame cannot commit in the same frame
	if s.Grip && s.Trigger && !st.Active() {
		c.beginCharge()
	} else if st.Charging() && vmath.HorizontalLen(v) >= c.cfg.Dash.MinPunchSpeed {
		c.beginDash(v, s.HeadForward)
	}

	if !st.Active() && v.Y() >= c.cfg.Uppercut.SpeedThreshold {
		c.beginUppercut(s.HeadForward)
	}

	if !st.Active() && v.Y() <= -c.cfg.Slam.SpeedThreshold {
		c.beginSlam()
	}

	if st.Charging() {
		st.ChargeTime = vmath.Clamp(st.ChargeTime+dt, 0, c.cfg.Dash.MaxChargeTime)
	}

	st.LastPosition = s.Position
}

func (c *Controller) beginCharge() {
	c.state.Kind = KindCharge
	c.state.ChargeTime = 0
	c.play(CueCharge)
	c.emit(event.EventChargeStarted, &event.GesturePayload{Hand: c.side.String(), Gesture: KindCharge.String()})
}

// beginDash commits a charge; a denied gate leaves the hand charging so the dash can retry on a later frame
func (c *Controller) beginDash(handVelocity, headForward mgl64.Vec3) {
	if !c.acquire(KindDash) {
		return
	}

	head := vmath.Normalize(vmath.Horizontal(headForward))
	dir := vmath.Normalize(vmath.LerpVec(vmath.Normalize(handVelocity), head, c.cfg.Dash.HeadBlend))
	dist := vmath.Lerp(c.cfg.Dash.MinDistance, c.cfg.Dash.MaxDistance, c.ChargeFraction())

	c.start(KindDash, dir, dist)

	if c.ports.Audio != nil {
		c.ports.Audio.Stop()
		c.ports.Audio.Play(CueDash)
	}
}

func (c *Controller) beginUppercut(headForward mgl64.Vec3) {
	if !c.acquire(KindUppercut) {
		return
	}

	f := parameter.UppercutForwardFactor
	dir := vmath.Normalize(mgl64.Vec3{headForward.X() * f, 1, headForward.Z() * f})

	c.start(KindUppercut, dir, c.cfg.Uppercut.Distance)
	c.play(CueUppercut)
}

func (c *Controller) beginSlam() {
	if !c.acquire(KindSlam) {
		return
	}

	c.start(KindSlam, vmath.Down, c.cfg.Slam.Distance)
	c.play(CueSlam)
}

func (c *Controller) acquire(k Kind) bool {
	if c.ports.Gate == nil || c.ports.Gate.TryBegin() {
		return true
	}
	c.emit(event.EventGateDenied, &event.GesturePayload{Hand: c.side.String(), Gesture: k.String()})
	return false
}

func (c *Controller) start(k Kind, dir mgl64.Vec3, dist float64) {
	c.state.Kind = k
	c.state.Direction = dir
	c.state.DistanceRemaining = dist
	c.budget = dist
	c.emit(event.EventGestureBegan, &event.GesturePayload{
		Hand:      c.side.String(),
		Gesture:   k.String(),
		Direction: dir,
		Distance:  dist,
	})
}

func (c *Controller) play(cue Cue) {
	if c.ports.Audio != nil {
		c.ports.Audio.Play(cue)
	}
}

func (c *Controller) emit(t event.EventType, payload any) {
	if c.ports.Events != nil {
		c.ports.Events.Push(event.GameEvent{Type: t, Frame: c.frame, Payload: payload})
	}
}
