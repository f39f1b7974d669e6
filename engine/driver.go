package engine

import (
	"errors"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/gesture"
	"github.com/lixenwraith/doomdash/input"
	"github.com/lixenwraith/doomdash/parameter"
	"github.com/lixenwraith/doomdash/physics"
)

// ErrNoBody is returned when a driver is set up without a body to move
var ErrNoBody = errors.New("engine: no body to move")

// Setup wires a driver to its collaborators
// Only Body is required; the optional sinks degrade as described on gesture.Ports
type Setup struct {
	Gesture config.Gesture

	Left  input.Hand
	Right input.Hand
	Head  input.HeadSource

	Body   physics.Body
	Gate   gesture.Gate
	Audio  gesture.AudioSink
	Decals gesture.DecalSink
	Events gesture.Emitter
}

type hand struct {
	ctrl *gesture.Controller
	in   input.Hand
}

// Driver runs both hand controllers once per frame and moves the shared body
// Not safe for concurrent use, call Update from the simulation loop only
type Driver struct {
	hands [2]hand
	head  input.HeadSource
	body  physics.Body
	audio gesture.AudioSink

	frame   uint64
	started bool
}

func NewDriver(s Setup) (*Driver, error) {
	if s.Body == nil {
		return nil, ErrNoBody
	}

	ports := gesture.Ports{
		Gate:   s.Gate,
		Audio:  s.Audio,
		Decals: s.Decals,
		Events: s.Events,
	}

	d := &Driver{
		head:  s.Head,
		body:  s.Body,
		audio: s.Audio,
	}
	d.hands[gesture.Left] = hand{ctrl: gesture.NewController(gesture.Left, s.Gesture, ports), in: s.Left}
	d.hands[gesture.Right] = hand{ctrl: gesture.NewController(gesture.Right, s.Gesture, ports), in: s.Right}
	return d, nil
}

// Start reports missing references and seeds each hand's previous position from its pose
// Update calls it on the first frame if the caller did not
func (d *Driver) Start() {
	if d.started {
		return
	}
	d.started = true

	if d.head == nil {
		log.Printf("No head source assigned, dashes aim by hand motion only")
	}
	if d.audio == nil {
		log.Printf("No audio sink assigned, cues disabled")
	}

	for i := range d.hands {
		h := &d.hands[i]
		side := h.ctrl.Side()
		if h.in.Pose == nil {
			log.Printf("No %s hand pose assigned, hand will not move", side)
		}
		if !h.in.Grip.Bound() || !h.in.Trigger.Bound() {
			log.Printf("Unbound %s hand grip or trigger reads as released", side)
		}
		h.ctrl.Seed(h.in.Position(mgl64.Vec3{}))
	}
}

// Update advances one frame: classify both hands, integrate both, move the body once, then apply gravity
// Returns the combined gesture displacement that was applied, zero when below the move epsilon
func (d *Driver) Update(dt float64, gravity mgl64.Vec3) mgl64.Vec3 {
	if !d.started {
		d.Start()
	}
	d.frame++

	var head mgl64.Vec3
	if d.head != nil {
		head = d.head.Forward()
	}

	for i := range d.hands {
		h := &d.hands[i]
		last := h.ctrl.State().LastPosition
		h.ctrl.Update(gesture.Sample{
			Grip:        h.in.Grip.Pressed(),
			Trigger:     h.in.Trigger.Pressed(),
			Position:    h.in.Position(last),
			HeadForward: head,
		}, dt)
	}

	var total mgl64.Vec3
	for i := range d.hands {
		total = total.Add(d.hands[i].ctrl.Integrate(dt, d.body))
	}

	var applied mgl64.Vec3
	if total.Dot(total) > parameter.MoveEpsilonSq {
		d.body.Move(total)
		applied = total
	}

	physics.ApplyGravity(d.body, gravity, dt)
	return applied
}

// Hand exposes one controller for inspection
func (d *Driver) Hand(side gesture.Side) *gesture.Controller {
	return d.hands[side].ctrl
}

// Frame is the number of completed Update calls
func (d *Driver) Frame() uint64 { return d.frame }

func (d *Driver) Body() physics.Body { return d.body }
