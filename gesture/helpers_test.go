package gesture

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/event"
)

// dt is a power-of-two frame time so accumulated charge times are exact
const dt = 0.125

type fakeGate struct {
	deny   bool
	begins int
	ends   int
	denied int
}

func (g *fakeGate) TryBegin() bool {
	if g.deny {
		g.denied++
		return false
	}
	g.begins++
	return true
}

func (g *fakeGate) End() { g.ends++ }

type recordingAudio struct {
	calls []string
}

func (a *recordingAudio) Play(c Cue) { a.calls = append(a.calls, "play:"+c.String()) }
func (a *recordingAudio) Stop()      { a.calls = append(a.calls, "stop") }

type spawn struct {
	pos mgl64.Vec3
	rot mgl64.Quat
}

type recordingDecals struct {
	spawns []spawn
}

func (d *recordingDecals) Spawn(pos mgl64.Vec3, rot mgl64.Quat) {
	d.spawns = append(d.spawns, spawn{pos, rot})
}

type fakeBody struct {
	grounded bool
	pos      mgl64.Vec3
}

func (b *fakeBody) Grounded() bool       { return b.grounded }
func (b *fakeBody) Position() mgl64.Vec3 { return b.pos }

type recordingEvents struct {
	events []event.GameEvent
}

func (r *recordingEvents) Push(ev event.GameEvent) { r.events = append(r.events, ev) }

func (r *recordingEvents) types() []event.EventType {
	out := make([]event.EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

// rig is a controller wired to recording fakes plus a hand it can move
type rig struct {
	c      *Controller
	gate   *fakeGate
	audio  *recordingAudio
	decals *recordingDecals
	events *recordingEvents
	body   *fakeBody
	cfg    config.Gesture

	hand mgl64.Vec3
	head mgl64.Vec3
}

// near compares by absolute distance, ApproxEqualThreshold turns relative-to-zero into eps squared
func near(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() <= eps
}

func newRig() *rig {
	return newRigWith(config.Default().Gesture)
}

func newRigWith(cfg config.Gesture) *rig {
	r := &rig{
		gate:   &fakeGate{},
		audio:  &recordingAudio{},
		decals: &recordingDecals{},
		events: &recordingEvents{},
		body:   &fakeBody{grounded: true},
		cfg:    cfg,
		hand:   mgl64.Vec3{0.25, 1.25, 0.5},
		head:   mgl64.Vec3{0, 0, 1},
	}
	r.c = NewController(Left, cfg, Ports{Gate: r.gate, Audio: r.audio, Decals: r.decals, Events: r.events})
	r.c.Seed(r.hand)
	return r
}

// hold runs frames with grip and trigger held and the hand still
func (r *rig) hold(frames int) {
	for i := 0; i < frames; i++ {
		r.frame(true, true, mgl64.Vec3{})
	}
}

// idle runs frames with nothing pressed and the hand still
func (r *rig) idle(frames int) {
	for i := 0; i < frames; i++ {
		r.frame(false, false, mgl64.Vec3{})
	}
}

// frame moves the hand with velocity v for one frame
func (r *rig) frame(grip, trigger bool, v mgl64.Vec3) {
	r.hand = r.hand.Add(v.Mul(dt))
	r.c.Update(Sample{Grip: grip, Trigger: trigger, Position: r.hand, HeadForward: r.head}, dt)
}

// run integrates until the gesture ends or limit frames pass, returning frames used and total displacement
func (r *rig) run(limit int) (int, mgl64.Vec3) {
	var total mgl64.Vec3
	for i := 1; i <= limit; i++ {
		total = total.Add(r.c.Integrate(dt, r.body))
		if !r.c.State().Moving() {
			return i, total
		}
	}
	return limit, total
}
