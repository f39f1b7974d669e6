package gesture

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/event"
)

func TestIntegrateIdleIsZero(t *testing.T) {
	r := newRig()
	if move := r.c.Integrate(dt, r.body); move != (mgl64.Vec3{}) {
		t.Errorf("idle Integrate = %v, want zero", move)
	}
}

func TestSlamRunsToCompletion(t *testing.T) {
	r := newRig()
	r.body.pos = mgl64.Vec3{3, 0, 4}
	r.frame(false, false, mgl64.Vec3{0, -6, 0})

	initial := r.c.State().DistanceRemaining
	limit := int(math.Ceil(initial / (r.cfg.Speed * dt)))

	prev := initial
	var total mgl64.Vec3
	frames := 0
	for r.c.State().Moving() {
		frames++
		if frames > limit {
			t.Fatalf("slam still moving after %d frames", limit)
		}
		total = total.Add(r.c.Integrate(dt, r.body))
		remaining := r.c.State().DistanceRemaining
		if remaining > prev {
			t.Fatalf("frame %d: DistanceRemaining rose from %v to %v", frames, prev, remaining)
		}
		prev = remaining
	}

	if frames != limit {
		t.Errorf("completed in %d frames, want %d", frames, limit)
	}
	if !near(total, mgl64.Vec3{0, -initial, 0}, 1e-9) {
		t.Errorf("total displacement = %v, want %v down", total, initial)
	}

	st := r.c.State()
	if st.Active() || st.DistanceRemaining != 0 {
		t.Errorf("after completion Kind = %v, DistanceRemaining = %v", st.Kind, st.DistanceRemaining)
	}
	if r.gate.begins != 1 || r.gate.ends != 1 {
		t.Errorf("gate begins/ends = %d/%d, want 1/1", r.gate.begins, r.gate.ends)
	}

	if len(r.decals.spawns) != 1 {
		t.Fatalf("decals = %d, want 1", len(r.decals.spawns))
	}
	d := r.decals.spawns[0]
	if !near(d.pos, mgl64.Vec3{3, 0.1, 4}, 1e-12) {
		t.Errorf("decal position = %v, want (3, 0.1, 4)", d.pos)
	}
	// +90 degrees about X turns +Z onto -Y
	if got := d.rot.Rotate(mgl64.Vec3{0, 0, 1}); !near(got, mgl64.Vec3{0, -1, 0}, 1e-12) {
		t.Errorf("decal rotation maps +Z to %v, want -Y", got)
	}

	want := []event.EventType{event.EventGestureBegan, event.EventDecalSpawned, event.EventGestureEnded}
	if !reflect.DeepEqual(r.events.types(), want) {
		t.Errorf("events = %v, want %v", r.events.types(), want)
	}
	ended := r.events.events[2].Payload.(*event.GesturePayload)
	if ended.Distance != initial || ended.Gesture != "slam" {
		t.Errorf("ended payload = %+v", ended)
	}
}

func TestStepIsCapped(t *testing.T) {
	r := newRig()
	r.frame(false, false, mgl64.Vec3{0, 6, 0})

	move := r.c.Integrate(dt, r.body)
	if got := move.Len(); math.Abs(got-r.cfg.Speed*dt) > 1e-12 {
		t.Errorf("step length = %v, want speed*dt %v", got, r.cfg.Speed*dt)
	}

	// A huge frame time spends only what remains
	remaining := r.c.State().DistanceRemaining
	move = r.c.Integrate(10, r.body)
	if got := move.Len(); math.Abs(got-remaining) > 1e-12 {
		t.Errorf("final step = %v, want remaining %v", got, remaining)
	}
	if r.c.State().Active() {
		t.Error("gesture still active after spending its budget")
	}
}

func TestSlamAirborneLeavesNoDecal(t *testing.T) {
	r := newRig()
	r.body.grounded = false
	r.frame(false, false, mgl64.Vec3{0, -6, 0})

	r.run(100)

	if len(r.decals.spawns) != 0 {
		t.Errorf("airborne slam spawned %d decals", len(r.decals.spawns))
	}
	if r.gate.ends != 1 {
		t.Errorf("gate ends = %d, want 1", r.gate.ends)
	}
}

func TestOnlySlamLeavesDecal(t *testing.T) {
	r := newRig()
	r.frame(false, false, mgl64.Vec3{0, 6, 0})
	r.run(100)

	r.hold(4)
	r.frame(false, false, mgl64.Vec3{6, 0, 0})
	r.run(100)

	if len(r.decals.spawns) != 0 {
		t.Errorf("uppercut and dash spawned %d decals", len(r.decals.spawns))
	}
}

func TestNewGestureRightAfterCompletion(t *testing.T) {
	r := newRig()
	r.frame(false, false, mgl64.Vec3{0, -6, 0})
	r.run(100)

	if r.c.State().Active() {
		t.Fatal("slam did not complete")
	}

	r.frame(false, false, mgl64.Vec3{0, 6, 0})
	if !r.c.State().Uppercutting() {
		t.Errorf("Kind = %v, want uppercut on the next frame", r.c.State().Kind)
	}
	if r.gate.begins != 2 || r.gate.ends != 1 {
		t.Errorf("gate begins/ends = %d/%d, want 2/1", r.gate.begins, r.gate.ends)
	}
}

func TestZeroDeltaTimeIntegrateHolds(t *testing.T) {
	r := newRig()
	r.frame(false, false, mgl64.Vec3{0, 6, 0})
	before := r.c.State().DistanceRemaining

	if move := r.c.Integrate(0, r.body); move != (mgl64.Vec3{}) {
		t.Errorf("zero dt Integrate = %v", move)
	}
	if r.c.State().DistanceRemaining != before {
		t.Error("zero dt changed the budget")
	}
}

// TestRandomInputInvariants drives arbitrary input and checks the gate is balanced and budgets only shrink
func TestRandomInputInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := newRig()

	prevKind := KindNone
	prevRemaining := 0.0

	for i := 0; i < 5000; i++ {
		r.gate.deny = rng.Intn(6) == 0
		v := mgl64.Vec3{rng.NormFloat64() * 4, rng.NormFloat64() * 4, rng.NormFloat64() * 4}
		r.frame(rng.Intn(3) > 0, rng.Intn(3) > 0, v)

		st := r.c.State()
		if st.Kind == prevKind && st.Moving() && st.DistanceRemaining > prevRemaining {
			t.Fatalf("frame %d: budget rose from %v to %v", i, prevRemaining, st.DistanceRemaining)
		}

		r.body.grounded = rng.Intn(2) == 0
		r.c.Integrate(dt, r.body)

		st = r.c.State()
		outstanding := r.gate.begins - r.gate.ends
		if st.Moving() && outstanding != 1 {
			t.Fatalf("frame %d: moving with %d outstanding grants", i, outstanding)
		}
		if !st.Moving() && outstanding != 0 {
			t.Fatalf("frame %d: idle with %d outstanding grants", i, outstanding)
		}
		if st.Moving() && math.Abs(st.Direction.Len()-1) > 1e-9 && st.Direction.Len() != 0 {
			t.Fatalf("frame %d: direction %v not unit", i, st.Direction)
		}
		if st.ChargeTime < 0 || st.ChargeTime > r.cfg.Dash.MaxChargeTime {
			t.Fatalf("frame %d: ChargeTime %v out of range", i, st.ChargeTime)
		}

		prevKind = st.Kind
		prevRemaining = st.DistanceRemaining
	}

	if r.gate.begins == 0 {
		t.Error("random input never started a gesture")
	}
}
