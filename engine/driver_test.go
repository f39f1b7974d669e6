package engine

import (
	"bytes"
	"errors"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/gesture"
	"github.com/lixenwraith/doomdash/input"
	"github.com/lixenwraith/doomdash/locomotion"
	"github.com/lixenwraith/doomdash/parameter"
	"github.com/lixenwraith/doomdash/physics"
)

const frameDT = 1.0 / 64

var gravity = mgl64.Vec3{parameter.GravityX, parameter.GravityY, parameter.GravityZ}

// stick is a scripted controller: analog grip and trigger plus a movable pose
type stick struct {
	grip, trigger float64
	pose          input.Point
}

func (s *stick) hand() input.Hand {
	return input.Hand{
		Grip:    input.NewButton(input.ActionFunc(func() float64 { return s.grip })),
		Trigger: input.NewButton(input.ActionFunc(func() float64 { return s.trigger })),
		Pose:    &s.pose,
	}
}

func (s *stick) hold(on bool) {
	v := 0.0
	if on {
		v = 1
	}
	s.grip, s.trigger = v, v
}

type countingDecals struct {
	n    int
	last mgl64.Vec3
}

func (c *countingDecals) Spawn(pos mgl64.Vec3, _ mgl64.Quat) {
	c.n++
	c.last = pos
}

type bench struct {
	d           *Driver
	left, right *stick
	body        *physics.Capsule
	gate        *locomotion.Mediator
	decals      *countingDecals
}

func newBench(t *testing.T, start mgl64.Vec3, tune func(*config.Gesture)) *bench {
	t.Helper()
	quietLog(t)

	cfg := config.Default()
	if tune != nil {
		tune(&cfg.Gesture)
	}

	b := &bench{
		left:   &stick{pose: input.Point{Pos: mgl64.Vec3{-0.25, 1, 0.25}}},
		right:  &stick{pose: input.Point{Pos: mgl64.Vec3{0.25, 1, 0.25}}},
		body:   physics.NewCapsule(cfg.Physics, start),
		gate:   locomotion.NewMediator(),
		decals: &countingDecals{},
	}

	d, err := NewDriver(Setup{
		Gesture: cfg.Gesture,
		Left:    b.left.hand(),
		Right:   b.right.hand(),
		Head:    input.Direction{0, 0, 1},
		Body:    b.body,
		Gate:    b.gate.Provider("doomdash"),
		Decals:  b.decals,
	})
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	d.Start()
	b.d = d
	return b
}

func (b *bench) step() mgl64.Vec3 { return b.d.Update(frameDT, gravity) }

// runUntilIdle steps until neither hand is active, failing after limit frames
func (b *bench) runUntilIdle(t *testing.T, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		b.step()
		if !b.d.Hand(gesture.Left).State().Active() && !b.d.Hand(gesture.Right).State().Active() {
			return i
		}
	}
	t.Fatalf("hands still active after %d frames", limit)
	return 0
}

func quietLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() <= 1e-9
}

func TestNewDriverRequiresBody(t *testing.T) {
	_, err := NewDriver(Setup{Gesture: config.Default().Gesture})
	if !errors.Is(err, ErrNoBody) {
		t.Fatalf("err = %v, want ErrNoBody", err)
	}
}

func TestStartSeedsHandPositions(t *testing.T) {
	b := newBench(t, mgl64.Vec3{}, nil)

	// Hands rest well away from the origin; without seeding the first frame would read as an uppercut
	if got := b.step(); got != (mgl64.Vec3{}) {
		t.Fatalf("first frame moved %v", got)
	}
	for _, side := range []gesture.Side{gesture.Left, gesture.Right} {
		if b.d.Hand(side).State().Active() {
			t.Errorf("%s hand active after idle first frame", side)
		}
	}
	if b.body.Moves() != 0 {
		t.Errorf("grounded idle body moved %d times", b.body.Moves())
	}
}

func TestDashWhileOtherHandCharges(t *testing.T) {
	b := newBench(t, mgl64.Vec3{}, nil)

	b.left.hold(true)
	b.right.hold(true)
	b.step()

	if !b.d.Hand(gesture.Left).State().Charging() || !b.d.Hand(gesture.Right).State().Charging() {
		t.Fatal("both hands should be charging")
	}

	b.left.pose.Nudge(mgl64.Vec3{0, 0, 0.25})
	got := b.step()

	want := mgl64.Vec3{0, 0, parameter.GestureSpeed * frameDT}
	if !vecNear(got, want) {
		t.Errorf("applied %v, want %v", got, want)
	}
	if !b.d.Hand(gesture.Left).State().Dashing() {
		t.Error("left hand should be dashing")
	}
	if !b.d.Hand(gesture.Right).State().Charging() {
		t.Error("right hand should still be charging")
	}
}

func TestOneBodyMovePerFrame(t *testing.T) {
	b := newBench(t, mgl64.Vec3{}, nil)

	b.left.pose.Nudge(mgl64.Vec3{0, 0.25, 0})
	b.right.pose.Nudge(mgl64.Vec3{0, 0.25, 0})

	before := b.body.Moves()
	got := b.step()

	step := parameter.GestureSpeed * frameDT
	dir := mgl64.Vec3{0, 1, parameter.UppercutForwardFactor}.Normalize()
	if want := dir.Mul(2 * step); !vecNear(got, want) {
		t.Errorf("combined displacement %v, want %v", got, want)
	}
	if n := b.gate.Grants(); n != 2 {
		t.Errorf("grants = %d, want 2", n)
	}
	if moves := b.body.Moves() - before; moves != 2 {
		t.Errorf("first frame made %d moves, want gesture plus gravity", moves)
	}

	for i := 0; i < 80; i++ {
		before = b.body.Moves()
		b.step()
		if moves := b.body.Moves() - before; moves > 2 {
			t.Fatalf("frame %d made %d moves", i, moves)
		}
	}

	if b.gate.State() != locomotion.StateIdle || b.gate.Grants() != 0 {
		t.Errorf("gate %v with %d grants after both uppercuts ended", b.gate.State(), b.gate.Grants())
	}
}

func TestGravityReturnsBodyToGround(t *testing.T) {
	b := newBench(t, mgl64.Vec3{}, nil)

	b.right.pose.Nudge(mgl64.Vec3{0, 0.25, 0})
	b.runUntilIdle(t, 64)

	if b.body.Grounded() || b.body.Altitude() < 10 {
		t.Fatalf("uppercut ended grounded=%v altitude=%v", b.body.Grounded(), b.body.Altitude())
	}

	for i := 0; i < 1000 && !b.body.Grounded(); i++ {
		b.step()
	}
	if !b.body.Grounded() || b.body.Altitude() != 0 {
		t.Errorf("body did not land: grounded=%v altitude=%v", b.body.Grounded(), b.body.Altitude())
	}
}

func TestSlamDecal(t *testing.T) {
	tests := []struct {
		name      string
		startY    float64
		wantDecal bool
	}{
		{"lands before slam ends", 10, true},
		{"still airborne when slam ends", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBench(t, mgl64.Vec3{0, tt.startY, 0}, nil)

			b.right.pose.Nudge(mgl64.Vec3{0, -0.5, 0})
			b.step()
			if !b.d.Hand(gesture.Right).State().Slamming() {
				t.Fatal("right hand should be slamming")
			}
			b.runUntilIdle(t, 64)

			if got := b.decals.n == 1; got != tt.wantDecal {
				t.Fatalf("decals = %d, want decal %v", b.decals.n, tt.wantDecal)
			}
			if tt.wantDecal {
				want := mgl64.Vec3{0, parameter.DecalLift, 0}
				if !vecNear(b.decals.last, want) {
					t.Errorf("decal at %v, want %v", b.decals.last, want)
				}
			}
		})
	}
}

func TestLockedGateBlocksGestures(t *testing.T) {
	b := newBench(t, mgl64.Vec3{}, nil)

	if !b.gate.Lock("teleport") {
		t.Fatal("lock failed on idle gate")
	}

	b.left.pose.Nudge(mgl64.Vec3{0, 0.25, 0})
	if got := b.step(); got != (mgl64.Vec3{}) {
		t.Errorf("locked gate moved body by %v", got)
	}
	if b.d.Hand(gesture.Left).State().Active() {
		t.Error("hand should stay idle when the gate denies")
	}
	if _, denied := b.gate.Stats(); denied != 1 {
		t.Errorf("denied = %d, want 1", denied)
	}
}

func TestSmallDisplacementSkipped(t *testing.T) {
	b := newBench(t, mgl64.Vec3{}, func(g *config.Gesture) { g.Speed = 0.01 })

	b.right.pose.Nudge(mgl64.Vec3{0, 0.25, 0})
	got := b.step()

	if got != (mgl64.Vec3{}) {
		t.Errorf("applied %v below the move epsilon", got)
	}
	if b.body.Moves() != 0 {
		t.Errorf("body moved %d times", b.body.Moves())
	}
	if !b.d.Hand(gesture.Right).State().Uppercutting() {
		t.Error("gesture should still be running")
	}
}

func TestMissingCollaboratorsDegrade(t *testing.T) {
	buf := quietLog(t)

	cfg := config.Default()
	body := physics.NewCapsule(cfg.Physics, mgl64.Vec3{})
	pose := &input.Point{Pos: mgl64.Vec3{0, 1, 0}}

	d, err := NewDriver(Setup{
		Gesture: cfg.Gesture,
		Right:   input.Hand{Pose: pose},
		Body:    body,
	})
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}

	d.Update(frameDT, gravity)
	pose.Nudge(mgl64.Vec3{0, 0.25, 0})
	got := d.Update(frameDT, gravity)

	// No head: uppercut goes straight up
	if want := (mgl64.Vec3{0, parameter.GestureSpeed * frameDT, 0}); !vecNear(got, want) {
		t.Errorf("applied %v, want %v", got, want)
	}

	out := buf.String()
	for _, want := range []string{"No head source", "No audio sink", "No left hand pose", "Unbound right hand"} {
		if n := strings.Count(out, want); n != 1 {
			t.Errorf("log has %d lines with %q, want 1:\n%s", n, want, out)
		}
	}
}

func TestDriverFrameCounter(t *testing.T) {
	b := newBench(t, mgl64.Vec3{}, nil)
	for i := 0; i < 5; i++ {
		b.step()
	}
	if b.d.Frame() != 5 {
		t.Errorf("Frame = %d, want 5", b.d.Frame())
	}
	if math.IsNaN(b.body.Position().X()) {
		t.Error("body position is NaN")
	}
}
