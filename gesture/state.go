package gesture

import "github.com/go-gl/mathgl/mgl64"

// Side identifies a hand
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Kind is the active gesture of one hand
// A single field replaces independent charging/dashing/uppercutting/slamming flags so at most one can hold
type Kind uint8

const (
	KindNone Kind = iota
	KindCharge
	KindDash
	KindUppercut
	KindSlam
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "idle"
	case KindCharge:
		return "charge"
	case KindDash:
		return "dash"
	case KindUppercut:
		return "uppercut"
	case KindSlam:
		return "slam"
	default:
		return "unknown"
	}
}

// Moving reports whether the kind consumes a distance budget
func (k Kind) Moving() bool {
	return k == KindDash || k == KindUppercut || k == KindSlam
}

// HandState is the per-hand gesture state, owned by its Controller
type HandState struct {
	Kind Kind
	// ChargeTime accumulates while charging, clamped to [0, max charge time]
	// It keeps its value after a dash commits until the next charge starts
	ChargeTime float64
	// LastPosition is the previous frame's hand position, only used for velocity
	LastPosition mgl64.Vec3
	// Direction is the unit travel direction, fixed for the active gesture
	Direction mgl64.Vec3
	// DistanceRemaining is the unspent budget of the active gesture, meters
	DistanceRemaining float64
}

func (h HandState) Charging() bool     { return h.Kind == KindCharge }
func (h HandState) Dashing() bool      { return h.Kind == KindDash }
func (h HandState) Uppercutting() bool { return h.Kind == KindUppercut }
func (h HandState) Slamming() bool     { return h.Kind == KindSlam }

// Active reports any gesture, charging included
func (h HandState) Active() bool { return h.Kind != KindNone }

// Moving reports a gesture that produces displacement
func (h HandState) Moving() bool { return h.Kind.Moving() }
