package event

import "github.com/go-gl/mathgl/mgl64"

// EventType represents the type of gesture event
type EventType int

const (
	// EventChargeStarted marks a hand entering the charge phase
	// Trigger: grip and trigger held with no gesture active
	// Payload: *GesturePayload
	EventChargeStarted EventType = iota

	// EventGestureBegan marks a committed dash, uppercut or slam
	// Trigger: classifier after the locomotion gate granted movement
	// Payload: *GesturePayload
	EventGestureBegan

	// EventGateDenied marks a start attempt dropped by the locomotion gate
	// Trigger: classifier; hand state is unchanged
	// Payload: *GesturePayload (Direction and Distance unset)
	EventGateDenied

	// EventGestureEnded marks an exhausted distance budget
	// Trigger: motion integrator; the gate has been released
	// Payload: *GesturePayload (Distance is the budget the gesture started with)
	EventGestureEnded

	// EventDecalSpawned marks a ground slam landing mark
	// Trigger: motion integrator on slam completion while grounded
	// Payload: *DecalPayload
	EventDecalSpawned
)

func (t EventType) String() string {
	switch t {
	case EventChargeStarted:
		return "charge"
	case EventGestureBegan:
		return "began"
	case EventGateDenied:
		return "denied"
	case EventGestureEnded:
		return "ended"
	case EventDecalSpawned:
		return "decal"
	default:
		return "unknown"
	}
}

// GesturePayload describes one hand's gesture transition
type GesturePayload struct {
	Hand      string
	Gesture   string
	Direction mgl64.Vec3
	Distance  float64
}

// DecalPayload describes a spawned decal
type DecalPayload struct {
	Hand     string
	Position mgl64.Vec3
}

// GameEvent is one queued event
type GameEvent struct {
	Type    EventType
	Frame   uint64
	Payload any
}
