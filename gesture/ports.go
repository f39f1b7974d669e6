package gesture

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/event"
)

// Cue names a one-shot audio cue
type Cue uint8

const (
	CueCharge Cue = iota
	CueDash
	CueUppercut
	CueSlam
	CueCount
)

func (c Cue) String() string {
	switch c {
	case CueCharge:
		return "charge"
	case CueDash:
		return "dash"
	case CueUppercut:
		return "uppercut"
	case CueSlam:
		return "slam"
	default:
		return "unknown"
	}
}

// Gate arbitrates whether a gesture may take over movement
// A granted gesture calls End exactly once, when its distance budget is exhausted
type Gate interface {
	TryBegin() bool
	End()
}

// AudioSink plays fire-and-forget cues; Stop cuts whatever is playing
type AudioSink interface {
	Play(c Cue)
	Stop()
}

// DecalSink spawns a visual marker, fire-and-forget
type DecalSink interface {
	Spawn(position mgl64.Vec3, rotation mgl64.Quat)
}

// Body is the read side of the actor body used at gesture completion
type Body interface {
	Grounded() bool
	Position() mgl64.Vec3
}

// Emitter receives gesture lifecycle events, satisfied by *event.EventQueue
type Emitter interface {
	Push(ev event.GameEvent)
}

// Ports bundles the outbound collaborators of a controller
// Nil members are skipped: no gate grants every request, no audio or decal sink drops the effect
type Ports struct {
	Gate   Gate
	Audio  AudioSink
	Decals DecalSink
	Events Emitter
}
