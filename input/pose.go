package input

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PositionSource reports a tracked device position in rig-local space
type PositionSource interface {
	LocalPosition() mgl64.Vec3
}

// HeadSource reports the headset forward direction in world space
type HeadSource interface {
	Forward() mgl64.Vec3
}

// PositionFunc adapts a plain function to PositionSource
type PositionFunc func() mgl64.Vec3

func (f PositionFunc) LocalPosition() mgl64.Vec3 { return f() }

// Point is a PositionSource that can be moved explicitly, used by headless drivers
type Point struct {
	Pos mgl64.Vec3
}

func (p *Point) LocalPosition() mgl64.Vec3 { return p.Pos }

// Nudge offsets the point
func (p *Point) Nudge(d mgl64.Vec3) { p.Pos = p.Pos.Add(d) }

// Heading is a level head turned by yaw radians, zero facing +Z
type Heading struct {
	Yaw float64
}

func (h *Heading) Forward() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(h.Yaw), 0, math.Cos(h.Yaw)}
}

// Turn adds delta radians to the yaw, wrapped to [-pi, pi]
func (h *Heading) Turn(delta float64) {
	h.Yaw = math.Remainder(h.Yaw+delta, 2*math.Pi)
}

// Direction is a HeadSource with a fixed forward vector
type Direction mgl64.Vec3

func (d Direction) Forward() mgl64.Vec3 { return mgl64.Vec3(d) }

// Hand binds the controls and pose of one tracked hand
type Hand struct {
	Grip    Button
	Trigger Button
	Pose    PositionSource
}

// Position reads the pose, falling back to fallback when no pose source is bound
func (h Hand) Position(fallback mgl64.Vec3) mgl64.Vec3 {
	if h.Pose == nil {
		return fallback
	}
	return h.Pose.LocalPosition()
}
