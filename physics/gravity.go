package physics

import "github.com/go-gl/mathgl/mgl64"

// ApplyGravity moves an airborne body by gravity*dt and reports whether it did
// The fall rate is constant, no velocity accumulates; grounded bodies and dt <= 0 are left alone
func ApplyGravity(b Body, gravity mgl64.Vec3, dt float64) bool {
	if b.Grounded() || dt <= 0 {
		return false
	}
	b.Move(gravity.Mul(dt))
	return true
}
