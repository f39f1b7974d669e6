package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// normalizeEpsilon is the magnitude below which a vector is treated as zero
const normalizeEpsilon = 1e-5

// Up and Down are the world vertical unit vectors
var (
	Up   = mgl64.Vec3{0, 1, 0}
	Down = mgl64.Vec3{0, -1, 0}
)

// Normalize returns the unit vector of v, or the zero vector when v is too short to have a direction
// mgl64.Vec3.Normalize divides by the length and yields NaN for zero input
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l <= normalizeEpsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Horizontal drops the vertical component
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HorizontalLen is the magnitude of the X/Z projection
func HorizontalLen(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// Clamp01 limits t to [0, 1]
func Clamp01(t float64) float64 {
	return Clamp(t, 0, 1)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates a to b with t clamped to [0, 1]
func Lerp(a, b, t float64) float64 {
	t = Clamp01(t)
	return a + (b-a)*t
}

// LerpVec interpolates component-wise with t clamped to [0, 1]
func LerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Mul(t))
}

// Velocity is the discrete derivative of position over dt, zero for a non-positive dt
func Velocity(from, to mgl64.Vec3, dt float64) mgl64.Vec3 {
	if dt <= 0 {
		return mgl64.Vec3{}
	}
	return to.Sub(from).Mul(1 / dt)
}
