package parameter

import "time"

// Frame driver
const (
	// MoveEpsilonSq gates the combined per-frame displacement; smaller moves are skipped
	MoveEpsilonSq = 1e-4

	// FrameInterval is the sandbox tick
	FrameInterval = 16 * time.Millisecond
	// MaxFrameDelta caps the simulated time of one frame after a stall
	MaxFrameDelta = 100 * time.Millisecond
)

// Gravity, m/s applied per second of frame time
const (
	GravityX = 0.0
	GravityY = -9.81
	GravityZ = 0.0
)

// Input
const (
	// PressThreshold is the analog value at which a grip or trigger reads as pressed
	PressThreshold = 0.5
)

// Capsule body
const (
	CapsuleRadius    = 0.3
	CapsuleHeight    = 1.8
	CapsuleSkinWidth = 0.08
	GroundY          = 0.0
	// ArenaExtent is the half-size of the square arena, zero for unbounded
	ArenaExtent = 0.0
)

// Decal
const (
	// DecalLift raises the slam decal above the body position to avoid z-fighting with the ground
	DecalLift = 0.1
	// DecalPitchDegrees rotates the decal quad to face down onto the ground
	DecalPitchDegrees = 90.0
	DecalLifetime     = 8 * time.Second
	DecalMaxCount     = 32
)

// Pending gesture events kept before the oldest is dropped
const EventQueueSize = 256
