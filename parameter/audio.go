package parameter

import "time"

// Audio engine
const (
	AudioSampleRate   = 48000
	AudioMasterVolume = 0.8
	AudioBufferPeriod = 100 * time.Millisecond
)

// Cue volumes, relative to master
const (
	ChargeCueVolume   = 0.5
	DashCueVolume     = 1.0
	UppercutCueVolume = 0.9
	SlamCueVolume     = 1.0
)

// Charge hum: rising sine under a slow attack
const (
	ChargeCueDuration = 600 * time.Millisecond
	ChargeCueAttack   = 250 * time.Millisecond
	ChargeCueRelease  = 150 * time.Millisecond
	ChargeCueFreq     = 110.0
)

// Dash whoosh: shaped noise
const (
	DashCueDuration = 350 * time.Millisecond
	DashCueAttack   = 20 * time.Millisecond
	DashCueRelease  = 250 * time.Millisecond
)

// Uppercut: upward sweep
const (
	UppercutCueDuration = 300 * time.Millisecond
	UppercutCueAttack   = 10 * time.Millisecond
	UppercutCueRelease  = 120 * time.Millisecond
	UppercutCueFreqLow  = 180.0
	UppercutCueFreqHigh = 720.0
)

// Slam: low thud with crackle
const (
	SlamCueDuration = 450 * time.Millisecond
	SlamCueDecay    = 9.0
	SlamCueFreq     = 55.0
)
