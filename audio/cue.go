package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/gesture"
	"github.com/lixenwraith/doomdash/parameter"
)

func sampleRate(cfg config.Audio) beep.SampleRate {
	if cfg.SampleRate <= 0 {
		return beep.SampleRate(parameter.AudioSampleRate)
	}
	return beep.SampleRate(cfg.SampleRate)
}

// ChargeSound is a low hum with a slow swell, layered sine and fifth
func ChargeSound(cfg config.Audio) beep.Streamer {
	rate := sampleRate(cfg)
	n := rate.N(parameter.ChargeCueDuration)

	var layers []beep.Streamer
	for _, h := range []struct{ freq, gain float64 }{
		{parameter.ChargeCueFreq, 0.7},
		{parameter.ChargeCueFreq * 1.5, 0.3},
	} {
		tone, err := generators.SineTone(rate, h.freq)
		if err != nil {
			// Tone above Nyquist for this rate
			continue
		}
		layers = append(layers, newVolume(beep.Take(n, tone), h.gain))
	}

	shaped := NewEnvelope(beep.Mix(layers...), parameter.ChargeCueDuration, parameter.ChargeCueAttack, parameter.ChargeCueRelease, rate)
	return newVolume(shaped, cfg.Volumes.Charge*cfg.MasterVolume)
}

// DashSound is a short burst of shaped noise
func DashSound(cfg config.Audio) beep.Streamer {
	rate := sampleRate(cfg)

	noise := NewOscillator(0, parameter.DashCueDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.DashCueDuration, parameter.DashCueAttack, parameter.DashCueRelease, rate)

	return newVolume(shaped, cfg.Volumes.Dash*cfg.MasterVolume)
}

// UppercutSound is a rising saw sweep
func UppercutSound(cfg config.Audio) beep.Streamer {
	rate := sampleRate(cfg)

	sweep := NewSweep(parameter.UppercutCueFreqLow, parameter.UppercutCueFreqHigh, parameter.UppercutCueDuration, WaveSaw, rate)
	shaped := NewEnvelope(sweep, parameter.UppercutCueDuration, parameter.UppercutCueAttack, parameter.UppercutCueRelease, rate)

	return newVolume(shaped, cfg.Volumes.Uppercut*cfg.MasterVolume)
}

// SlamSound is a decaying low thud
func SlamSound(cfg config.Audio) beep.Streamer {
	rate := sampleRate(cfg)

	body := newThud(parameter.SlamCueFreq, parameter.SlamCueDecay, parameter.SlamCueDuration, rate)
	return newVolume(body, cfg.Volumes.Slam*cfg.MasterVolume)
}

// CueSound returns a fresh streamer for cue, nil for unknown cues
func CueSound(cue gesture.Cue, cfg config.Audio) beep.Streamer {
	switch cue {
	case gesture.CueCharge:
		return ChargeSound(cfg)
	case gesture.CueDash:
		return DashSound(cfg)
	case gesture.CueUppercut:
		return UppercutSound(cfg)
	case gesture.CueSlam:
		return SlamSound(cfg)
	default:
		return nil
	}
}
