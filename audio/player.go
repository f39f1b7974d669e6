package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/gesture"
	"github.com/lixenwraith/doomdash/parameter"
)

// ErrSpeakerUnavailable wraps any failure to open the output device
var ErrSpeakerUnavailable = errors.New("audio: speaker unavailable")

// Player plays gesture cues through the system speaker
// All methods are safe to call before Initialize or after Close; they do nothing
type Player struct {
	mu          sync.Mutex
	cfg         config.Audio
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      [gesture.CueCount]int
}

func NewPlayer(cfg config.Audio) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// A disabled player stays silent and returns nil
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := sampleRate(p.cfg)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferPeriod)); err != nil {
		return fmt.Errorf("%w: %v", ErrSpeakerUnavailable, err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play layers cue over whatever is already playing
func (p *Player) Play(cue gesture.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cue < gesture.CueCount {
		p.played[cue]++
	}
	if !p.initialized || p.muted {
		return
	}

	s := CueSound(cue, p.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Stop cuts every playing cue
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// SetMuted silences new cues and cuts the current ones when muting
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()

	if muted {
		p.Stop()
	}
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played counts Play requests for cue, including ones dropped while silent
func (p *Player) Played(cue gesture.Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cue >= gesture.CueCount {
		return 0
	}
	return p.played[cue]
}

// Close stops all sounds; beep has no speaker close, clearing the mixer leaves no artifacts
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
