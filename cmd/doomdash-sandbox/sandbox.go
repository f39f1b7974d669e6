package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/audio"
	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/decal"
	"github.com/lixenwraith/doomdash/engine"
	"github.com/lixenwraith/doomdash/event"
	"github.com/lixenwraith/doomdash/gesture"
	"github.com/lixenwraith/doomdash/input"
	"github.com/lixenwraith/doomdash/locomotion"
	"github.com/lixenwraith/doomdash/parameter"
	"github.com/lixenwraith/doomdash/physics"
)

// Hand speeds produced by one key press, held for a single frame
const (
	punchSpeed = 12.0
	raiseSpeed = 10.0
	dropSpeed  = 30.0

	turnStep      = math.Pi / 12
	eventLogLines = 6
	lockOwner     = "teleport"
	providerName  = "doomdash"
)

// handRig is a keyboard-driven hand: a toggled grip+trigger and a pose nudged by impulses
type handRig struct {
	held    bool
	pose    input.Point
	impulse mgl64.Vec3
}

func (h *handRig) value() float64 {
	if h.held {
		return 1
	}
	return 0
}

func (h *handRig) binding(threshold float64) input.Hand {
	a := input.ActionFunc(h.value)
	return input.Hand{
		Grip:    input.Button{Action: a, Threshold: threshold},
		Trigger: input.Button{Action: a, Threshold: threshold},
		Pose:    &h.pose,
	}
}

type sandbox struct {
	screen  tcell.Screen
	cfg     *config.Config
	gravity mgl64.Vec3

	driver *engine.Driver
	body   *physics.Capsule
	gate   *locomotion.Mediator
	decals *decal.Store
	events *event.EventQueue
	player *audio.Player
	clock  *engine.FrameClock

	head  input.Heading
	hands [2]*handRig

	eventLog []string
}

// newSandbox wires the full stack; player may be nil to run without sound
func newSandbox(screen tcell.Screen, cfg *config.Config, src engine.TimeSource, player *audio.Player) (*sandbox, error) {
	s := &sandbox{
		screen:  screen,
		cfg:     cfg,
		gravity: cfg.Physics.Gravity.Vec(),
		body:    physics.NewCapsule(cfg.Physics, mgl64.Vec3{}),
		gate:    locomotion.NewMediator(),
		decals:  decal.NewStore(parameter.DecalLifetime, parameter.DecalMaxCount),
		events:  event.NewEventQueue(),
		player:  player,
		clock:   engine.NewFrameClock(src, parameter.MaxFrameDelta),
	}
	s.hands[gesture.Left] = &handRig{pose: input.Point{Pos: mgl64.Vec3{-0.25, 1.2, 0.3}}}
	s.hands[gesture.Right] = &handRig{pose: input.Point{Pos: mgl64.Vec3{0.25, 1.2, 0.3}}}

	var sink gesture.AudioSink
	if player != nil {
		sink = player
	}

	driver, err := engine.NewDriver(engine.Setup{
		Gesture: cfg.Gesture,
		Left:    s.hands[gesture.Left].binding(cfg.Input.PressThreshold),
		Right:   s.hands[gesture.Right].binding(cfg.Input.PressThreshold),
		Head:    &s.head,
		Body:    s.body,
		Gate:    s.gate.Provider(providerName),
		Audio:   sink,
		Decals:  s.decals,
		Events:  s.events,
	})
	if err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}
	driver.Start()
	s.driver = driver
	return s, nil
}

// handleEvent applies one terminal event, returning false to quit
func (s *sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *sandbox) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.head.Turn(-turnStep)
		return true
	case tcell.KeyRight:
		s.head.Turn(turnStep)
		return true
	case tcell.KeyRune:
		s.handleRune(ev.Rune())
	}
	return true
}

func (s *sandbox) handleRune(r rune) {
	left, right := s.hands[gesture.Left], s.hands[gesture.Right]
	switch r {
	case 'a':
		left.held = !left.held
	case 'j':
		right.held = !right.held
	case 'd':
		s.punch(left)
	case 'l':
		s.punch(right)
	case 'w':
		left.impulse = mgl64.Vec3{0, raiseSpeed, 0}
	case 'i':
		right.impulse = mgl64.Vec3{0, raiseSpeed, 0}
	case 's':
		left.impulse = mgl64.Vec3{0, -dropSpeed, 0}
	case 'k':
		right.impulse = mgl64.Vec3{0, -dropSpeed, 0}
	case 'g':
		s.toggleLock()
	case 'm':
		if s.player != nil {
			s.player.SetMuted(!s.player.Muted())
		}
	case 'p':
		s.clock.SetPaused(!s.clock.Paused())
	case 'r':
		s.reset()
	}
}

func (s *sandbox) punch(h *handRig) {
	h.impulse = s.head.Forward().Mul(punchSpeed)
}

func (s *sandbox) toggleLock() {
	if s.gate.Owner() == lockOwner {
		s.gate.Unlock(lockOwner)
		s.note("gate unlocked")
		return
	}
	if !s.gate.Lock(lockOwner) {
		s.note("gate busy, lock refused")
		return
	}
	s.note("gate locked by " + lockOwner)
}

// reset returns the body to the origin and clears the ground
func (s *sandbox) reset() {
	s.body.Teleport(mgl64.Vec3{})
	s.decals.Clear()
	s.note("reset")
}

// tick advances one frame of simulated time
func (s *sandbox) tick() {
	dt := s.clock.Tick()
	if dt <= 0 {
		return
	}

	for _, h := range s.hands {
		if h.impulse != (mgl64.Vec3{}) {
			h.pose.Nudge(h.impulse.Mul(dt))
			h.impulse = mgl64.Vec3{}
		}
	}

	s.driver.Update(dt, s.gravity)
	s.decals.Update(time.Duration(dt * float64(time.Second)))

	for _, ev := range s.events.Drain() {
		s.note(ev.String())
		if ev.Type == event.EventGateDenied {
			log.Printf("Gate denied: %s", ev)
		}
	}
}

func (s *sandbox) note(line string) {
	s.eventLog = append(s.eventLog, line)
	if over := len(s.eventLog) - eventLogLines; over > 0 {
		s.eventLog = s.eventLog[over:]
	}
}

func (s *sandbox) run(events <-chan tcell.Event) {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !s.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			s.tick()
			s.draw()
		}
	}
}
