package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/decal"
	"github.com/lixenwraith/doomdash/engine"
	"github.com/lixenwraith/doomdash/event"
	"github.com/lixenwraith/doomdash/gesture"
	"github.com/lixenwraith/doomdash/input"
	"github.com/lixenwraith/doomdash/locomotion"
	"github.com/lixenwraith/doomdash/physics"
)

var csvHeader = []string{"frame", "time", "x", "y", "z", "grounded", "left", "right", "dx", "dy", "dz"}

// scriptedHand is a hand whose controls and pose are set by the script
type scriptedHand struct {
	grip, trigger float64
	pose          input.Point
}

func (h *scriptedHand) binding(threshold float64) input.Hand {
	return input.Hand{
		Grip:    input.Button{Action: input.ActionFunc(func() float64 { return h.grip }), Threshold: threshold},
		Trigger: input.Button{Action: input.ActionFunc(func() float64 { return h.trigger }), Threshold: threshold},
		Pose:    &h.pose,
	}
}

func (h *scriptedHand) apply(in *handInput) {
	if in == nil {
		return
	}
	if in.Grip != nil {
		h.grip = *in.Grip
	}
	if in.Trigger != nil {
		h.trigger = *in.Trigger
	}
	if in.Position != nil {
		h.pose.Pos = in.Position.Vec()
	}
	if in.Move != nil {
		h.pose.Nudge(in.Move.Vec())
	}
}

// cueCounter is an audio sink that only counts
type cueCounter struct {
	plays [gesture.CueCount]int
	stops int
}

func (c *cueCounter) Play(cue gesture.Cue) {
	if cue < gesture.CueCount {
		c.plays[cue]++
	}
}

func (c *cueCounter) Stop() { c.stops++ }

// summary is the end state of a replay
type summary struct {
	Frames   int
	Seconds  float64
	Final    mgl64.Vec3
	Grounded bool
	Decals   int
	Cues     [gesture.CueCount]int
	Granted  int64
	Denied   int64
	Events   []event.GameEvent
}

// replay runs sc headless, writing one CSV row per frame to out
func replay(sc *script, cfg *config.Config, out io.Writer) (*summary, error) {
	gravity := cfg.Physics.Gravity.Vec()
	if sc.Gravity != nil {
		gravity = sc.Gravity.Vec()
	}

	left, right := &scriptedHand{}, &scriptedHand{}
	head := input.Direction(sc.Head.Vec())
	headSrc := &head

	body := physics.NewCapsule(cfg.Physics, sc.Start.Vec())
	gate := locomotion.NewMediator()
	decals := decal.NewStore(0, 0)
	queue := event.NewEventQueue()
	cues := &cueCounter{}

	// First step positions are the seed, so the opening frame reads no velocity
	first := sc.Steps[0]
	left.apply(first.Left)
	right.apply(first.Right)

	driver, err := engine.NewDriver(engine.Setup{
		Gesture: cfg.Gesture,
		Left:    left.binding(cfg.Input.PressThreshold),
		Right:   right.binding(cfg.Input.PressThreshold),
		Head:    headSrc,
		Body:    body,
		Gate:    gate.Provider("replay"),
		Audio:   cues,
		Decals:  decals,
		Events:  queue,
	})
	if err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}
	driver.Start()

	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	sum := &summary{Frames: sc.frames()}
	sum.Seconds = float64(sum.Frames) * sc.DeltaTime
	frame := 0
	for i, st := range sc.Steps {
		if i > 0 {
			left.apply(st.Left)
			right.apply(st.Right)
		}
		if st.Head != nil {
			head = input.Direction(st.Head.Vec())
		}

		for r := 0; r < max(st.Repeat, 1); r++ {
			applied := driver.Update(sc.DeltaTime, gravity)
			frame++

			// Drained every frame so a long script cannot overflow the queue
			sum.Events = append(sum.Events, queue.Drain()...)

			pos := body.Position()
			row := []string{
				strconv.Itoa(frame),
				formatFloat(float64(frame) * sc.DeltaTime),
				formatFloat(pos.X()), formatFloat(pos.Y()), formatFloat(pos.Z()),
				strconv.FormatBool(body.Grounded()),
				driver.Hand(gesture.Left).State().Kind.String(),
				driver.Hand(gesture.Right).State().Kind.String(),
				formatFloat(applied.X()), formatFloat(applied.Y()), formatFloat(applied.Z()),
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("write csv: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	sum.Final = body.Position()
	sum.Grounded = body.Grounded()
	sum.Decals = decals.Len()
	sum.Cues = cues.plays
	sum.Granted, sum.Denied = gate.Stats()
	return sum, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// writeSummary prints the event log and totals
func writeSummary(w io.Writer, sum *summary) {
	for _, ev := range sum.Events {
		fmt.Fprintln(w, ev)
	}
	fmt.Fprintf(w, "frames %d (%.3fs)  final (%.3f, %.3f, %.3f)  grounded %v  decals %d  gate %d granted %d denied\n",
		sum.Frames, sum.Seconds, sum.Final.X(), sum.Final.Y(), sum.Final.Z(), sum.Grounded, sum.Decals, sum.Granted, sum.Denied)
	fmt.Fprint(w, "cues")
	for cue := gesture.Cue(0); cue < gesture.CueCount; cue++ {
		fmt.Fprintf(w, "  %s %d", cue, sum.Cues[cue])
	}
	fmt.Fprintln(w)
}
