package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/doomdash/gesture"
)

// Top-down view: one row per meter along Z, two columns per meter along X for a square aspect
const (
	colsPerMeter = 2.0
	rowsPerMeter = 1.0
	gridSpacing  = 5.0
	hudRows      = 3
)

var (
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGrounded = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleAirborne = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHeading  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLog      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

var headingArrows = []rune("↑↗→↘↓↙←↖")

// worldToScreen projects a world point into the view centered on center
func worldToScreen(p, center mgl64.Vec3, w, h int) (x, y int, ok bool) {
	x = w/2 + int(math.Round((p.X()-center.X())*colsPerMeter))
	y = h/2 - int(math.Round((p.Z()-center.Z())*rowsPerMeter))
	return x, y, x >= 0 && x < w && y >= 0 && y < h
}

// screenToWorld is the ground point under a cell
func screenToWorld(x, y int, center mgl64.Vec3, w, h int) (wx, wz float64) {
	wx = center.X() + float64(x-w/2)/colsPerMeter
	wz = center.Z() - float64(y-h/2)/rowsPerMeter
	return wx, wz
}

// headingArrow picks the arrow closest to the yaw, zero facing up the screen
func headingArrow(yaw float64) rune {
	octant := int(math.Round(yaw/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingArrows[octant]
}

// onGrid reports whether v lies within half a cell of a multiple of step
func onGrid(v, step, cell float64) bool {
	m := math.Mod(v, step)
	if m < 0 {
		m += step
	}
	return m < cell/2 || step-m <= cell/2
}

func (s *sandbox) draw() {
	s.screen.Clear()
	w, h := s.screen.Size()
	center := s.body.Position()

	s.drawGround(center, w, h)
	s.drawDecals(center, w, h)
	s.drawBody(center, w, h)
	s.drawHUD(w)
	s.drawEventLog(h)

	s.screen.Show()
}

func (s *sandbox) drawGround(center mgl64.Vec3, w, h int) {
	extent := s.body.Extent
	for y := hudRows; y < h; y++ {
		for x := 0; x < w; x++ {
			wx, wz := screenToWorld(x, y, center, w, h)
			switch {
			case extent > 0 && (math.Abs(wx) > extent || math.Abs(wz) > extent):
				s.screen.SetContent(x, y, '#', nil, styleWall)
			case onGrid(wx, gridSpacing, 1/colsPerMeter) && onGrid(wz, gridSpacing, 1/rowsPerMeter):
				s.screen.SetContent(x, y, '·', nil, styleGround)
			}
		}
	}
}

func (s *sandbox) drawDecals(center mgl64.Vec3, w, h int) {
	for _, d := range s.decals.Active() {
		x, y, ok := worldToScreen(d.Position, center, w, h)
		if !ok || y < hudRows {
			continue
		}
		i := d.Intensity()
		color := tcell.NewRGBColor(int32(80+175*i), int32(40*i), 0)
		s.screen.SetContent(x, y, '*', nil, tcell.StyleDefault.Foreground(color))
	}
}

func (s *sandbox) drawBody(center mgl64.Vec3, w, h int) {
	x, y, _ := worldToScreen(center, center, w, h)

	style := styleAirborne
	if s.body.Grounded() {
		style = styleGrounded
	}
	s.screen.SetContent(x, y, '@', nil, style)

	ahead := center.Add(s.head.Forward().Mul(1.5))
	if ax, ay, ok := worldToScreen(ahead, center, w, h); ok && ay >= hudRows {
		s.screen.SetContent(ax, ay, headingArrow(s.head.Yaw), nil, styleHeading)
	}
}

func (s *sandbox) drawHUD(w int) {
	lines := s.hudLines()
	for i, line := range lines {
		style := styleHUD
		if i == len(lines)-1 {
			style = styleHelp
		}
		drawText(s.screen, 0, i, w, style, line)
	}
}

func (s *sandbox) hudLines() []string {
	pos := s.body.Position()
	ground := "airborne"
	if s.body.Grounded() {
		ground = "grounded"
	}

	sound := "off"
	if s.player != nil {
		sound = "on"
		if s.player.Muted() {
			sound = "muted"
		}
	}

	status := fmt.Sprintf("pos (%6.1f, %5.1f, %6.1f)  head %5.1fm  %-8s  gate %-6s  audio %-5s  frame %d",
		pos.X(), pos.Y(), pos.Z(), s.body.Top().Y(), ground, s.gate.State(), sound, s.driver.Frame())
	if s.clock.Paused() {
		status += "  [paused]"
	}

	return []string{
		status,
		s.handLine(gesture.Left) + "   " + s.handLine(gesture.Right),
		"a/j hold  d/l punch  w/i up  s/k down  ←/→ turn  g lock  m mute  p pause  r reset  esc quit",
	}
}

func (s *sandbox) handLine(side gesture.Side) string {
	c := s.driver.Hand(side)
	st := c.State()

	held := " "
	if s.hands[side].held {
		held = "+"
	}

	switch {
	case st.Charging():
		return fmt.Sprintf("%-5s%s %-8s %3.0f%%    ", side, held, st.Kind, c.ChargeFraction()*100)
	case st.Moving():
		return fmt.Sprintf("%-5s%s %-8s %5.1fm ", side, held, st.Kind, st.DistanceRemaining)
	default:
		return fmt.Sprintf("%-5s%s %-8s        ", side, held, st.Kind)
	}
}

func (s *sandbox) drawEventLog(h int) {
	start := h - len(s.eventLog)
	for i, line := range s.eventLog {
		y := start + i
		if y < hudRows {
			continue
		}
		drawText(s.screen, 0, y, len(line), styleLog, line)
	}
}

func drawText(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
}
