package input

import "github.com/lixenwraith/doomdash/parameter"

// Action is an analog control such as a grip or trigger axis, 0 released and 1 fully pressed
type Action interface {
	Value() float64
}

// ActionFunc adapts a plain function to Action
type ActionFunc func() float64

func (f ActionFunc) Value() float64 { return f() }

// Fixed is an Action that always reads the same value
type Fixed float64

func (f Fixed) Value() float64 { return float64(f) }

// Button reads an Action as a digital press
// An unbound Action (nil) reads as released
type Button struct {
	Action    Action
	Threshold float64
}

// NewButton binds a with the default press threshold
func NewButton(a Action) Button {
	return Button{Action: a, Threshold: parameter.PressThreshold}
}

func (b Button) Pressed() bool {
	if b.Action == nil {
		return false
	}
	return b.Action.Value() >= b.Threshold
}

// Bound reports whether an action is attached
func (b Button) Bound() bool {
	return b.Action != nil
}
