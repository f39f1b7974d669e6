package event

import "fmt"

// String renders the event as one log line: frame, hand, type, then payload details
func (e GameEvent) String() string {
	switch p := e.Payload.(type) {
	case *GesturePayload:
		if p.Distance > 0 {
			return fmt.Sprintf("%6d %-5s %-6s %-8s %5.1fm", e.Frame, p.Hand, e.Type, p.Gesture, p.Distance)
		}
		return fmt.Sprintf("%6d %-5s %-6s %s", e.Frame, p.Hand, e.Type, p.Gesture)
	case *DecalPayload:
		return fmt.Sprintf("%6d %-5s %-6s at (%.2f, %.2f, %.2f)", e.Frame, p.Hand, e.Type,
			p.Position.X(), p.Position.Y(), p.Position.Z())
	default:
		return fmt.Sprintf("%6d %s", e.Frame, e.Type)
	}
}
