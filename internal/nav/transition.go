package nav

// Direction is the way a transition moves through the screen order.
type Direction int

const (
	// Forward moves to the same or a later screen. Content slides left.
	Forward Direction = iota
	// Backward moves to an earlier screen. Content slides right.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Slide is the visual direction the outgoing screen moves in.
func (d Direction) Slide() string {
	if d == Backward {
		return "right"
	}
	return "left"
}

// Transition describes one completed jump. Receiving one also means any
// pending screen selection text should be cleared.
type Transition struct {
	From      string
	To        string
	Direction Direction
}

// SelfJump reports whether the transition re-selected the current screen.
func (t Transition) SelfJump() bool {
	return t.From == t.To
}

func directionBetween(from, to int) Direction {
	if to >= from {
		return Forward
	}
	return Backward
}
