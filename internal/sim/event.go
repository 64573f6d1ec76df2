package sim

// EventKind identifies an input event.
type EventKind uint8

const (
	Quit EventKind = iota
	PointerDown
	PointerUp
	PointerMove
	Reset
	TogglePause
)

func (k EventKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case PointerMove:
		return "pointer-move"
	case Reset:
		return "reset"
	case TogglePause:
		return "toggle-pause"
	}
	return "unknown"
}

// Event is one input event. X and Y are surface coordinates and only
// meaningful for PointerDown and PointerMove.
type Event struct {
	Kind EventKind
	X, Y float64

	// PointerDown only. Radius is the grab reach, mesh.ClickRadius when
	// zero. Cycle asks for the next point in reach after the last one
	// grabbed instead of the first.
	Radius float64
	Cycle  bool
}

// PointerTracker turns polled pointer samples into events, for backends
// that read the pointer state once per frame instead of receiving events.
type PointerTracker struct {
	x, y    float64
	down    bool
	sampled bool
}

// Sample records the pointer state for this frame and appends the events
// it implies to dst: a move first, then a press or release.
func (t *PointerTracker) Sample(dst []Event, x, y float64, down bool) []Event {
	if t.sampled && (x != t.x || y != t.y) {
		dst = append(dst, Event{Kind: PointerMove, X: x, Y: y})
	}
	switch {
	case down && !t.down:
		dst = append(dst, Event{Kind: PointerDown, X: x, Y: y})
	case !down && t.down:
		dst = append(dst, Event{Kind: PointerUp})
	}
	t.x, t.y, t.down, t.sampled = x, y, down, true
	return dst
}
