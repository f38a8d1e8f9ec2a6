package keymap

// Coord is a position in the key matrix.
type Coord struct {
	Row, Col uint8
}

// EventKind tells presses from releases.
type EventKind uint8

const (
	Press EventKind = iota
	Release
)

// Event is a physical key transition.
type Event struct {
	Kind  EventKind
	Coord Coord
}

// PressAt returns a press event for (row, col).
func PressAt(row, col uint8) Event { return Event{Kind: Press, Coord: Coord{row, col}} }

// ReleaseAt returns a release event for (row, col).
func ReleaseAt(row, col uint8) Event { return Event{Kind: Release, Coord: Coord{row, col}} }

// CustomKind tells what happened to a custom action.
type CustomKind uint8

const (
	CustomNone CustomKind = iota
	CustomPress
	CustomRelease
)

// CustomEvent reports the press or release of a key bound to a custom action.
type CustomEvent[T any] struct {
	Kind  CustomKind
	Value T
}

// IsNone reports whether the event carries nothing.
func (e CustomEvent[T]) IsNone() bool { return e.Kind == CustomNone }
