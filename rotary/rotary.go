// Package rotary turns raw quadrature samples from the encoder into momentary
// key events on two matrix coordinates.
package rotary

import (
	"splitkb/keymap"
	"splitkb/multi"
)

// Direction is a detected rotation step.
type Direction uint8

const (
	CW Direction = iota
	ACW
)

func (d Direction) String() string {
	if d == CW {
		return "cw"
	}
	return "acw"
}

type pins struct{ a, b bool }

// Encoder remembers the last sampled pin pair and the releases owed for
// presses already emitted.
type Encoder struct {
	last    pins
	cw      keymap.Coord
	acw     keymap.Coord
	release multi.Multi[keymap.Event]
}

// New returns an encoder that presses cw on clockwise steps and acw on
// counter-clockwise ones.
func New(cw, acw keymap.Coord) *Encoder {
	return &Encoder{cw: cw, acw: acw}
}

// Decode records the sample (a, b) and reports the step it completes, if any.
// Transitions that are not a valid quadrature step are ignored.
func (e *Encoder) Decode(a, b bool) (Direction, bool) {
	prev, next := e.last, pins{a, b}
	e.last = next
	switch {
	case prev == pins{true, false} && next == pins{false, true},
		prev == pins{false, true} && next == pins{true, false},
		prev == pins{true, true} && next == pins{true, false},
		prev == pins{false, false} && next == pins{false, true}:
		return ACW, true
	case prev == pins{false, false} && next == pins{true, true},
		prev == pins{true, true} && next == pins{false, false},
		prev == pins{false, true} && next == pins{false, false},
		prev == pins{true, false} && next == pins{true, true}:
		return CW, true
	}
	return 0, false
}

// Poll samples the pins and returns the press for a completed step. The
// matching release is queued for Release. A step is dropped when the release
// queue is full, so every press keeps its release.
func (e *Encoder) Poll(a, b bool) multi.Multi[keymap.Event] {
	d, ok := e.Decode(a, b)
	if !ok {
		return multi.None[keymap.Event]()
	}
	c := e.cw
	if d == ACW {
		c = e.acw
	}
	if !e.release.Append(keymap.ReleaseAt(c.Row, c.Col)) {
		return multi.None[keymap.Event]()
	}
	return multi.Of(keymap.PressAt(c.Row, c.Col))
}

// Release returns and clears the pending releases.
func (e *Encoder) Release() multi.Multi[keymap.Event] {
	out := e.release
	e.release.Reset()
	return out
}

// Reset forgets the sampled history and pending releases.
func (e *Encoder) Reset() {
	e.last = pins{}
	e.release.Reset()
}
