//go:build !tinygo

package hal

import (
	"strings"

	"splitkb/matrix"
)

// Characters that stand for the switches of each half, row by row and
// left to right as seen from above. The right half uses the shifted keys.
var (
	leftKeys  = [matrix.Rows]string{"1234567", "qwertyu", "asdfghj", "zxcvbnm"}
	rightKeys = [matrix.Rows]string{"!@#$%^&", "QWERTYU", "ASDFGHJ", "ZXCVBNM"}
)

// Encoder keys: clockwise then counter-clockwise.
const (
	leftEncoder  = "[]"
	rightEncoder = "{}"
)

// switchFor maps r to a switch of the left or right half. Columns are the
// half's own wiring: the right half is mirrored.
func switchFor(r rune) (right bool, row, col int, ok bool) {
	for i := range leftKeys {
		if j := strings.IndexRune(leftKeys[i], r); j >= 0 {
			return false, i, j, true
		}
		if j := strings.IndexRune(rightKeys[i], r); j >= 0 {
			return true, i, matrix.Cols - 1 - j, true
		}
	}
	return false, 0, 0, false
}

// encoderFor maps r to an encoder turn.
func encoderFor(r rune) (right, clockwise, ok bool) {
	if i := strings.IndexRune(leftEncoder, r); i >= 0 {
		return false, i == 0, true
	}
	if i := strings.IndexRune(rightEncoder, r); i >= 0 {
		return true, i == 0, true
	}
	return false, false, false
}

// Rig is the set of emulated halves fed by one input device.
type Rig []*Host

// Half returns the host standing for the right or left half. A lone host
// takes input meant for either.
func (r Rig) Half(right bool) *Host {
	if len(r) == 1 {
		return r[0]
	}
	for _, h := range r {
		if h.IsRight() == right {
			return h
		}
	}
	return nil
}

// TapRune taps the switch or turns the encoder named by c and reports
// whether c names one.
func (r Rig) TapRune(c rune) bool {
	if right, row, col, ok := switchFor(c); ok {
		if h := r.Half(right); h != nil {
			h.Tap(row, col)
		}
		return true
	}
	if right, cw, ok := encoderFor(c); ok {
		if h := r.Half(right); h != nil {
			h.Turn(cw)
		}
		return true
	}
	return false
}

// Advance produces the ticks each half is owed by the wall clock.
func (r Rig) Advance() {
	for _, h := range r {
		h.advance()
	}
}

// RunSteps runs one pass of every half's firmware.
func RunSteps(steps []func() error) error {
	for _, s := range steps {
		if s == nil {
			continue
		}
		if err := s(); err != nil {
			return err
		}
	}
	return nil
}

// Start builds the firmware of every half with newApp.
func (r Rig) Start(newApp func(HAL) func() error) []func() error {
	steps := make([]func() error, len(r))
	for i, h := range r {
		steps[i] = newApp(h)
	}
	return steps
}
