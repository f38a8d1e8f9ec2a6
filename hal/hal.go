// Package hal is the boundary between the firmware and one keyboard half:
// the switch matrix, rotary encoder, status panel, LED strip, serial link
// to the peer and the USB HID endpoint.
package hal

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"

	"splitkb/matrix"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	// ErrBusy is returned by writers whose transmit path is still occupied.
	ErrBusy = errors.New("hal: busy")
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Time provides the 1 ms tick stream.
type Time interface {
	Ticks() <-chan uint64
}

// Display is the monochrome status panel. Text coordinates are in the
// rotated frame, with y at the top of the line.
type Display interface {
	Init() error
	SetRotation(r drivers.Rotation) error
	Clear()
	DrawText(s string, x, y int16)
	Flush() error
}

// LedStrip takes one frame of colours in wiring order.
type LedStrip interface {
	Write(colors []color.RGBA) error
}

// SerialLink is the UART to the other half.
type SerialLink interface {
	WriteByte(b byte) error
	Received() <-chan byte
}

// DigitalInput is an input pin.
type DigitalInput interface {
	Get() bool
}

// DigitalOutput is an output pin.
type DigitalOutput interface {
	High()
	Low()
}

// MatrixScanner reads the switches of one half.
type MatrixScanner interface {
	Scan(dst *matrix.State)
}

// RotaryEncoder exposes the two quadrature pins. Edges fires on every pin
// change.
type RotaryEncoder interface {
	Read() (a, b bool)
	Edges() <-chan struct{}
}

// Hid is the composite keyboard and consumer control endpoint.
type Hid interface {
	Configured() bool
	WriteKeyboard(report []byte) (int, error)
	WriteMedia(report []byte) (int, error)
}

// HAL is everything one half is wired to.
type HAL interface {
	Logger() Logger
	Time() Time
	Display() Display
	Leds() LedStrip
	Serial() SerialLink
	Matrix() MatrixScanner
	Encoder() RotaryEncoder
	Hid() Hid
}
