// Package leds drives the per-key and underglow LEDs of one half and draws
// the LED status page.
package leds

import (
	"image/color"
	"strconv"

	"splitkb/display"
	"splitkb/multi"
	"splitkb/proto"
)

// Strip receives finished frames in wiring order.
type Strip interface {
	Write(colors []color.RGBA) error
}

var (
	defaultSolid = rgb(0, 128, 200)
	fadeKey      = rgb(255, 0, 0)
	fadeBack     = rgb(0, 128, 200)
)

type fader struct {
	flash Matrix
}

func (f *fader) keyRelease(i, j uint8) {
	switch {
	case i < 3 && j < 7:
		f.flash.Keys[i][j] = fadeKey
	case i == 3 && j > 1 && j-2 < 5:
		f.flash.Thumb[j-2] = fadeKey
	}
}

func (f *fader) next(last Matrix) Matrix {
	next := last
	for i := range next.Keys {
		for j := range next.Keys[i] {
			if c := f.flash.Keys[i][j]; lit(c) {
				next.Keys[i][j] = c
			} else {
				next.Keys[i][j] = convergeRGB(next.Keys[i][j], fadeBack)
			}
		}
	}
	for i := range next.Thumb {
		if c := f.flash.Thumb[i]; lit(c) {
			next.Thumb[i] = c
		} else {
			next.Thumb[i] = convergeRGB(next.Thumb[i], fadeBack)
		}
	}
	for i := range next.Underglow {
		next.Underglow[i] = fadeBack
	}
	f.flash = Matrix{}
	return next
}

// LEDs is the animation engine of one half.
type LEDs struct {
	strip   Strip
	primary bool
	mode    proto.LEDMode
	solid   color.RGBA
	wheel   uint8
	fade    fader
	sleep   bool

	last   Matrix
	frames [2][StripLen]color.RGBA
	front  int

	writeErrs uint32
}

// New returns an engine in Solid mode writing to strip.
func New(strip Strip) *LEDs {
	return &LEDs{strip: strip, mode: proto.LEDSolid, solid: defaultSolid}
}

func (l *LEDs) Mode() proto.LEDMode { return l.mode }
func (l *LEDs) Solid() color.RGBA   { return l.solid }
func (l *LEDs) Sleeping() bool      { return l.sleep }
func (l *LEDs) Last() Matrix        { return l.last }
func (l *LEDs) WriteErrors() uint32 { return l.writeErrs }

// HandleEvent applies m. Actions arriving as LED are mirrored to the peer as
// SecondaryLED; actions arriving as SecondaryLED are not.
func (l *LEDs) HandleEvent(m proto.Message) multi.Multi[proto.Message] {
	switch m.Kind {
	case proto.MsgYouArePrimary:
		l.primary = true
	case proto.MsgLateInit:
		l.update()
	case proto.MsgUpdateDisplay:
		l.update()
	case proto.MsgMatrixKeyRelease:
		l.fade.keyRelease(m.Row, m.Col)
	case proto.MsgLED:
		l.apply(m.LED)
		return multi.Of(proto.SecondaryLED(l.mirror(m.LED)))
	case proto.MsgSecondaryLED:
		l.apply(m.LED)
	case proto.MsgSleep:
		l.goToSleep()
		if l.primary {
			return multi.Of(proto.SecondaryLED(proto.Step(proto.LEDSleep)))
		}
	case proto.MsgWake:
		l.sleep = false
		if l.primary {
			return multi.Of(proto.SecondaryLED(proto.Step(proto.LEDWake)))
		}
	}
	return multi.None[proto.Message]()
}

func (l *LEDs) mirror(a proto.LEDAction) proto.LEDAction {
	switch a.Kind {
	case proto.LEDIncRed, proto.LEDDecRed, proto.LEDIncGreen, proto.LEDDecGreen, proto.LEDIncBlue, proto.LEDDecBlue:
		return proto.SolidColor(l.solid.R, l.solid.G, l.solid.B)
	}
	return a
}

func (l *LEDs) apply(a proto.LEDAction) {
	switch a.Kind {
	case proto.LEDSetMode:
		l.mode = a.Mode
	case proto.LEDIncRed:
		l.solid.R = saturatingInc(l.solid.R)
	case proto.LEDDecRed:
		l.solid.R = saturatingDec(l.solid.R)
	case proto.LEDIncGreen:
		l.solid.G = saturatingInc(l.solid.G)
	case proto.LEDDecGreen:
		l.solid.G = saturatingDec(l.solid.G)
	case proto.LEDIncBlue:
		l.solid.B = saturatingInc(l.solid.B)
	case proto.LEDDecBlue:
		l.solid.B = saturatingDec(l.solid.B)
	case proto.LEDSolidColor:
		l.solid = rgb(a.R, a.G, a.B)
	case proto.LEDUpdate:
	case proto.LEDSleep:
		l.goToSleep()
		return
	case proto.LEDWake:
		l.sleep = false
	default:
		return
	}
	l.update()
}

func (l *LEDs) goToSleep() {
	l.write(Matrix{})
	l.sleep = true
}

// update renders the next frame of the current mode.
func (l *LEDs) update() {
	if l.sleep {
		return
	}
	switch l.mode {
	case proto.LEDOff:
		l.write(Matrix{})
	case proto.LEDSolid:
		l.write(Fill(l.solid))
	case proto.LEDWheel:
		l.write(Fill(Wheel(l.wheel)))
		l.wheel++
	case proto.LEDFade:
		l.write(l.fade.next(l.last))
	}
}

// write hands m to the strip through the back buffer, then swaps buffers.
func (l *LEDs) write(m Matrix) {
	buf := &l.frames[l.front]
	m.Strip(buf)
	if l.strip != nil {
		if err := l.strip.Write(buf[:]); err != nil {
			l.writeErrs++
		}
	}
	l.front ^= 1
	l.last = m
}

// Render draws the LED page.
func (l *LEDs) Render(s display.Screen) error {
	s.Clear()
	s.DrawText("mode:", 0, 0)
	s.DrawText(l.mode.String(), 36, 0)
	s.DrawText("red:", 0, 13)
	s.DrawText(strconv.FormatUint(uint64(l.solid.R), 16), 42, 13)
	s.DrawText("green:", 0, 26)
	s.DrawText(strconv.FormatUint(uint64(l.solid.G), 16), 42, 26)
	s.DrawText("blue:", 0, 39)
	s.DrawText(strconv.FormatUint(uint64(l.solid.B), 16), 42, 39)
	return s.Flush()
}
