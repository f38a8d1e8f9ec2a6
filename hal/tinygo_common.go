//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"
	"time"

	"github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ws2812"
)

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *uartx.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type outPin machine.Pin

func (p outPin) High() { machine.Pin(p).High() }
func (p outPin) Low()  { machine.Pin(p).Low() }

type inPin machine.Pin

func (p inPin) Get() bool { return machine.Pin(p).Get() }

// settle lets a driven row reach the column inputs.
func settle() { time.Sleep(time.Microsecond) }

// uartLink moves bytes from the UART receive ring into a channel.
type uartLink struct {
	uart *uartx.UART
	rx   chan byte
}

func newUARTLink(u *uartx.UART) *uartLink {
	l := &uartLink{uart: u, rx: make(chan byte, 64)}
	go l.pump()
	return l
}

func (l *uartLink) pump() {
	var buf [16]byte
	for range l.uart.Readable() {
		for {
			n := l.uart.TryRead(buf[:])
			if n == 0 {
				break
			}
			for _, b := range buf[:n] {
				l.rx <- b
			}
		}
	}
}

func (l *uartLink) WriteByte(b byte) error { return l.uart.WriteByte(b) }
func (l *uartLink) Received() <-chan byte  { return l.rx }

type stripLeds struct {
	dev ws2812.Device
}

func newStripLeds(pin machine.Pin) *stripLeds {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &stripLeds{dev: ws2812.NewWS2812(pin)}
}

func (s *stripLeds) Write(colors []color.RGBA) error {
	return s.dev.WriteColors(colors)
}

// pinEncoder signals an edge on every change of either quadrature pin.
type pinEncoder struct {
	a, b  machine.Pin
	edges chan struct{}
}

func newPinEncoder(a, b machine.Pin, log Logger) *pinEncoder {
	e := &pinEncoder{a: a, b: b, edges: make(chan struct{}, 8)}
	edge := func(machine.Pin) {
		select {
		case e.edges <- struct{}{}:
		default:
		}
	}
	for _, p := range []machine.Pin{a, b} {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		if err := p.SetInterrupt(machine.PinToggle, edge); err != nil {
			log.WriteLineString("hal: encoder interrupt: " + err.Error())
		}
	}
	return e
}

func (e *pinEncoder) Read() (a, b bool)      { return e.a.Get(), e.b.Get() }
func (e *pinEncoder) Edges() <-chan struct{} { return e.edges }
