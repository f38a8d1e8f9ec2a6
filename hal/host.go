//go:build !tinygo

package hal

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"sync"
	"time"

	"splitkb/display"
	"splitkb/matrix"
)

// Panel geometry of the emulated status display.
const (
	PanelWidth  = 128
	PanelHeight = 64
)

// TapTicks is how long a tapped key stays closed.
const TapTicks = 30

// HostConfig describes how the emulated halves are wired.
type HostConfig struct {
	// Port is the serial device of a real peer. Empty runs both halves in
	// this process.
	Port string
	Baud int
	// Right selects the right half when a single half is emulated.
	Right bool
	// USB marks the single emulated half as plugged into the computer.
	USB bool
	// Log receives log lines. Nil means stdout.
	Log io.Writer
}

// Host is one emulated keyboard half.
type Host struct {
	name   string
	right  bool
	logger *hostLogger
	clock  *hostClock
	panel  *hostPanel
	disp   *hostDisplay
	leds   *hostLeds
	link   SerialLink
	keys   *SwitchBoard
	scan   *PinMatrix
	enc    *VirtualEncoder
	hid    *hostHid

	mu   sync.Mutex
	taps map[[2]int]uint64
}

func newHost(name string, right, usb bool, link SerialLink, w io.Writer) *Host {
	if w == nil {
		w = os.Stdout
	}
	logger := &hostLogger{w: w, prefix: name + ": "}
	panel := newHostPanel(PanelWidth, PanelHeight)
	keys := NewSwitchBoard()
	return &Host{
		name:   name,
		right:  right,
		logger: logger,
		clock:  newHostClock(),
		panel:  panel,
		disp:   &hostDisplay{TextDisplay: NewTextDisplay(panel, nil)},
		leds:   &hostLeds{},
		link:   link,
		keys:   keys,
		scan:   NewPinMatrix(keys.Rows(), keys.Cols(), nil),
		enc:    NewVirtualEncoder(),
		hid:    &hostHid{configured: usb, logger: logger},
		taps:   make(map[[2]int]uint64),
	}
}

// NewPair returns a left and a right half joined by an in-process serial
// link. The left half is plugged into USB.
func NewPair(w io.Writer) (left, right *Host) {
	a, b := newPipe(1024)
	return newHost("left", false, true, a, w), newHost("right", true, false, b, w)
}

// NewHosts builds the halves described by cfg.
func NewHosts(cfg HostConfig) ([]*Host, error) {
	if cfg.Port == "" {
		l, r := NewPair(cfg.Log)
		return []*Host{l, r}, nil
	}
	name := "left"
	if cfg.Right {
		name = "right"
	}
	link, err := openPortLink(cfg.Port, cfg.Baud)
	if err != nil {
		return nil, err
	}
	return []*Host{newHost(name, cfg.Right, cfg.USB, link, cfg.Log)}, nil
}

func (h *Host) Logger() Logger         { return h.logger }
func (h *Host) Time() Time             { return h.clock }
func (h *Host) Display() Display       { return h.disp }
func (h *Host) Leds() LedStrip         { return h.leds }
func (h *Host) Serial() SerialLink     { return h.link }
func (h *Host) Matrix() MatrixScanner  { return h.scan }
func (h *Host) Encoder() RotaryEncoder { return h.enc }
func (h *Host) Hid() Hid               { return h.hid }

// Name is "left" or "right".
func (h *Host) Name() string { return h.name }

// IsRight reports whether h is the right half.
func (h *Host) IsRight() bool { return h.right }

// SetKey opens or closes a switch.
func (h *Host) SetKey(row, col int, down bool) { h.keys.Set(row, col, down) }

// Tap closes a switch for TapTicks ticks.
func (h *Host) Tap(row, col int) {
	if row < 0 || row >= matrix.Rows || col < 0 || col >= matrix.Cols {
		return
	}
	h.keys.Set(row, col, true)
	h.mu.Lock()
	h.taps[[2]int{row, col}] = TapTicks
	h.mu.Unlock()
}

// Turn moves the encoder one detent.
func (h *Host) Turn(clockwise bool) { h.enc.Turn(clockwise) }

// Step produces n ticks.
func (h *Host) Step(n uint64) {
	h.clock.emit(n)
	h.age(n)
}

// advance produces the ticks owed since the last call by the wall clock.
func (h *Host) advance() {
	h.age(h.clock.catchUp(time.Now()))
}

func (h *Host) age(n uint64) {
	if n == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for k, left := range h.taps {
		if left > n {
			h.taps[k] = left - n
			continue
		}
		delete(h.taps, k)
		h.keys.Set(k[0], k[1], false)
	}
}

// Screen returns the text of the last flushed frame.
func (h *Host) Screen() []display.Text { return h.disp.frame() }

// ScreenContains reports whether the last frame shows sub.
func (h *Host) ScreenContains(sub string) bool {
	h.disp.mu.Lock()
	defer h.disp.mu.Unlock()
	return h.disp.rec.Contains(sub)
}

// LedFrame returns the last frame written to the strip.
func (h *Host) LedFrame() []color.RGBA { return h.leds.frame() }

// KeyboardReport returns the last keyboard report and how many were sent.
func (h *Host) KeyboardReport() ([]byte, int) { return h.hid.lastKeyboard() }

// MediaReports returns every consumer report sent so far.
func (h *Host) MediaReports() [][]byte { return h.hid.media() }

type hostLogger struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, l.prefix+s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

// hostDisplay draws real pixels and keeps the text of each frame for the
// terminal UI and tests.
type hostDisplay struct {
	*TextDisplay
	mu  sync.Mutex
	rec display.Recorder
}

func (d *hostDisplay) Clear() {
	d.TextDisplay.Clear()
	d.mu.Lock()
	d.rec.Clear()
	d.mu.Unlock()
}

func (d *hostDisplay) DrawText(s string, x, y int16) {
	d.TextDisplay.DrawText(s, x, y)
	d.mu.Lock()
	d.rec.DrawText(s, x, y)
	d.mu.Unlock()
}

func (d *hostDisplay) Flush() error {
	d.mu.Lock()
	d.rec.Flush()
	d.mu.Unlock()
	return d.TextDisplay.Flush()
}

func (d *hostDisplay) frame() []display.Text {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]display.Text(nil), d.rec.Frame()...)
}

type hostLeds struct {
	mu     sync.Mutex
	colors []color.RGBA
	writes int
}

func (l *hostLeds) Write(colors []color.RGBA) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.colors = append(l.colors[:0], colors...)
	l.writes++
	return nil
}

func (l *hostLeds) frame() []color.RGBA {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]color.RGBA(nil), l.colors...)
}

type hostHid struct {
	mu         sync.Mutex
	configured bool
	logger     Logger
	keyboard   []byte
	keyboards  int
	reports    [][]byte
}

func (h *hostHid) Configured() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.configured
}

func (h *hostHid) WriteKeyboard(report []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.configured {
		return 0, ErrNotImplemented
	}
	h.keyboard = append(h.keyboard[:0], report...)
	h.keyboards++
	h.logger.WriteLineString(fmt.Sprintf("hid: keyboard % x", report))
	return len(report), nil
}

func (h *hostHid) WriteMedia(report []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.configured {
		return 0, ErrNotImplemented
	}
	h.reports = append(h.reports, append([]byte(nil), report...))
	h.logger.WriteLineString(fmt.Sprintf("hid: media % x", report))
	return len(report), nil
}

func (h *hostHid) lastKeyboard() ([]byte, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]byte(nil), h.keyboard...), h.keyboards
}

func (h *hostHid) media() [][]byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([][]byte(nil), h.reports...)
}

// ScreenSize returns the size of the rotated frame.
func (h *Host) ScreenSize() (x, y int16) { return h.disp.Size() }

// Pixel reports whether the pixel at x, y of the rotated frame is lit.
func (h *Host) Pixel(x, y int16) bool {
	px, py := h.disp.view.physical(x, y)
	return h.panel.lit(px, py)
}
