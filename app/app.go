// Package app wires the firmware of one keyboard half: it turns hardware
// events into kernel jobs, runs the layout and dispatcher, and routes their
// output to USB, the peer and back into dispatch.
package app

import (
	"fmt"

	"splitkb/custom"
	"splitkb/dispatcher"
	"splitkb/hal"
	"splitkb/hid"
	"splitkb/internal/buildinfo"
	"splitkb/kernel"
	"splitkb/keymap"
	"splitkb/layers"
	"splitkb/link"
	"splitkb/matrix"
	"splitkb/proto"
	"splitkb/rotary"
)

// Task priorities. Higher runs first.
const (
	prioUSB      kernel.Priority = 5
	prioScan     kernel.Priority = 4
	prioEncoder  kernel.Priority = 4
	prioUART     kernel.Priority = 3
	prioDisplay  kernel.Priority = 2
	prioDispatch kernel.Priority = 1
)

// DispatchQueue is the capacity of the dispatch task's queue.
const DispatchQueue = 24

// DisplayPeriod is the number of 1 ms ticks between display updates.
const DisplayPeriod = 1000 / 24

// DefaultLateInit is the number of ticks after boot at which the role is
// decided from the USB state.
const DefaultLateInit = 1000

type Config struct {
	// LateInit overrides DefaultLateInit when not zero.
	LateInit uint64
	// Trace logs every dispatched message with its output.
	Trace bool
	// Observe, if set, sees every dispatched message with its output. The
	// slice is reused after Observe returns.
	Observe func(in proto.Message, out []proto.Message)
}

// job is the argument of every task.
type job struct {
	msg  proto.Message
	b    byte
	tick uint64
}

type taskIDs struct {
	usb, scan, encoder, uart, display, dispatch kernel.TaskID
}

// Board is the firmware of one half.
type Board struct {
	h    hal.HAL
	log  hal.Logger
	cfg  Config
	k    *kernel.Kernel[job]
	task taskIDs

	disp     *dispatcher.Dispatcher
	layout   *keymap.Layout[custom.Action]
	custom   *custom.State
	debounce *matrix.Debouncer
	encoder  *rotary.Encoder
	sender   *link.Sender
	receiver link.Receiver

	ticks <-chan uint64
	rx    <-chan byte
	edges <-chan struct{}

	now         uint64
	lateInit    uint64
	started     bool
	primary     bool
	usb         bool
	displayOn   bool
	sinceRedraw uint64
	report      hid.KbReport
	dropped     uint32

	scan   matrix.State
	events []keymap.Event
	codes  []keymap.KeyCode
	out    []proto.Message
}

// NewBoard builds the firmware for h. Nothing runs until Step or Run.
func NewBoard(h hal.HAL, cfg Config) *Board {
	b := &Board{
		h:        h,
		log:      h.Logger(),
		cfg:      cfg,
		k:        kernel.New[job](),
		disp:     dispatcher.New(h.Display(), h.Leds()),
		layout:   keymap.NewLayout(layers.Keymap()),
		custom:   custom.New(),
		debounce: matrix.NewDebouncer(matrix.DefaultBounce),
		encoder:  rotary.New(layers.EncoderCW, layers.EncoderACW),
		sender:   link.NewSender(h.Serial()),
		lateInit: cfg.LateInit,
		events:   make([]keymap.Event, 0, matrix.Rows*matrix.Cols),
		codes:    make([]keymap.KeyCode, 0, 16),
		out:      make([]proto.Message, 0, 5*4),
	}
	if b.lateInit == 0 {
		b.lateInit = DefaultLateInit
	}
	if t := h.Time(); t != nil {
		b.ticks = t.Ticks()
	}
	if s := h.Serial(); s != nil {
		b.rx = s.Received()
	}
	if e := h.Encoder(); e != nil {
		b.edges = e.Edges()
	}

	b.task = taskIDs{
		usb:      b.k.AddTask("usb", prioUSB, 4, b.usbTick),
		scan:     b.k.AddTask("scan", prioScan, 4, b.scanTick),
		encoder:  b.k.AddTask("encoder", prioEncoder, 8, b.encoderEdge),
		uart:     b.k.AddTask("uart", prioUART, link.BufferSize, b.uartByte),
		display:  b.k.AddTask("display", prioDisplay, 2, b.displayTick),
		dispatch: b.k.AddTask("dispatch", prioDispatch, DispatchQueue, b.dispatch),
	}
	installPanicHandler(b.k, h)
	b.log.WriteLineString("app: " + buildinfo.Line())
	return b
}

// New builds the firmware for h and returns its step function for the host
// runners.
func New(h hal.HAL) func() error { return NewWithConfig(h, Config{}) }

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return NewBoard(h, cfg).Step
}

// Run starts the firmware and never returns.
func Run(h hal.HAL) { NewBoard(h, Config{}).Run() }

// Run blocks on hardware events forever.
func (b *Board) Run() {
	for {
		select {
		case t := <-b.ticks:
			b.onTick(t)
		case c, ok := <-b.rx:
			b.onByte(c, ok)
		case <-b.edges:
			b.spawn(b.task.encoder, job{})
		}
		b.k.RunPending(0)
	}
}

// Step handles every hardware event already waiting and runs the jobs they
// cause. It never blocks.
func (b *Board) Step() error {
	for {
		select {
		case t := <-b.ticks:
			b.onTick(t)
		case c, ok := <-b.rx:
			b.onByte(c, ok)
		case <-b.edges:
			b.spawn(b.task.encoder, job{})
		default:
			b.k.RunPending(0)
			return nil
		}
		b.k.RunPending(0)
	}
}

// Primary reports whether this half drives USB.
func (b *Board) Primary() bool { return b.primary }

// Dispatcher returns the board's dispatcher.
func (b *Board) Dispatcher() *dispatcher.Dispatcher { return b.disp }

// Dropped returns how many jobs were lost to full queues.
func (b *Board) Dropped() uint32 { return b.dropped }

func (b *Board) onTick(t uint64) {
	b.now = t
	if !b.started && t >= b.lateInit {
		b.started = true
		b.startUp()
	}
	b.spawn(b.task.usb, job{tick: t})
	b.spawn(b.task.scan, job{tick: t})
	if b.displayOn {
		b.sinceRedraw++
		if b.sinceRedraw >= DisplayPeriod {
			b.sinceRedraw = 0
			b.spawn(b.task.display, job{tick: t})
		}
	}
}

func (b *Board) onByte(c byte, ok bool) {
	if !ok {
		b.log.WriteLineString("app: serial link closed")
		b.rx = nil
		return
	}
	b.spawn(b.task.uart, job{b: c})
}

// startUp brings the subsystems up and decides the board's role: the half
// that sees a configured USB host is primary.
func (b *Board) startUp() {
	b.send(proto.Of(proto.MsgLateInit))
	usb := b.h.Hid() != nil && b.h.Hid().Configured()
	b.usb = usb
	if usb {
		b.log.WriteLineString("app: usb configured, primary")
		b.send(proto.Of(proto.MsgYouArePrimary))
		b.send(proto.UsbConnected(true))
		return
	}
	b.log.WriteLineString("app: no usb, secondary")
	b.send(proto.Of(proto.MsgYouAreSecondary))
}

func (b *Board) spawn(id kernel.TaskID, j job) {
	if r := b.k.Spawn(id, j); r != kernel.SpawnOK {
		b.dropped++
		switch {
		case r == kernel.SpawnErrPanicked:
		case id == b.task.dispatch:
			b.log.WriteLineString(fmt.Sprintf("app: dispatch: %v, dropped %v", r, j.msg))
		default:
			b.log.WriteLineString(fmt.Sprintf("app: %s: %v", b.k.TaskName(id), r))
		}
	}
}

// send queues m for dispatch on this board.
func (b *Board) send(m proto.Message) { b.spawn(b.task.dispatch, job{msg: m}) }

func (b *Board) sendAll(ms []proto.Message) {
	for _, m := range ms {
		b.send(m)
	}
}

// usbTick advances the layout by one tick and reports the result to the
// computer.
func (b *Board) usbTick(job) {
	if b.started {
		if usb := b.h.Hid() != nil && b.h.Hid().Configured(); usb != b.usb {
			b.usb = usb
			b.send(proto.UsbConnected(usb))
		}
	}

	ev := b.layout.Tick()
	out := b.custom.Process(ev)
	b.sendAll(out.AppendTo(b.out[:0]))

	b.codes = b.layout.KeyCodes(b.codes[:0])
	report := hid.FromKeyCodes(b.codes)
	b.custom.ModifyKbReport(&report)
	if b.primary && b.usb && report != b.report {
		if err := hal.SendReport(b.h.Hid().WriteKeyboard, report[:]); err != nil {
			b.log.WriteLineString("app: keyboard report: " + err.Error())
		} else {
			b.report = report
		}
	}
	if mr, ok := b.custom.PopMediaReport(); ok && b.primary && b.usb {
		if err := hal.SendReport(b.h.Hid().WriteMedia, mr[:]); err != nil {
			b.log.WriteLineString("app: media report: " + err.Error())
		}
	}

	layer := b.custom.CheckLayoutForEvents(b.layout.CurrentLayer())
	b.sendAll(layer.AppendTo(b.out[:0]))
}

// scanTick reads the matrix and turns accepted changes into key events.
func (b *Board) scanTick(job) {
	if m := b.h.Matrix(); m != nil {
		m.Scan(&b.scan)
	}
	rel := b.encoder.Release()
	b.keyEvents(rel.AppendTo(b.events[:0]))
	if b.debounce.Update(b.scan) {
		b.keyEvents(b.debounce.Events(b.events[:0]))
	}
}

func (b *Board) encoderEdge(job) {
	a, c := b.h.Encoder().Read()
	press := b.encoder.Poll(a, c)
	b.keyEvents(press.AppendTo(b.events[:0]))
}

// keyEvents feeds local key events to the layout on the primary and
// announces them to the subsystems.
func (b *Board) keyEvents(evs []keymap.Event) {
	for _, e := range evs {
		if b.primary {
			b.layout.Event(e)
		}
		if e.Kind == keymap.Press {
			b.send(proto.MatrixKeyPress(e.Coord.Row, e.Coord.Col))
		} else {
			b.send(proto.MatrixKeyRelease(e.Coord.Row, e.Coord.Col))
		}
	}
}

// uartByte reassembles messages from the peer. Key events of the other half
// reach the layout directly.
func (b *Board) uartByte(j job) {
	overflows := b.receiver.Stats().Overflows
	m, ok := b.receiver.ReadEvent(j.b)
	if b.receiver.Stats().Overflows != overflows {
		b.log.WriteLineString("app: link receive buffer overflowed, reset")
	}
	if !ok {
		return
	}
	if b.primary {
		switch m.Kind {
		case proto.MsgSecondaryKeyPress:
			b.layout.Event(keymap.PressAt(m.Row, m.Col))
		case proto.MsgSecondaryKeyRelease:
			b.layout.Event(keymap.ReleaseAt(m.Row, m.Col))
		}
	}
	b.send(m)
}

func (b *Board) displayTick(job) { b.send(proto.Of(proto.MsgUpdateDisplay)) }

// dispatch runs one message through the board and routes what it causes.
func (b *Board) dispatch(j job) {
	m := j.msg
	switch m.Kind {
	case proto.MsgYouArePrimary:
		b.primary = true
		b.custom.SetPrimary(true)
	case proto.MsgYouAreSecondary:
		b.primary = false
		b.custom.SetPrimary(false)
	case proto.MsgSetDefaultLayer:
		b.layout.SetDefaultLayer(int(m.Index))
	case proto.MsgInitTimers:
		b.displayOn = true
	}

	out := b.disp.Dispatch(m, b.out[:0])
	if m.Kind == proto.MsgUpdateDisplay {
		if err := b.disp.UpdateDisplay(); err != nil {
			b.log.WriteLineString("app: display: " + err.Error())
		}
	}
	if b.cfg.Trace {
		b.log.WriteLineString(fmt.Sprintf("dispatch: %v -> %v", m, out))
	}
	if b.cfg.Observe != nil {
		b.cfg.Observe(m, out)
	}

	for _, o := range out {
		if o.Route() == proto.Remote {
			if err := b.sender.Send(o); err != nil {
				b.log.WriteLineString("app: " + err.Error())
			}
			continue
		}
		b.send(o)
	}
}
