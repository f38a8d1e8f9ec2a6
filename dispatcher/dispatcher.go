// Package dispatcher fans every bus message out to the subsystems of one
// half and draws the selected status page.
package dispatcher

import (
	"splitkb/display"
	"splitkb/leds"
	"splitkb/menu"
	"splitkb/multi"
	"splitkb/proto"
)

// Handler reacts to a bus message with zero or more messages.
type Handler interface {
	HandleEvent(m proto.Message) multi.Multi[proto.Message]
}

// Page is a handler that can draw itself.
type Page interface {
	Handler
	Render(s display.Screen) error
}

// Dispatcher owns the subsystems of one half.
type Dispatcher struct {
	oled  *OLED
	info  *Info
	leds  *leds.LEDs
	menu  *menu.Menu
	bongo *Bongo

	handlers  [5]Handler
	displayed proto.DisplayedState
}

// New returns a dispatcher drawing on panel and lighting strip.
func New(panel Panel, strip leds.Strip) *Dispatcher {
	d := &Dispatcher{
		oled:  NewOLED(panel),
		info:  NewInfo(),
		leds:  leds.New(strip),
		menu:  menu.New(),
		bongo: NewBongo(),
	}
	d.handlers = [5]Handler{d.oled, d.info, d.leds, d.menu, d.bongo}
	return d
}

func (d *Dispatcher) OLED() *OLED                     { return d.oled }
func (d *Dispatcher) Info() *Info                     { return d.info }
func (d *Dispatcher) LEDs() *leds.LEDs                { return d.leds }
func (d *Dispatcher) Menu() *menu.Menu                { return d.menu }
func (d *Dispatcher) Bongo() *Bongo                   { return d.bongo }
func (d *Dispatcher) Displayed() proto.DisplayedState { return d.displayed }

// Dispatch hands m to every subsystem in a fixed order (panel, info, LEDs,
// menu, bongo) and appends their reactions to dst in that order.
func (d *Dispatcher) Dispatch(m proto.Message, dst []proto.Message) []proto.Message {
	for _, h := range d.handlers {
		out := h.HandleEvent(m)
		dst = out.AppendTo(dst)
	}
	switch m.Kind {
	case proto.MsgDisplaySelect, proto.MsgSecondaryDisplaySelect:
		d.displayed = m.Page
	}
	return dst
}

// UpdateDisplay draws the selected page once the panel is initialised.
func (d *Dispatcher) UpdateDisplay() error {
	return d.oled.Display(d.page())
}

func (d *Dispatcher) page() Page {
	switch d.displayed {
	case proto.DisplayMenu:
		return d.menu
	case proto.DisplayBongo:
		return d.bongo
	case proto.DisplayLeds:
		return d.leds
	}
	return d.info
}
