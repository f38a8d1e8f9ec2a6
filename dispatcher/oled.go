package dispatcher

import (
	"tinygo.org/x/drivers"

	"splitkb/display"
	"splitkb/multi"
	"splitkb/proto"
)

// Panel is the status display as seen by the dispatcher.
type Panel interface {
	display.Screen
	Init() error
	SetRotation(r drivers.Rotation) error
}

// OLED brings the panel up on LateInit and turns it to match the board's
// role. Pages are drawn only once it is ready.
type OLED struct {
	panel Panel
	ready bool
	err   error
}

func NewOLED(p Panel) *OLED { return &OLED{panel: p} }

// Ready reports whether the panel has been initialised.
func (o *OLED) Ready() bool { return o.ready }

// Err returns the last panel error.
func (o *OLED) Err() error { return o.err }

func (o *OLED) HandleEvent(m proto.Message) multi.Multi[proto.Message] {
	switch m.Kind {
	case proto.MsgLateInit:
		if err := o.panel.Init(); err != nil {
			o.err = err
			return multi.None[proto.Message]()
		}
		o.panel.Clear()
		o.note(o.panel.Flush())
		o.ready = true
		return multi.Of(proto.Of(proto.MsgInitTimers))
	case proto.MsgYouArePrimary:
		o.rotate(drivers.Rotation270)
	case proto.MsgYouAreSecondary:
		o.rotate(drivers.Rotation90)
	}
	return multi.None[proto.Message]()
}

func (o *OLED) rotate(r drivers.Rotation) {
	if !o.ready {
		return
	}
	if err := o.panel.SetRotation(r); err != nil {
		o.err = err
		return
	}
	o.panel.Clear()
	o.note(o.panel.Flush())
}

// Display draws p if the panel is ready.
func (o *OLED) Display(p Page) error {
	if !o.ready {
		return nil
	}
	err := p.Render(o.panel)
	o.note(err)
	return err
}

func (o *OLED) note(err error) {
	if err != nil {
		o.err = err
	}
}
