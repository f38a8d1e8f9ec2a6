package dispatcher

import (
	"splitkb/display"
	"splitkb/multi"
	"splitkb/proto"
)

// SleepAfter is the number of display ticks without a key press after which
// the primary puts both halves to sleep.
const SleepAfter = 3 * 60 * 24

// Hand names the half a board sits in.
type Hand uint8

const (
	HandUnknown Hand = iota
	HandLeft
	HandRight
)

func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	default:
		return "?"
	}
}

// Info tracks role and modifier state and draws the info page. On the
// secondary it also forwards local key events to the primary.
type Info struct {
	hand    Hand
	primary bool
	usb     bool
	layer   proto.Layer
	cmd     bool
	ctrl    bool
	idle    uint32
	asleep  bool
}

func NewInfo() *Info { return &Info{} }

func (n *Info) Hand() Hand                  { return n.hand }
func (n *Info) USB() bool                   { return n.usb }
func (n *Info) Layer() proto.Layer          { return n.layer }
func (n *Info) Asleep() bool                { return n.asleep }
func (n *Info) Idle() uint32                { return n.idle }
func (n *Info) Modifiers() (cmd, ctrl bool) { return n.cmd, n.ctrl }

func (n *Info) HandleEvent(m proto.Message) multi.Multi[proto.Message] {
	var out multi.Multi[proto.Message]
	switch m.Kind {
	case proto.MsgYouArePrimary:
		n.hand, n.primary = HandLeft, true
		out.Append(proto.Of(proto.MsgYouAreSecondary))
	case proto.MsgYouAreSecondary:
		n.hand, n.primary = HandRight, false
	case proto.MsgUsbConnected:
		n.usb = m.On
	case proto.MsgMatrixKeyPress:
		n.press(&out)
		if !n.usb {
			out.Append(proto.SecondaryKeyPress(m.Row, mirror(m.Col)))
		}
	case proto.MsgMatrixKeyRelease:
		if !n.usb {
			out.Append(proto.SecondaryKeyRelease(m.Row, mirror(m.Col)))
		}
	case proto.MsgSecondaryKeyPress:
		n.press(&out)
	case proto.MsgCurrentLayer:
		n.layer = m.Layer
		out.Append(proto.SecondaryCurrentLayer(m.Layer))
	case proto.MsgSecondaryCurrentLayer:
		n.layer = m.Layer
	case proto.MsgCmdHeld:
		n.cmd = true
	case proto.MsgCmdReleased:
		n.cmd = false
	case proto.MsgCtrlHeld:
		n.ctrl = true
	case proto.MsgCtrlReleased:
		n.ctrl = false
	case proto.MsgPing:
		out.Append(proto.Of(proto.MsgPong))
	case proto.MsgUpdateDisplay:
		if !n.primary || n.asleep {
			break
		}
		if n.idle < SleepAfter {
			n.idle++
		}
		if n.idle >= SleepAfter {
			n.asleep = true
			out.Append(proto.Of(proto.MsgSleep))
		}
	}
	return out
}

func (n *Info) press(out *multi.Multi[proto.Message]) {
	n.idle = 0
	if n.asleep {
		n.asleep = false
		out.Append(proto.Of(proto.MsgWake))
	}
}

// mirror maps a local column of the secondary onto the full matrix.
func mirror(col uint8) uint8 { return proto.MatrixCols - 1 - col }

// Render draws the info page for a portrait panel.
func (n *Info) Render(s display.Screen) error {
	s.Clear()
	s.DrawText("hand:", 0, 0)
	s.DrawText(n.hand.String(), 36, 0)
	s.DrawText("usb:", 0, 13)
	s.DrawText(yesNo(n.usb), 30, 13)
	s.DrawText("layer:", 0, 26)
	s.DrawText(n.layer.String(), 0, 39)
	if n.primary {
		s.DrawText("cmd:", 0, 52)
		s.DrawText(yesNo(n.cmd), 30, 52)
		s.DrawText("ctrl:", 0, 65)
		s.DrawText(yesNo(n.ctrl), 36, 65)
	}
	return s.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
