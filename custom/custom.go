// Package custom carries out the keyboard's custom key actions: media keys,
// the sticky Cmd and Ctrl modifiers used by the window switchers, and menu
// navigation.
package custom

import (
	"splitkb/hid"
	"splitkb/kernel"
	"splitkb/keymap"
	"splitkb/multi"
	"splitkb/proto"
)

// MediaQueueLen bounds the consumer reports waiting for the USB task.
const MediaQueueLen = 8

// Kind selects a custom action.
type Kind uint8

const (
	MediaKey Kind = iota
	HoldCmd
	ReleaseCmd
	HoldCtrl
	ReleaseCtrl
	MenuOpen
	MenuClose
	MenuUp
	MenuDown
	MenuSelect
	MenuLeft
	MenuRight
)

func (k Kind) String() string {
	switch k {
	case MediaKey:
		return "media"
	case HoldCmd:
		return "hold_cmd"
	case ReleaseCmd:
		return "release_cmd"
	case HoldCtrl:
		return "hold_ctrl"
	case ReleaseCtrl:
		return "release_ctrl"
	case MenuOpen:
		return "menu_open"
	case MenuClose:
		return "menu_close"
	case MenuUp:
		return "menu_up"
	case MenuDown:
		return "menu_down"
	case MenuSelect:
		return "menu_select"
	case MenuLeft:
		return "menu_left"
	case MenuRight:
		return "menu_right"
	default:
		return "unknown"
	}
}

// Action is the value bound to a custom key. Media is set for MediaKey only.
type Action struct {
	Kind  Kind
	Media hid.MediaKey
}

// Media returns the action sending media key k.
func Media(k hid.MediaKey) Action { return Action{Kind: MediaKey, Media: k} }

// Of returns a payload-free action.
func Of(k Kind) Action { return Action{Kind: k} }

func (a Action) String() string {
	if a.Kind == MediaKey {
		return "media(" + a.Media.String() + ")"
	}
	return a.Kind.String()
}

// Event is a custom event as reported by the layout.
type Event = keymap.CustomEvent[Action]

// State holds the sticky modifiers, the primary flag and the pending media
// reports.
type State struct {
	holdCmd   bool
	holdCtrl  bool
	primary   bool
	lastLayer int
	media     *kernel.Mailbox[hid.MediaReport]
	dropped   uint32
}

// New returns an empty state for a board that is not yet primary.
func New() *State {
	return &State{media: kernel.NewMailbox[hid.MediaReport](MediaQueueLen)}
}

// SetPrimary records whether this board talks to the host.
func (s *State) SetPrimary(p bool) { s.primary = p }

func (s *State) CmdHeld() bool  { return s.holdCmd }
func (s *State) CtrlHeld() bool { return s.holdCtrl }

// Dropped returns the number of media reports lost to a full queue.
func (s *State) Dropped() uint32 { return s.dropped }

// Process applies ev and returns the messages it produces.
func (s *State) Process(ev Event) multi.Multi[proto.Message] {
	switch ev.Kind {
	case keymap.CustomPress:
		return s.press(ev.Value)
	case keymap.CustomRelease:
		return s.release(ev.Value)
	}
	return multi.None[proto.Message]()
}

func (s *State) press(a Action) multi.Multi[proto.Message] {
	switch a.Kind {
	case MediaKey:
		s.pushMedia(hid.ReportFor(a.Media))
	case HoldCmd:
		s.holdCmd = true
		return multi.Of(proto.Of(proto.MsgCmdHeld))
	case HoldCtrl:
		s.holdCtrl = true
		return multi.Of(proto.Of(proto.MsgCtrlHeld))
	case MenuOpen:
		if s.primary {
			return multi.Of(proto.Menu(proto.MenuOpen), proto.DisplaySelect(proto.DisplayMenu))
		}
	case MenuClose:
		return multi.Of(proto.Menu(proto.MenuClose))
	case MenuUp:
		return multi.Of(proto.Menu(proto.MenuUp))
	case MenuDown:
		return multi.Of(proto.Menu(proto.MenuDown))
	case MenuSelect:
		return multi.Of(proto.Menu(proto.MenuSelect))
	case MenuLeft:
		return multi.Of(proto.Menu(proto.MenuLeft))
	case MenuRight:
		return multi.Of(proto.Menu(proto.MenuRight))
	}
	return multi.None[proto.Message]()
}

func (s *State) release(a Action) multi.Multi[proto.Message] {
	switch a.Kind {
	case MediaKey:
		s.pushMedia(hid.MediaReport{})
	case ReleaseCmd:
		s.holdCmd = false
		return multi.Of(proto.Of(proto.MsgCmdReleased))
	case ReleaseCtrl:
		s.holdCtrl = false
		return multi.Of(proto.Of(proto.MsgCtrlReleased))
	}
	return multi.None[proto.Message]()
}

func (s *State) pushMedia(r hid.MediaReport) {
	if !s.media.TrySend(r) {
		s.dropped++
	}
}

// PopMediaReport returns the oldest pending consumer report.
func (s *State) PopMediaReport() (hid.MediaReport, bool) { return s.media.TryRecv() }

// ModifyKbReport adds the sticky modifiers to r.
func (s *State) ModifyKbReport(r *hid.KbReport) {
	if s.holdCmd {
		r.Pressed(keymap.KeyLeftGUI)
	}
	if s.holdCtrl {
		r.Pressed(keymap.KeyLeftCtrl)
	}
}

// CheckLayoutForEvents reports a change of the active layer. Only the
// primary runs the layout, so the secondary never reports.
func (s *State) CheckLayoutForEvents(layer int) multi.Multi[proto.Message] {
	if !s.primary || layer == s.lastLayer {
		return multi.None[proto.Message]()
	}
	s.lastLayer = layer
	return multi.Of(proto.CurrentLayer(proto.LayerFromIndex(layer)))
}
