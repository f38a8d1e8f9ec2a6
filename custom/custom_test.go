package custom

import (
	"fmt"
	"testing"

	"splitkb/hid"
	"splitkb/keymap"
	"splitkb/multi"
	"splitkb/proto"
)

func press(a Action) Event   { return Event{Kind: keymap.CustomPress, Value: a} }
func release(a Action) Event { return Event{Kind: keymap.CustomRelease, Value: a} }

func msgs(m multi.Multi[proto.Message]) string { return fmt.Sprint(m.AppendTo(nil)) }

func TestMediaKeyQueuesPressAndRelease(t *testing.T) {
	s := New()
	s.Process(press(Media(hid.MediaNextTrack)))
	s.Process(release(Media(hid.MediaNextTrack)))
	r, ok := s.PopMediaReport()
	if !ok || r != hid.ReportFor(hid.MediaNextTrack) {
		t.Fatalf("first report = % x, %v", r, ok)
	}
	r, ok = s.PopMediaReport()
	if !ok || !r.IsRelease() {
		t.Fatalf("second report = % x, %v, want release", r, ok)
	}
	if _, ok := s.PopMediaReport(); ok {
		t.Fatalf("queue not drained")
	}
}

func TestMediaQueueDropsNewest(t *testing.T) {
	s := New()
	for range MediaQueueLen {
		s.Process(press(Media(hid.MediaPlayPause)))
	}
	s.Process(press(Media(hid.MediaStop)))
	if s.Dropped() != 1 {
		t.Fatalf("Dropped() = %d, want 1", s.Dropped())
	}
	for range MediaQueueLen {
		r, _ := s.PopMediaReport()
		if r.Usage() != hid.MediaPlayPause {
			t.Fatalf("kept %v, want play_pause", r.Usage())
		}
	}
}

func TestStickyCmd(t *testing.T) {
	s := New()
	if got := msgs(s.Process(press(Of(HoldCmd)))); got != msgs(multi.Of(proto.Of(proto.MsgCmdHeld))) {
		t.Fatalf("HoldCmd press = %s", got)
	}
	// Releasing the key that started the switcher keeps Cmd held.
	if got := s.Process(release(Of(HoldCmd))); !got.Empty() {
		t.Fatalf("HoldCmd release = %s", msgs(got))
	}
	var r hid.KbReport
	s.ModifyKbReport(&r)
	if r.Modifiers() != keymap.KeyLeftGUI.ModifierBit() {
		t.Fatalf("modifiers = %#x", r.Modifiers())
	}
	s.Process(press(Of(ReleaseCmd)))
	if !s.CmdHeld() {
		t.Fatalf("ReleaseCmd acted on press")
	}
	if got := msgs(s.Process(release(Of(ReleaseCmd)))); got != msgs(multi.Of(proto.Of(proto.MsgCmdReleased))) {
		t.Fatalf("ReleaseCmd release = %s", got)
	}
	r = hid.KbReport{}
	s.ModifyKbReport(&r)
	if r.Modifiers() != 0 {
		t.Fatalf("modifiers after release = %#x", r.Modifiers())
	}
}

func TestStickyCtrl(t *testing.T) {
	s := New()
	s.Process(press(Of(HoldCtrl)))
	var r hid.KbReport
	s.ModifyKbReport(&r)
	if r.Modifiers() != keymap.KeyLeftCtrl.ModifierBit() {
		t.Fatalf("modifiers = %#x", r.Modifiers())
	}
	got := s.Process(release(Of(ReleaseCtrl)))
	if m, _ := got.Take(); m.Kind != proto.MsgCtrlReleased || s.CtrlHeld() {
		t.Fatalf("ReleaseCtrl release = %v", m)
	}
}

func TestMenuOpenOnlyOnPrimary(t *testing.T) {
	s := New()
	if got := s.Process(press(Of(MenuOpen))); !got.Empty() {
		t.Fatalf("secondary MenuOpen = %s", msgs(got))
	}
	s.SetPrimary(true)
	want := msgs(multi.Of(proto.Menu(proto.MenuOpen), proto.DisplaySelect(proto.DisplayMenu)))
	if got := msgs(s.Process(press(Of(MenuOpen)))); got != want {
		t.Fatalf("MenuOpen = %s, want %s", got, want)
	}
	if got := msgs(s.Process(press(Of(MenuSelect)))); got != msgs(multi.Of(proto.Menu(proto.MenuSelect))) {
		t.Fatalf("MenuSelect = %s", got)
	}
}

func TestCheckLayoutForEvents(t *testing.T) {
	s := New()
	if got := s.CheckLayoutForEvents(2); !got.Empty() {
		t.Fatalf("secondary reported layer change")
	}
	s.SetPrimary(true)
	got := s.CheckLayoutForEvents(2)
	if m, _ := got.Take(); m != proto.CurrentLayer(proto.LayerNavigation) {
		t.Fatalf("CheckLayoutForEvents(2) = %v", m)
	}
	if again := s.CheckLayoutForEvents(2); !again.Empty() {
		t.Fatalf("unchanged layer reported again")
	}
}
