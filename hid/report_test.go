package hid

import (
	"testing"

	"splitkb/keymap"
)

func TestKbReportModifiersAndKeys(t *testing.T) {
	r := FromKeyCodes([]keymap.KeyCode{keymap.KeyLeftShift, keymap.KeyA, keymap.KeyA, keymap.KeyLeftGUI, keymap.KeyB})
	want := KbReport{0x0A, 0, byte(keymap.KeyA), byte(keymap.KeyB), 0, 0, 0, 0}
	if r != want {
		t.Fatalf("FromKeyCodes() = % x, want % x", r, want)
	}
}

func TestKbReportRollOver(t *testing.T) {
	ks := []keymap.KeyCode{keymap.KeyA, keymap.KeyB, keymap.KeyC, keymap.KeyD, keymap.KeyE, keymap.KeyF, keymap.KeyG}
	r := FromKeyCodes(append(ks, keymap.KeyLeftCtrl))
	if !r.RolledOver() {
		t.Fatalf("RolledOver() = false for % x", r)
	}
	for i, c := range r.Keys() {
		if c != errorRollOver {
			t.Fatalf("slot %d = %#x, want %#x", i, c, errorRollOver)
		}
	}
	if r.Modifiers() != 0x01 {
		t.Fatalf("Modifiers() = %#x, want 0x01", r.Modifiers())
	}
}

func TestMediaReportIsBigEndian(t *testing.T) {
	r := ReportFor(MediaPlayPause)
	if r != (MediaReport{0x00, 0xCD}) {
		t.Fatalf("ReportFor(play_pause) = % x", r)
	}
	if r.Usage() != MediaPlayPause || r.IsRelease() {
		t.Fatalf("Usage() = %v, IsRelease() = %v", r.Usage(), r.IsRelease())
	}
	if !(MediaReport{}).IsRelease() {
		t.Fatalf("zero report is not a release")
	}
}
