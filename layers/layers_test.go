package layers

import (
	"testing"

	"splitkb/custom"
	"splitkb/keymap"
	"splitkb/proto"
)

func TestKeymapCoversEveryLayer(t *testing.T) {
	if got := len(Keymap()); got != proto.LayerCount {
		t.Fatalf("len(Keymap()) = %d, want %d", got, proto.LayerCount)
	}
	if proto.LayerFromIndex(CS) != proto.LayerCS || proto.LayerFromIndex(Tabbing) != proto.LayerTabbing {
		t.Fatalf("layer indices do not match proto.Layer")
	}
}

func TestEncoderTurnsVolume(t *testing.T) {
	l := keymap.NewLayout(Keymap())
	l.Event(keymap.PressAt(EncoderCW.Row, EncoderCW.Col))
	l.Tick()
	if got := l.KeyCodes(nil); len(got) != 1 || got[0] != keymap.KeyVolumeUp {
		t.Fatalf("clockwise = %v, want [%v]", got, keymap.KeyVolumeUp)
	}
}

func TestCmdTabSwitcher(t *testing.T) {
	l := keymap.NewLayout(Keymap())
	st := custom.New()
	st.SetPrimary(true)
	step := func(e keymap.Event) {
		l.Event(e)
		st.Process(l.Tick())
	}

	step(keymap.PressAt(3, 7)) // nav layer
	step(keymap.PressAt(2, 7))
	if !st.CmdHeld() || l.DefaultLayer() != Tabbing {
		t.Fatalf("after start: cmd = %v default = %d", st.CmdHeld(), l.DefaultLayer())
	}
	step(keymap.ReleaseAt(2, 7))
	step(keymap.ReleaseAt(3, 7))
	if l.CurrentLayer() != Tabbing {
		t.Fatalf("CurrentLayer() = %d, want %d", l.CurrentLayer(), Tabbing)
	}

	step(keymap.PressAt(2, 7))
	step(keymap.ReleaseAt(2, 7))
	if st.CmdHeld() || l.DefaultLayer() != Default {
		t.Fatalf("after end: cmd = %v default = %d", st.CmdHeld(), l.DefaultLayer())
	}
}

func TestMenuKeyEntersMenuLayer(t *testing.T) {
	l := keymap.NewLayout(Keymap())
	l.Event(keymap.PressAt(1, 6))
	ev := l.Tick()
	if ev.Kind != keymap.CustomPress || ev.Value != custom.Of(custom.MenuOpen) {
		t.Fatalf("menu key = %+v", ev)
	}
	if l.DefaultLayer() != Menu {
		t.Fatalf("DefaultLayer() = %d, want %d", l.DefaultLayer(), Menu)
	}
}
