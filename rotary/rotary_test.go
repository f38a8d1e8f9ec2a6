package rotary

import (
	"testing"

	"splitkb/keymap"
)

var (
	cwKey  = keymap.Coord{Row: 3, Col: 0}
	acwKey = keymap.Coord{Row: 3, Col: 1}
)

func TestDecodeTable(t *testing.T) {
	tests := []struct {
		from, to [2]bool
		want     Direction
		ok       bool
	}{
		{[2]bool{true, false}, [2]bool{false, true}, ACW, true},
		{[2]bool{false, true}, [2]bool{true, false}, ACW, true},
		{[2]bool{true, true}, [2]bool{true, false}, ACW, true},
		{[2]bool{false, false}, [2]bool{false, true}, ACW, true},
		{[2]bool{false, false}, [2]bool{true, true}, CW, true},
		{[2]bool{true, true}, [2]bool{false, false}, CW, true},
		{[2]bool{false, true}, [2]bool{false, false}, CW, true},
		{[2]bool{true, false}, [2]bool{true, true}, CW, true},
		{[2]bool{true, true}, [2]bool{true, true}, 0, false},
		{[2]bool{false, false}, [2]bool{true, false}, 0, false},
	}
	for _, tt := range tests {
		e := New(cwKey, acwKey)
		e.Decode(tt.from[0], tt.from[1])
		got, ok := e.Decode(tt.to[0], tt.to[1])
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf("Decode(%v -> %v) = %v, %v, want %v, %v", tt.from, tt.to, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPollPairsPressWithRelease(t *testing.T) {
	e := New(cwKey, acwKey)
	e.Poll(false, false)
	press := e.Poll(true, true)
	ev, ok := press.Take()
	if !ok || ev != keymap.PressAt(3, 0) {
		t.Fatalf("Poll() = %+v, %v, want press (3,0)", ev, ok)
	}
	rel := e.Release()
	ev, ok = rel.Take()
	if !ok || ev != keymap.ReleaseAt(3, 0) {
		t.Fatalf("Release() = %+v, %v, want release (3,0)", ev, ok)
	}
	if again := e.Release(); !again.Empty() {
		t.Fatalf("Release() not cleared: %d left", again.Len())
	}
}

func TestPollDropsStepWhenReleasesFull(t *testing.T) {
	e := New(cwKey, acwKey)
	presses := 0
	a := false
	for range 8 {
		// (false,false) <-> (true,true) is a clockwise step each way.
		a = !a
		p := e.Poll(a, a)
		presses += p.Len()
	}
	if presses != 4 {
		t.Fatalf("presses = %d, want 4", presses)
	}
	if rel := e.Release(); rel.Len() != 4 {
		t.Fatalf("releases = %d, want 4", rel.Len())
	}
}
