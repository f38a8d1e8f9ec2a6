package matrix

import (
	"testing"

	"splitkb/keymap"
)

func TestDebouncerNeedsConsecutiveScans(t *testing.T) {
	d := NewDebouncer(DefaultBounce)
	var down State
	down[1][2] = true

	for i := 1; i < DefaultBounce; i++ {
		if d.Update(down) {
			t.Fatalf("accepted after %d scans", i)
		}
	}
	if !d.Update(down) {
		t.Fatalf("not accepted after %d scans", DefaultBounce)
	}
	evs := d.Events(nil)
	if len(evs) != 1 || evs[0] != keymap.PressAt(1, 2) {
		t.Fatalf("Events() = %v", evs)
	}
	if evs := d.Events(nil); len(evs) != 0 {
		t.Fatalf("Events() repeated: %v", evs)
	}
}

func TestDebouncerBounceRestartsCount(t *testing.T) {
	d := NewDebouncer(3)
	var down State
	down[0][0] = true

	d.Update(down)
	d.Update(down)
	d.Update(State{}) // bounced back
	d.Update(down)
	if d.Update(down) {
		t.Fatalf("accepted without 3 consecutive scans")
	}
	if !d.Update(down) {
		t.Fatalf("not accepted after 3 consecutive scans")
	}
	if d.Current().Pressed() != 1 {
		t.Fatalf("Pressed() = %d, want 1", d.Current().Pressed())
	}
}

func TestDebouncerRelease(t *testing.T) {
	d := NewDebouncer(1)
	var down State
	down[3][6] = true
	d.Update(down)
	d.Events(nil)
	d.Update(State{})
	evs := d.Events(nil)
	if len(evs) != 1 || evs[0] != keymap.ReleaseAt(3, 6) {
		t.Fatalf("Events() = %v", evs)
	}
}

func TestStatePressedOnValues(t *testing.T) {
	if n := (State{}).Pressed(); n != 0 {
		t.Fatalf("empty Pressed() = %d", n)
	}
	d := NewDebouncer(1)
	var down State
	down[0][0], down[2][3] = true, true
	d.Update(down)
	if n := d.Current().Pressed(); n != 2 {
		t.Fatalf("Current().Pressed() = %d, want 2", n)
	}
}
