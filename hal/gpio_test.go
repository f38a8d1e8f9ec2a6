package hal

import (
	"testing"

	"splitkb/matrix"
)

func TestPinMatrixScan(t *testing.T) {
	sw := NewSwitchBoard()
	m := NewPinMatrix(sw.Rows(), sw.Cols(), nil)

	sw.Set(0, 0, true)
	sw.Set(2, 5, true)
	sw.Set(3, 6, true)

	var s matrix.State
	m.Scan(&s)
	if s.Pressed() != 3 || !s[0][0] || !s[2][5] || !s[3][6] {
		t.Fatalf("Scan() = %v", s)
	}

	sw.Set(2, 5, false)
	m.Scan(&s)
	if s.Pressed() != 2 || s[2][5] {
		t.Fatalf("Scan() after release = %v", s)
	}
}

func TestPinMatrixNoGhostingAcrossRows(t *testing.T) {
	sw := NewSwitchBoard()
	m := NewPinMatrix(sw.Rows(), sw.Cols(), nil)
	sw.Set(1, 3, true)

	var s matrix.State
	m.Scan(&s)
	for i := range s {
		if i != 1 && s[i][3] {
			t.Fatalf("row %d reads column 3 closed", i)
		}
	}
}

func TestPinMatrixSettles(t *testing.T) {
	sw := NewSwitchBoard()
	n := 0
	m := NewPinMatrix(sw.Rows(), sw.Cols(), func() { n++ })
	var s matrix.State
	m.Scan(&s)
	if n != matrix.Rows {
		t.Fatalf("settle ran %d times, want %d", n, matrix.Rows)
	}
}

func TestVirtualEncoderCycles(t *testing.T) {
	type pins struct{ a, b bool }
	e := NewVirtualEncoder()
	cw := []pins{{true, true}, {false, false}, {true, true}}
	for i, want := range cw {
		e.Turn(true)
		if a, b := e.Read(); (pins{a, b}) != want {
			t.Fatalf("cw step %d: Read() = %v %v, want %v", i, a, b, want)
		}
	}
	acw := []pins{{true, false}, {false, true}, {true, false}}
	for i, want := range acw {
		e.Turn(false)
		if a, b := e.Read(); (pins{a, b}) != want {
			t.Fatalf("acw step %d: Read() = %v %v, want %v", i, a, b, want)
		}
	}
	if n := len(e.Edges()); n != len(cw)+len(acw) {
		t.Fatalf("edges = %d, want %d", n, len(cw)+len(acw))
	}
}
