//go:build !tinygo

package hal

import (
	"bytes"
	"io"
	"testing"
	"time"

	"splitkb/link"
	"splitkb/matrix"
	"splitkb/proto"
)

func TestSwitchFor(t *testing.T) {
	tests := []struct {
		r     rune
		right bool
		row   int
		col   int
	}{
		{'1', false, 0, 0},
		{'u', false, 1, 6},
		{'b', false, 3, 4},
		{'!', true, 0, 6},
		{'U', true, 1, 0},
		{'M', true, 3, 0},
	}
	for _, tt := range tests {
		right, row, col, ok := switchFor(tt.r)
		if !ok || right != tt.right || row != tt.row || col != tt.col {
			t.Fatalf("switchFor(%q) = %v %d %d %v, want %v %d %d", tt.r, right, row, col, ok, tt.right, tt.row, tt.col)
		}
	}
	if _, _, _, ok := switchFor('~'); ok {
		t.Fatalf("switchFor('~') matched")
	}
}

func TestTapReleasesAfterTapTicks(t *testing.T) {
	left, right := NewPair(io.Discard)
	r := Rig{left, right}
	if !r.TapRune('Q') {
		t.Fatalf("TapRune('Q') = false")
	}

	var s matrix.State
	right.Matrix().Scan(&s)
	if !s[1][6] || s.Pressed() != 1 {
		t.Fatalf("scan after tap = %v", s)
	}
	left.Matrix().Scan(&s)
	if s.Pressed() != 0 {
		t.Fatalf("left half saw the tap: %v", s)
	}

	right.Step(TapTicks - 1)
	right.Matrix().Scan(&s)
	if !s[1][6] {
		t.Fatalf("released early")
	}
	right.Step(1)
	right.Matrix().Scan(&s)
	if s.Pressed() != 0 {
		t.Fatalf("still pressed after %d ticks: %v", TapTicks, s)
	}
}

func TestEncoderRune(t *testing.T) {
	left, right := NewPair(io.Discard)
	r := Rig{left, right}
	r.TapRune('{')
	select {
	case <-right.Encoder().Edges():
	default:
		t.Fatalf("right encoder did not turn")
	}
	if a, b := right.Encoder().Read(); !a || !b {
		t.Fatalf("Read() = %v %v, want true true", a, b)
	}
}

func TestPipeCarriesBytesBothWays(t *testing.T) {
	left, right := NewPair(io.Discard)
	if err := left.Serial().WriteByte(0x42); err != nil {
		t.Fatal(err)
	}
	if err := right.Serial().WriteByte(0x24); err != nil {
		t.Fatal(err)
	}
	if b := <-right.Serial().Received(); b != 0x42 {
		t.Fatalf("right got %#x", b)
	}
	if b := <-left.Serial().Received(); b != 0x24 {
		t.Fatalf("left got %#x", b)
	}
}

func TestPipeWriteWaitsForReader(t *testing.T) {
	a, b := newPipe(2)
	go func() {
		time.Sleep(20 * time.Millisecond)
		for range 5 {
			<-b.Received()
		}
	}()
	for i := range 7 {
		if err := a.WriteByte(byte(i)); err != nil {
			t.Fatalf("WriteByte(%d) = %v", i, err)
		}
	}
}

func TestPipeSendsWholeFrameThroughSmallBuffer(t *testing.T) {
	a, b := newPipe(1)
	want := proto.AppendMessage(nil, proto.MatrixKeyPress(2, 5))
	got := make(chan []byte)
	go func() {
		var buf []byte
		for len(buf) < len(want) {
			buf = append(buf, <-b.Received())
		}
		got <- buf
	}()
	if err := link.NewSender(a).Send(proto.MatrixKeyPress(2, 5)); err != nil {
		t.Fatalf("Send() = %v", err)
	}
	if buf := <-got; !bytes.Equal(buf, want) {
		t.Fatalf("received % x, want % x", buf, want)
	}
}

func TestPipeStalledIsBusy(t *testing.T) {
	a, _ := newPipe(1)
	p := a.(pipeLink)
	p.stall = time.Millisecond
	if err := p.WriteByte(1); err != nil {
		t.Fatal(err)
	}
	if err := p.WriteByte(2); err != ErrBusy {
		t.Fatalf("WriteByte on stalled pipe = %v, want %v", err, ErrBusy)
	}
}
