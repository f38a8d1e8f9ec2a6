package link

import (
	"bytes"
	"errors"
	"testing"

	"splitkb/proto"
)

type failWriter struct{ after int }

func (w *failWriter) WriteByte(c byte) error {
	if w.after == 0 {
		return errors.New("uart gone")
	}
	w.after--
	return nil
}

func feed(r *Receiver, b []byte) []proto.Message {
	var out []proto.Message
	for _, c := range b {
		if m, ok := r.ReadEvent(c); ok {
			out = append(out, m)
		}
	}
	return out
}

func TestSendReceiveInOrder(t *testing.T) {
	var wire bytes.Buffer
	s := NewSender(&wire)
	msgs := []proto.Message{
		proto.SecondaryKeyPress(3, 13),
		proto.Of(proto.MsgPong),
		proto.SecondaryLED(proto.SolidColor(10, 20, 30)),
		proto.SecondaryCurrentLayer(proto.LayerSymbols),
		proto.SecondaryMenuOpen(proto.DisplayLeds),
	}
	for _, m := range msgs {
		if err := s.Send(m); err != nil {
			t.Fatalf("Send(%v) err = %v", m, err)
		}
	}
	if s.Sent() != uint32(len(msgs)) {
		t.Fatalf("Sent() = %d, want %d", s.Sent(), len(msgs))
	}

	var r Receiver
	got := feed(&r, wire.Bytes())
	if len(got) != len(msgs) {
		t.Fatalf("received %d messages, want %d", len(got), len(msgs))
	}
	for i := range msgs {
		if got[i] != msgs[i] {
			t.Fatalf("message %d = %v, want %v", i, got[i], msgs[i])
		}
	}
	if r.Buffered() != 0 {
		t.Fatalf("Buffered() = %d, want 0", r.Buffered())
	}
}

func TestSendWrapsWriterError(t *testing.T) {
	s := NewSender(&failWriter{after: 1})
	err := s.Send(proto.SecondaryKeyPress(1, 1))
	if err == nil {
		t.Fatalf("Send() err = nil, want error")
	}
	if s.Sent() != 0 {
		t.Fatalf("Sent() = %d, want 0", s.Sent())
	}
	if err := NewSender(nil).Send(proto.Of(proto.MsgPing)); !errors.Is(err, ErrNoWriter) {
		t.Fatalf("Send() err = %v, want %v", err, ErrNoWriter)
	}
}

func TestSendRefusesUndecodableMessage(t *testing.T) {
	var w bytes.Buffer
	s := NewSender(&w)
	m := proto.Message{Kind: proto.MsgSecondaryMenu, Menu: proto.MenuAction{Kind: proto.MenuDown}}
	if err := s.Send(m); !errors.Is(err, proto.ErrInvalid) {
		t.Fatalf("Send(%v) err = %v, want %v", m, err, proto.ErrInvalid)
	}
	if w.Len() != 0 || s.Sent() != 0 {
		t.Fatalf("wrote %d bytes, Sent() = %d", w.Len(), s.Sent())
	}
}

func TestReceiverResyncsAfterGarbage(t *testing.T) {
	var r Receiver
	stream := []byte{0x00, 0xff, 0xee}
	stream = proto.AppendMessage(stream, proto.Of(proto.MsgBongo))

	got := feed(&r, stream)
	if len(got) != 1 || got[0] != proto.Of(proto.MsgBongo) {
		t.Fatalf("received %v, want [bongo]", got)
	}
	if r.Stats().Resyncs != 3 {
		t.Fatalf("Resyncs = %d, want 3", r.Stats().Resyncs)
	}
}

func TestReceiverOverflowResetsBuffer(t *testing.T) {
	var r Receiver
	// Fill the buffer with an incomplete message.
	stuck := []byte{byte(proto.MsgSetDefaultLayer)}
	for len(stuck) < BufferSize {
		stuck = append(stuck, 0x80)
	}
	r.n = copy(r.buf[:], stuck)

	m, ok := r.ReadEvent(byte(proto.MsgPing))
	if !ok || m != proto.Of(proto.MsgPing) {
		t.Fatalf("ReadEvent() = %v, %v, want ping, true", m, ok)
	}
	if r.Stats().Overflows != 1 {
		t.Fatalf("Overflows = %d, want 1", r.Stats().Overflows)
	}
}
