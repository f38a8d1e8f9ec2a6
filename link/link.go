// Package link frames proto messages over the byte stream between the two
// halves. There is no length prefix, checksum or acknowledgement: the
// receiver accumulates bytes until a complete message decodes.
package link

import (
	"errors"
	"fmt"
	"io"

	"splitkb/proto"
)

// BufferSize is the size of the transmit and receive buffers.
const BufferSize = 64

// ErrNoWriter is returned by Send when the sender has no byte sink.
var ErrNoWriter = errors.New("link: no writer")

// Sender encodes messages and writes them byte by byte. Each WriteByte is
// expected to block until the UART accepts the byte.
type Sender struct {
	w    io.ByteWriter
	buf  [BufferSize]byte
	sent uint32
}

// NewSender returns a sender writing to w.
func NewSender(w io.ByteWriter) *Sender {
	return &Sender{w: w}
}

// Send writes one message.
func (s *Sender) Send(m proto.Message) error {
	if s.w == nil {
		return ErrNoWriter
	}
	b := proto.AppendMessage(s.buf[:0], m)
	if len(b) == 0 {
		return fmt.Errorf("link: send %v: %w", m, proto.ErrInvalid)
	}
	for i, c := range b {
		if err := s.w.WriteByte(c); err != nil {
			return fmt.Errorf("link: send %v byte %d: %w", m.Kind, i, err)
		}
	}
	s.sent++
	return nil
}

// Sent returns the number of messages written.
func (s *Sender) Sent() uint32 { return s.sent }

// Stats counts receiver events.
type Stats struct {
	Messages  uint32
	Overflows uint32
	Resyncs   uint32
}

// Receiver reassembles messages from single received bytes.
type Receiver struct {
	buf   [BufferSize]byte
	n     int
	stats Stats
}

// ReadEvent appends one received byte and returns a message once one is
// complete. A full buffer is discarded before the byte is stored, and a
// prefix that can never decode loses its first byte so the stream can
// resynchronise.
func (r *Receiver) ReadEvent(b byte) (proto.Message, bool) {
	if r.n == len(r.buf) {
		r.n = 0
		r.stats.Overflows++
	}
	r.buf[r.n] = b
	r.n++

	for r.n > 0 {
		m, used, err := proto.Decode(r.buf[:r.n])
		switch {
		case err == nil:
			r.n = copy(r.buf[:], r.buf[used:r.n])
			r.stats.Messages++
			return m, true
		case errors.Is(err, proto.ErrShort):
			return proto.Message{}, false
		default:
			r.n = copy(r.buf[:], r.buf[1:r.n])
			r.stats.Resyncs++
		}
	}
	return proto.Message{}, false
}

// Buffered returns the number of bytes waiting for a complete message.
func (r *Receiver) Buffered() int { return r.n }

// Stats returns the receiver counters.
func (r *Receiver) Stats() Stats { return r.stats }

// Reset drops any partial message.
func (r *Receiver) Reset() { r.n = 0 }
