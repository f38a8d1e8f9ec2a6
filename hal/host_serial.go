//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
	"time"

	"github.com/tarm/serial"
)

// pipeStall is how long a write waits on a full pipe before the peer is
// considered gone.
const pipeStall = 500 * time.Millisecond

// pipeLink is one end of an in-process serial cable. Writes block while the
// cable is full, like a UART waiting on its transmit register.
type pipeLink struct {
	tx    chan<- byte
	rx    <-chan byte
	stall time.Duration
}

func newPipe(capacity int) (a, b SerialLink) {
	ab := make(chan byte, capacity)
	ba := make(chan byte, capacity)
	return pipeLink{tx: ab, rx: ba, stall: pipeStall}, pipeLink{tx: ba, rx: ab, stall: pipeStall}
}

func (p pipeLink) WriteByte(b byte) error {
	select {
	case p.tx <- b:
		return nil
	default:
	}
	t := time.NewTimer(p.stall)
	defer t.Stop()
	select {
	case p.tx <- b:
		return nil
	case <-t.C:
		return ErrBusy
	}
}

func (p pipeLink) Received() <-chan byte { return p.rx }

// portLink talks to a real peer over a serial device.
type portLink struct {
	mu   sync.Mutex
	port *serial.Port
	rx   chan byte
	one  [1]byte
}

func openPortLink(name string, baud int) (*portLink, error) {
	if baud <= 0 {
		baud = 9600
	}
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	l := &portLink{port: port, rx: make(chan byte, 256)}
	go l.readLoop()
	return l, nil
}

func (l *portLink) readLoop() {
	defer close(l.rx)
	var buf [64]byte
	for {
		n, err := l.port.Read(buf[:])
		for _, b := range buf[:n] {
			l.rx <- b
		}
		if err != nil {
			return
		}
	}
}

func (l *portLink) WriteByte(b byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.one[0] = b
	_, err := l.port.Write(l.one[:])
	return err
}

func (l *portLink) Received() <-chan byte { return l.rx }

func (l *portLink) Close() error { return l.port.Close() }
