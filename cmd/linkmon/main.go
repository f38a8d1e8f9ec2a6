// Command linkmon decodes the messages one keyboard half sends to its peer.
// Wire the monitor's RX to the TX of a half and run
//
//	linkmon -port /dev/ttyUSB0
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.bug.st/serial"

	"splitkb/link"
	"splitkb/proto"
)

func main() {
	var (
		list  = flag.Bool("list", false, "List serial ports and exit.")
		port  = flag.String("port", "", "Serial device to monitor.")
		baud  = flag.Int("baud", 9600, "Baud rate of the link.")
		send  = flag.String("send", "", "Comma separated messages to send first: ping, late_init, primary, secondary.")
		stamp = flag.Bool("t", false, "Prefix each message with the time since start.")
	)
	flag.Parse()

	if *list {
		ports, err := serial.GetPortsList()
		if err != nil {
			fatalf("list ports: %v", err)
		}
		if len(ports) == 0 {
			fmt.Println("no serial ports found")
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}
	if *port == "" {
		fatalf("usage: linkmon -port /dev/ttyUSB0 [-baud 9600] [-send ping] [-t]\n       linkmon -list")
	}

	out, err := parseMessages(*send)
	if err != nil {
		fatalf("%v", err)
	}

	p, err := serial.Open(*port, &serial.Mode{BaudRate: *baud})
	if err != nil {
		fatalf("open %s: %v", *port, err)
	}
	defer p.Close()
	if err := p.SetReadTimeout(100 * time.Millisecond); err != nil {
		fatalf("set timeout: %v", err)
	}

	s := link.NewSender(portWriter{p})
	for _, m := range out {
		if err := s.Send(m); err != nil {
			fatalf("send: %v", err)
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	var r link.Receiver
	m := newMonitor(&r, os.Stdout, *stamp)
	buf := make([]byte, link.BufferSize)
	for {
		select {
		case <-stop:
			m.summary()
			return
		default:
		}
		n, err := p.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			fatalf("read: %v", err)
		}
		m.feed(buf[:n])
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// portWriter adapts a serial port to the byte writer the link sender uses.
type portWriter struct{ p serial.Port }

func (w portWriter) WriteByte(b byte) error {
	_, err := w.p.Write([]byte{b})
	return err
}

type monitor struct {
	r     *link.Receiver
	w     io.Writer
	stamp bool
	start time.Time
	now   func() time.Time
}

func newMonitor(r *link.Receiver, w io.Writer, stamp bool) *monitor {
	return &monitor{r: r, w: w, stamp: stamp, start: time.Now(), now: time.Now}
}

// feed decodes b and prints every completed message with its route.
func (m *monitor) feed(b []byte) {
	for _, c := range b {
		msg, ok := m.r.ReadEvent(c)
		if !ok {
			continue
		}
		if m.stamp {
			fmt.Fprintf(m.w, "%10.3f ", m.now().Sub(m.start).Seconds())
		}
		fmt.Fprintf(m.w, "%-6s %v\n", msg.Route(), msg)
	}
}

func (m *monitor) summary() {
	st := m.r.Stats()
	fmt.Fprintf(m.w, "messages=%d overflows=%d resyncs=%d\n", st.Messages, st.Overflows, st.Resyncs)
}

func parseMessages(s string) ([]proto.Message, error) {
	if s == "" {
		return nil, nil
	}
	var out []proto.Message
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "ping":
			out = append(out, proto.Of(proto.MsgPing))
		case "late_init":
			out = append(out, proto.Of(proto.MsgLateInit))
		case "primary":
			out = append(out, proto.Of(proto.MsgYouArePrimary))
		case "secondary":
			out = append(out, proto.Of(proto.MsgYouAreSecondary))
		default:
			return nil, fmt.Errorf("unknown message %q", name)
		}
	}
	return out, nil
}
