package main

import (
	"bytes"
	"strings"
	"testing"

	"splitkb/link"
	"splitkb/proto"
)

func TestMonitorPrintsMessages(t *testing.T) {
	var wire bytes.Buffer
	s := link.NewSender(&wire)
	for _, m := range []proto.Message{
		proto.SecondaryKeyPress(1, 13),
		proto.SecondaryCurrentLayer(proto.LayerNumbers),
		proto.Of(proto.MsgPong),
	} {
		if err := s.Send(m); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	var r link.Receiver
	m := newMonitor(&r, &out, false)
	b := wire.Bytes()
	m.feed(b[:3])
	m.feed(b[3:])
	m.summary()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("output:\n%s", out.String())
	}
	if !strings.Contains(lines[0], proto.SecondaryKeyPress(1, 13).String()) {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "messages=3 ") {
		t.Fatalf("summary = %q", lines[3])
	}
}

func TestParseMessages(t *testing.T) {
	got, err := parseMessages("ping, Primary")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != proto.Of(proto.MsgPing) || got[1] != proto.Of(proto.MsgYouArePrimary) {
		t.Fatalf("parseMessages = %v", got)
	}
	if _, err := parseMessages("reboot"); err == nil {
		t.Fatal("no error for unknown message")
	}
	if got, err := parseMessages(""); err != nil || got != nil {
		t.Fatalf("empty = %v, %v", got, err)
	}
}
