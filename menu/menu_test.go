package menu

import (
	"fmt"
	"math/rand"
	"testing"

	"splitkb/display"
	"splitkb/proto"
)

func send(m *Menu, k proto.MenuActionKind) []proto.Message {
	out := m.HandleEvent(proto.Menu(k))
	return out.AppendTo(nil)
}

func openAt(m *Menu, item int) {
	send(m, proto.MenuOpen)
	for range item {
		send(m, proto.MenuDown)
	}
}

func TestItemStaysInBounds(t *testing.T) {
	m := New()
	send(m, proto.MenuOpen)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		k := proto.MenuUp
		if rng.Intn(2) == 0 {
			k = proto.MenuDown
		}
		send(m, k)
		if n := len(m.Current().Items); m.Item() < 0 || m.Item() > n {
			t.Fatalf("step %d: item %d outside [0, %d]", i, m.Item(), n)
		}
	}
}

func TestSelectActionClosesThenEmits(t *testing.T) {
	m := New()
	m.HandleEvent(proto.DisplaySelect(proto.DisplayBongo))
	m.HandleEvent(proto.DisplaySelect(proto.DisplayMenu))
	openAt(m, 4)
	got := send(m, proto.MenuSelect)
	want := []proto.Message{
		proto.DisplaySelect(proto.DisplayBongo),
		proto.SecondaryMenuClose(),
		proto.SetDefaultLayer(0),
		proto.Of(proto.MsgPing),
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("Select(Ping) = %v, want %v", got, want)
	}
	if m.IsOpen() {
		t.Fatalf("menu still open")
	}
}

func TestSelectBackAtRootCloses(t *testing.T) {
	m := New()
	send(m, proto.MenuOpen)
	if got := send(m, proto.MenuSelect); len(got) != 3 || m.IsOpen() {
		t.Fatalf("Select(back) at root = %v, open = %v", got, m.IsOpen())
	}
}

func TestSecondaryMenuMirrorsPage(t *testing.T) {
	m := New()
	openAt(m, 1)
	got := send(m, proto.MenuSelect)
	if len(got) != 1 || got[0] != proto.SecondaryMenuOpen(proto.DisplayLeds) {
		t.Fatalf("enter LEDs = %v", got)
	}
	if m.Current().Name != "LEDs" || m.Depth() != 1 {
		t.Fatalf("current = %s depth = %d", m.Current().Name, m.Depth())
	}
	got = send(m, proto.MenuSelect)
	if len(got) != 1 || got[0] != proto.SecondaryMenuClose() {
		t.Fatalf("leave LEDs = %v", got)
	}
	if m.Current().Name != "Menu" || m.Item() != 1 {
		t.Fatalf("back at %s item %d", m.Current().Name, m.Item())
	}
}

func TestDialEmitsWithoutLeaving(t *testing.T) {
	m := New()
	openAt(m, 1)
	send(m, proto.MenuSelect)
	for range 5 {
		send(m, proto.MenuDown)
	}
	if got := send(m, proto.MenuSelect); len(got) != 0 {
		t.Fatalf("Select on dial = %v", got)
	}
	if got := send(m, proto.MenuRight); len(got) != 1 || got[0] != proto.LED(proto.Step(proto.LEDIncRed)) {
		t.Fatalf("Right on red = %v", got)
	}
	send(m, proto.MenuDown)
	if got := send(m, proto.MenuLeft); len(got) != 1 || got[0] != proto.LED(proto.Step(proto.LEDDecGreen)) {
		t.Fatalf("Left on green = %v", got)
	}
	if !m.IsOpen() || m.Current().Name != "LEDs" {
		t.Fatalf("dial left the menu")
	}
}

func TestPushBeyondMaxDepthIsRefused(t *testing.T) {
	tree := make([]Node, 8)
	for i := range tree {
		tree[i] = Node{Name: fmt.Sprint(i), Items: []Item{{Name: "next", Kind: ItemSubmenu, Sub: (i + 1) % len(tree)}}}
	}
	m := NewWithTree(tree)
	send(m, proto.MenuOpen)
	for range 6 {
		send(m, proto.MenuDown)
		send(m, proto.MenuSelect)
	}
	if m.Depth() != MaxDepth {
		t.Fatalf("Depth() = %d, want %d", m.Depth(), MaxDepth)
	}
	if m.Current().Name != fmt.Sprint(MaxDepth) {
		t.Fatalf("current = %s, want %d", m.Current().Name, MaxDepth)
	}
}

func TestPeerMenuRestoresPage(t *testing.T) {
	m := New()
	m.HandleEvent(proto.DisplaySelect(proto.DisplayBongo))
	out := m.HandleEvent(proto.SecondaryMenuOpen(proto.DisplayLeds))
	if got, _ := out.Take(); got != proto.DisplaySelect(proto.DisplayLeds) {
		t.Fatalf("peer open = %v", got)
	}
	m.HandleEvent(proto.DisplaySelect(proto.DisplayLeds))
	out = m.HandleEvent(proto.SecondaryMenuClose())
	if got, _ := out.Take(); got != proto.DisplaySelect(proto.DisplayBongo) {
		t.Fatalf("peer close = %v", got)
	}
	if out := m.HandleEvent(proto.SecondaryMenuClose()); !out.Empty() {
		t.Fatalf("second close = %v", out.AppendTo(nil))
	}
}

func TestClosedMenuIgnoresNavigation(t *testing.T) {
	m := New()
	for _, k := range []proto.MenuActionKind{proto.MenuDown, proto.MenuSelect, proto.MenuClose} {
		if got := send(m, k); len(got) != 0 {
			t.Fatalf("%v while closed = %v", k, got)
		}
	}
}

func TestRender(t *testing.T) {
	m := New()
	openAt(m, 2)
	var r display.Recorder
	if err := m.Render(&r); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Menu", "close", "LEDs", "Layers", "Display", "Ping", ">"} {
		if !r.Contains(want) {
			t.Fatalf("page %q lacks %q", r.String(), want)
		}
	}
}
