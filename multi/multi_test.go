package multi

import "testing"

func TestMultiTakeOrder(t *testing.T) {
	m := Of(1, 2, 3)
	for want := 1; want <= 3; want++ {
		got, ok := m.Take()
		if !ok || got != want {
			t.Fatalf("Take() = %d, %v, want %d, true", got, ok, want)
		}
	}
	if _, ok := m.Take(); ok {
		t.Fatalf("Take() on empty ok = true, want false")
	}
}

func TestMultiPushPrepends(t *testing.T) {
	m := Of(2, 3)
	if !m.Push(1) {
		t.Fatalf("Push() = false, want true")
	}
	got := m.AppendTo(nil)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("AppendTo() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AppendTo() = %v, want %v", got, want)
		}
	}
}

func TestMultiFullRefusesAndKeepsContents(t *testing.T) {
	m := Of(1, 2, 3, 4)
	if !m.Full() {
		t.Fatalf("Full() = false, want true")
	}
	if m.Append(5) {
		t.Fatalf("Append() on full = true, want false")
	}
	if m.Push(0) {
		t.Fatalf("Push() on full = true, want false")
	}
	if m.Len() != Capacity {
		t.Fatalf("Len() = %d, want %d", m.Len(), Capacity)
	}
	if v, _ := m.Peek(); v != 1 {
		t.Fatalf("Peek() = %d, want 1", v)
	}
}

func TestMultiWrapsAround(t *testing.T) {
	var m Multi[int]
	for i := 0; i < 10; i++ {
		if !m.Append(i) {
			t.Fatalf("Append(%d) = false, want true", i)
		}
		got, ok := m.Take()
		if !ok || got != i {
			t.Fatalf("Take() = %d, %v, want %d, true", got, ok, i)
		}
	}
	if !m.Empty() {
		t.Fatalf("Empty() = false, want true")
	}
}

func TestMultiConcat(t *testing.T) {
	a := Of("a", "b")
	if !a.Concat(Of("c")) {
		t.Fatalf("Concat() = false, want true")
	}
	if a.Concat(Of("d", "e")) {
		t.Fatalf("Concat() overflowing = true, want false")
	}
	if a.Len() != Capacity {
		t.Fatalf("Len() = %d, want %d", a.Len(), Capacity)
	}
	if v, _ := a.At(3); v != "d" {
		t.Fatalf("At(3) = %q, want %q", v, "d")
	}
}
