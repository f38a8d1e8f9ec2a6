package kernel

import (
	"fmt"
	"testing"
)

func TestKernelRunsHighestPriorityFirst(t *testing.T) {
	k := New[int]()
	var got []string
	low := k.AddTask("low", 1, 4, func(v int) { got = append(got, fmt.Sprintf("low%d", v)) })
	high := k.AddTask("high", 5, 4, func(v int) { got = append(got, fmt.Sprintf("high%d", v)) })

	k.Spawn(low, 1)
	k.Spawn(low, 2)
	k.Spawn(high, 1)

	if n := k.RunPending(0); n != 3 {
		t.Fatalf("RunPending() = %d, want 3", n)
	}
	want := []string{"high1", "low1", "low2"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestKernelSamePriorityRunsInSpawnOrder(t *testing.T) {
	k := New[int]()
	var got []int
	a := k.AddTask("a", 2, 4, func(v int) { got = append(got, v) })
	b := k.AddTask("b", 2, 4, func(v int) { got = append(got, 10+v) })

	k.Spawn(b, 1)
	k.Spawn(a, 1)
	k.Spawn(b, 2)

	k.RunPending(0)
	want := []int{11, 1, 12}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestKernelJobSpawnedFromJobPreemptsLowerQueue(t *testing.T) {
	k := New[int]()
	var got []string
	var high TaskID
	low := k.AddTask("low", 1, 4, func(v int) {
		got = append(got, fmt.Sprintf("low%d", v))
		if v == 1 {
			k.Spawn(high, 1)
		}
	})
	high = k.AddTask("high", 3, 4, func(v int) { got = append(got, "high") })

	k.Spawn(low, 1)
	k.Spawn(low, 2)
	k.RunPending(0)

	want := []string{"low1", "high", "low2"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestKernelSpawnQueueFullDrops(t *testing.T) {
	k := New[int]()
	id := k.AddTask("dispatch", 1, 2, func(int) {})

	if r := k.Spawn(id, 1); r != SpawnOK {
		t.Fatalf("Spawn() = %v, want %v", r, SpawnOK)
	}
	k.Spawn(id, 2)
	if r := k.Spawn(id, 3); r != SpawnErrQueueFull {
		t.Fatalf("Spawn() = %v, want %v", r, SpawnErrQueueFull)
	}
	if d := k.Dropped(id); d != 1 {
		t.Fatalf("Dropped() = %d, want 1", d)
	}
	if p := k.Pending(id); p != 2 {
		t.Fatalf("Pending() = %d, want 2", p)
	}
	if r := k.Spawn(TaskID(9), 0); r != SpawnErrNoTask {
		t.Fatalf("Spawn(unknown) = %v, want %v", r, SpawnErrNoTask)
	}
}

func TestKernelRunPendingBudget(t *testing.T) {
	k := New[int]()
	id := k.AddTask("t", 0, 8, func(int) {})
	for i := 0; i < 5; i++ {
		k.Spawn(id, i)
	}
	if n := k.RunPending(2); n != 2 {
		t.Fatalf("RunPending(2) = %d, want 2", n)
	}
	if p := k.Pending(id); p != 3 {
		t.Fatalf("Pending() = %d, want 3", p)
	}
}

func TestKernelPanicIsRecoveredOnce(t *testing.T) {
	k := New[int]()
	calls := 0
	var info PanicInfo
	k.SetPanicHandler(func(pi PanicInfo) {
		calls++
		info = pi
	})
	id := k.AddTask("boom", 1, 4, func(v int) { panic(fmt.Sprintf("bad %d", v)) })

	k.Spawn(id, 7)
	k.Spawn(id, 8)
	k.RunPending(0)

	if calls != 1 {
		t.Fatalf("panic handler calls = %d, want 1", calls)
	}
	if info.Task != "boom" || info.Value != "bad 7" {
		t.Fatalf("PanicInfo = %+v, want task boom value %q", info, "bad 7")
	}
	if !k.InPanicMode() {
		t.Fatalf("InPanicMode() = false, want true")
	}
	if r := k.Spawn(id, 9); r != SpawnErrPanicked {
		t.Fatalf("Spawn() after panic = %v, want %v", r, SpawnErrPanicked)
	}
	if k.Step() {
		t.Fatalf("Step() after panic = true, want false")
	}
}

func TestSpawnResultString(t *testing.T) {
	if got := SpawnErrQueueFull.String(); got != "queue full" {
		t.Fatalf("String() = %q, want %q", got, "queue full")
	}
	if got := SpawnResult(200).String(); got != "unknown" {
		t.Fatalf("String() = %q, want %q", got, "unknown")
	}
}
