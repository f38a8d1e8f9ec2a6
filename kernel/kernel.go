// Package kernel is the firmware executor: a fixed set of run-to-completion
// tasks with static priorities, each fed by a bounded spawn queue.
//
// Interrupt sources call Spawn from any context. The executor calls Step (or
// RunPending), which always runs the oldest pending job of the highest
// non-empty priority level. A running job is never interrupted by another
// job; jobs it spawns at a higher priority run as soon as it returns.
package kernel

import "sync/atomic"

const (
	maxTasks      = 16
	maxPriorities = 8
)

// Priority orders tasks. Higher values run first.
type Priority uint8

// TaskID identifies a registered task.
type TaskID uint8

// SpawnResult describes the outcome of a spawn attempt.
type SpawnResult uint8

const (
	SpawnOK SpawnResult = iota
	SpawnErrNoTask
	SpawnErrQueueFull
	SpawnErrPanicked
)

func (r SpawnResult) String() string {
	switch r {
	case SpawnOK:
		return "ok"
	case SpawnErrNoTask:
		return "no such task"
	case SpawnErrQueueFull:
		return "queue full"
	case SpawnErrPanicked:
		return "kernel panicked"
	default:
		return "unknown"
	}
}

// TaskFunc is the body of a task. It runs to completion.
type TaskFunc[M any] func(M)

type taskState[M any] struct {
	name    string
	prio    Priority
	fn      TaskFunc[M]
	mbox    *Mailbox[M]
	dropped atomic.Uint32
}

// Kernel schedules tasks taking arguments of type M.
type Kernel[M any] struct {
	cs        criticalSection
	tasks     [maxTasks]*taskState[M]
	taskCount TaskID
	ready     [maxPriorities]*Mailbox[TaskID]
	readyCap  [maxPriorities]int

	panicked atomic.Bool
	onPanic  func(PanicInfo)
}

// New creates an empty kernel.
func New[M any]() *Kernel[M] {
	return &Kernel[M]{}
}

// AddTask registers a task with a spawn queue of the given capacity. Tasks
// must be registered before the first Spawn.
func (k *Kernel[M]) AddTask(name string, prio Priority, capacity int, fn TaskFunc[M]) TaskID {
	if k.taskCount >= maxTasks || fn == nil {
		panic("kernel: cannot add task " + name)
	}
	if prio >= maxPriorities {
		prio = maxPriorities - 1
	}
	if capacity <= 0 {
		capacity = 1
	}
	id := k.taskCount
	k.taskCount++
	k.tasks[id] = &taskState[M]{
		name: name,
		prio: prio,
		fn:   fn,
		mbox: NewMailbox[M](capacity),
	}
	k.readyCap[prio] += capacity
	k.ready[prio] = NewMailbox[TaskID](k.readyCap[prio])
	return id
}

// TaskName returns the name a task was registered with.
func (k *Kernel[M]) TaskName(id TaskID) string {
	if id >= k.taskCount {
		return ""
	}
	return k.tasks[id].name
}

// Spawn queues one run of task id with argument arg.
func (k *Kernel[M]) Spawn(id TaskID, arg M) SpawnResult {
	if k.panicked.Load() {
		return SpawnErrPanicked
	}
	if id >= k.taskCount {
		return SpawnErrNoTask
	}
	t := k.tasks[id]

	k.cs.lock()
	defer k.cs.unlock()
	if !t.mbox.TrySend(arg) {
		t.dropped.Add(1)
		return SpawnErrQueueFull
	}
	k.ready[t.prio].TrySend(id)
	return SpawnOK
}

// Dropped returns how many spawns of task id were rejected as queue full.
func (k *Kernel[M]) Dropped(id TaskID) uint32 {
	if id >= k.taskCount {
		return 0
	}
	return k.tasks[id].dropped.Load()
}

// Pending returns the number of queued jobs for task id.
func (k *Kernel[M]) Pending(id TaskID) int {
	if id >= k.taskCount {
		return 0
	}
	return k.tasks[id].mbox.Len()
}

// Step runs the next job, if any, and reports whether one ran.
func (k *Kernel[M]) Step() bool {
	if k.panicked.Load() {
		return false
	}
	for p := maxPriorities - 1; p >= 0; p-- {
		q := k.ready[p]
		if q == nil {
			continue
		}
		k.cs.lock()
		id, ok := q.TryRecv()
		var arg M
		if ok {
			arg, _ = k.tasks[id].mbox.TryRecv()
		}
		k.cs.unlock()
		if !ok {
			continue
		}
		k.run(id, arg)
		return true
	}
	return false
}

// RunPending runs jobs until the queues are empty or budget jobs have run
// (budget <= 0 means no limit). It returns the number of jobs run.
func (k *Kernel[M]) RunPending(budget int) int {
	n := 0
	for budget <= 0 || n < budget {
		if !k.Step() {
			break
		}
		n++
	}
	return n
}

func (k *Kernel[M]) run(id TaskID, arg M) {
	defer func() {
		if r := recover(); r != nil {
			k.triggerPanic(PanicInfo{TaskID: id, Task: k.tasks[id].name, Value: r})
		}
	}()
	k.tasks[id].fn(arg)
}
