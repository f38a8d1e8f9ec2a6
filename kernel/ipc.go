package kernel

// Mailbox is a fixed-capacity FIFO shared between interrupt context and the
// executor. Every access runs inside the mailbox's critical section; nothing
// blocks and nothing allocates after construction.
type Mailbox[T any] struct {
	_     [0]func() // prevent accidental copying.
	cs    criticalSection
	head  int // slot of the oldest value, always < len(slots).
	n     int
	slots []T
}

// NewMailbox returns a mailbox holding at most capacity values.
func NewMailbox[T any](capacity int) *Mailbox[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Mailbox[T]{slots: make([]T, capacity)}
}

// Cap returns the fixed capacity.
func (mb *Mailbox[T]) Cap() int { return len(mb.slots) }

// Len returns the number of queued values.
func (mb *Mailbox[T]) Len() int {
	mb.cs.lock()
	defer mb.cs.unlock()
	return mb.n
}

func (mb *Mailbox[T]) slot(i int) int {
	i += mb.head
	if i >= len(mb.slots) {
		i -= len(mb.slots)
	}
	return i
}

// TrySend attempts to enqueue v, returning false if the mailbox is full.
func (mb *Mailbox[T]) TrySend(v T) bool {
	mb.cs.lock()
	defer mb.cs.unlock()
	if mb.n == len(mb.slots) {
		return false
	}
	mb.slots[mb.slot(mb.n)] = v
	mb.n++
	return true
}

// TryRecv attempts to dequeue one value, returning false if empty.
func (mb *Mailbox[T]) TryRecv() (T, bool) {
	mb.cs.lock()
	defer mb.cs.unlock()
	var zero T
	if mb.n == 0 {
		return zero, false
	}
	v := mb.slots[mb.head]
	mb.slots[mb.head] = zero
	mb.head = mb.slot(1)
	mb.n--
	return v, true
}

// Peek returns the i-th queued value counted from the oldest.
func (mb *Mailbox[T]) Peek(i int) (T, bool) {
	mb.cs.lock()
	defer mb.cs.unlock()
	var zero T
	if i < 0 || i >= mb.n {
		return zero, false
	}
	return mb.slots[mb.slot(i)], true
}

// Reset drops every queued value.
func (mb *Mailbox[T]) Reset() {
	mb.cs.lock()
	defer mb.cs.unlock()
	clear(mb.slots)
	mb.head, mb.n = 0, 0
}
