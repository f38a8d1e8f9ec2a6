// Package multi provides Multi, a fixed-capacity inline sequence used by
// handlers that emit zero or a few values without allocating.
package multi

// Capacity is the maximum number of values a Multi holds.
const Capacity = 4

// Multi is a small ring of at most Capacity values. The zero value is empty.
//
// Values are taken from the front. Push prepends and Append appends; both
// refuse the value and report false when the ring is full.
type Multi[T any] struct {
	buf  [Capacity]T
	head uint8
	n    uint8
}

// None returns an empty Multi.
func None[T any]() Multi[T] { return Multi[T]{} }

// Of returns a Multi holding vs in order. Values beyond Capacity are dropped.
func Of[T any](vs ...T) Multi[T] {
	var m Multi[T]
	for _, v := range vs {
		if !m.Append(v) {
			break
		}
	}
	return m
}

func (m *Multi[T]) Len() int    { return int(m.n) }
func (m *Multi[T]) Empty() bool { return m.n == 0 }
func (m *Multi[T]) Full() bool  { return m.n == Capacity }
func (m *Multi[T]) Reset()      { *m = Multi[T]{} }

func (m *Multi[T]) slot(i uint8) uint8 { return (m.head + i) % Capacity }

// Append adds v at the back.
func (m *Multi[T]) Append(v T) bool {
	if m.n == Capacity {
		return false
	}
	m.buf[m.slot(m.n)] = v
	m.n++
	return true
}

// Push adds v at the front.
func (m *Multi[T]) Push(v T) bool {
	if m.n == Capacity {
		return false
	}
	m.head = (m.head + Capacity - 1) % Capacity
	m.buf[m.head] = v
	m.n++
	return true
}

// Take removes and returns the front value.
func (m *Multi[T]) Take() (T, bool) {
	var zero T
	if m.n == 0 {
		return zero, false
	}
	v := m.buf[m.head]
	m.buf[m.head] = zero
	m.head = (m.head + 1) % Capacity
	m.n--
	return v, true
}

// Peek returns the front value without removing it.
func (m *Multi[T]) Peek() (T, bool) {
	if m.n == 0 {
		var zero T
		return zero, false
	}
	return m.buf[m.head], true
}

// At returns the i-th value from the front.
func (m *Multi[T]) At(i int) (T, bool) {
	if i < 0 || i >= int(m.n) {
		var zero T
		return zero, false
	}
	return m.buf[m.slot(uint8(i))], true
}

// Concat appends every value of o, in order, until m is full. It reports
// whether all of o fit.
func (m *Multi[T]) Concat(o Multi[T]) bool {
	for i := 0; i < o.Len(); i++ {
		v, _ := o.At(i)
		if !m.Append(v) {
			return false
		}
	}
	return true
}

// AppendTo appends the values of m to dst in order and returns the result.
func (m Multi[T]) AppendTo(dst []T) []T {
	for i := uint8(0); i < m.n; i++ {
		dst = append(dst, m.buf[m.slot(i)])
	}
	return dst
}
