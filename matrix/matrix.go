// Package matrix debounces raw scans of one keyboard half and turns accepted
// changes into key events.
package matrix

import "splitkb/keymap"

// Geometry of one half.
const (
	Rows = 4
	Cols = 7
)

// DefaultBounce is the number of identical scans needed to accept a change.
const DefaultBounce = 5

// State holds one pressed flag per switch of a half.
type State [Rows][Cols]bool

// Pressed returns the number of pressed switches.
func (s State) Pressed() int {
	n := 0
	for i := range s {
		for _, p := range s[i] {
			if p {
				n++
			}
		}
	}
	return n
}

// Debouncer accepts a new matrix state once it has been scanned bounce
// times in a row.
type Debouncer struct {
	cur    State
	prev   State
	next   State
	since  int
	bounce int
}

// NewDebouncer returns a debouncer requiring bounce identical scans.
func NewDebouncer(bounce int) *Debouncer {
	if bounce < 1 {
		bounce = 1
	}
	return &Debouncer{bounce: bounce}
}

// Update feeds one scan and reports whether the accepted state changed.
func (d *Debouncer) Update(s State) bool {
	if s == d.cur {
		d.since = 0
		return false
	}
	if s != d.next {
		d.next = s
		d.since = 1
	} else {
		d.since++
	}
	if d.since < d.bounce {
		return false
	}
	d.cur = s
	d.since = 0
	return true
}

// Current returns the accepted state.
func (d *Debouncer) Current() State { return d.cur }

// Events appends the transitions accepted since the previous call to dst,
// in row-major order.
func (d *Debouncer) Events(dst []keymap.Event) []keymap.Event {
	for i := range d.cur {
		for j := range d.cur[i] {
			was, is := d.prev[i][j], d.cur[i][j]
			switch {
			case is && !was:
				dst = append(dst, keymap.PressAt(uint8(i), uint8(j)))
			case was && !is:
				dst = append(dst, keymap.ReleaseAt(uint8(i), uint8(j)))
			}
		}
	}
	d.prev = d.cur
	return dst
}
