//go:build !tinygo

package hal

import "time"

// maxCatchUp bounds the ticks one catch-up emits after the host stalled.
const maxCatchUp = 64

// hostClock is the 1 ms tick source of an emulated half.
type hostClock struct {
	ch    chan uint64
	seq   uint64
	start time.Time
	wall  uint64
	lost  uint64
}

func newHostClock() *hostClock {
	return &hostClock{ch: make(chan uint64, 1024)}
}

func (c *hostClock) Ticks() <-chan uint64 { return c.ch }

// Lost returns the ticks skipped after stalls or not drained in time.
func (c *hostClock) Lost() uint64 { return c.lost }

// emit produces n consecutive ticks.
func (c *hostClock) emit(n uint64) {
	for range n {
		c.seq++
		select {
		case c.ch <- c.seq:
		default:
			c.lost++
		}
	}
}

// catchUp emits one tick per millisecond of wall time since the previous
// call and returns how many it emitted. The first call emits a single tick.
func (c *hostClock) catchUp(now time.Time) uint64 {
	if c.start.IsZero() {
		c.start = now
		c.emit(1)
		return 1
	}
	elapsed := uint64(now.Sub(c.start) / time.Millisecond)
	if elapsed <= c.wall {
		return 0
	}
	owed := elapsed - c.wall
	c.wall = elapsed
	if owed > maxCatchUp {
		c.lost += owed - maxCatchUp
		owed = maxCatchUp
	}
	c.emit(owed)
	return owed
}
