//go:build !tinygo

package kernel

import "sync"

// criticalSection guards state shared with interrupt sources. On the host the
// interrupt sources are goroutines, so a mutex stands in for masking IRQs.
type criticalSection struct {
	mu sync.Mutex
}

func (c *criticalSection) lock()   { c.mu.Lock() }
func (c *criticalSection) unlock() { c.mu.Unlock() }
