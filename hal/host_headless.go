//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the runner without a user interface.
type HeadlessConfig struct {
	Host HostConfig
	// Hz is how often the halves catch up with the wall clock. Zero means
	// once per millisecond.
	Hz int
	// Ticks stops the run after that many passes. Zero runs until ctx ends.
	Ticks uint64
}

func passPeriod(hz int) (time.Duration, error) {
	if hz <= 0 {
		hz = 1000
	}
	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return 0, fmt.Errorf("headless: hz %d out of range", hz)
	}
	return d, nil
}

// RunHeadless runs the firmware of every half with output going only to the
// log. Each half reports how many passes ran when the run ends.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	period, err := passPeriod(cfg.Hz)
	if err != nil {
		return err
	}
	hosts, err := NewHosts(cfg.Host)
	if err != nil {
		return err
	}
	rig := Rig(hosts)
	steps := rig.Start(newApp)

	var passes uint64
	defer func() {
		for _, h := range rig {
			h.logger.WriteLineString(fmt.Sprintf("headless: %d passes, %d ticks lost", passes, h.clock.Lost()))
		}
	}()

	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for cfg.Ticks == 0 || passes < cfg.Ticks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		rig.Advance()
		if err := RunSteps(steps); err != nil {
			return fmt.Errorf("headless: pass %d: %w", passes, err)
		}
		passes++
	}
	return nil
}
