//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPassPeriod(t *testing.T) {
	tests := []struct {
		hz   int
		want time.Duration
		ok   bool
	}{
		{0, time.Millisecond, true},
		{100, 10 * time.Millisecond, true},
		{2_000_000_000, 0, false},
	}
	for _, tt := range tests {
		got, err := passPeriod(tt.hz)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("passPeriod(%d) = %v, %v", tt.hz, got, err)
		}
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var log bytes.Buffer
	var calls int
	newApp := func(HAL) func() error {
		return func() error { calls++; return nil }
	}
	err := RunHeadless(context.Background(), newApp, HeadlessConfig{Host: HostConfig{Log: &log}, Hz: 1000, Ticks: 3})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 6 {
		t.Fatalf("%d steps, want 3 per half", calls)
	}
	if !strings.Contains(log.String(), "left: headless: 3 passes") || !strings.Contains(log.String(), "right: headless: 3 passes") {
		t.Fatalf("log = %q", log.String())
	}
}

func TestRunHeadlessWrapsStepErrors(t *testing.T) {
	boom := errors.New("boom")
	newApp := func(HAL) func() error { return func() error { return boom } }
	err := RunHeadless(context.Background(), newApp, HeadlessConfig{Host: HostConfig{Log: &bytes.Buffer{}}})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
