//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"splitkb/app"
	"splitkb/hal"
	"splitkb/hal/window"
	"splitkb/internal/buildinfo"
	"splitkb/internal/hostcfg"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	def := hostcfg.Default()
	var (
		configPath = flag.String("config", "", "YAML file with defaults for the flags below.")
		headless   = flag.Bool("headless", false, "Run without any user interface.")
		tui        = flag.Bool("tui", false, "Run in the terminal.")
		hz         = flag.Int("hz", def.Hz, "Tick rate in headless mode.")
		ticks      = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
		port       = flag.String("port", "", "Serial device of a real peer half. Empty emulates both halves.")
		baud       = flag.Int("baud", def.Baud, "Baud rate of -port.")
		board      = flag.String("board", def.Board, "Half emulated next to a real peer: left or right.")
		usb        = flag.Bool("usb", def.USB, "Whether the half emulated next to a real peer has USB.")
		lateInit   = flag.Uint64("late-init", 0, "Ticks before the halves decide their roles (0 = default).")
		verbose    = flag.Bool("v", false, "Log every dispatched message.")
		version    = flag.Bool("version", false, "Print the build and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Line())
		return nil
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = hostcfg.Load(*configPath); err != nil {
			return err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			if *headless {
				cfg.Frontend = hostcfg.Headless
			}
		case "tui":
			if *tui {
				cfg.Frontend = hostcfg.TUI
			}
		case "hz":
			cfg.Hz = *hz
		case "ticks":
			cfg.Ticks = *ticks
		case "port":
			cfg.Port = *port
		case "baud":
			cfg.Baud = *baud
		case "board":
			cfg.Board = *board
		case "usb":
			cfg.USB = *usb
		case "late-init":
			cfg.LateInit = *lateInit
		case "v":
			cfg.Trace = *verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{LateInit: cfg.LateInit, Trace: cfg.Trace})
	}
	host := hal.HostConfig{Port: cfg.Port, Baud: cfg.Baud, Right: cfg.Right(), USB: cfg.USB}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Frontend {
	case hostcfg.Headless:
		return hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Host: host, Hz: cfg.Hz, Ticks: cfg.Ticks})
	case hostcfg.TUI:
		return hal.RunTUI(ctx, newApp, host)
	default:
		return window.Run(newApp, host)
	}
}
