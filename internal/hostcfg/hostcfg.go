// Package hostcfg loads the YAML file configuring the host emulator.
package hostcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Frontends of the emulator.
const (
	Window   = "window"
	TUI      = "tui"
	Headless = "headless"
)

// Config mirrors the emulator's command-line flags. Flags given on the
// command line win over the file.
type Config struct {
	Frontend string `yaml:"frontend"`
	Port     string `yaml:"port"`
	Baud     int    `yaml:"baud"`
	Board    string `yaml:"board"`
	USB      bool   `yaml:"usb"`
	Hz       int    `yaml:"hz"`
	Ticks    uint64 `yaml:"ticks"`
	LateInit uint64 `yaml:"late_init"`
	Trace    bool   `yaml:"trace"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Frontend: Window,
		Baud:     9600,
		Board:    "left",
		USB:      true,
		Hz:       1000,
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("could not open config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return c, fmt.Errorf("could not parse config file: %w", err)
	}
	return c, c.Validate()
}

// Validate checks the values a file or flags can get wrong.
func (c Config) Validate() error {
	switch c.Frontend {
	case Window, TUI, Headless:
	default:
		return fmt.Errorf("hostcfg: unknown frontend %q", c.Frontend)
	}
	switch c.Board {
	case "left", "right":
	default:
		return fmt.Errorf("hostcfg: board must be left or right, not %q", c.Board)
	}
	if c.Hz <= 0 {
		return fmt.Errorf("hostcfg: hz must be positive, got %d", c.Hz)
	}
	if c.Baud < 0 {
		return fmt.Errorf("hostcfg: negative baud %d", c.Baud)
	}
	return nil
}

// Right reports whether the emulated single half is the right one.
func (c Config) Right() bool { return c.Board == "right" }
