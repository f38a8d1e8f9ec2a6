//go:build !tinygo && !cgo

package window

import (
	"errors"

	"splitkb/hal"
)

func Run(_ func(hal.HAL) func() error, _ hal.HostConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
