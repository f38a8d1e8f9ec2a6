package hal

import (
	"errors"
	"fmt"
)

// HidRetries bounds how often a report is offered to a busy endpoint.
const HidRetries = 3

// SendReport writes report with write, retrying while the endpoint accepts
// nothing or reports ErrBusy.
func SendReport(write func([]byte) (int, error), report []byte) error {
	var err error
	for try := 0; try < HidRetries; try++ {
		var n int
		n, err = write(report)
		switch {
		case err == nil && n > 0:
			return nil
		case err == nil:
			err = ErrBusy
		case !errors.Is(err, ErrBusy):
			return err
		}
	}
	return fmt.Errorf("hid: report dropped after %d tries: %w", HidRetries, err)
}
