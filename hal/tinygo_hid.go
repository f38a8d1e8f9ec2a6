//go:build tinygo && baremetal

package hal

import (
	"machine"
	"machine/usb/hid"
	"machine/usb/hid/keyboard"
)

// HID report IDs of the composite descriptor.
const (
	reportKeyboard = 0x02
	reportConsumer = 0x03
)

type usbHid struct {
	buf [9]byte
}

func newUSBHid() *usbHid {
	// Registers the HID interface with the USB stack.
	keyboard.Port()
	return &usbHid{}
}

func (u *usbHid) Configured() bool { return machine.USBDev.InitEndpointComplete }

func (u *usbHid) WriteKeyboard(report []byte) (int, error) {
	return u.send(reportKeyboard, report)
}

func (u *usbHid) WriteMedia(report []byte) (int, error) {
	return u.send(reportConsumer, report)
}

func (u *usbHid) send(id byte, report []byte) (int, error) {
	if !u.Configured() {
		return 0, nil
	}
	if len(report) >= len(u.buf) {
		report = report[:len(u.buf)-1]
	}
	u.buf[0] = id
	n := copy(u.buf[1:], report)
	hid.SendUSBPacket(u.buf[:1+n])
	return n, nil
}
