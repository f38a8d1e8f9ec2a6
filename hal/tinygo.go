//go:build tinygo && baremetal

package hal

import (
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

// Board wiring (RP2040, both halves alike).
var (
	rowPins     = []machine.Pin{machine.GP2, machine.GP3, machine.GP4, machine.GP5}
	colPins     = []machine.Pin{machine.GP6, machine.GP7, machine.GP10, machine.GP11, machine.GP12, machine.GP13, machine.GP14}
	encoderA    = machine.GP20
	encoderB    = machine.GP21
	ledDataPin  = machine.GP22
	oledSDA     = machine.GP26
	oledSCL     = machine.GP27
	consoleTX   = machine.GP0
	consoleRX   = machine.GP1
	peerTX      = machine.GP8
	peerRX      = machine.GP9
	peerBaud    = uint32(9600)
	consoleBaud = uint32(115200)
)

type tinyGoHAL struct {
	logger  *uartLogger
	t       *tinyGoTime
	display *TextDisplay
	leds    *stripLeds
	serial  *uartLink
	matrix  *PinMatrix
	encoder *pinEncoder
	hid     *usbHid
}

// New returns the HAL of one keyboard half.
//
// Console: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. Peer link: UART1 on
// GP8 (TX) / GP9 (RX), 9600 8N1.
func New() HAL {
	console := uartx.UART0
	console.Configure(uartx.UARTConfig{
		BaudRate: consoleBaud,
		TX:       consoleTX,
		RX:       consoleRX,
	})
	logger := &uartLogger{uart: console}

	peer := uartx.UART1
	if err := peer.Configure(uartx.UARTConfig{
		BaudRate: peerBaud,
		TX:       peerTX,
		RX:       peerRX,
	}); err != nil {
		logger.WriteLineString("hal: peer uart: " + err.Error())
	}

	rows := make([]DigitalOutput, len(rowPins))
	for i, p := range rowPins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		rows[i] = outPin(p)
	}
	cols := make([]DigitalInput, len(colPins))
	for i, p := range colPins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		cols[i] = inPin(p)
	}

	return &tinyGoHAL{
		logger:  logger,
		t:       newTinyGoTime(),
		display: newOLED(machine.I2C1, oledSDA, oledSCL),
		leds:    newStripLeds(ledDataPin),
		serial:  newUARTLink(peer),
		matrix:  NewPinMatrix(rows, cols, settle),
		encoder: newPinEncoder(encoderA, encoderB, logger),
		hid:     newUSBHid(),
	}
}

func (h *tinyGoHAL) Logger() Logger         { return h.logger }
func (h *tinyGoHAL) Time() Time             { return h.t }
func (h *tinyGoHAL) Display() Display       { return h.display }
func (h *tinyGoHAL) Leds() LedStrip         { return h.leds }
func (h *tinyGoHAL) Serial() SerialLink     { return h.serial }
func (h *tinyGoHAL) Matrix() MatrixScanner  { return h.matrix }
func (h *tinyGoHAL) Encoder() RotaryEncoder { return h.encoder }
func (h *tinyGoHAL) Hid() Hid               { return h.hid }
