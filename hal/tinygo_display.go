//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

const oledAddress = 0x3C

// newOLED returns the 128x64 SSD1306 panel on bus. The controller is only
// configured when the firmware calls Init.
func newOLED(bus *machine.I2C, sda, scl machine.Pin) *TextDisplay {
	dev := ssd1306.NewI2C(bus)
	configure := func() error {
		if err := bus.Configure(machine.I2CConfig{
			Frequency: 400 * machine.KHz,
			SDA:       sda,
			SCL:       scl,
		}); err != nil {
			return err
		}
		dev.Configure(ssd1306.Config{
			Address: oledAddress,
			Width:   128,
			Height:  64,
		})
		dev.ClearDisplay()
		return nil
	}
	return NewTextDisplay(&dev, configure)
}
