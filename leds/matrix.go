package leds

import "image/color"

// StripLen is the number of LEDs on one half.
const StripLen = 31

// Matrix is the colour of every LED of one half, grouped by where it sits.
type Matrix struct {
	Keys      [3][7]color.RGBA
	Thumb     [5]color.RGBA
	Underglow [6]color.RGBA
}

// Fill returns a matrix with every LED set to c.
func Fill(c color.RGBA) Matrix {
	var m Matrix
	for i := range m.Keys {
		for j := range m.Keys[i] {
			m.Keys[i][j] = c
		}
	}
	for i := range m.Thumb {
		m.Thumb[i] = c
	}
	for i := range m.Underglow {
		m.Underglow[i] = c
	}
	return m
}

// At returns the LED at position i of the strip as it is wired.
func (m *Matrix) At(i int) color.RGBA {
	switch {
	case i < 0 || i >= StripLen:
		return color.RGBA{}
	case i == 0:
		return m.Underglow[2]
	case i <= 3:
		return m.Keys[0][7-i]
	case i == 4:
		return m.Underglow[1]
	case i <= 6:
		return m.Keys[0][8-i]
	case i == 7:
		return m.Underglow[0]
	case i <= 9:
		return m.Keys[0][9-i]
	case i <= 16:
		return m.Keys[1][i-10]
	case i <= 18:
		return m.Keys[2][22-i]
	case i == 19:
		return m.Underglow[4]
	case i <= 21:
		return m.Keys[2][23-i]
	case i == 22:
		return m.Underglow[3]
	case i <= 24:
		return m.Keys[2][24-i]
	case i <= 29:
		return m.Thumb[i-25]
	}
	return m.Underglow[5]
}

// Strip writes the matrix into dst in wiring order.
func (m *Matrix) Strip(dst *[StripLen]color.RGBA) {
	for i := range dst {
		dst[i] = m.At(i)
	}
}
