package leds

import "image/color"

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

func lit(c color.RGBA) bool { return c.R > 0 || c.G > 0 || c.B > 0 }

// Wheel maps pos onto a red, green, blue colour wheel with period 256.
func Wheel(pos uint8) color.RGBA {
	p := 255 - pos
	if p < 85 {
		return rgb(255-p*3, 0, p*3)
	}
	if p < 170 {
		p -= 85
		return rgb(0, p*3, 255-p*3)
	}
	p -= 170
	return rgb(p*3, 255-p*3, 0)
}

// converge moves cur a tenth of the way to target, by at least one unit.
func converge(cur, target uint8) uint8 {
	switch {
	case cur > target:
		step := max((cur-target)/10, 1)
		return cur - step
	case cur < target:
		step := max((target-cur)/10, 1)
		return cur + step
	}
	return cur
}

func convergeRGB(cur, target color.RGBA) color.RGBA {
	return rgb(converge(cur.R, target.R), converge(cur.G, target.G), converge(cur.B, target.B))
}

func saturatingInc(v uint8) uint8 {
	if v == 255 {
		return v
	}
	return v + 1
}

func saturatingDec(v uint8) uint8 {
	if v == 0 {
		return v
	}
	return v - 1
}
