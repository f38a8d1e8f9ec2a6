package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// baseline is the distance from the top of a text line to the font baseline.
const baseline = 10

var ink = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Panel is a monochrome pixel device that can wipe its buffer.
type Panel interface {
	drivers.Displayer
	ClearBuffer()
}

// rotated presents a panel turned by a multiple of 90 degrees clockwise.
type rotated struct {
	p Panel
	r drivers.Rotation
}

func (d *rotated) Size() (x, y int16) {
	w, h := d.p.Size()
	if d.r == drivers.Rotation90 || d.r == drivers.Rotation270 {
		return h, w
	}
	return w, h
}

// physical maps a point of the rotated frame onto the panel.
func (d *rotated) physical(x, y int16) (int16, int16) {
	w, h := d.p.Size()
	switch d.r {
	case drivers.Rotation90:
		return w - 1 - y, x
	case drivers.Rotation180:
		return w - 1 - x, h - 1 - y
	case drivers.Rotation270:
		return y, h - 1 - x
	}
	return x, y
}

func (d *rotated) SetPixel(x, y int16, c color.RGBA) {
	sw, sh := d.Size()
	if x < 0 || y < 0 || x >= sw || y >= sh {
		return
	}
	px, py := d.physical(x, y)
	d.p.SetPixel(px, py, c)
}

func (d *rotated) Display() error { return d.p.Display() }

// TextDisplay renders Display text onto a pixel panel with the proggy
// font.
type TextDisplay struct {
	view rotated
	init func() error
}

// NewTextDisplay wraps p. init, if not nil, runs on Init.
func NewTextDisplay(p Panel, init func() error) *TextDisplay {
	return &TextDisplay{view: rotated{p: p, r: drivers.Rotation0}, init: init}
}

func (t *TextDisplay) Init() error {
	if t.init == nil {
		return nil
	}
	return t.init()
}

func (t *TextDisplay) SetRotation(r drivers.Rotation) error {
	switch r {
	case drivers.Rotation0, drivers.Rotation90, drivers.Rotation180, drivers.Rotation270:
		t.view.r = r
		return nil
	}
	return ErrNotImplemented
}

// Rotation returns the current rotation.
func (t *TextDisplay) Rotation() drivers.Rotation { return t.view.r }

// Size returns the size of the rotated frame.
func (t *TextDisplay) Size() (x, y int16) { return t.view.Size() }

func (t *TextDisplay) Clear() { t.view.p.ClearBuffer() }

func (t *TextDisplay) DrawText(s string, x, y int16) {
	tinyfont.WriteLine(&t.view, &proggy.TinySZ8pt7b, x, y+baseline, s, ink)
}

func (t *TextDisplay) Flush() error { return t.view.Display() }
