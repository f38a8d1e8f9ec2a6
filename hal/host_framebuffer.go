//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostPanel is a monochrome pixel panel. SetPixel draws into a back buffer
// that Display copies to the visible one.
type hostPanel struct {
	mu     sync.Mutex
	width  int16
	height int16
	back   []bool
	front  []bool
}

func newHostPanel(width, height int16) *hostPanel {
	n := int(width) * int(height)
	return &hostPanel{
		width:  width,
		height: height,
		back:   make([]bool, n),
		front:  make([]bool, n),
	}
}

func (p *hostPanel) Size() (x, y int16) { return p.width, p.height }

func (p *hostPanel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	p.mu.Lock()
	p.back[int(y)*int(p.width)+int(x)] = c.R|c.G|c.B != 0
	p.mu.Unlock()
}

func (p *hostPanel) Display() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.front, p.back)
	return nil
}

func (p *hostPanel) ClearBuffer() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.back)
}

// lit reports whether the visible pixel at x, y is on.
func (p *hostPanel) lit(x, y int16) bool {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.front[int(y)*int(p.width)+int(x)]
}
