//go:build !tinygo && cgo

// Package window shows the emulated halves in a desktop window and feeds
// them from the computer keyboard.
package window

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"splitkb/hal"
	"splitkb/internal/buildinfo"
	"splitkb/matrix"
)

// Layout of one half's column, in panel pixels.
const (
	margin   = 8
	column   = hal.PanelHeight + 2*margin
	ledTop   = hal.PanelWidth + 2*margin
	ledSize  = 4
	ledPitch = ledSize + 1
	ledRow   = 16
	height   = ledTop + 2*ledPitch + margin
	scale    = 3
)

var (
	panelOn  = color.RGBA{R: 200, G: 230, B: 255, A: 0xFF}
	panelOff = color.RGBA{R: 10, G: 12, B: 20, A: 0xFF}
	caseBg   = color.RGBA{R: 40, G: 40, B: 46, A: 0xFF}
)

// Run opens the window and blocks until it closes. Keys of the top four
// letter rows press switches of the left half, or of the right half while
// Shift is held; [ and ] turn the encoder.
func Run(newApp func(hal.HAL) func() error, cfg hal.HostConfig) error {
	hosts, err := hal.NewHosts(cfg)
	if err != nil {
		return err
	}
	r := hal.Rig(hosts)
	g := &game{rig: r, steps: r.Start(newApp), keys: bindKeys()}
	ebiten.SetWindowTitle("splitkb (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(len(r)*column*scale, height*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type binding struct {
	key      ebiten.Key
	row, col int
}

// bindKeys finds the keyboard key for each switch of the left half.
func bindKeys() []binding {
	rows := [matrix.Rows]string{"1234567", "QWERTYU", "ASDFGHJ", "ZXCVBNM"}
	var out []binding
	for i, row := range rows {
		for j, c := range row {
			name := string(c)
			if c >= '0' && c <= '9' {
				name = "Digit" + name
			}
			if k, ok := keyNamed(name); ok {
				out = append(out, binding{key: k, row: i, col: j})
			}
		}
	}
	return out
}

func keyNamed(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

type game struct {
	rig   hal.Rig
	steps []func() error
	keys  []binding
	img   *image.RGBA
	out   *ebiten.Image
}

func (g *game) Update() error {
	g.poll()
	g.rig.Advance()
	return hal.RunSteps(g.steps)
}

func (g *game) poll() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	for _, h := range g.rig {
		mine := len(g.rig) == 1 || shift == h.IsRight()
		for _, b := range g.keys {
			col := b.col
			if h.IsRight() {
				col = matrix.Cols - 1 - b.col
			}
			h.SetKey(b.row, col, mine && ebiten.IsKeyPressed(b.key))
		}
	}
	if h := g.rig.Half(shift); h != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
			h.Turn(true)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
			h.Turn(false)
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.Layout(0, 0)
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.out = ebiten.NewImage(w, h)
	}
	for i := range g.img.Pix {
		g.img.Pix[i] = 0
	}
	for i, host := range g.rig {
		g.drawHalf(i*column, host)
	}
	g.out.WritePixels(g.img.Pix)
	screen.DrawImage(g.out, nil)
}

func (g *game) drawHalf(x0 int, h *hal.Host) {
	fill(g.img, image.Rect(x0, 0, x0+column, height), caseBg)
	sw, sh := h.ScreenSize()
	sw, sh = min(sw, hal.PanelHeight), min(sh, hal.PanelWidth)
	for y := int16(0); y < sh; y++ {
		for x := int16(0); x < sw; x++ {
			c := panelOff
			if h.Pixel(x, y) {
				c = panelOn
			}
			g.img.SetRGBA(x0+margin+int(x), margin+int(y), c)
		}
	}
	for i, c := range h.LedFrame() {
		x := x0 + margin + (i%ledRow)*ledPitch
		y := ledTop + (i/ledRow)*ledPitch
		c.A = 0xFF
		fill(g.img, image.Rect(x, y, x+ledSize, y+ledSize), c)
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return len(g.rig) * column, height
}
