//go:build !tinygo

package hal

import (
	"context"
	"image/color"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"splitkb/display"
)

// Terminal layout.
const (
	tuiColumn  = 28
	tuiLogRows = 8
	tuiHz      = 60
)

var tuiBackground = colorful.Color{R: 0.08, G: 0.08, B: 0.1}

// RunTUI runs the firmware in the terminal. Typed characters tap switches;
// Esc or Ctrl-C quits.
func RunTUI(ctx context.Context, newApp func(HAL) func() error, cfg HostConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	logs := &tuiLog{max: tuiLogRows}
	cfg.Log = logs
	hosts, err := NewHosts(cfg)
	if err != nil {
		return err
	}
	r := Rig(hosts)
	steps := r.Start(newApp)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	t := time.NewTicker(time.Second / tuiHz)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return nil
				case tcell.KeyRune:
					r.TapRune(ev.Rune())
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			r.Advance()
			if err := RunSteps(steps); err != nil {
				return err
			}
			drawTUI(screen, r, logs.lines())
			screen.Show()
		}
	}
}

func drawTUI(s tcell.Screen, r Rig, logs []string) {
	s.Clear()
	plain := tcell.StyleDefault
	for i, h := range r {
		x0 := i * tuiColumn
		title := h.Name()
		if h.hid.Configured() {
			title += " (usb)"
		}
		putString(s, x0, 0, title, plain.Bold(true))
		drawPanel(s, x0, 1, h.Screen())
		drawLeds(s, x0, 12, h.LedFrame())
	}
	y := 15
	putString(s, 0, y, "left: 1-7 qwertyu asdfghj zxcvbnm [ ]   right: shifted, { }   quit: esc", plain.Dim(true))
	for i, l := range logs {
		putString(s, 0, y+1+i, l, plain)
	}
}

func drawPanel(s tcell.Screen, x0, y0 int, frame []display.Text) {
	bg := tcell.StyleDefault.Background(tuiColor(tuiBackground))
	for y := 0; y < 10; y++ {
		for x := 0; x < 11; x++ {
			s.SetContent(x0+x, y0+y, ' ', nil, bg)
		}
	}
	for _, t := range frame {
		putString(s, x0+int(t.X)/display.CharWidth, y0+int(t.Y)/display.LineHeight, t.S, bg)
	}
}

// drawLeds previews the strip, each LED blended toward the panel background
// as if seen through the case.
func drawLeds(s tcell.Screen, x0, y0 int, colors []color.RGBA) {
	for i, c := range colors {
		led, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		mixed := led.BlendLab(tuiBackground, 0.25).Clamped()
		st := tcell.StyleDefault.Foreground(tuiColor(mixed))
		s.SetContent(x0+i%16, y0+i/16, '█', nil, st)
	}
}

func tuiColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func putString(s tcell.Screen, x, y int, str string, st tcell.Style) {
	for _, c := range str {
		s.SetContent(x, y, c, nil, st)
		x++
	}
}

// tuiLog keeps the last max log lines.
type tuiLog struct {
	mu   sync.Mutex
	max  int
	rows []string
}

func (l *tuiLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		l.rows = append(l.rows, line)
	}
	if over := len(l.rows) - l.max; over > 0 {
		l.rows = append(l.rows[:0], l.rows[over:]...)
	}
	return len(p), nil
}

func (l *tuiLog) lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.rows...)
}
