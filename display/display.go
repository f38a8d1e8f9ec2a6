// Package display defines the text surface the status pages draw on.
package display

import "strings"

// LineHeight is the vertical pitch of text lines on the panel.
const LineHeight = 13

// CharWidth is the horizontal advance of one glyph.
const CharWidth = 6

// Screen is a monochrome panel that draws text. Pages clear it, draw, then
// flush.
type Screen interface {
	Clear()
	DrawText(s string, x, y int16)
	Flush() error
}

// Text is one DrawText call.
type Text struct {
	S    string
	X, Y int16
}

// Recorder is a Screen that keeps the text of the last flushed frame.
type Recorder struct {
	pending []Text
	frame   []Text
	Flushes int
}

func (r *Recorder) Clear() { r.pending = r.pending[:0] }

func (r *Recorder) DrawText(s string, x, y int16) {
	r.pending = append(r.pending, Text{S: s, X: x, Y: y})
}

func (r *Recorder) Flush() error {
	r.frame = append(r.frame[:0], r.pending...)
	r.Flushes++
	return nil
}

// Frame returns the text of the last flushed frame.
func (r *Recorder) Frame() []Text { return r.frame }

// Contains reports whether any text of the last frame contains sub.
func (r *Recorder) Contains(sub string) bool {
	for _, t := range r.frame {
		if strings.Contains(t.S, sub) {
			return true
		}
	}
	return false
}

// String joins the last frame one text per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, t := range r.frame {
		b.WriteString(t.S)
		b.WriteByte('\n')
	}
	return b.String()
}
