package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"splitkb/display"
	"splitkb/hal"
	"splitkb/kernel"
)

// Panic screen geometry, sized for the portrait panel both halves use once
// their role is known.
const (
	panicCols = 10
	panicRows = 9
)

func installPanicHandler(k *kernel.Kernel[job], h hal.HAL) {
	k.SetPanicHandler(func(info kernel.PanicInfo) { reportPanic(h, info) })
}

// reportPanic logs info with its stack and puts what fits on the panel. The
// kernel refuses all further jobs, so the board stays on this screen.
func reportPanic(h hal.HAL, info kernel.PanicInfo) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("panic: task=%s(%d) value=%v", info.Task, info.TaskID, info.Value))
		for _, line := range strings.Split(string(info.Stack), "\n") {
			if line != "" {
				l.WriteLineString(line)
			}
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	lines := []string{
		"PANIC",
		"task:",
		info.Task,
		fmt.Sprint(info.Value),
	}
	disp.Clear()
	row := 0
	for _, line := range lines {
		for len(line) > 0 && row < panicRows {
			var chunk string
			chunk, line = takeRunes(line, panicCols)
			disp.DrawText(chunk, 0, int16(row*display.LineHeight))
			line = strings.TrimLeft(line, " ")
			row++
		}
	}
	_ = disp.Flush()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
