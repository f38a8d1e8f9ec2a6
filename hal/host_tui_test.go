//go:build !tinygo

package hal

import (
	"fmt"
	"testing"
)

func TestTUILogKeepsTail(t *testing.T) {
	l := &tuiLog{max: 3}
	for i := 0; i < 5; i++ {
		fmt.Fprintln(l, "line", i)
	}
	got := l.lines()
	want := []string{"line 2", "line 3", "line 4"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("lines() = %v, want %v", got, want)
	}
}
