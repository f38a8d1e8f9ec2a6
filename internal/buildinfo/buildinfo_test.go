package buildinfo

import "testing"

func TestLine(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"dev", "unknown", "unknown", "splitkb dev"},
		{"dev", "abc1234", "unknown", "splitkb abc1234"},
		{"v1.2.0", "abc1234", "2026-10-01", "splitkb v1.2.0 (abc1234, 2026-10-01)"},
		{"v1.2.0", "unknown", "unknown", "splitkb v1.2.0"},
	}
	for _, tt := range tests {
		Version, Commit, Date = tt.version, tt.commit, tt.date
		if got := Line(); got != tt.want {
			t.Errorf("Line() with %q %q %q = %q, want %q", tt.version, tt.commit, tt.date, got, tt.want)
		}
	}
}
