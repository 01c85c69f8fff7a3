package questiongen

import (
	"strings"
	"testing"
)

func TestBuildDedup(t *testing.T) {
	if got := buildDedup(nil, 8); got != "None" {
		t.Errorf("empty = %q, want None", got)
	}

	prior := []string{"q1", "q2", "q3", "q4"}
	got := buildDedup(prior, 2)
	if got != "1. q3\n2. q4" {
		t.Errorf("truncated = %q", got)
	}
	if !strings.Contains(buildDedup(prior, 0), "4. q4") {
		t.Error("zero limit should keep all")
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"abcdef", 3, "abc"},
		{"abc", 10, "abc"},
		{"abc", 0, "abc"},
		{"Qing–Meiji", 5, "Qing–"},
	}
	for _, tt := range tests {
		if got := truncateRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestStripLabel(t *testing.T) {
	tests := []struct {
		in   string
		i    int
		want string
	}{
		{"A. Britain", 0, "Britain"},
		{"b) Russia", 1, "Russia"},
		{"C: Japan", 2, "Japan"},
		{"A. Britain", 1, "A. Britain"},
		{"Dutch East Indies", 3, "Dutch East Indies"},
	}
	for _, tt := range tests {
		if got := stripLabel(tt.in, tt.i); got != tt.want {
			t.Errorf("stripLabel(%q, %d) = %q, want %q", tt.in, tt.i, got, tt.want)
		}
	}
}
