package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSplitLinesAlwaysReturnsAtLeastOne(t *testing.T) {
	if got := splitLines(""); len(got) != 1 || got[0] != "" {
		t.Fatalf("splitLines(%q) = %v, want one empty element", "", got)
	}
	if got := splitLines("a\nb\nc"); len(got) != 3 {
		t.Fatalf("splitLines line count = %d, want 3", len(got))
	}
}

func TestMaxLineWidth(t *testing.T) {
	lines := []string{"ab", "abcd", ""}
	if got := maxLineWidth(lines); got != 4 {
		t.Fatalf("maxLineWidth = %d, want 4", got)
	}
}

func TestPadRightPadsToVisualWidth(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	// Already wide enough: unchanged.
	if got := padRight("abcdef", 5); got != "abcdef" {
		t.Fatalf("padRight = %q, want unchanged", got)
	}
	// Escape sequences carry no width.
	styled := "\x1b[31mred\x1b[0m"
	got := padRight(styled, 5)
	if ansi.StringWidth(got) != 5 {
		t.Fatalf("padRight styled width = %d, want 5", ansi.StringWidth(got))
	}
	if !strings.HasSuffix(got, "  ") {
		t.Fatalf("padRight styled = %q, want two trailing spaces", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abc", 5); got != "abc" {
		t.Fatalf("truncate short = %q, want unchanged", got)
	}
	got := truncate("hello world", 5)
	if w := ansi.StringWidth(got); w > 5 {
		t.Fatalf("truncate width = %d, want <= 5", w)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate = %q, want %q suffix", got, "…")
	}
	if got := truncate("hello", 0); got != "" {
		t.Fatalf("truncate zero width = %q, want empty", got)
	}
}

func TestOverlayAtSplicesRow(t *testing.T) {
	base := "aaaaa\nbbbbb\nccccc"
	got := overlayAt(base, "XX", 1, 1, 5, 3)
	want := "aaaaa\nbXXbb\nccccc"
	if got != want {
		t.Fatalf("overlayAt = %q, want %q", got, want)
	}
}

func TestOverlayAtIgnoresRowsBeyondHeight(t *testing.T) {
	base := "aaaaa\nbbbbb\nccccc"
	got := overlayAt(base, "XX\nYY", 0, 2, 5, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if lines[2] != "XXccc" {
		t.Fatalf("row 2 = %q, want %q", lines[2], "XXccc")
	}
	// The second overlay row has no base row to land on.
	if lines[0] != "aaaaa" || lines[1] != "bbbbb" {
		t.Fatalf("untouched rows changed: %q", got)
	}
}

func TestOverlayAtPadsShortBaseRows(t *testing.T) {
	base := "ab\ncd"
	got := overlayAt(base, "Z", 4, 0, 6, 2)
	lines := strings.Split(got, "\n")
	if lines[0] != "ab  Z " {
		t.Fatalf("row 0 = %q, want %q", lines[0], "ab  Z ")
	}
	if lines[1] != "cd" {
		t.Fatalf("row 1 = %q, want untouched", lines[1])
	}
}
