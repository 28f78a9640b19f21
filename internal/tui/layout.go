package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

func truncateToWidth(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func padOrCutANSI(s string, w int) string {
	cur := xansi.StringWidth(s)
	switch {
	case cur < w:
		return s + strings.Repeat(" ", w-cur)
	case cur > w:
		return xansi.Cut(s, 0, w) + "\x1b[0m"
	default:
		return s
	}
}

// normalizePane forces s to exactly width columns and height lines (ANSI
// aware) so split-pane joins stay stable.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i := range lines {
		lines[i] = padOrCutANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
