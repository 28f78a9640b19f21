package tui

import (
	"testing"
	"time"
)

func TestRelativeAge_Buckets(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		secsAgo int64
		want    string
	}{
		{0, "just now"},
		{59, "just now"},
		{60, "1 minutes ago"},
		{3599, "59 minutes ago"},
		{3600, "1 hours ago"},
		{86399, "23 hours ago"},
		{86400, "1 days ago"},
		{604799, "6 days ago"},
	}
	for _, c := range cases {
		got := relativeAge(now.Add(-time.Duration(c.secsAgo)*time.Second), now)
		if got != c.want {
			t.Fatalf("relativeAge(%ds ago) = %q, want %q", c.secsAgo, got, c.want)
		}
	}
}

func TestRelativeAge_WeekOldFallsBackToDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	then := now.Add(-604800 * time.Second)
	if got := relativeAge(then, now); got != "Aug 22, 2026" {
		t.Fatalf("week-old timestamp should render the absolute date, got %q", got)
	}
}

func TestFormatDueDate(t *testing.T) {
	if got := formatDueDate("2026-01-05"); got != "Jan 5, 2026" {
		t.Fatalf("formatDueDate = %q", got)
	}
	if got := formatDueDate("garbage"); got != "garbage" {
		t.Fatalf("unparsable due date should pass through, got %q", got)
	}
}

func TestSanitizeText_StripsEscapeSequences(t *testing.T) {
	in := "safe \x1b[31mred\x1b[0m text"
	if got := sanitizeText(in); got != "safe red text" {
		t.Fatalf("sanitizeText = %q", got)
	}
}

func TestSanitizeText_StripsControlBytesKeepsWhitespace(t *testing.T) {
	in := "a\x07b\nc\td\x00e"
	if got := sanitizeText(in); got != "ab\nc\tde" {
		t.Fatalf("sanitizeText = %q", got)
	}
}

func TestSanitizeText_BareEscapeDropped(t *testing.T) {
	in := "x\x1bZy"
	if got := sanitizeText(in); got != "xZy" {
		t.Fatalf("non-CSI escape should drop only the ESC byte, got %q", got)
	}
}

func TestSanitizeLine_FlattensNewlines(t *testing.T) {
	in := "first\nsecond\tthird"
	if got := sanitizeLine(in); got != "first second third" {
		t.Fatalf("sanitizeLine = %q", got)
	}
}
