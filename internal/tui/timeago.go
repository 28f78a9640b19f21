package tui

import (
	"fmt"
	"time"
)

// relativeAge buckets the elapsed time since t into the labels the cards show.
// Bucket boundaries use floor division of elapsed whole seconds; a week or
// more falls back to the absolute short date.
func relativeAge(t, now time.Time) string {
	secs := int64(now.Sub(t) / time.Second)
	switch {
	case secs < 60:
		return "just now"
	case secs < 3600:
		return fmt.Sprintf("%d minutes ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%d hours ago", secs/3600)
	case secs < 604800:
		return fmt.Sprintf("%d days ago", secs/86400)
	default:
		return formatShortDate(t)
	}
}

// formatShortDate renders "Jan 5, 2024".
func formatShortDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// formatDueDate renders a YYYY-MM-DD due date as a short calendar date,
// falling back to the raw string when it doesn't parse.
func formatDueDate(due string) string {
	parsed, err := time.Parse("2006-01-02", due)
	if err != nil {
		return due
	}
	return formatShortDate(parsed)
}

// sanitizeText strips ANSI escape sequences and other control bytes from
// server-provided free text (titles, descriptions) so embedded terminal
// markup renders as nothing instead of being interpreted. This is the
// terminal equivalent of HTML-escaping user content and is mandatory for
// every remote string that reaches the screen.
func sanitizeText(s string) string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == 0x1b { // ESC
			// CSI: ESC [ ... final byte 0x40-0x7E. Other ESC sequences: drop
			// the ESC and let the remainder render as literal text.
			if i+1 < len(b) && b[i+1] == '[' {
				i += 2
				for i < len(b) && (b[i] < 0x40 || b[i] > 0x7e) {
					i++
				}
			}
			continue
		}
		if c < 0x20 && c != '\n' && c != '\t' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// sanitizeLine is sanitizeText for single-line contexts: newlines and tabs
// become spaces.
func sanitizeLine(s string) string {
	s = sanitizeText(s)
	b := []byte(s)
	for i, c := range b {
		if c == '\n' || c == '\t' {
			b[i] = ' '
		}
	}
	return string(b)
}
