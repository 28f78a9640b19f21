package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"taskdash/internal/model"
)

// Theme/palette helpers.
//
// The dashboard must remain readable on both light and dark terminal
// backgrounds. We use lipgloss.AdaptiveColor where possible and only apply
// "faint" styling on dark backgrounds (faint text on light terminals often
// becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorAccent    lipgloss.TerminalColor = ac("27", "62") // blue

	// Card borders: selection must stand out against the unselected cards.
	colorCardBorder     lipgloss.TerminalColor = ac("250", "243")
	colorSelectedBorder lipgloss.TerminalColor = ac("232", "255")

	// Small secondary labels inside cards (due date, created-ago).
	colorCardMetaFg lipgloss.TerminalColor = ac("238", "250")

	// Status/priority semantics.
	colorSuccess lipgloss.TerminalColor = ac("28", "40")   // green
	colorWarning lipgloss.TerminalColor = ac("130", "214") // amber
	colorDanger  lipgloss.TerminalColor = ac("160", "196") // red

	// Notifier banners.
	colorNoticeSuccessBg lipgloss.TerminalColor = ac("28", "22")
	colorNoticeErrorBg   lipgloss.TerminalColor = ac("160", "52")
	colorNoticeFg        lipgloss.TerminalColor = ac("255", "255")

	// Modal surfaces.
	colorControlBg lipgloss.TerminalColor = ac("252", "235")
	colorInputBg   lipgloss.TerminalColor = ac("254", "234")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func priorityColor(p model.Priority) lipgloss.TerminalColor {
	switch p {
	case model.PriorityHigh:
		return colorDanger
	case model.PriorityMedium:
		return colorWarning
	case model.PriorityLow:
		return colorSuccess
	default:
		return colorMuted
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful for
// non-interactive output but can accidentally disable colors in a TUI; here we
// only honor NO_COLOR and otherwise follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection. Some terminals don't
// reliably report their background, which can make AdaptiveColor pick the
// wrong variant.
//
// Priority:
// 1) TASKDASH_TUI_THEME=light|dark|auto
// 2) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference() {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("TASKDASH_TUI_THEME"))); v != "" {
		switch v {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		}
		// "auto"/unknown: fall through to heuristics.
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
