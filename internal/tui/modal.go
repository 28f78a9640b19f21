package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	modalMaxW = 72
	modalMinW = 40
)

func modalWidth(termW int) int {
	w := termW - 8
	if w > modalMaxW {
		w = modalMaxW
	}
	if w < modalMinW {
		w = modalMinW
	}
	return w
}

// modalBodyWidth is the content width inside the modal frame (border+padding).
func modalBodyWidth(termW int) int {
	return modalWidth(termW) - 6
}

func renderModalBox(termW int, title, content string) string {
	w := modalWidth(termW)
	bodyW := w - 6

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Width(bodyW).
		Padding(0, 1).
		Render(title)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Width(w - 2)

	return box.Render(strings.Join([]string{header, "", content}, "\n"))
}

// placeCentered positions a modal in the middle of the screen. The background
// is left blank; nesting the dimmed dashboard behind a colored modal causes
// artifacts on some terminals.
func placeCentered(termW, termH int, modal string) string {
	if termW <= 0 || termH <= 0 {
		return modal
	}
	return lipgloss.Place(termW, termH, lipgloss.Center, lipgloss.Center, modal)
}

func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}
	// Text inputs must stay a single visual line inside modals; stray
	// newlines trigger wrapping that looks like inserted lines while typing.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	return padOrCutANSI(line, bodyW)
}
