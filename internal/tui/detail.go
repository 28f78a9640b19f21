package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskdash/internal/model"
)

// renderTaskDetail draws the right-hand pane for the selected task. Pure
// presentation over a single record; the pane is normalized so the split
// layout stays stable.
func renderTaskDetail(t model.Task, width, height int, now time.Time) string {
	if width < 20 {
		width = 20
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).
		Render(truncateToWidth(sanitizeLine(t.Title), width))

	status := "Pending"
	statusSt := lipgloss.NewStyle().Foreground(colorWarning)
	if t.Status == model.StatusCompleted {
		status = "Completed"
		statusSt = lipgloss.NewStyle().Foreground(colorSuccess)
	}

	meta := []string{
		styleMuted().Render("status   ") + statusSt.Render(status),
		styleMuted().Render("priority ") + lipgloss.NewStyle().Foreground(priorityColor(t.Priority)).Render(string(t.Priority)),
		styleMuted().Render("due      ") + formatDueDate(t.DueDate),
		styleMuted().Render("created  ") + relativeAge(t.CreatedAt, now) + styleMuted().Render("  ("+formatShortDate(t.CreatedAt)+")"),
	}
	if t.Overdue(now) {
		meta = append(meta, lipgloss.NewStyle().Bold(true).Foreground(colorDanger).Render("OVERDUE"))
	}

	parts := []string{title, "", strings.Join(meta, "\n")}
	if desc := renderMarkdown(t.Description, width-2); desc != "" {
		parts = append(parts, "", desc)
	}

	return normalizePane(strings.Join(parts, "\n"), width, height)
}
