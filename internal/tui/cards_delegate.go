package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdash/internal/model"
)

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Title }

type taskCardDelegate struct {
	normalCard   lipgloss.Style
	selectedCard lipgloss.Style

	titleStyle     lipgloss.Style
	completedStyle lipgloss.Style
	metaStyle      lipgloss.Style

	// now is injectable for tests; zero means "use wall clock per render".
	now time.Time
}

func newTaskCardDelegate() taskCardDelegate {
	base := lipgloss.NewStyle().
		Width(0). // Set per-render.
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Foreground(colorSurfaceFg)

	selected := base.BorderForeground(colorSelectedBorder)

	return taskCardDelegate{
		normalCard:     base,
		selectedCard:   selected,
		titleStyle:     lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg),
		completedStyle: lipgloss.NewStyle().Bold(true).Strikethrough(true).Foreground(colorMuted),
		metaStyle:      lipgloss.NewStyle().Foreground(colorCardMetaFg),
	}
}

func (d taskCardDelegate) Height() int  { return 6 } // 4 inner lines + border top/bottom
func (d taskCardDelegate) Spacing() int { return 1 }
func (d taskCardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskCardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	totalW := m.Width()
	if totalW < 16 {
		fmt.Fprint(w, "")
		return
	}

	now := d.now
	if now.IsZero() {
		now = time.Now()
	}

	card := d.normalCard
	if index == m.Index() {
		card = d.selectedCard
	}
	frameW := card.GetHorizontalFrameSize()
	innerW := totalW - frameW
	if innerW < 1 {
		innerW = 1
	}
	card = card.Width(innerW)

	lines := renderCardLines(it.task, innerW, now, d)
	for i := range lines {
		lines[i] = padOrCutANSI(lines[i], innerW)
	}
	fmt.Fprint(w, card.Render(strings.Join(lines, "\n")))
}

// renderCardLines produces the card's four content lines: title+badges,
// description, metadata, and available actions.
func renderCardLines(t model.Task, innerW int, now time.Time, d taskCardDelegate) []string {
	completed := t.Status == model.StatusCompleted

	titleSt := d.titleStyle
	if completed {
		titleSt = d.completedStyle
	}
	title := sanitizeLine(t.Title)
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}

	badges := []string{
		lipgloss.NewStyle().Bold(true).Foreground(priorityColor(t.Priority)).Render(string(t.Priority)),
	}
	if completed {
		badges = append(badges, lipgloss.NewStyle().Foreground(colorSuccess).Render("Completed"))
	}
	if t.Overdue(now) {
		badges = append(badges, lipgloss.NewStyle().Bold(true).Foreground(colorDanger).Render("Overdue"))
	}
	badgeStr := strings.Join(badges, " ")

	titleLine := truncateToWidth(title, innerW-lipgloss.Width(badgeStr)-2)
	gap := innerW - lipgloss.Width(titleLine) - lipgloss.Width(badgeStr)
	if gap < 1 {
		gap = 1
	}
	header := titleSt.Render(titleLine) + strings.Repeat(" ", gap) + badgeStr

	desc := truncateToWidth(sanitizeLine(t.Description), innerW)
	if desc == "" {
		desc = " "
	}

	meta := fmt.Sprintf("due %s  •  created %s", formatDueDate(t.DueDate), relativeAge(t.CreatedAt, now))

	toggle := "c complete"
	if completed {
		toggle = "u reopen"
	}
	actions := toggle + "   e edit   d delete"

	return []string{
		header,
		d.metaStyle.Render(desc),
		d.metaStyle.Render(meta),
		styleMuted().Render(actions),
	}
}
