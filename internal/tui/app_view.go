package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskdash/internal/model"
)

func (m appModel) View() string {
	switch m.modal {
	case modalEditor:
		return placeCentered(m.width, m.height, m.renderEditor())
	case modalConfirmDelete:
		return placeCentered(m.width, m.height, renderConfirmModal(
			m.width,
			"Delete Task",
			confirmDeleteBody(m.confirmTitle),
			"Delete",
			"Cancel",
			m.confirmFocus,
		))
	}

	sections := []string{m.renderHeader()}
	if banners := renderNotices(m.notices, m.width); banners != "" {
		sections = append(sections, banners)
	}
	sections = append(sections, m.renderFilterBar(), m.renderBody(), m.renderFooter())
	return strings.Join(sections, "\n\n")
}

func (m appModel) renderHeader() string {
	left := lipgloss.NewStyle().Bold(true).Render("TaskDash") +
		styleMuted().Render("  •  "+m.username)

	right := fmt.Sprintf("%d total  •  %d pending  •  %d completed",
		m.stats.Total, m.stats.Pending, m.stats.Completed)
	right = styleMuted().Render(right)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return left + "  " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m appModel) renderFilterBar() string {
	tab := func(label string, active bool) string {
		st := styleMuted().Padding(0, 1)
		if active {
			st = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Foreground(colorSelectedFg).
				Background(colorSelectedBg)
		}
		return st.Render(label)
	}

	bucket := m.filter.Bucket
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		tab("All", bucket == model.BucketAll || bucket == ""),
		tab("Pending", bucket == model.BucketPending),
		tab("Completed", bucket == model.BucketCompleted),
	)

	prio := "any priority"
	if m.filter.Priority != "" {
		prio = string(m.filter.Priority)
	}
	prioSt := styleMuted()
	if m.filter.Priority != "" {
		prioSt = lipgloss.NewStyle().Bold(true).Foreground(priorityColor(m.filter.Priority))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		tabs,
		"   ",
		m.search.View(),
		"   ",
		prioSt.Render(prio),
	)
}

func (m appModel) renderBody() string {
	if m.loading && !m.loadedOnce {
		return m.spin.View() + " Loading tasks…"
	}

	// The empty store and the filtered-to-nothing view are different states
	// and get different messages.
	if m.loadedOnce && len(m.tasks) == 0 {
		return renderEmptyState(m.width, "No tasks yet", "Create your first task to get started! (n)")
	}
	if m.loadedOnce && len(m.visibleTasks()) == 0 {
		return renderEmptyState(m.width, "No tasks found", "Try adjusting your filters")
	}

	listView := m.tasksList.View()
	if m.width < minSplitDetailW {
		return listView
	}

	listW := m.tasksList.Width()
	detailW := m.width - listW - 2
	if detailW < 30 {
		return listView
	}
	detailH := m.tasksList.Height()

	var detail string
	if t, ok := m.selectedTask(); ok {
		detail = renderTaskDetail(t, detailW, detailH, time.Now())
	} else {
		detail = normalizePane(styleMuted().Render("No task selected."), detailW, detailH)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, listView, "  ", detail)
}

func renderEmptyState(width int, title, hint string) string {
	if width < 20 {
		width = 20
	}
	block := lipgloss.NewStyle().Bold(true).Render(title) + "\n" + styleMuted().Render(hint)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func (m appModel) renderFooter() string {
	return styleMuted().Render(
		"n new   e edit   c complete   u reopen   d delete   / search   s status   p priority   r reload   q quit",
	)
}
