package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"taskdash/internal/model"
)

// pinAsciiProfile turns styling off so assertions can match plain text.
func pinAsciiProfile(t *testing.T) {
	t.Helper()
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })
}

func TestCardLines_OverdueBadgeOnlyForPendingPastDue(t *testing.T) {
	pinAsciiProfile(t)
	d := newTaskCardDelegate()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	pendingLate := model.Task{
		Title: "Taxes", Priority: model.PriorityHigh,
		Status: model.StatusPending, DueDate: "2026-08-01",
		CreatedAt: now.Add(-2 * time.Hour),
	}
	lines := renderCardLines(pendingLate, 60, now, d)
	if !strings.Contains(lines[0], "Overdue") {
		t.Fatalf("pending past-due card should show the Overdue badge:\n%s", lines[0])
	}

	completedLate := pendingLate
	completedLate.Status = model.StatusCompleted
	lines = renderCardLines(completedLate, 60, now, d)
	if strings.Contains(lines[0], "Overdue") {
		t.Fatalf("completed card must never show Overdue:\n%s", lines[0])
	}
	if !strings.Contains(lines[0], "Completed") {
		t.Fatalf("completed card should show the Completed badge:\n%s", lines[0])
	}
}

func TestCardLines_ToggleActionFollowsStatus(t *testing.T) {
	pinAsciiProfile(t)
	d := newTaskCardDelegate()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	pending := model.Task{Title: "t", Priority: model.PriorityLow, Status: model.StatusPending, DueDate: "2026-09-01", CreatedAt: now}
	lines := renderCardLines(pending, 60, now, d)
	if !strings.Contains(lines[3], "c complete") || strings.Contains(lines[3], "u reopen") {
		t.Fatalf("pending card actions: %q", lines[3])
	}

	completed := pending
	completed.Status = model.StatusCompleted
	lines = renderCardLines(completed, 60, now, d)
	if !strings.Contains(lines[3], "u reopen") || strings.Contains(lines[3], "c complete") {
		t.Fatalf("completed card actions: %q", lines[3])
	}
}

func TestCardLines_RemoteTextIsSanitized(t *testing.T) {
	pinAsciiProfile(t)
	d := newTaskCardDelegate()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	task := model.Task{
		Title:       "evil \x1b[2J\x1b[31mtitle",
		Description: "line one\nline two \x07bell",
		Priority:    model.PriorityMedium,
		Status:      model.StatusPending,
		DueDate:     "2026-09-01",
		CreatedAt:   now,
	}
	lines := renderCardLines(task, 60, now, d)
	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "\x1b[2J") || strings.Contains(joined, "\x07") {
		t.Fatalf("server-provided text leaked control sequences:\n%q", joined)
	}
	if !strings.Contains(lines[0], "evil title") {
		t.Fatalf("sanitized title text should survive: %q", lines[0])
	}
	if !strings.Contains(lines[1], "line one line two bell") {
		t.Fatalf("description should flatten to one sanitized line: %q", lines[1])
	}
}

func TestCardLines_MetaShowsDueAndRelativeAge(t *testing.T) {
	pinAsciiProfile(t)
	d := newTaskCardDelegate()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	task := model.Task{
		Title: "t", Priority: model.PriorityLow, Status: model.StatusPending,
		DueDate:   "2026-09-05",
		CreatedAt: now.Add(-90 * time.Minute),
	}
	lines := renderCardLines(task, 60, now, d)
	if !strings.Contains(lines[2], "due Sep 5, 2026") {
		t.Fatalf("meta line missing due date: %q", lines[2])
	}
	if !strings.Contains(lines[2], "created 1 hours ago") {
		t.Fatalf("meta line missing relative age: %q", lines[2])
	}
}

func TestCardLines_BlankTitlePlaceholder(t *testing.T) {
	pinAsciiProfile(t)
	d := newTaskCardDelegate()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	task := model.Task{Title: "   ", Priority: model.PriorityLow, Status: model.StatusPending, DueDate: "2026-09-01", CreatedAt: now}
	lines := renderCardLines(task, 60, now, d)
	if !strings.Contains(lines[0], "(untitled)") {
		t.Fatalf("blank title should render the placeholder: %q", lines[0])
	}
}
