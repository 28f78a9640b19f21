package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"taskdash/internal/api"
	"taskdash/internal/model"
)

// Network calls run as commands off the event loop and deliver exactly one
// message each. Nothing is cancellable once issued; consistency comes from the
// full reload that follows every successful mutation, not from ordering.

type tasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

type mutationDoneMsg struct {
	action string // "delete" | "complete" | "reopen"
	err    error
}

type editorSavedMsg struct {
	created bool
	err     error
}

func loadTasksCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		tasks, err := c.ListTasks(context.Background())
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func saveTaskCmd(c *api.Client, editingID int, fields model.TaskFields) tea.Cmd {
	return func() tea.Msg {
		var err error
		if editingID != 0 {
			_, err = c.UpdateTask(context.Background(), editingID, fields)
			return editorSavedMsg{created: false, err: err}
		}
		_, err = c.CreateTask(context.Background(), fields)
		return editorSavedMsg{created: true, err: err}
	}
}

func deleteTaskCmd(c *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{action: "delete", err: c.DeleteTask(context.Background(), id)}
	}
}

func markCompleteCmd(c *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		_, err := c.MarkComplete(context.Background(), id)
		return mutationDoneMsg{action: "complete", err: err}
	}
}

func markPendingCmd(c *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		_, err := c.MarkPending(context.Background(), id)
		return mutationDoneMsg{action: "reopen", err: err}
	}
}
