package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"taskdash/internal/api"
	"taskdash/internal/model"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := (&m).handleNoticeMsg(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		(&m).resize()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tasksLoadedMsg:
		return m.onTasksLoaded(msg)

	case mutationDoneMsg:
		return m.onMutationDone(msg)

	case editorSavedMsg:
		return m.onEditorSaved(msg)

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	var cmd tea.Cmd
	m.tasksList, cmd = m.tasksList.Update(msg)
	return m, cmd
}

func (m appModel) onTasksLoaded(msg tasksLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			m.authExpired = true
			return m, tea.Quit
		}
		var statusErr *api.StatusError
		if errors.As(msg.err, &statusErr) {
			return m, (&m).pushNotice(noticeError, "Failed to load tasks")
		}
		debugLogf("load tasks: %v", msg.err)
		return m, (&m).pushNotice(noticeError, "An error occurred while loading tasks")
	}

	m.loadedOnce = true
	(&m).replaceTasks(msg.tasks)
	return m, nil
}

func (m appModel) onMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			m.authExpired = true
			return m, tea.Quit
		}
		debugLogf("%s task: %v", msg.action, msg.err)
		text := "Failed to update task status"
		if msg.action == "delete" {
			text = "Failed to delete task"
		}
		return m, (&m).pushNotice(noticeError, text)
	}

	var text string
	switch msg.action {
	case "delete":
		text = "Task deleted successfully!"
	case "complete":
		text = "Task marked as complete!"
	case "reopen":
		text = "Task reopened!"
	}
	noticeCmd := (&m).pushNotice(noticeSuccess, text)
	return m, tea.Batch(noticeCmd, (&m).reload())
}

func (m appModel) onEditorSaved(msg editorSavedMsg) (tea.Model, tea.Cmd) {
	m.editor.saving = false
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			m.authExpired = true
			return m, tea.Quit
		}
		// Validation failures render inline; the editor stays open with the
		// entered values intact so the user can correct and resubmit.
		var valErr *api.ValidationError
		if errors.As(msg.err, &valErr) {
			m.editor.errText = valErr.Error()
			return m, nil
		}
		var statusErr *api.StatusError
		if errors.As(msg.err, &statusErr) {
			m.editor.errText = "Failed to save task"
			return m, nil
		}
		debugLogf("save task: %v", msg.err)
		m.editor.errText = "An error occurred while saving the task"
		return m, nil
	}

	text := "Task updated successfully!"
	if msg.created {
		text = "Task created successfully!"
	}
	m.editor.close()
	m.modal = modalNone
	noticeCmd := (&m).pushNotice(noticeSuccess, text)
	return m, tea.Batch(noticeCmd, (&m).reload())
}

func (m appModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modals capture every key so text inputs behave normally.
	switch m.modal {
	case modalEditor:
		return m.onEditorKey(msg)
	case modalConfirmDelete:
		return m.onConfirmKey(msg)
	}

	if m.searchFocused {
		switch msg.String() {
		case "esc", "enter":
			m.searchFocused = false
			m.search.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		// The view filter reacts to every keystroke, like typing in the
		// search box of the web dashboard.
		m.filter.Search = m.search.Value()
		(&m).refreshVisible()
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "r":
		return m, (&m).reload()

	case "/":
		m.searchFocused = true
		return m, m.search.Focus()

	case "s":
		(&m).cycleBucket()
		return m, nil

	case "p":
		(&m).cyclePriorityFilter()
		return m, nil

	case "n":
		m.modal = modalEditor
		return m, m.editor.openCreate()

	case "e", "enter":
		if t, ok := m.selectedTask(); ok {
			m.modal = modalEditor
			return m, m.editor.openEdit(t)
		}
		return m, nil

	case "d":
		if t, ok := m.selectedTask(); ok {
			m.modal = modalConfirmDelete
			m.confirmID = t.ID
			m.confirmTitle = t.Title
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil

	case "c":
		if t, ok := m.selectedTask(); ok && t.Status == model.StatusPending {
			return m, markCompleteCmd(m.client, t.ID)
		}
		return m, nil

	case "u":
		if t, ok := m.selectedTask(); ok && t.Status == model.StatusCompleted {
			return m, markPendingCmd(m.client, t.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tasksList, cmd = m.tasksList.Update(msg)
	return m, cmd
}

func (m appModel) onEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		// Closing clears the editing target no matter how the editor opened.
		m.editor.close()
		m.modal = modalNone
		return m, nil
	}
	if m.editor.saving {
		return m, nil
	}

	cmd, submit := m.editor.handleKey(msg)
	if !submit {
		return m, cmd
	}

	fields, err := m.editor.fields()
	if err != nil {
		m.editor.errText = err.Error()
		return m, nil
	}
	m.editor.errText = ""
	m.editor.saving = true
	return m, saveTaskCmd(m.client, m.editor.editingID, fields)
}

func (m appModel) onConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	decline := func() (tea.Model, tea.Cmd) {
		// Declining performs no call and shows no notification.
		m.modal = modalNone
		m.confirmID = 0
		m.confirmTitle = ""
		return m, nil
	}

	switch msg.String() {
	case "esc", "n", "N":
		return decline()
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusCancel {
			m.confirmFocus = confirmFocusConfirm
		} else {
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil
	case "y", "Y":
		return m.confirmDelete()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.confirmDelete()
		}
		return decline()
	}
	return m, nil
}

func (m appModel) confirmDelete() (tea.Model, tea.Cmd) {
	id := m.confirmID
	m.modal = modalNone
	m.confirmID = 0
	m.confirmTitle = ""
	if id == 0 {
		return m, nil
	}
	return m, deleteTaskCmd(m.client, id)
}

func confirmDeleteBody(title string) string {
	title = truncateToWidth(sanitizeLine(title), 48)
	return fmt.Sprintf("Are you sure you want to delete %q?\nThis cannot be undone.", title)
}
