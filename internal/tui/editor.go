package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdash/internal/model"
)

// The task editor is a two-state machine: closed, or open with an optional
// editing target. A zero editingID means create mode; otherwise the target's
// identifier and status are carried through submit untouched (status changes
// only happen via the dedicated complete/reopen actions).

type editorFocus int

const (
	editorFocusTitle editorFocus = iota
	editorFocusDescription
	editorFocusPriority
	editorFocusYear
	editorFocusMonth
	editorFocusDay
	editorFocusSubmit
)

type editorState struct {
	open          bool
	editingID     int
	carriedStatus model.Status

	title       textinput.Model
	description textarea.Model
	priorityIdx int
	year        textinput.Model
	month       textinput.Model
	day         textinput.Model

	focus   editorFocus
	errText string
	saving  bool
}

func newEditorState() editorState {
	e := editorState{}

	e.title = textinput.New()
	e.title.Placeholder = "Title"
	e.title.CharLimit = 200
	e.title.Width = 40

	e.description = textarea.New()
	e.description.Placeholder = "Description (markdown ok)"
	e.description.CharLimit = 0
	e.description.SetWidth(56)
	e.description.SetHeight(5)
	e.description.ShowLineNumbers = false

	e.year = textinput.New()
	e.year.Placeholder = "YYYY"
	e.year.CharLimit = 4
	e.year.Width = 6
	e.month = textinput.New()
	e.month.Placeholder = "MM"
	e.month.CharLimit = 2
	e.month.Width = 4
	e.day = textinput.New()
	e.day.Placeholder = "DD"
	e.day.CharLimit = 2
	e.day.Width = 4

	return e
}

func (e *editorState) openCreate() tea.Cmd {
	e.reset()
	e.open = true
	e.editingID = 0
	e.carriedStatus = model.StatusPending
	return e.setFocus(editorFocusTitle)
}

func (e *editorState) openEdit(t model.Task) tea.Cmd {
	e.reset()
	e.open = true
	e.editingID = t.ID
	e.carriedStatus = t.Status

	e.title.SetValue(t.Title)
	e.description.SetValue(t.Description)
	for i, p := range model.KnownPriorities {
		if p == t.Priority {
			e.priorityIdx = i
			break
		}
	}
	if due, err := time.Parse("2006-01-02", t.DueDate); err == nil {
		e.year.SetValue(fmt.Sprintf("%04d", due.Year()))
		e.month.SetValue(fmt.Sprintf("%02d", int(due.Month())))
		e.day.SetValue(fmt.Sprintf("%02d", due.Day()))
	}
	return e.setFocus(editorFocusTitle)
}

// close always clears the editing target, however the editor was opened.
func (e *editorState) close() {
	e.reset()
}

func (e *editorState) reset() {
	e.open = false
	e.editingID = 0
	e.carriedStatus = model.StatusPending
	e.title.SetValue("")
	e.description.SetValue("")
	e.priorityIdx = indexOfPriority(model.PriorityMedium)
	e.year.SetValue("")
	e.month.SetValue("")
	e.day.SetValue("")
	e.errText = ""
	e.saving = false
	e.focus = editorFocusTitle
	e.blurAll()
}

func indexOfPriority(p model.Priority) int {
	for i, kp := range model.KnownPriorities {
		if kp == p {
			return i
		}
	}
	return 0
}

func (e editorState) editing() bool { return e.editingID != 0 }

func (e editorState) modeLabel() string {
	if e.editing() {
		return "Edit Task"
	}
	return "Add New Task"
}

func (e editorState) priority() model.Priority {
	if e.priorityIdx < 0 || e.priorityIdx >= len(model.KnownPriorities) {
		return model.PriorityMedium
	}
	return model.KnownPriorities[e.priorityIdx]
}

// fields assembles the submission payload from the current form values plus
// the carried-over status. Local checks catch only what can't round-trip at
// all; the server remains the validation authority.
func (e editorState) fields() (model.TaskFields, error) {
	title := strings.TrimSpace(e.title.Value())
	if title == "" {
		return model.TaskFields{}, fmt.Errorf("title: this field is required")
	}
	due, err := e.dueDate()
	if err != nil {
		return model.TaskFields{}, err
	}
	return model.TaskFields{
		Title:       title,
		Description: e.description.Value(),
		Priority:    e.priority(),
		Status:      e.carriedStatus,
		DueDate:     due,
	}, nil
}

func (e editorState) dueDate() (string, error) {
	y := strings.TrimSpace(e.year.Value())
	mo := strings.TrimSpace(e.month.Value())
	d := strings.TrimSpace(e.day.Value())
	if y == "" && mo == "" && d == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	yi, err1 := strconv.Atoi(y)
	mi, err2 := strconv.Atoi(mo)
	di, err3 := strconv.Atoi(d)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", fmt.Errorf("due_date: enter a valid date (YYYY MM DD)")
	}
	candidate := fmt.Sprintf("%04d-%02d-%02d", yi, mi, di)
	if _, err := time.Parse("2006-01-02", candidate); err != nil {
		return "", fmt.Errorf("due_date: enter a valid date (YYYY MM DD)")
	}
	return candidate, nil
}

func (e *editorState) blurAll() {
	e.title.Blur()
	e.description.Blur()
	e.year.Blur()
	e.month.Blur()
	e.day.Blur()
}

func (e *editorState) setFocus(f editorFocus) tea.Cmd {
	e.blurAll()
	e.focus = f
	switch f {
	case editorFocusTitle:
		return e.title.Focus()
	case editorFocusDescription:
		return e.description.Focus()
	case editorFocusYear:
		return e.year.Focus()
	case editorFocusMonth:
		return e.month.Focus()
	case editorFocusDay:
		return e.day.Focus()
	}
	return nil
}

var editorFocusOrder = []editorFocus{
	editorFocusTitle,
	editorFocusDescription,
	editorFocusPriority,
	editorFocusYear,
	editorFocusMonth,
	editorFocusDay,
	editorFocusSubmit,
}

func (e *editorState) cycleFocus(back bool) tea.Cmd {
	cur := 0
	for i, f := range editorFocusOrder {
		if f == e.focus {
			cur = i
			break
		}
	}
	if back {
		cur--
		if cur < 0 {
			cur = len(editorFocusOrder) - 1
		}
	} else {
		cur = (cur + 1) % len(editorFocusOrder)
	}
	return e.setFocus(editorFocusOrder[cur])
}

func (e *editorState) cyclePriority(back bool) {
	n := len(model.KnownPriorities)
	if back {
		e.priorityIdx = (e.priorityIdx - 1 + n) % n
		return
	}
	e.priorityIdx = (e.priorityIdx + 1) % n
}

// handleKey routes a key into the form. It returns (cmd, submit): submit is
// true when the user asked to save.
func (e *editorState) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab":
		return e.cycleFocus(false), false
	case "shift+tab":
		return e.cycleFocus(true), false
	case "ctrl+s":
		return nil, true
	}

	switch e.focus {
	case editorFocusPriority:
		switch msg.String() {
		case "left", "h":
			e.cyclePriority(true)
			return nil, false
		case "right", "l", " ":
			e.cyclePriority(false)
			return nil, false
		case "enter":
			return e.cycleFocus(false), false
		}
		return nil, false
	case editorFocusSubmit:
		if msg.String() == "enter" {
			return nil, true
		}
		return nil, false
	case editorFocusDescription:
		var cmd tea.Cmd
		e.description, cmd = e.description.Update(msg)
		return cmd, false
	case editorFocusTitle:
		if msg.String() == "enter" {
			return e.cycleFocus(false), false
		}
		var cmd tea.Cmd
		e.title, cmd = e.title.Update(msg)
		return cmd, false
	case editorFocusYear:
		if msg.String() == "enter" {
			return e.cycleFocus(false), false
		}
		var cmd tea.Cmd
		e.year, cmd = e.year.Update(msg)
		return cmd, false
	case editorFocusMonth:
		if msg.String() == "enter" {
			return e.cycleFocus(false), false
		}
		var cmd tea.Cmd
		e.month, cmd = e.month.Update(msg)
		return cmd, false
	case editorFocusDay:
		if msg.String() == "enter" {
			return e.cycleFocus(false), false
		}
		var cmd tea.Cmd
		e.day, cmd = e.day.Update(msg)
		return cmd, false
	}
	return nil, false
}

func (m appModel) renderEditor() string {
	e := m.editor
	bodyW := modalBodyWidth(m.width)

	label := styleMuted()
	var b strings.Builder

	b.WriteString(label.Render("Title") + "\n")
	b.WriteString(renderInputLine(bodyW, e.title.View()) + "\n\n")

	b.WriteString(label.Render("Description") + "\n")
	b.WriteString(e.description.View() + "\n\n")

	prioSt := lipgloss.NewStyle().Bold(true).Foreground(priorityColor(e.priority()))
	prio := prioSt.Render(string(e.priority()))
	if e.focus == editorFocusPriority {
		prio = "◂ " + prio + " ▸"
	}
	b.WriteString(label.Render("Priority") + "  " + prio + "\n\n")

	b.WriteString(label.Render("Due date") + "  " +
		e.year.View() + " " + e.month.View() + " " + e.day.View() + "\n\n")

	submitSt := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	if e.focus == editorFocusSubmit {
		submitSt = submitSt.
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true)
	}
	submitLabel := "Create"
	if e.editing() {
		submitLabel = "Save"
	}
	if e.saving {
		submitLabel = "Saving…"
	}
	b.WriteString(submitSt.Render(submitLabel) + "\n")

	if strings.TrimSpace(e.errText) != "" {
		errSt := lipgloss.NewStyle().Foreground(colorDanger).Width(bodyW)
		b.WriteString("\n" + errSt.Render(sanitizeText(e.errText)) + "\n")
	}

	b.WriteString("\n" + styleMuted().Width(bodyW).Render("tab: next field   ctrl+s: save   esc: cancel"))

	return renderModalBox(m.width, e.modeLabel(), b.String())
}
