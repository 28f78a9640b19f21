package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdash/internal/api"
	"taskdash/internal/model"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalEditor
	modalConfirmDelete
)

const minSplitDetailW = 100

type appModel struct {
	client   *api.Client
	username string

	width  int
	height int

	// The task collection is the session's single source of truth for the
	// UI. It is replaced wholesale by every successful load; stats are
	// derived from it on each replacement.
	tasks      []model.Task
	stats      model.Stats
	loadedOnce bool
	loading    bool
	spin       spinner.Model

	filter        model.Filter
	search        textinput.Model
	searchFocused bool

	tasksList list.Model

	modal        modalKind
	editor       editorState
	confirmID    int
	confirmTitle string
	confirmFocus confirmModalFocus

	notices   []notice
	noticeSeq int

	// authExpired is set when the server rejects the credential; the program
	// quits and the caller routes the user back to login.
	authExpired bool
}

func newAppModel(client *api.Client, username string) appModel {
	m := appModel{
		client:   client,
		username: username,
		filter:   model.Filter{Bucket: model.BucketAll},
		loading:  true, // the initial load starts from Init
	}

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot

	m.editor = newEditorState()

	m.search = textinput.New()
	m.search.Placeholder = "Search tasks…"
	m.search.CharLimit = 120
	m.search.Width = 28
	m.search.Prompt = "/ "

	m.tasksList = list.New([]list.Item{}, newTaskCardDelegate(), 0, 0)
	m.tasksList.SetShowTitle(false)
	m.tasksList.SetShowStatusBar(false)
	m.tasksList.SetShowHelp(false)
	// The dashboard's own three-dimensional filter replaces the list's
	// built-in fuzzy filtering.
	m.tasksList.SetFilteringEnabled(false)

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadTasksCmd(m.client))
}

// selectedTask returns the task under the cursor in the visible list.
func (m appModel) selectedTask() (model.Task, bool) {
	if it, ok := m.tasksList.SelectedItem().(taskItem); ok {
		return it.task, true
	}
	return model.Task{}, false
}

// visibleTasks derives the filtered view of the collection.
func (m appModel) visibleTasks() []model.Task {
	return m.filter.Apply(m.tasks)
}

// refreshVisible re-derives the visible list from the collection and the
// active filter, keeping the selection on the same task when it survives.
func (m *appModel) refreshVisible() {
	curID := 0
	if it, ok := m.tasksList.SelectedItem().(taskItem); ok {
		curID = it.task.ID
	}

	visible := m.visibleTasks()
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, taskItem{task: t})
	}
	m.tasksList.SetItems(items)

	if curID != 0 {
		for i, it := range items {
			if it.(taskItem).task.ID == curID {
				m.tasksList.Select(i)
				break
			}
		}
	}
}

// replaceTasks swaps in a freshly loaded collection. All-or-nothing: partial
// updates never happen.
func (m *appModel) replaceTasks(tasks []model.Task) {
	m.tasks = tasks
	m.stats = model.ComputeStats(tasks)
	m.refreshVisible()
}

func (m *appModel) resize() {
	headerH := 5 // title + notices gap + filter bar
	footerH := 2
	bodyH := m.height - headerH - footerH
	if bodyH < 8 {
		bodyH = 8
	}

	listW := m.width
	if m.width >= minSplitDetailW {
		listW = m.width * 3 / 5
	}
	if listW < 40 {
		listW = 40
	}
	m.tasksList.SetSize(listW, bodyH)
}

func (m *appModel) cycleBucket() {
	switch m.filter.Bucket {
	case model.BucketAll, "":
		m.filter.Bucket = model.BucketPending
	case model.BucketPending:
		m.filter.Bucket = model.BucketCompleted
	default:
		m.filter.Bucket = model.BucketAll
	}
	m.refreshVisible()
}

func (m *appModel) cyclePriorityFilter() {
	switch m.filter.Priority {
	case "":
		m.filter.Priority = model.PriorityLow
	case model.PriorityLow:
		m.filter.Priority = model.PriorityMedium
	case model.PriorityMedium:
		m.filter.Priority = model.PriorityHigh
	default:
		m.filter.Priority = ""
	}
	m.refreshVisible()
}

// reload kicks off a full fetch of the collection.
func (m *appModel) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spin.Tick, loadTasksCmd(m.client))
}
