package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// KnownPriorities is the label set the editor cycles through. The server owns
// the enumeration; unknown labels coming back from the API are passed through
// untouched.
var KnownPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// Task is the client-side copy of a server-owned task record. The collection
// holding these is replaced wholesale after every successful mutation; the
// client never patches individual records.
type Task struct {
	ID          int       `json:"id"`
	User        string    `json:"user,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	DueDate     string    `json:"due_date"` // YYYY-MM-DD, no time component
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// TaskFields is the editable subset sent on create/update. Status rides along
// but is only ever the carried-over value (create => PENDING); status changes
// go through the dedicated mark_complete/mark_pending endpoints.
type TaskFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	DueDate     string   `json:"due_date"`
}

// Fields returns the task's editable fields as a submission payload.
func (t Task) Fields() TaskFields {
	return TaskFields{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

// Overdue reports whether the task's due date is strictly before now and the
// task is still pending. Completed tasks are never overdue, regardless of date.
// The date-only value is anchored at midnight in now's location.
func (t Task) Overdue(now time.Time) bool {
	if t.Status != StatusPending {
		return false
	}
	due, err := time.ParseInLocation("2006-01-02", t.DueDate, now.Location())
	if err != nil {
		return false
	}
	return due.Before(now)
}

type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// ComputeStats derives counts by scanning the collection. Stats are never
// stored; they are recomputed every time the collection changes.
func ComputeStats(tasks []Task) Stats {
	st := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusCompleted:
			st.Completed++
		default:
			st.Pending++
		}
	}
	return st
}
