package model

import (
	"testing"
	"time"
)

func TestOverdue_PendingPastDue(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	task := Task{Status: StatusPending, DueDate: "2026-08-28"}
	if !task.Overdue(now) {
		t.Fatalf("pending task due yesterday should be overdue")
	}
}

func TestOverdue_CompletedNeverOverdue(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	task := Task{Status: StatusCompleted, DueDate: "2020-01-01"}
	if task.Overdue(now) {
		t.Fatalf("completed task must never be overdue, regardless of due date")
	}
}

func TestOverdue_FutureDueDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	task := Task{Status: StatusPending, DueDate: "2026-08-30"}
	if task.Overdue(now) {
		t.Fatalf("task due tomorrow should not be overdue")
	}
}

func TestOverdue_UnparsableDueDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	task := Task{Status: StatusPending, DueDate: "not-a-date"}
	if task.Overdue(now) {
		t.Fatalf("unparsable due date should never flag overdue")
	}
}

func TestComputeStats_Counts(t *testing.T) {
	tasks := []Task{
		{Status: StatusPending},
		{Status: StatusCompleted},
		{Status: StatusPending},
	}
	st := ComputeStats(tasks)
	if st.Total != 3 || st.Pending != 2 || st.Completed != 1 {
		t.Fatalf("got %+v, want total=3 pending=2 completed=1", st)
	}
}

func TestComputeStats_InvariantHoldsForUnknownStatus(t *testing.T) {
	// An unrecognized status counts as pending so the three numbers always
	// reconcile.
	tasks := []Task{
		{Status: StatusCompleted},
		{Status: Status("WEIRD")},
	}
	st := ComputeStats(tasks)
	if st.Pending+st.Completed != st.Total {
		t.Fatalf("pending(%d) + completed(%d) != total(%d)", st.Pending, st.Completed, st.Total)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	st := ComputeStats(nil)
	if st.Total != 0 || st.Pending != 0 || st.Completed != 0 {
		t.Fatalf("empty collection should produce zero stats, got %+v", st)
	}
}

func TestTaskFields_RoundTrip(t *testing.T) {
	task := Task{
		ID:          7,
		Title:       "Write report",
		Description: "Quarterly numbers",
		Priority:    PriorityHigh,
		Status:      StatusCompleted,
		DueDate:     "2026-09-01",
	}
	f := task.Fields()
	if f.Title != task.Title || f.Description != task.Description ||
		f.Priority != task.Priority || f.Status != task.Status || f.DueDate != task.DueDate {
		t.Fatalf("fields do not mirror the task: %+v", f)
	}
}
