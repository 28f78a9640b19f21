package model

import "strings"

type Bucket string

const (
	BucketAll       Bucket = "all"
	BucketPending   Bucket = "pending"
	BucketCompleted Bucket = "completed"
)

// Filter is the dashboard's three-dimensional view filter. The zero value
// imposes no constraint. All set dimensions must match (AND).
type Filter struct {
	Bucket   Bucket
	Search   string
	Priority Priority // empty = any
}

func (f Filter) IsZero() bool {
	return (f.Bucket == "" || f.Bucket == BucketAll) && strings.TrimSpace(f.Search) == "" && f.Priority == ""
}

// Match reports whether a single task passes every set dimension.
func (f Filter) Match(t Task) bool {
	switch f.Bucket {
	case BucketPending:
		if t.Status != StatusPending {
			return false
		}
	case BucketCompleted:
		if t.Status != StatusCompleted {
			return false
		}
	}

	if needle := strings.ToLower(strings.TrimSpace(f.Search)); needle != "" {
		title := strings.ToLower(t.Title)
		desc := strings.ToLower(t.Description)
		if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
			return false
		}
	}

	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	return true
}

// Apply returns the visible subset in input order. The server already orders
// the collection (ordering=due_date); the client never re-sorts.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
