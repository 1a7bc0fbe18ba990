package domain

import "time"

// Task is a single todo item owned by a user. Date is an opaque
// application-defined string, matched exactly when filtering.
type Task struct {
	ID        int64
	UserID    int64
	Title     string
	Date      string
	IsChecked bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskPatch carries the fields of a partial task update. Nil fields are
// left untouched.
type TaskPatch struct {
	Title     *string
	Date      *string
	IsChecked *bool
}

// TaskFilter narrows a task listing. UserID is always required; Date and
// Search are optional and compose with logical AND.
type TaskFilter struct {
	UserID int64
	Date   string
	Search string
}

// TaskStats aggregates completion counts for a user's tasks.
type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}
