package domain

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities low < medium < high. Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	}
	return 0
}

type Todo struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SetCompleted flips completion and keeps Status consistent with it.
// Clearing completion always lands on pending, even from in-progress.
func (t *Todo) SetCompleted(done bool) {
	t.IsCompleted = done
	if done {
		t.Status = StatusCompleted
	} else {
		t.Status = StatusPending
	}
}
