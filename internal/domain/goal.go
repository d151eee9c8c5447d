package domain

import "time"

type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
)

// Goal tracks a longer-horizon objective. Amount and Progress are free-form
// strings entered by the user (e.g. "12,000"), not parsed numerics.
type Goal struct {
	ID          string
	Title       string
	Description *string
	TargetDate  *string // "2006-01-02"
	Amount      *string
	Progress    string
	Priority    *GoalPriority
	OrderIndex  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
