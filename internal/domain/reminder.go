package domain

import "time"

// Reminder is a dated entry on the dashboard. DueDate is a bare calendar
// date in "2006-01-02" form; no time-of-day component is stored.
type Reminder struct {
	ID         string
	Title      string
	DueDate    string
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
