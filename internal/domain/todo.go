package domain

import "time"

type Todo struct {
	ID          string
	Title       string
	Description *string
	Completed   bool
	OrderIndex  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoSession is a scratch note pad attached to the todo board.
type TodoSession struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
