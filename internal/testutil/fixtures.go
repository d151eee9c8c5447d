package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/homedash/internal/domain"
)

// Bookmark options
type BookmarkOption func(*domain.Bookmark)

func WithURL(url string) BookmarkOption {
	return func(b *domain.Bookmark) {
		b.URL = &url
	}
}

func WithParent(parentID string) BookmarkOption {
	return func(b *domain.Bookmark) {
		b.ParentID = &parentID
	}
}

func WithOrder(order int) BookmarkOption {
	return func(b *domain.Bookmark) {
		b.OrderIndex = order
	}
}

func WithCreatedAt(ts time.Time) BookmarkOption {
	return func(b *domain.Bookmark) {
		b.CreatedAt = ts
		b.UpdatedAt = ts
	}
}

// NewFolder builds a container bookmark (no URL).
func NewFolder(title string, opts ...BookmarkOption) *domain.Bookmark {
	now := time.Now().UTC()
	b := &domain.Bookmark{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewLink builds a leaf bookmark with a URL.
func NewLink(title, url string, opts ...BookmarkOption) *domain.Bookmark {
	b := NewFolder(title, opts...)
	b.URL = &url
	return b
}

type TodoOption func(*domain.Todo)

func WithCompleted() TodoOption {
	return func(t *domain.Todo) {
		t.Completed = true
	}
}

func WithTodoOrder(order int) TodoOption {
	return func(t *domain.Todo) {
		t.OrderIndex = order
	}
}

func NewTestTodo(title string, opts ...TodoOption) *domain.Todo {
	now := time.Now().UTC()
	t := &domain.Todo{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestReminder(title, dueDate string) *domain.Reminder {
	now := time.Now().UTC()
	return &domain.Reminder{
		ID:        uuid.New().String(),
		Title:     title,
		DueDate:   dueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestGoal(title string) *domain.Goal {
	now := time.Now().UTC()
	return &domain.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Progress:  "0",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestFund(title, price string) *domain.Fund {
	now := time.Now().UTC()
	return &domain.Fund{
		ID:        uuid.New().String(),
		Title:     title,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestTodoSession(title, content string) *domain.TodoSession {
	now := time.Now().UTC()
	return &domain.TodoSession{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
