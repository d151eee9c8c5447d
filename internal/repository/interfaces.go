package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/homedash/internal/domain"
)

// BookmarkRepo is the flat row store behind the bookmark tree. The store
// cascades deletes down parent_id; nothing above it re-implements that.
type BookmarkRepo interface {
	Create(ctx context.Context, b *domain.Bookmark) error
	GetByID(ctx context.Context, id string) (*domain.Bookmark, error)
	List(ctx context.Context) ([]*domain.Bookmark, error)
	// ListSiblings returns the sibling group under parentID (nil = root),
	// excluding excludeID, ordered ascending by order key.
	ListSiblings(ctx context.Context, parentID *string, excludeID string) ([]*domain.Bookmark, error)
	// NextOrder returns max(order)+1 within the group under parentID,
	// or 1 for an empty group.
	NextOrder(ctx context.Context, parentID *string) (int, error)
	Update(ctx context.Context, b *domain.Bookmark) error
	UpdateOrder(ctx context.Context, id string, order int, updatedAt time.Time) error
	// UpdatePlacement rewrites parent_id and order together; this is the
	// single write a reparent consists of.
	UpdatePlacement(ctx context.Context, id string, parentID *string, order int, updatedAt time.Time) error
	Delete(ctx context.Context, id string) (bool, error)
}

type TodoRepo interface {
	Create(ctx context.Context, t *domain.Todo) error
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	List(ctx context.Context) ([]*domain.Todo, error)
	NextOrder(ctx context.Context) (int, error)
	Update(ctx context.Context, t *domain.Todo) error
	UpdateOrder(ctx context.Context, id string, order int, updatedAt time.Time) error
	Delete(ctx context.Context, id string) (bool, error)
}

type ReminderRepo interface {
	Create(ctx context.Context, r *domain.Reminder) error
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	List(ctx context.Context) ([]*domain.Reminder, error)
	NextOrder(ctx context.Context) (int, error)
	Update(ctx context.Context, r *domain.Reminder) error
	UpdateOrder(ctx context.Context, id string, order int, updatedAt time.Time) error
	Delete(ctx context.Context, id string) (bool, error)
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	NextOrder(ctx context.Context) (int, error)
	Update(ctx context.Context, g *domain.Goal) error
	UpdateOrder(ctx context.Context, id string, order int, updatedAt time.Time) error
	Delete(ctx context.Context, id string) (bool, error)
}

type FundRepo interface {
	Create(ctx context.Context, f *domain.Fund) error
	GetByID(ctx context.Context, id string) (*domain.Fund, error)
	List(ctx context.Context) ([]*domain.Fund, error)
	NextOrder(ctx context.Context) (int, error)
	Update(ctx context.Context, f *domain.Fund) error
	UpdateOrder(ctx context.Context, id string, order int, updatedAt time.Time) error
	Delete(ctx context.Context, id string) (bool, error)
}

// SavedMoneyRepo manages the single saved-money row.
type SavedMoneyRepo interface {
	Get(ctx context.Context) (*domain.SavedMoney, error)
	Upsert(ctx context.Context, m *domain.SavedMoney) error
}

type TodoSessionRepo interface {
	Create(ctx context.Context, s *domain.TodoSession) error
	GetByID(ctx context.Context, id string) (*domain.TodoSession, error)
	List(ctx context.Context) ([]*domain.TodoSession, error)
	Update(ctx context.Context, s *domain.TodoSession) error
	Delete(ctx context.Context, id string) (bool, error)
}
