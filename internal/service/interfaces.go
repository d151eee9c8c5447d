package service

import (
	"context"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/tree"
)

// OrderUpdate is one entry of a bulk reorder: the row's new order key.
// Reorders never change parents.
type OrderUpdate struct {
	ID    string
	Order int
}

type CreateBookmarkInput struct {
	Title       string
	URL         *string
	Description *string
	ParentID    *string
	Icon        *string
	Color       *string
}

// UpdateBookmarkInput carries a partial edit; nil fields keep their current
// values. A set ParentID reparents and is validated for cycles like a move.
type UpdateBookmarkInput struct {
	Title       *string
	URL         *string
	Description *string
	ParentID    *string
	Icon        *string
	Color       *string
	Order       *int
}

type BookmarkService interface {
	Tree(ctx context.Context) ([]*domain.Bookmark, error)
	GetByID(ctx context.Context, id string) (*domain.Bookmark, error)
	Create(ctx context.Context, in CreateBookmarkInput) (*domain.Bookmark, error)
	Update(ctx context.Context, id string, in UpdateBookmarkInput) (*domain.Bookmark, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Move reparents sourceID under newParentID (nil = root) and slots it
	// at insertIndex among the target's children. The whole operation is
	// one transaction; rejected moves leave the store untouched.
	Move(ctx context.Context, sourceID string, newParentID *string, insertIndex int) error
	Reorder(ctx context.Context, orders []OrderUpdate) error
	ParentOptions(ctx context.Context) ([]tree.ParentOption, error)
}

type CreateTodoInput struct {
	Title       string
	Description *string
}

type UpdateTodoInput struct {
	Title       *string
	Description *string
	Completed   *bool
	Order       *int
}

type TodoService interface {
	List(ctx context.Context) ([]*domain.Todo, error)
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	Create(ctx context.Context, in CreateTodoInput) (*domain.Todo, error)
	Update(ctx context.Context, id string, in UpdateTodoInput) (*domain.Todo, error)
	Delete(ctx context.Context, id string) (bool, error)
	Reorder(ctx context.Context, orders []OrderUpdate) error
}

type CreateReminderInput struct {
	Title   string
	DueDate string
}

type UpdateReminderInput struct {
	Title   *string
	DueDate *string
	Order   *int
}

type ReminderService interface {
	List(ctx context.Context) ([]*domain.Reminder, error)
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	Create(ctx context.Context, in CreateReminderInput) (*domain.Reminder, error)
	Update(ctx context.Context, id string, in UpdateReminderInput) (*domain.Reminder, error)
	Delete(ctx context.Context, id string) (bool, error)
	Reorder(ctx context.Context, orders []OrderUpdate) error
}

type CreateGoalInput struct {
	Title       string
	Description *string
	TargetDate  *string
	Amount      *string
	Progress    *string
	Priority    *string
}

type UpdateGoalInput struct {
	Title       *string
	Description *string
	TargetDate  *string
	Amount      *string
	Progress    *string
	Priority    *string
	Order       *int
}

type GoalService interface {
	List(ctx context.Context) ([]*domain.Goal, error)
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	Create(ctx context.Context, in CreateGoalInput) (*domain.Goal, error)
	Update(ctx context.Context, id string, in UpdateGoalInput) (*domain.Goal, error)
	Delete(ctx context.Context, id string) (bool, error)
	Reorder(ctx context.Context, orders []OrderUpdate) error
}

type CreateFundInput struct {
	Title string
	Price string
}

type UpdateFundInput struct {
	Title *string
	Price *string
	Order *int
}

type FundService interface {
	List(ctx context.Context) ([]*domain.Fund, error)
	GetByID(ctx context.Context, id string) (*domain.Fund, error)
	Create(ctx context.Context, in CreateFundInput) (*domain.Fund, error)
	Update(ctx context.Context, id string, in UpdateFundInput) (*domain.Fund, error)
	Delete(ctx context.Context, id string) (bool, error)
	Reorder(ctx context.Context, orders []OrderUpdate) error
}

// SavedMoneyService reads and replaces the single saved-money amount.
// Get reports "0" when nothing has been stored yet.
type SavedMoneyService interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, amount string) (string, error)
}

type CreateTodoSessionInput struct {
	Title   string
	Content string
}

type UpdateTodoSessionInput struct {
	Title   *string
	Content *string
}

type TodoSessionService interface {
	List(ctx context.Context) ([]*domain.TodoSession, error)
	GetByID(ctx context.Context, id string) (*domain.TodoSession, error)
	Create(ctx context.Context, in CreateTodoSessionInput) (*domain.TodoSession, error)
	Update(ctx context.Context, id string, in UpdateTodoSessionInput) (*domain.TodoSession, error)
	Delete(ctx context.Context, id string) (bool, error)
}
