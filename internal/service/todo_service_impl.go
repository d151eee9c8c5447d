package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/homedash/internal/db"
	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/repository"
	"github.com/google/uuid"
)

type todoService struct {
	todos repository.TodoRepo
	uow   db.UnitOfWork
}

func NewTodoService(todos repository.TodoRepo, uow db.UnitOfWork) TodoService {
	return &todoService{todos: todos, uow: uow}
}

func (s *todoService) List(ctx context.Context) ([]*domain.Todo, error) {
	return s.todos.List(ctx)
}

func (s *todoService) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	return s.todos.GetByID(ctx, id)
}

func (s *todoService) Create(ctx context.Context, in CreateTodoInput) (*domain.Todo, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationf("title is required")
	}

	t := &domain.Todo{
		ID:          uuid.New().String(),
		Title:       title,
		Description: normalizeOptional(in.Description),
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTodoRepo(tx)
		order, err := repo.NextOrder(ctx)
		if err != nil {
			return err
		}
		t.OrderIndex = order
		return repo.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *todoService) Update(ctx context.Context, id string, in UpdateTodoInput) (*domain.Todo, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, validationf("title is required")
	}

	current, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		current.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		current.Description = in.Description
	}
	current.Completed = domain.BoolFromPtrWithDefault(current.Completed, in.Completed)
	current.OrderIndex = domain.IntFromPtrWithDefault(current.OrderIndex, in.Order)
	current.UpdatedAt = time.Now().UTC()

	if err := s.todos.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *todoService) Delete(ctx context.Context, id string) (bool, error) {
	return s.todos.Delete(ctx, id)
}

func (s *todoService) Reorder(ctx context.Context, orders []OrderUpdate) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTodoRepo(tx)
		now := time.Now().UTC()
		for _, o := range orders {
			if err := repo.UpdateOrder(ctx, o.ID, o.Order, now); err != nil {
				return err
			}
		}
		return nil
	})
}
