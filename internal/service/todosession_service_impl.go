package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/repository"
	"github.com/google/uuid"
)

type todoSessionService struct {
	sessions repository.TodoSessionRepo
}

func NewTodoSessionService(sessions repository.TodoSessionRepo) TodoSessionService {
	return &todoSessionService{sessions: sessions}
}

func (s *todoSessionService) List(ctx context.Context) ([]*domain.TodoSession, error) {
	return s.sessions.List(ctx)
}

func (s *todoSessionService) GetByID(ctx context.Context, id string) (*domain.TodoSession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *todoSessionService) Create(ctx context.Context, in CreateTodoSessionInput) (*domain.TodoSession, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "Untitled Session"
	}

	sess := &domain.TodoSession{
		ID:      uuid.New().String(),
		Title:   title,
		Content: in.Content,
	}
	now := time.Now().UTC()
	sess.CreatedAt = now
	sess.UpdatedAt = now

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *todoSessionService) Update(ctx context.Context, id string, in UpdateTodoSessionInput) (*domain.TodoSession, error) {
	current, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		current.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		current.Content = *in.Content
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *todoSessionService) Delete(ctx context.Context, id string) (bool, error) {
	return s.sessions.Delete(ctx, id)
}
