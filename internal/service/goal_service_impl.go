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

type goalService struct {
	goals repository.GoalRepo
	uow   db.UnitOfWork
}

func NewGoalService(goals repository.GoalRepo, uow db.UnitOfWork) GoalService {
	return &goalService{goals: goals, uow: uow}
}

func (s *goalService) List(ctx context.Context) ([]*domain.Goal, error) {
	return s.goals.List(ctx)
}

func (s *goalService) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) Create(ctx context.Context, in CreateGoalInput) (*domain.Goal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationf("title is required")
	}
	priority, err := parsePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	g := &domain.Goal{
		ID:          uuid.New().String(),
		Title:       title,
		Description: normalizeOptional(in.Description),
		TargetDate:  normalizeOptional(in.TargetDate),
		Amount:      normalizeOptional(in.Amount),
		Progress:    domain.StrFromPtrWithDefault("0", in.Progress),
		Priority:    priority,
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteGoalRepo(tx)
		order, err := repo.NextOrder(ctx)
		if err != nil {
			return err
		}
		g.OrderIndex = order
		return repo.Create(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) Update(ctx context.Context, id string, in UpdateGoalInput) (*domain.Goal, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, validationf("title is required")
	}
	priority, err := parsePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	current, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		current.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		current.Description = in.Description
	}
	if in.TargetDate != nil {
		current.TargetDate = normalizeOptional(in.TargetDate)
	}
	if in.Amount != nil {
		current.Amount = normalizeOptional(in.Amount)
	}
	if in.Progress != nil {
		current.Progress = *in.Progress
	}
	if priority != nil {
		current.Priority = priority
	}
	current.OrderIndex = domain.IntFromPtrWithDefault(current.OrderIndex, in.Order)
	current.UpdatedAt = time.Now().UTC()

	if err := s.goals.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *goalService) Delete(ctx context.Context, id string) (bool, error) {
	return s.goals.Delete(ctx, id)
}

func (s *goalService) Reorder(ctx context.Context, orders []OrderUpdate) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteGoalRepo(tx)
		now := time.Now().UTC()
		for _, o := range orders {
			if err := repo.UpdateOrder(ctx, o.ID, o.Order, now); err != nil {
				return err
			}
		}
		return nil
	})
}

func parsePriority(p *string) (*domain.GoalPriority, error) {
	if p == nil || *p == "" {
		return nil, nil
	}
	switch domain.GoalPriority(*p) {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		v := domain.GoalPriority(*p)
		return &v, nil
	default:
		return nil, validationf("priority must be low, medium or high")
	}
}
