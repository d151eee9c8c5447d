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

const dueDateLayout = "2006-01-02"

type reminderService struct {
	reminders repository.ReminderRepo
	uow       db.UnitOfWork
}

func NewReminderService(reminders repository.ReminderRepo, uow db.UnitOfWork) ReminderService {
	return &reminderService{reminders: reminders, uow: uow}
}

func (s *reminderService) List(ctx context.Context) ([]*domain.Reminder, error) {
	return s.reminders.List(ctx)
}

func (s *reminderService) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	return s.reminders.GetByID(ctx, id)
}

func (s *reminderService) Create(ctx context.Context, in CreateReminderInput) (*domain.Reminder, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationf("title is required")
	}
	if in.DueDate == "" {
		return nil, validationf("due date is required")
	}
	if err := validDueDate(in.DueDate); err != nil {
		return nil, err
	}

	r := &domain.Reminder{
		ID:      uuid.New().String(),
		Title:   title,
		DueDate: in.DueDate,
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteReminderRepo(tx)
		order, err := repo.NextOrder(ctx)
		if err != nil {
			return err
		}
		r.OrderIndex = order
		return repo.Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reminderService) Update(ctx context.Context, id string, in UpdateReminderInput) (*domain.Reminder, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, validationf("title is required")
	}
	if in.DueDate != nil {
		if err := validDueDate(*in.DueDate); err != nil {
			return nil, err
		}
	}

	current, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		current.Title = strings.TrimSpace(*in.Title)
	}
	current.DueDate = domain.StrFromPtrWithDefault(current.DueDate, in.DueDate)
	current.OrderIndex = domain.IntFromPtrWithDefault(current.OrderIndex, in.Order)
	current.UpdatedAt = time.Now().UTC()

	if err := s.reminders.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *reminderService) Delete(ctx context.Context, id string) (bool, error) {
	return s.reminders.Delete(ctx, id)
}

func (s *reminderService) Reorder(ctx context.Context, orders []OrderUpdate) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteReminderRepo(tx)
		now := time.Now().UTC()
		for _, o := range orders {
			if err := repo.UpdateOrder(ctx, o.ID, o.Order, now); err != nil {
				return err
			}
		}
		return nil
	})
}

func validDueDate(s string) error {
	if _, err := time.Parse(dueDateLayout, s); err != nil {
		return validationf("due date must be in YYYY-MM-DD format")
	}
	return nil
}
