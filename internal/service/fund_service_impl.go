package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/homedash/internal/db"
	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/repository"
	"github.com/google/uuid"
)

// priceRe matches user-formatted amounts: digits with optional comma and
// period separators, nothing else.
var priceRe = regexp.MustCompile(`^[\d,.]+$`)

type fundService struct {
	funds repository.FundRepo
	uow   db.UnitOfWork
}

func NewFundService(funds repository.FundRepo, uow db.UnitOfWork) FundService {
	return &fundService{funds: funds, uow: uow}
}

func (s *fundService) List(ctx context.Context) ([]*domain.Fund, error) {
	return s.funds.List(ctx)
}

func (s *fundService) GetByID(ctx context.Context, id string) (*domain.Fund, error) {
	return s.funds.GetByID(ctx, id)
}

func (s *fundService) Create(ctx context.Context, in CreateFundInput) (*domain.Fund, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationf("title is required")
	}
	price := strings.TrimSpace(in.Price)
	if price == "" {
		return nil, validationf("price is required")
	}
	if !priceRe.MatchString(price) {
		return nil, validationf("price must contain only numbers, commas, and periods")
	}

	f := &domain.Fund{
		ID:    uuid.New().String(),
		Title: title,
		Price: price,
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteFundRepo(tx)
		order, err := repo.NextOrder(ctx)
		if err != nil {
			return err
		}
		f.OrderIndex = order
		return repo.Create(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fundService) Update(ctx context.Context, id string, in UpdateFundInput) (*domain.Fund, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, validationf("title is required")
	}
	if in.Price != nil {
		price := strings.TrimSpace(*in.Price)
		if price == "" || !priceRe.MatchString(price) {
			return nil, validationf("price must contain only numbers, commas, and periods")
		}
	}

	current, err := s.funds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		current.Title = strings.TrimSpace(*in.Title)
	}
	if in.Price != nil {
		current.Price = strings.TrimSpace(*in.Price)
	}
	current.OrderIndex = domain.IntFromPtrWithDefault(current.OrderIndex, in.Order)
	current.UpdatedAt = time.Now().UTC()

	if err := s.funds.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *fundService) Delete(ctx context.Context, id string) (bool, error) {
	return s.funds.Delete(ctx, id)
}

func (s *fundService) Reorder(ctx context.Context, orders []OrderUpdate) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteFundRepo(tx)
		now := time.Now().UTC()
		for _, o := range orders {
			if err := repo.UpdateOrder(ctx, o.ID, o.Order, now); err != nil {
				return err
			}
		}
		return nil
	})
}
