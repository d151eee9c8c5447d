package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/repository"
)

type savedMoneyService struct {
	saved repository.SavedMoneyRepo
}

func NewSavedMoneyService(saved repository.SavedMoneyRepo) SavedMoneyService {
	return &savedMoneyService{saved: saved}
}

func (s *savedMoneyService) Get(ctx context.Context) (string, error) {
	m, err := s.saved.Get(ctx)
	if err != nil {
		// Nothing stored yet reads as zero, not as an error.
		if errors.Is(err, repository.ErrNotFound) {
			return "0", nil
		}
		return "", err
	}
	return m.Amount, nil
}

func (s *savedMoneyService) Set(ctx context.Context, amount string) (string, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return "", validationf("amount is required")
	}

	m := &domain.SavedMoney{
		Amount:    amount,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.saved.Upsert(ctx, m); err != nil {
		return "", err
	}
	return m.Amount, nil
}
