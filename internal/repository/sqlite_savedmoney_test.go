package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/testutil"
)

func TestSavedMoneyRepo_GetBeforeUpsert(t *testing.T) {
	repo := NewSQLiteSavedMoneyRepo(testutil.NewTestDB(t))
	_, err := repo.Get(context.Background())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSavedMoneyRepo_UpsertKeepsSingleRow(t *testing.T) {
	repo := NewSQLiteSavedMoneyRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.SavedMoney{Amount: "1,500", UpdatedAt: time.Now().UTC()}))
	require.NoError(t, repo.Upsert(ctx, &domain.SavedMoney{Amount: "2,000", UpdatedAt: time.Now().UTC()}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2,000", got.Amount, "second upsert replaces the row")
}
