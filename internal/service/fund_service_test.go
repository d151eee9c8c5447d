package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/homedash/internal/repository"
	"github.com/alexanderramin/homedash/internal/testutil"
)

func setupFundService(t *testing.T) (FundService, SavedMoneyService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	funds := NewFundService(repository.NewSQLiteFundRepo(database), testutil.NewTestUoW(database))
	saved := NewSavedMoneyService(repository.NewSQLiteSavedMoneyRepo(database))
	return funds, saved
}

func TestFundService_Create_AcceptsFormattedPrices(t *testing.T) {
	funds, _ := setupFundService(t)
	ctx := context.Background()

	for _, price := range []string{"1200", "1,200", "1,200.50", "0.99"} {
		f, err := funds.Create(ctx, CreateFundInput{Title: "item", Price: price})
		require.NoError(t, err, "price %q", price)
		assert.Equal(t, price, f.Price)
	}
}

func TestFundService_Create_RejectsBadPrices(t *testing.T) {
	funds, _ := setupFundService(t)
	ctx := context.Background()

	for _, price := range []string{"", "  ", "$100", "1 200", "abc", "-5"} {
		_, err := funds.Create(ctx, CreateFundInput{Title: "item", Price: price})
		assert.True(t, IsValidation(err), "price %q should be rejected", price)
	}
}

func TestFundService_Update_PriceValidation(t *testing.T) {
	funds, _ := setupFundService(t)
	ctx := context.Background()

	f, err := funds.Create(ctx, CreateFundInput{Title: "camera", Price: "800"})
	require.NoError(t, err)

	bad := "eight hundred"
	_, err = funds.Update(ctx, f.ID, UpdateFundInput{Price: &bad})
	assert.True(t, IsValidation(err))

	good := "750.00"
	updated, err := funds.Update(ctx, f.ID, UpdateFundInput{Price: &good})
	require.NoError(t, err)
	assert.Equal(t, "750.00", updated.Price)
}

func TestSavedMoneyService_DefaultsToZero(t *testing.T) {
	_, saved := setupFundService(t)

	amount, err := saved.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0", amount)
}

func TestSavedMoneyService_SetThenGet(t *testing.T) {
	_, saved := setupFundService(t)
	ctx := context.Background()

	amount, err := saved.Set(ctx, "4,250")
	require.NoError(t, err)
	assert.Equal(t, "4,250", amount)

	amount, err = saved.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4,250", amount)
}

func TestSavedMoneyService_Set_RequiresAmount(t *testing.T) {
	_, saved := setupFundService(t)
	_, err := saved.Set(context.Background(), "   ")
	assert.True(t, IsValidation(err))
}
