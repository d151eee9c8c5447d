package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/testutil"
)

func TestGoalRepo_RoundTripWithAllOptionalFields(t *testing.T) {
	repo := NewSQLiteGoalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	goal := testutil.NewTestGoal("Emergency fund")
	desc := "six months of expenses"
	target := "2027-01-01"
	amount := "12,000"
	prio := domain.PriorityHigh
	goal.Description = &desc
	goal.TargetDate = &target
	goal.Amount = &amount
	goal.Progress = "3,400"
	goal.Priority = &prio
	require.NoError(t, repo.Create(ctx, goal))

	got, err := repo.GetByID(ctx, goal.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "six months of expenses", *got.Description)
	require.NotNil(t, got.TargetDate)
	assert.Equal(t, "2027-01-01", *got.TargetDate)
	require.NotNil(t, got.Amount)
	assert.Equal(t, "12,000", *got.Amount)
	assert.Equal(t, "3,400", got.Progress)
	require.NotNil(t, got.Priority)
	assert.Equal(t, domain.PriorityHigh, *got.Priority)
}

func TestGoalRepo_RoundTripWithBareFields(t *testing.T) {
	repo := NewSQLiteGoalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	goal := testutil.NewTestGoal("Minimal")
	require.NoError(t, repo.Create(ctx, goal))

	got, err := repo.GetByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.TargetDate)
	assert.Nil(t, got.Amount)
	assert.Nil(t, got.Priority)
	assert.Equal(t, "0", got.Progress)
}
