package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/homedash/internal/repository"
	"github.com/alexanderramin/homedash/internal/testutil"
)

func setupReminderService(t *testing.T) ReminderService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewReminderService(repository.NewSQLiteReminderRepo(database), testutil.NewTestUoW(database))
}

func TestReminderService_Create(t *testing.T) {
	svc := setupReminderService(t)

	rem, err := svc.Create(context.Background(), CreateReminderInput{Title: "Renew passport", DueDate: "2026-10-01"})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", rem.DueDate)
	assert.Equal(t, 1, rem.OrderIndex)
}

func TestReminderService_Create_Validation(t *testing.T) {
	svc := setupReminderService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateReminderInput{Title: "", DueDate: "2026-10-01"})
	assert.True(t, IsValidation(err))

	_, err = svc.Create(ctx, CreateReminderInput{Title: "x", DueDate: ""})
	assert.True(t, IsValidation(err))

	for _, bad := range []string{"10/01/2026", "2026-13-01", "tomorrow", "2026-1-1"} {
		_, err = svc.Create(ctx, CreateReminderInput{Title: "x", DueDate: bad})
		assert.True(t, IsValidation(err), "due date %q should be rejected", bad)
	}
}

func TestReminderService_Update_ValidatesNewDueDate(t *testing.T) {
	svc := setupReminderService(t)
	ctx := context.Background()

	rem, err := svc.Create(ctx, CreateReminderInput{Title: "x", DueDate: "2026-10-01"})
	require.NoError(t, err)

	bad := "not-a-date"
	_, err = svc.Update(ctx, rem.ID, UpdateReminderInput{DueDate: &bad})
	assert.True(t, IsValidation(err))

	good := "2026-12-24"
	updated, err := svc.Update(ctx, rem.ID, UpdateReminderInput{DueDate: &good})
	require.NoError(t, err)
	assert.Equal(t, "2026-12-24", updated.DueDate)
}
