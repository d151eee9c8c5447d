package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/homedash/internal/repository"
	"github.com/alexanderramin/homedash/internal/testutil"
)

func setupTodoSessionService(t *testing.T) TodoSessionService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewTodoSessionService(repository.NewSQLiteTodoSessionRepo(database))
}

func TestTodoSessionService_Create_DefaultsTitle(t *testing.T) {
	svc := setupTodoSessionService(t)

	s, err := svc.Create(context.Background(), CreateTodoSessionInput{Title: "  ", Content: "notes"})
	require.NoError(t, err)
	assert.Equal(t, "Untitled Session", s.Title)
	assert.Equal(t, "notes", s.Content)
}

func TestTodoSessionService_Update_BlankTitleKeepsCurrent(t *testing.T) {
	svc := setupTodoSessionService(t)
	ctx := context.Background()

	s, err := svc.Create(ctx, CreateTodoSessionInput{Title: "Morning", Content: "a"})
	require.NoError(t, err)

	blank := " "
	content := "b"
	updated, err := svc.Update(ctx, s.ID, UpdateTodoSessionInput{Title: &blank, Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "Morning", updated.Title)
	assert.Equal(t, "b", updated.Content)
}
