package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/homedash/internal/testutil"
)

func TestTodoRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteTodoRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	todo := testutil.NewTestTodo("Water plants", testutil.WithTodoOrder(2))
	desc := "the big one too"
	todo.Description = &desc
	require.NoError(t, repo.Create(ctx, todo))

	got, err := repo.GetByID(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Water plants", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "the big one too", *got.Description)
	assert.False(t, got.Completed)
	assert.Equal(t, 2, got.OrderIndex)
}

func TestTodoRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteTodoRepo(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTodoRepo_ListOrdersByKey(t *testing.T) {
	repo := NewSQLiteTodoRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	second := testutil.NewTestTodo("second", testutil.WithTodoOrder(2))
	first := testutil.NewTestTodo("first", testutil.WithTodoOrder(1))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "first", todos[0].Title)
	assert.Equal(t, "second", todos[1].Title)
}

func TestTodoRepo_UpdateAndCompleteRoundTrip(t *testing.T) {
	repo := NewSQLiteTodoRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	todo := testutil.NewTestTodo("task")
	require.NoError(t, repo.Create(ctx, todo))

	todo.Completed = true
	todo.Title = "task done"
	todo.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, todo))

	got, err := repo.GetByID(ctx, todo.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, "task done", got.Title)
}

func TestTodoRepo_NextOrder(t *testing.T) {
	repo := NewSQLiteTodoRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	next, err := repo.NextOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	require.NoError(t, repo.Create(ctx, testutil.NewTestTodo("x", testutil.WithTodoOrder(5))))

	next, err = repo.NextOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, next)
}

func TestTodoRepo_Delete(t *testing.T) {
	repo := NewSQLiteTodoRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	todo := testutil.NewTestTodo("gone")
	require.NoError(t, repo.Create(ctx, todo))

	deleted, err := repo.Delete(ctx, todo.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, todo.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
