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

func setupBookmarkRepo(t *testing.T) *SQLiteBookmarkRepo {
	t.Helper()
	return NewSQLiteBookmarkRepo(testutil.NewTestDB(t))
}

func TestBookmarkRepo_CreateAndGetByID(t *testing.T) {
	repo := setupBookmarkRepo(t)
	ctx := context.Background()

	folder := testutil.NewFolder("Reading")
	require.NoError(t, repo.Create(ctx, folder))

	link := testutil.NewLink("Blog", "https://blog.example.com",
		testutil.WithParent(folder.ID),
		testutil.WithOrder(4),
	)
	desc := "long reads"
	icon := "book"
	color := "#aabbcc"
	link.Description = &desc
	link.Icon = &icon
	link.Color = &color
	require.NoError(t, repo.Create(ctx, link))

	got, err := repo.GetByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, link.ID, got.ID)
	assert.Equal(t, "Blog", got.Title)
	require.NotNil(t, got.URL)
	assert.Equal(t, "https://blog.example.com", *got.URL)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, folder.ID, *got.ParentID)
	require.NotNil(t, got.Description)
	assert.Equal(t, "long reads", *got.Description)
	require.NotNil(t, got.Icon)
	assert.Equal(t, "book", *got.Icon)
	require.NotNil(t, got.Color)
	assert.Equal(t, "#aabbcc", *got.Color)
	assert.Equal(t, 4, got.OrderIndex)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestBookmarkRepo_GetByID_NotFound(t *testing.T) {
	repo := setupBookmarkRepo(t)
	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBookmarkRepo_ListSiblings(t *testing.T) {
	repo := setupBookmarkRepo(t)
	ctx := context.Background()

	folder := testutil.NewFolder("F")
	require.NoError(t, repo.Create(ctx, folder))

	b2 := testutil.NewLink("b2", "https://2.example.com", testutil.WithParent(folder.ID), testutil.WithOrder(2))
	b1 := testutil.NewLink("b1", "https://1.example.com", testutil.WithParent(folder.ID), testutil.WithOrder(1))
	root := testutil.NewLink("root", "https://r.example.com", testutil.WithOrder(1))
	require.NoError(t, repo.Create(ctx, b2))
	require.NoError(t, repo.Create(ctx, b1))
	require.NoError(t, repo.Create(ctx, root))

	siblings, err := repo.ListSiblings(ctx, &folder.ID, "")
	require.NoError(t, err)
	require.Len(t, siblings, 2)
	assert.Equal(t, "b1", siblings[0].Title)
	assert.Equal(t, "b2", siblings[1].Title)

	// Excluding an id removes it from the group.
	siblings, err = repo.ListSiblings(ctx, &folder.ID, b1.ID)
	require.NoError(t, err)
	require.Len(t, siblings, 1)
	assert.Equal(t, "b2", siblings[0].Title)

	// nil parent selects the root group.
	roots, err := repo.ListSiblings(ctx, nil, "")
	require.NoError(t, err)
	require.Len(t, roots, 2)
}

func TestBookmarkRepo_NextOrder(t *testing.T) {
	repo := setupBookmarkRepo(t)
	ctx := context.Background()

	next, err := repo.NextOrder(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, next, "empty group starts at 1")

	require.NoError(t, repo.Create(ctx, testutil.NewLink("a", "https://a.example.com", testutil.WithOrder(7))))

	next, err = repo.NextOrder(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, next)

	folder := testutil.NewFolder("F")
	require.NoError(t, repo.Create(ctx, folder))
	next, err = repo.NextOrder(ctx, &folder.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, next, "sibling groups are independent")
}

func TestBookmarkRepo_Update(t *testing.T) {
	repo := setupBookmarkRepo(t)
	ctx := context.Background()

	link := testutil.NewLink("Old", "https://old.example.com")
	require.NoError(t, repo.Create(ctx, link))

	link.Title = "New"
	link.URL = nil
	link.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, link))

	got, err := repo.GetByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Nil(t, got.URL, "clearing the url turns a leaf into a container")
}

func TestBookmarkRepo_UpdateOrderAndPlacement(t *testing.T) {
	repo := setupBookmarkRepo(t)
	ctx := context.Background()

	folder := testutil.NewFolder("F")
	link := testutil.NewLink("L", "https://l.example.com", testutil.WithOrder(1))
	require.NoError(t, repo.Create(ctx, folder))
	require.NoError(t, repo.Create(ctx, link))

	now := time.Now().UTC()
	require.NoError(t, repo.UpdateOrder(ctx, link.ID, 9, now))

	got, err := repo.GetByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.OrderIndex)
	assert.Nil(t, got.ParentID)

	require.NoError(t, repo.UpdatePlacement(ctx, link.ID, &folder.ID, 3, now))

	got, err = repo.GetByID(ctx, link.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, folder.ID, *got.ParentID)
	assert.Equal(t, 3, got.OrderIndex)
}

func TestBookmarkRepo_Delete(t *testing.T) {
	repo := setupBookmarkRepo(t)
	ctx := context.Background()

	link := testutil.NewLink("L", "https://l.example.com")
	require.NoError(t, repo.Create(ctx, link))

	deleted, err := repo.Delete(ctx, link.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, link.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete reports nothing removed")
}
