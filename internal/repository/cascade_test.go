package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/homedash/internal/testutil"
)

// TestCascadeDelete_FolderToDescendants verifies that deleting a container
// removes its entire subtree through the self-referencing foreign key.
func TestCascadeDelete_FolderToDescendants(t *testing.T) {
	repo := NewSQLiteBookmarkRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	root := testutil.NewFolder("root")
	mid := testutil.NewFolder("mid", testutil.WithParent(root.ID))
	leaf := testutil.NewLink("leaf", "https://x.example.com", testutil.WithParent(mid.ID))
	outside := testutil.NewLink("outside", "https://y.example.com")
	require.NoError(t, repo.Create(ctx, root))
	require.NoError(t, repo.Create(ctx, mid))
	require.NoError(t, repo.Create(ctx, leaf))
	require.NoError(t, repo.Create(ctx, outside))

	deleted, err := repo.Delete(ctx, root.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, mid.ID)
	assert.Error(t, err, "direct child should be cascade-deleted")
	_, err = repo.GetByID(ctx, leaf.ID)
	assert.Error(t, err, "grandchild should be cascade-deleted")

	_, err = repo.GetByID(ctx, outside.ID)
	assert.NoError(t, err, "unrelated rows survive")
}
