package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/testutil"
)

func TestParentOptions_Empty(t *testing.T) {
	assert.Empty(t, ParentOptions(nil))
}

func TestParentOptions_ExcludesLeaves(t *testing.T) {
	folder := testutil.NewFolder("Folder")
	link := testutil.NewLink("Link", "https://x.example.com")

	options := ParentOptions([]*domain.Bookmark{folder, link})

	require.Len(t, options, 1)
	assert.Equal(t, folder.ID, options[0].ID)
	assert.Equal(t, 0, options[0].Depth)
}

func TestParentOptions_DepthThenTitle(t *testing.T) {
	b := testutil.NewFolder("b")
	a := testutil.NewFolder("a")
	nested := testutil.NewFolder("aa", testutil.WithParent(b.ID))
	deep := testutil.NewFolder("deep", testutil.WithParent(nested.ID))
	leaf := testutil.NewLink("z", "https://z.example.com", testutil.WithParent(a.ID))

	options := ParentOptions([]*domain.Bookmark{deep, b, leaf, nested, a})

	require.Len(t, options, 4)
	assert.Equal(t, []ParentOption{
		{ID: a.ID, Title: "a", Depth: 0},
		{ID: b.ID, Title: "b", Depth: 0},
		{ID: nested.ID, Title: "aa", Depth: 1},
		{ID: deep.ID, Title: "deep", Depth: 2},
	}, options)
}

func TestParentOptions_SortsEachLevelIndependently(t *testing.T) {
	z := testutil.NewFolder("z")
	a := testutil.NewFolder("a")
	// Children of z sort before children of a at depth 1 only if their
	// titles do; level ordering is by title across the whole depth.
	za := testutil.NewFolder("alpha", testutil.WithParent(z.ID))
	ab := testutil.NewFolder("beta", testutil.WithParent(a.ID))

	options := ParentOptions([]*domain.Bookmark{z, a, za, ab})

	titles := make([]string, 0, len(options))
	for _, o := range options {
		titles = append(titles, o.Title)
	}
	assert.Equal(t, []string{"a", "z", "alpha", "beta"}, titles)
}
