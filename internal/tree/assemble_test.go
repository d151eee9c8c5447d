package tree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/testutil"
)

func TestAssemble_Empty(t *testing.T) {
	assert.Empty(t, Assemble(nil))
}

func TestAssemble_NestsChildrenUnderParents(t *testing.T) {
	folder := testutil.NewFolder("Work")
	link := testutil.NewLink("Docs", "https://docs.example.com", testutil.WithParent(folder.ID))
	loose := testutil.NewLink("News", "https://news.example.com")

	forest := Assemble([]*domain.Bookmark{link, loose, folder})

	require.Len(t, forest, 2)
	// Containers sort before leaves within a sibling group.
	assert.Equal(t, "Work", forest[0].Title)
	assert.Equal(t, "News", forest[1].Title)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Docs", forest[0].Children[0].Title)
}

func TestAssemble_SiblingOrdering(t *testing.T) {
	now := time.Now().UTC()
	folderLate := testutil.NewFolder("Z Folder", testutil.WithOrder(9))
	linkFirst := testutil.NewLink("A Link", "https://a.example.com", testutil.WithOrder(1))
	folderEarly := testutil.NewFolder("M Folder", testutil.WithOrder(2))
	tieOld := testutil.NewLink("Old", "https://old.example.com",
		testutil.WithOrder(5), testutil.WithCreatedAt(now.Add(-time.Hour)))
	tieNew := testutil.NewLink("New", "https://new.example.com",
		testutil.WithOrder(5), testutil.WithCreatedAt(now))

	forest := Assemble([]*domain.Bookmark{tieOld, linkFirst, folderLate, tieNew, folderEarly})

	titles := make([]string, 0, len(forest))
	for _, n := range forest {
		titles = append(titles, n.Title)
	}
	// Containers first (by order key), then leaves by order key with the
	// newer node winning an equal-key tie.
	assert.Equal(t, []string{"M Folder", "Z Folder", "A Link", "New", "Old"}, titles)
}

func TestAssemble_DropsOrphans(t *testing.T) {
	folder := testutil.NewFolder("Kept")
	child := testutil.NewLink("Child", "https://c.example.com", testutil.WithParent(folder.ID))
	orphan := testutil.NewLink("Orphan", "https://o.example.com", testutil.WithParent("missing-parent"))

	forest := Assemble([]*domain.Bookmark{folder, child, orphan})

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Child", forest[0].Children[0].Title)
}

func TestAssemble_LeafNeverHoldsChildren(t *testing.T) {
	leaf := testutil.NewLink("Leaf", "https://l.example.com")
	stray := testutil.NewLink("Stray", "https://s.example.com", testutil.WithParent(leaf.ID))

	forest := Assemble([]*domain.Bookmark{leaf, stray})

	require.Len(t, forest, 1)
	assert.Empty(t, forest[0].Children)
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	folder := testutil.NewFolder("F")
	child := testutil.NewLink("C", "https://c.example.com", testutil.WithParent(folder.ID))

	Assemble([]*domain.Bookmark{folder, child})

	assert.Nil(t, folder.Children, "input rows must stay untouched")
}

func TestAssemble_EveryResolvedNodeAppearsExactlyOnce(t *testing.T) {
	a := testutil.NewFolder("a")
	b := testutil.NewFolder("b", testutil.WithParent(a.ID))
	c := testutil.NewFolder("c", testutil.WithParent(b.ID))
	l1 := testutil.NewLink("l1", "https://1.example.com", testutil.WithParent(a.ID))
	l2 := testutil.NewLink("l2", "https://2.example.com", testutil.WithParent(c.ID))
	rows := []*domain.Bookmark{a, b, c, l1, l2}

	forest := Assemble(rows)

	seen := map[string]int{}
	var walk func(nodes []*domain.Bookmark)
	walk = func(nodes []*domain.Bookmark) {
		for _, n := range nodes {
			seen[n.ID]++
			walk(n.Children)
		}
	}
	walk(forest)

	require.Len(t, seen, len(rows))
	for _, row := range rows {
		assert.Equal(t, 1, seen[row.ID], "node %s placed once", row.Title)
	}
}

func TestDescendants(t *testing.T) {
	root := testutil.NewFolder("root")
	mid := testutil.NewFolder("mid", testutil.WithParent(root.ID))
	leaf := testutil.NewLink("leaf", "https://x.example.com", testutil.WithParent(mid.ID))
	other := testutil.NewFolder("other")
	rows := []*domain.Bookmark{root, mid, leaf, other}

	got := Descendants(rows, root.ID)

	assert.Len(t, got, 2)
	assert.Contains(t, got, mid.ID)
	assert.Contains(t, got, leaf.ID)
	assert.NotContains(t, got, root.ID)
	assert.NotContains(t, got, other.ID)
}

func TestDescendants_EmptyForLeafRoot(t *testing.T) {
	leaf := testutil.NewLink("leaf", "https://x.example.com")
	assert.Empty(t, Descendants([]*domain.Bookmark{leaf}, leaf.ID))
}
