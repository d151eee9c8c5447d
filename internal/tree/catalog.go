package tree

import (
	"sort"

	"github.com/alexanderramin/homedash/internal/domain"
)

// ParentOption is one selectable move/create target for the folder picker.
type ParentOption struct {
	ID    string
	Title string
	Depth int
}

// ParentOptions lists every container with its depth below the root,
// ordered by depth then title. Only container children are walked; a leaf
// is never a valid target and its subtree is never visited, which is safe
// because a leaf holds no children.
func ParentOptions(nodes []*domain.Bookmark) []ParentOption {
	children := make(map[string][]*domain.Bookmark)
	var level []*domain.Bookmark
	for _, n := range nodes {
		if n.IsLeaf() {
			continue
		}
		if n.ParentID == nil {
			level = append(level, n)
			continue
		}
		children[*n.ParentID] = append(children[*n.ParentID], n)
	}

	var out []ParentOption
	for depth := 0; len(level) > 0; depth++ {
		sort.SliceStable(level, func(i, j int) bool {
			return level[i].Title < level[j].Title
		})
		var next []*domain.Bookmark
		for _, c := range level {
			out = append(out, ParentOption{ID: c.ID, Title: c.Title, Depth: depth})
			next = append(next, children[c.ID]...)
		}
		level = next
	}
	return out
}
