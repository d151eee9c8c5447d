// Package tree holds the pure algorithms behind the bookmark hierarchy:
// forest assembly, order-key allocation, descendant walks, and the parent
// catalog. Nothing here touches the store; callers feed in flat row sets
// and apply any resulting writes themselves.
package tree

import (
	"sort"

	"github.com/alexanderramin/homedash/internal/domain"
)

// Assemble builds the display forest from a flat row set. Each returned
// root carries its ordered children recursively. Input nodes are not
// mutated; the forest is built over shallow copies.
//
// A node whose parent id does not resolve to any row is dropped from the
// forest entirely, neither promoted to root nor reported as an error. This
// is a deliberate leniency toward referential drift in the store. A leaf's
// child list is always empty regardless of what the rows claim.
func Assemble(nodes []*domain.Bookmark) []*domain.Bookmark {
	byID := make(map[string]*domain.Bookmark, len(nodes))
	for _, n := range nodes {
		clone := *n
		clone.Children = nil
		byID[clone.ID] = &clone
	}

	var roots []*domain.Bookmark
	for _, n := range nodes {
		node := byID[n.ID]
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := byID[*node.ParentID]
		if !ok {
			// Orphan: parent row is gone. Drop it.
			continue
		}
		if parent.IsLeaf() {
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortSiblings(roots)
	for _, n := range byID {
		sortSiblings(n.Children)
	}
	return roots
}

// sortSiblings orders one sibling group: containers before leaves, then
// ascending order key, newest created_at first on ties.
func sortSiblings(group []*domain.Bookmark) {
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i], group[j]
		if a.IsContainer() != b.IsContainer() {
			return a.IsContainer()
		}
		if a.OrderIndex != b.OrderIndex {
			return a.OrderIndex < b.OrderIndex
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// Descendants returns the id set of every node in the subtree rooted at
// rootID, excluding rootID itself. Cost is proportional to the subtree
// size. The walk assumes the rows are already acyclic; that invariant is
// maintained by validating every parent-changing write, and the visited
// set here only guards the walk against a corrupted store.
func Descendants(nodes []*domain.Bookmark, rootID string) map[string]struct{} {
	childIDs := make(map[string][]string)
	for _, n := range nodes {
		if n.ParentID != nil {
			childIDs[*n.ParentID] = append(childIDs[*n.ParentID], n.ID)
		}
	}

	out := make(map[string]struct{})
	stack := []string{rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range childIDs[id] {
			if _, seen := out[child]; seen {
				continue
			}
			out[child] = struct{}{}
			stack = append(stack, child)
		}
	}
	return out
}
