package domain

import "time"

// Bookmark is one node of the bookmark tree. A node with a URL is a leaf
// (a link); a node without one is a container (a folder). The distinction
// is derived from URL presence, never stored separately.
//
// Children is a display-side derivation filled in by tree.Assemble; the
// persisted structure is flat, with ParentID as the only relationship.
type Bookmark struct {
	ID          string
	Title       string
	URL         *string
	Description *string
	ParentID    *string // nil means root
	Icon        *string
	Color       *string
	OrderIndex  int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Children []*Bookmark
}

// IsContainer reports whether the bookmark is a folder that may hold children.
func (b *Bookmark) IsContainer() bool {
	return b.URL == nil
}

// IsLeaf reports whether the bookmark is a link. Leaves never hold children.
func (b *Bookmark) IsLeaf() bool {
	return b.URL != nil
}
