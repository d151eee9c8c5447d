package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/homedash/internal/db"
	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/repository"
	"github.com/alexanderramin/homedash/internal/tree"
	"github.com/google/uuid"
)

type bookmarkService struct {
	bookmarks repository.BookmarkRepo
	uow       db.UnitOfWork
}

// NewBookmarkService creates the bookmark tree service. Mutations that read
// and write together (create, move, reorder, reparenting updates) run
// inside the unit of work so concurrent requests on one sibling group
// cannot interleave a stale order computation with its write.
func NewBookmarkService(bookmarks repository.BookmarkRepo, uow db.UnitOfWork) BookmarkService {
	return &bookmarkService{bookmarks: bookmarks, uow: uow}
}

func (s *bookmarkService) Tree(ctx context.Context) ([]*domain.Bookmark, error) {
	rows, err := s.bookmarks.List(ctx)
	if err != nil {
		return nil, err
	}
	return tree.Assemble(rows), nil
}

func (s *bookmarkService) GetByID(ctx context.Context, id string) (*domain.Bookmark, error) {
	return s.bookmarks.GetByID(ctx, id)
}

func (s *bookmarkService) Create(ctx context.Context, in CreateBookmarkInput) (*domain.Bookmark, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationf("title is required")
	}

	b := &domain.Bookmark{
		ID:          uuid.New().String(),
		Title:       title,
		URL:         normalizeOptional(in.URL),
		Description: normalizeOptional(in.Description),
		ParentID:    in.ParentID,
		Icon:        normalizeOptional(in.Icon),
		Color:       normalizeOptional(in.Color),
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteBookmarkRepo(tx)

		if b.ParentID != nil {
			parent, err := repo.GetByID(ctx, *b.ParentID)
			if err != nil {
				return fmt.Errorf("looking up parent: %w", err)
			}
			if parent.IsLeaf() {
				return validationf("parent must be a folder")
			}
		}

		// New nodes go last among their siblings.
		order, err := repo.NextOrder(ctx, b.ParentID)
		if err != nil {
			return err
		}
		b.OrderIndex = order
		return repo.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookmarkService) Update(ctx context.Context, id string, in UpdateBookmarkInput) (*domain.Bookmark, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, validationf("title is required")
	}

	var updated *domain.Bookmark
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteBookmarkRepo(tx)

		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		// A parent change through update is still a reparent, so it gets
		// the same gate as a move. Nil keeps the current parent; moving to
		// root goes through Move, which treats nil as a first-class value.
		if in.ParentID != nil && !sameParent(in.ParentID, current.ParentID) {
			if err := s.checkMoveTarget(ctx, repo, id, in.ParentID); err != nil {
				return err
			}
		}

		if in.Title != nil {
			current.Title = strings.TrimSpace(*in.Title)
		}
		if in.URL != nil {
			current.URL = normalizeOptional(in.URL)
		}
		if in.Description != nil {
			current.Description = in.Description
		}
		if in.ParentID != nil {
			current.ParentID = in.ParentID
		}
		if in.Icon != nil {
			current.Icon = in.Icon
		}
		if in.Color != nil {
			current.Color = in.Color
		}
		current.OrderIndex = domain.IntFromPtrWithDefault(current.OrderIndex, in.Order)
		current.UpdatedAt = time.Now().UTC()

		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *bookmarkService) Delete(ctx context.Context, id string) (bool, error) {
	// Descendants go with the row; the store's cascading foreign key owns
	// that contract.
	return s.bookmarks.Delete(ctx, id)
}

func (s *bookmarkService) Move(ctx context.Context, sourceID string, newParentID *string, insertIndex int) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteBookmarkRepo(tx)

		if _, err := repo.GetByID(ctx, sourceID); err != nil {
			return err
		}
		if err := s.checkMoveTarget(ctx, repo, sourceID, newParentID); err != nil {
			return err
		}

		siblings, err := repo.ListSiblings(ctx, newParentID, sourceID)
		if err != nil {
			return err
		}
		orders := make([]int, len(siblings))
		for i, sib := range siblings {
			orders[i] = sib.OrderIndex
		}

		placement := tree.PlanInsert(orders, insertIndex)
		now := time.Now().UTC()

		// Rebalance writes run back-to-front so no two siblings hold the
		// same key even transiently.
		if placement.ShiftFrom >= 0 {
			for i := len(siblings) - 1; i >= placement.ShiftFrom; i-- {
				if err := repo.UpdateOrder(ctx, siblings[i].ID, siblings[i].OrderIndex+1, now); err != nil {
					return err
				}
			}
		}

		// The moved node's descendants keep their own rows untouched;
		// reparenting the subtree root is the entire effect.
		return repo.UpdatePlacement(ctx, sourceID, newParentID, placement.Order, now)
	})
}

// checkMoveTarget validates a prospective parent for sourceID: the target
// must exist, must be a container, and must not be sourceID itself or any
// of its descendants. Root (nil) is always a valid target.
func (s *bookmarkService) checkMoveTarget(ctx context.Context, repo repository.BookmarkRepo, sourceID string, newParentID *string) error {
	if newParentID == nil {
		return nil
	}
	if *newParentID == sourceID {
		return ErrCycle
	}

	all, err := repo.List(ctx)
	if err != nil {
		return err
	}

	var target *domain.Bookmark
	for _, n := range all {
		if n.ID == *newParentID {
			target = n
			break
		}
	}
	if target == nil {
		return fmt.Errorf("target parent: %w", repository.ErrNotFound)
	}
	if target.IsLeaf() {
		return validationf("parent must be a folder")
	}

	if _, isDescendant := tree.Descendants(all, sourceID)[*newParentID]; isDescendant {
		return ErrCycle
	}
	return nil
}

func (s *bookmarkService) Reorder(ctx context.Context, orders []OrderUpdate) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteBookmarkRepo(tx)
		now := time.Now().UTC()
		for _, o := range orders {
			if err := repo.UpdateOrder(ctx, o.ID, o.Order, now); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *bookmarkService) ParentOptions(ctx context.Context) ([]tree.ParentOption, error) {
	rows, err := s.bookmarks.List(ctx)
	if err != nil {
		return nil, err
	}
	return tree.ParentOptions(rows), nil
}

// normalizeOptional trims an optional string and treats the empty result as
// absent. An empty url must become NULL or a link would masquerade as one
// with no destination while still counting as a leaf.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
