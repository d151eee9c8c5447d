package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/homedash/internal/db"
	"github.com/alexanderramin/homedash/internal/domain"
)

// bookmarkColumns is the canonical SELECT column list for bookmarks.
const bookmarkColumns = `id, title, url, description, parent_id, icon, color,
		order_index, created_at, updated_at`

// SQLiteBookmarkRepo implements BookmarkRepo using a SQLite database.
type SQLiteBookmarkRepo struct {
	db db.DBTX
}

// NewSQLiteBookmarkRepo creates a new SQLiteBookmarkRepo. Passing the DBTX
// from a unit of work yields a tx-scoped repository.
func NewSQLiteBookmarkRepo(conn db.DBTX) *SQLiteBookmarkRepo {
	return &SQLiteBookmarkRepo{db: conn}
}

func (r *SQLiteBookmarkRepo) Create(ctx context.Context, b *domain.Bookmark) error {
	query := `INSERT INTO bookmarks (id, title, url, description, parent_id, icon, color,
		order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Title,
		nullableStrToValue(b.URL),
		nullableStrToValue(b.Description),
		b.ParentID, // *string: nil becomes SQL NULL
		nullableStrToValue(b.Icon),
		nullableStrToValue(b.Color),
		b.OrderIndex,
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting bookmark: %w", err)
	}
	return nil
}

func (r *SQLiteBookmarkRepo) GetByID(ctx context.Context, id string) (*domain.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanBookmark(row)
}

func (r *SQLiteBookmarkRepo) List(ctx context.Context) ([]*domain.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	defer rows.Close()
	return r.scanBookmarks(rows)
}

func (r *SQLiteBookmarkRepo) ListSiblings(ctx context.Context, parentID *string, excludeID string) ([]*domain.Bookmark, error) {
	var rows *sql.Rows
	var err error
	if parentID == nil {
		query := `SELECT ` + bookmarkColumns + ` FROM bookmarks
			WHERE parent_id IS NULL AND id != ?
			ORDER BY order_index ASC, created_at DESC`
		rows, err = r.db.QueryContext(ctx, query, excludeID)
	} else {
		query := `SELECT ` + bookmarkColumns + ` FROM bookmarks
			WHERE parent_id = ? AND id != ?
			ORDER BY order_index ASC, created_at DESC`
		rows, err = r.db.QueryContext(ctx, query, *parentID, excludeID)
	}
	if err != nil {
		return nil, fmt.Errorf("listing sibling bookmarks: %w", err)
	}
	defer rows.Close()
	return r.scanBookmarks(rows)
}

func (r *SQLiteBookmarkRepo) NextOrder(ctx context.Context, parentID *string) (int, error) {
	var row *sql.Row
	if parentID == nil {
		row = r.db.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(order_index), 0) + 1 FROM bookmarks WHERE parent_id IS NULL`)
	} else {
		row = r.db.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(order_index), 0) + 1 FROM bookmarks WHERE parent_id = ?`, *parentID)
	}
	var next int
	if err := row.Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next bookmark order: %w", err)
	}
	return next, nil
}

func (r *SQLiteBookmarkRepo) Update(ctx context.Context, b *domain.Bookmark) error {
	query := `UPDATE bookmarks SET title = ?, url = ?, description = ?, parent_id = ?,
		icon = ?, color = ?, order_index = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		b.Title,
		nullableStrToValue(b.URL),
		nullableStrToValue(b.Description),
		b.ParentID,
		nullableStrToValue(b.Icon),
		nullableStrToValue(b.Color),
		b.OrderIndex,
		b.UpdatedAt.Format(time.RFC3339),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating bookmark: %w", err)
	}
	return nil
}

func (r *SQLiteBookmarkRepo) UpdateOrder(ctx context.Context, id string, order int, updatedAt time.Time) error {
	query := `UPDATE bookmarks SET order_index = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, order, updatedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating bookmark order: %w", err)
	}
	return nil
}

func (r *SQLiteBookmarkRepo) UpdatePlacement(ctx context.Context, id string, parentID *string, order int, updatedAt time.Time) error {
	query := `UPDATE bookmarks SET parent_id = ?, order_index = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, parentID, order, updatedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating bookmark placement: %w", err)
	}
	return nil
}

func (r *SQLiteBookmarkRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting bookmark: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting bookmark: %w", err)
	}
	return n > 0, nil
}

// scanBookmark scans a single bookmark from a *sql.Row.
func (r *SQLiteBookmarkRepo) scanBookmark(row *sql.Row) (*domain.Bookmark, error) {
	var b domain.Bookmark
	var url, description, parentID, icon, color sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&b.ID, &b.Title, &url, &description, &parentID, &icon, &color,
		&b.OrderIndex, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("bookmark: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning bookmark: %w", err)
	}
	return r.populateBookmark(&b, url, description, parentID, icon, color, createdAtStr, updatedAtStr)
}

// scanBookmarks scans multiple bookmarks from *sql.Rows.
func (r *SQLiteBookmarkRepo) scanBookmarks(rows *sql.Rows) ([]*domain.Bookmark, error) {
	var bookmarks []*domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		var url, description, parentID, icon, color sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&b.ID, &b.Title, &url, &description, &parentID, &icon, &color,
			&b.OrderIndex, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning bookmark row: %w", err)
		}
		bookmark, err := r.populateBookmark(&b, url, description, parentID, icon, color, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bookmark)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookmarks: %w", err)
	}
	return bookmarks, nil
}

// populateBookmark fills in parsed fields on a Bookmark after scanning raw values.
func (r *SQLiteBookmarkRepo) populateBookmark(
	b *domain.Bookmark,
	url, description, parentID, icon, color sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Bookmark, error) {
	b.URL = strFromNullable(url)
	b.Description = strFromNullable(description)
	b.ParentID = strFromNullable(parentID)
	b.Icon = strFromNullable(icon)
	b.Color = strFromNullable(color)

	var parseErr error
	b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return b, nil
}
