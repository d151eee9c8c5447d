package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/homedash/internal/db"
	"github.com/alexanderramin/homedash/internal/domain"
)

// SQLiteSavedMoneyRepo implements SavedMoneyRepo using a SQLite database.
// The table holds at most one row, keyed by a constant id.
type SQLiteSavedMoneyRepo struct {
	db db.DBTX
}

// NewSQLiteSavedMoneyRepo creates a new SQLiteSavedMoneyRepo.
func NewSQLiteSavedMoneyRepo(conn db.DBTX) *SQLiteSavedMoneyRepo {
	return &SQLiteSavedMoneyRepo{db: conn}
}

func (r *SQLiteSavedMoneyRepo) Get(ctx context.Context) (*domain.SavedMoney, error) {
	row := r.db.QueryRowContext(ctx, `SELECT amount, updated_at FROM saved_money WHERE id = 1`)

	var m domain.SavedMoney
	var updatedAtStr string
	if err := row.Scan(&m.Amount, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("saved money: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning saved money: %w", err)
	}

	var parseErr error
	m.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &m, nil
}

func (r *SQLiteSavedMoneyRepo) Upsert(ctx context.Context, m *domain.SavedMoney) error {
	query := `INSERT OR REPLACE INTO saved_money (id, amount, updated_at) VALUES (1, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, m.Amount, m.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting saved money: %w", err)
	}
	return nil
}
