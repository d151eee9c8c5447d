package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/homedash/internal/db"
	"github.com/alexanderramin/homedash/internal/domain"
)

const fundColumns = `id, title, price, order_index, created_at, updated_at`

// SQLiteFundRepo implements FundRepo using a SQLite database.
type SQLiteFundRepo struct {
	db db.DBTX
}

// NewSQLiteFundRepo creates a new SQLiteFundRepo.
func NewSQLiteFundRepo(conn db.DBTX) *SQLiteFundRepo {
	return &SQLiteFundRepo{db: conn}
}

func (r *SQLiteFundRepo) Create(ctx context.Context, f *domain.Fund) error {
	query := `INSERT INTO funds (id, title, price, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.Title,
		f.Price,
		f.OrderIndex,
		f.CreatedAt.Format(time.RFC3339),
		f.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting fund: %w", err)
	}
	return nil
}

func (r *SQLiteFundRepo) GetByID(ctx context.Context, id string) (*domain.Fund, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+fundColumns+` FROM funds WHERE id = ?`, id)
	f, err := scanFund(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("fund: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning fund: %w", err)
	}
	return f, nil
}

func (r *SQLiteFundRepo) List(ctx context.Context) ([]*domain.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM funds ORDER BY order_index ASC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing funds: %w", err)
	}
	defer rows.Close()

	var funds []*domain.Fund
	for rows.Next() {
		f, err := scanFund(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning fund row: %w", err)
		}
		funds = append(funds, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating funds: %w", err)
	}
	return funds, nil
}

func (r *SQLiteFundRepo) NextOrder(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(order_index), 0) + 1 FROM funds`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("computing next fund order: %w", err)
	}
	return next, nil
}

func (r *SQLiteFundRepo) Update(ctx context.Context, f *domain.Fund) error {
	query := `UPDATE funds SET title = ?, price = ?, order_index = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		f.Title,
		f.Price,
		f.OrderIndex,
		f.UpdatedAt.Format(time.RFC3339),
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating fund: %w", err)
	}
	return nil
}

func (r *SQLiteFundRepo) UpdateOrder(ctx context.Context, id string, order int, updatedAt time.Time) error {
	query := `UPDATE funds SET order_index = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, order, updatedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating fund order: %w", err)
	}
	return nil
}

func (r *SQLiteFundRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM funds WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting fund: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting fund: %w", err)
	}
	return n > 0, nil
}

func scanFund(scan func(...any) error) (*domain.Fund, error) {
	var f domain.Fund
	var createdAtStr, updatedAtStr string

	err := scan(&f.ID, &f.Title, &f.Price, &f.OrderIndex, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	var parseErr error
	f.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	f.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &f, nil
}
