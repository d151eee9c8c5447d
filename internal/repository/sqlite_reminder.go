package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/homedash/internal/db"
	"github.com/alexanderramin/homedash/internal/domain"
)

const reminderColumns = `id, title, due_date, order_index, created_at, updated_at`

// SQLiteReminderRepo implements ReminderRepo using a SQLite database.
type SQLiteReminderRepo struct {
	db db.DBTX
}

// NewSQLiteReminderRepo creates a new SQLiteReminderRepo.
func NewSQLiteReminderRepo(conn db.DBTX) *SQLiteReminderRepo {
	return &SQLiteReminderRepo{db: conn}
}

func (r *SQLiteReminderRepo) Create(ctx context.Context, rem *domain.Reminder) error {
	query := `INSERT INTO reminders (id, title, due_date, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rem.ID,
		rem.Title,
		rem.DueDate,
		rem.OrderIndex,
		rem.CreatedAt.Format(time.RFC3339),
		rem.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting reminder: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepo) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE id = ?`, id)
	rem, err := scanReminder(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reminder: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning reminder: %w", err)
	}
	return rem, nil
}

func (r *SQLiteReminderRepo) List(ctx context.Context) ([]*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders ORDER BY order_index ASC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*domain.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning reminder row: %w", err)
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}
	return reminders, nil
}

func (r *SQLiteReminderRepo) NextOrder(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(order_index), 0) + 1 FROM reminders`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("computing next reminder order: %w", err)
	}
	return next, nil
}

func (r *SQLiteReminderRepo) Update(ctx context.Context, rem *domain.Reminder) error {
	query := `UPDATE reminders SET title = ?, due_date = ?, order_index = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		rem.Title,
		rem.DueDate,
		rem.OrderIndex,
		rem.UpdatedAt.Format(time.RFC3339),
		rem.ID,
	)
	if err != nil {
		return fmt.Errorf("updating reminder: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepo) UpdateOrder(ctx context.Context, id string, order int, updatedAt time.Time) error {
	query := `UPDATE reminders SET order_index = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, order, updatedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating reminder order: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting reminder: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting reminder: %w", err)
	}
	return n > 0, nil
}

func scanReminder(scan func(...any) error) (*domain.Reminder, error) {
	var rem domain.Reminder
	var createdAtStr, updatedAtStr string

	err := scan(&rem.ID, &rem.Title, &rem.DueDate, &rem.OrderIndex, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	var parseErr error
	rem.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	rem.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &rem, nil
}
