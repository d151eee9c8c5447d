package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/homedash/internal/db"
	"github.com/alexanderramin/homedash/internal/domain"
)

const goalColumns = `id, title, description, target_date, amount, progress, priority,
		order_index, created_at, updated_at`

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (id, title, description, target_date, amount, progress, priority,
		order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Title,
		nullableStrToValue(g.Description),
		nullableStrToValue(g.TargetDate),
		nullableStrToValue(g.Amount),
		g.Progress,
		priorityToValue(g.Priority),
		g.OrderIndex,
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	g, err := scanGoal(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return g, nil
}

func (r *SQLiteGoalRepo) List(ctx context.Context) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals ORDER BY order_index ASC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning goal row: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) NextOrder(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(order_index), 0) + 1 FROM goals`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("computing next goal order: %w", err)
	}
	return next, nil
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET title = ?, description = ?, target_date = ?, amount = ?,
		progress = ?, priority = ?, order_index = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		g.Title,
		nullableStrToValue(g.Description),
		nullableStrToValue(g.TargetDate),
		nullableStrToValue(g.Amount),
		g.Progress,
		priorityToValue(g.Priority),
		g.OrderIndex,
		g.UpdatedAt.Format(time.RFC3339),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) UpdateOrder(ctx context.Context, id string, order int, updatedAt time.Time) error {
	query := `UPDATE goals SET order_index = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, order, updatedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating goal order: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting goal: %w", err)
	}
	return n > 0, nil
}

func priorityToValue(p *domain.GoalPriority) interface{} {
	if p == nil {
		return nil
	}
	return string(*p)
}

func scanGoal(scan func(...any) error) (*domain.Goal, error) {
	var g domain.Goal
	var description, targetDate, amount, priority sql.NullString
	var createdAtStr, updatedAtStr string

	err := scan(&g.ID, &g.Title, &description, &targetDate, &amount, &g.Progress, &priority,
		&g.OrderIndex, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	g.Description = strFromNullable(description)
	g.TargetDate = strFromNullable(targetDate)
	g.Amount = strFromNullable(amount)
	if priority.Valid {
		p := domain.GoalPriority(priority.String)
		g.Priority = &p
	}

	var parseErr error
	g.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	g.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &g, nil
}
