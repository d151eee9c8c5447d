package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/homedash/internal/db"
	"github.com/alexanderramin/homedash/internal/domain"
)

const todoSessionColumns = `id, title, content, created_at, updated_at`

// SQLiteTodoSessionRepo implements TodoSessionRepo using a SQLite database.
type SQLiteTodoSessionRepo struct {
	db db.DBTX
}

// NewSQLiteTodoSessionRepo creates a new SQLiteTodoSessionRepo.
func NewSQLiteTodoSessionRepo(conn db.DBTX) *SQLiteTodoSessionRepo {
	return &SQLiteTodoSessionRepo{db: conn}
}

func (r *SQLiteTodoSessionRepo) Create(ctx context.Context, s *domain.TodoSession) error {
	query := `INSERT INTO todo_sessions (id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Title,
		s.Content,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting todo session: %w", err)
	}
	return nil
}

func (r *SQLiteTodoSessionRepo) GetByID(ctx context.Context, id string) (*domain.TodoSession, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+todoSessionColumns+` FROM todo_sessions WHERE id = ?`, id)
	s, err := scanTodoSession(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("todo session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning todo session: %w", err)
	}
	return s, nil
}

func (r *SQLiteTodoSessionRepo) List(ctx context.Context) ([]*domain.TodoSession, error) {
	query := `SELECT ` + todoSessionColumns + ` FROM todo_sessions ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing todo sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.TodoSession
	for rows.Next() {
		s, err := scanTodoSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning todo session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todo sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteTodoSessionRepo) Update(ctx context.Context, s *domain.TodoSession) error {
	query := `UPDATE todo_sessions SET title = ?, content = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Title,
		s.Content,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating todo session: %w", err)
	}
	return nil
}

func (r *SQLiteTodoSessionRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todo_sessions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting todo session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting todo session: %w", err)
	}
	return n > 0, nil
}

func scanTodoSession(scan func(...any) error) (*domain.TodoSession, error) {
	var s domain.TodoSession
	var createdAtStr, updatedAtStr string

	err := scan(&s.ID, &s.Title, &s.Content, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &s, nil
}
