package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/timex"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (*models.Note, error) {
	n := &models.Note{}
	if err := s.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
	return n, nil
}

func (r *SQLRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query :=
		`INSERT INTO notes (user_id, title, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`

	now := timex.Now()

	err := r.db.QueryRowContext(ctx, query, note.UserID, note.Title, note.Content, now, now).Scan(&note.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	note.CreatedAt = now
	note.UpdatedAt = now
	return note, nil
}

func (r *SQLRepository) Get(ctx context.Context, id, userID int64) (*models.Note, error) {
	query :=
		`SELECT id, user_id, title, content, created_at, updated_at FROM notes
		 WHERE id = $1 AND user_id = $2`

	n, err := scanNote(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *SQLRepository) Update(ctx context.Context, id, userID int64, patch models.NotePatch) (*models.Note, error) {
	query :=
		`UPDATE notes
		 SET title = COALESCE($1, title), content = COALESCE($2, content), updated_at = $3
		 WHERE id = $4 AND user_id = $5`

	res, err := r.db.ExecContext(ctx, query,
		nullString(patch.Title), nullString(patch.Content), timex.Now(), id, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrorNotFound
	}

	return r.Get(ctx, id, userID)
}

func (r *SQLRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) List(ctx context.Context, userID int64) ([]models.Note, error) {
	query :=
		`SELECT id, user_id, title, content, created_at, updated_at FROM notes
		 WHERE user_id = $1
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
