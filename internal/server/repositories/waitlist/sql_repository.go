package waitlist

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

func (r *SQLRepository) Create(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	query :=
		`INSERT INTO waitlist (email, signed_up_at)
		 VALUES ($1, $2)
		 RETURNING id`

	e := &models.WaitlistEntry{Email: email, SignedUpAt: timex.Now()}

	if err := r.db.QueryRowContext(ctx, query, e.Email, e.SignedUpAt).Scan(&e.ID); err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	query :=
		`SELECT id, email, signed_up_at FROM waitlist
		 WHERE email = $1`

	e := &models.WaitlistEntry{}
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&e.ID, &e.Email, &e.SignedUpAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	e.SignedUpAt = e.SignedUpAt.UTC()
	return e, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]models.WaitlistEntry, error) {
	query := `SELECT id, email, signed_up_at FROM waitlist ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.WaitlistEntry, 0)
	for rows.Next() {
		var e models.WaitlistEntry
		if err := rows.Scan(&e.ID, &e.Email, &e.SignedUpAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.SignedUpAt = e.SignedUpAt.UTC()
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
