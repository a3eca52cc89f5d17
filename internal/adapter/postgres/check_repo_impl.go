package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/page-analyzer/internal/entity"
)

// CheckRepoImpl provides a concrete implementation for the CheckRepository interface using PostgreSQL.
type CheckRepoImpl struct {
	db *pgxpool.Pool
}

// NewCheckRepo creates a new instance of CheckRepoImpl.
func NewCheckRepo(db *pgxpool.Pool) *CheckRepoImpl {
	return &CheckRepoImpl{db: db}
}

// Create inserts a check row and returns the stored record with its id and
// timestamp assigned. The insert runs in its own transaction so a failed
// write leaves no partial state.
func (r *CheckRepoImpl) Create(ctx context.Context, check *entity.Check) (*entity.Check, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	stored := *check
	query := `
		INSERT INTO checks (url_id, status_code, h1, title, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err = tx.QueryRow(ctx, query,
		check.URLID,
		check.StatusCode,
		check.H1,
		check.Title,
		check.Description,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert check: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit check insert: %w", err)
	}
	return &stored, nil
}

// ListByURLID returns the check history for a URL, newest first. Ties on
// created_at are broken by id so the order is deterministic.
func (r *CheckRepoImpl) ListByURLID(ctx context.Context, urlID int64) ([]entity.Check, error) {
	query := `
		SELECT id, url_id, status_code, h1, title, description, created_at
		FROM checks
		WHERE url_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, urlID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	defer rows.Close()

	var checks []entity.Check
	for rows.Next() {
		var c entity.Check
		if err := rows.Scan(&c.ID, &c.URLID, &c.StatusCode, &c.H1, &c.Title, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check row: %w", err)
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}
