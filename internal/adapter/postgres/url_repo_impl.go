package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/page-analyzer/internal/entity"
	"github.com/user/page-analyzer/internal/repository"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// URLRepoImpl provides a concrete implementation for the URLRepository interface using PostgreSQL.
type URLRepoImpl struct {
	db *pgxpool.Pool
}

// NewURLRepo creates a new instance of URLRepoImpl.
func NewURLRepo(db *pgxpool.Pool) *URLRepoImpl {
	return &URLRepoImpl{db: db}
}

// Create inserts a URL row and returns the stored record. The insert runs
// in its own transaction so a failed write leaves no partial state.
func (r *URLRepoImpl) Create(ctx context.Context, name string) (*entity.URL, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var u entity.URL
	query := `INSERT INTO urls (name) VALUES ($1) RETURNING id, name, created_at`
	err = tx.QueryRow(ctx, query, name).Scan(&u.ID, &u.Name, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, repository.ErrDuplicateURL
		}
		return nil, fmt.Errorf("failed to insert url: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit url insert: %w", err)
	}
	return &u, nil
}

// FindByName retrieves a URL by exact match on its normalized name.
func (r *URLRepoImpl) FindByName(ctx context.Context, name string) (*entity.URL, error) {
	query := `SELECT id, name, created_at FROM urls WHERE name = $1`
	return r.scanURL(r.db.QueryRow(ctx, query, name))
}

// FindByID retrieves a URL by its identifier.
func (r *URLRepoImpl) FindByID(ctx context.Context, id int64) (*entity.URL, error) {
	query := `SELECT id, name, created_at FROM urls WHERE id = $1`
	return r.scanURL(r.db.QueryRow(ctx, query, id))
}

func (r *URLRepoImpl) scanURL(row pgx.Row) (*entity.URL, error) {
	var u entity.URL
	if err := row.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan url row: %w", err)
	}
	return &u, nil
}

// ListWithLatestStatus returns all URLs newest-first, each paired with the
// status code of its most recent check.
func (r *URLRepoImpl) ListWithLatestStatus(ctx context.Context) ([]entity.URLStatus, error) {
	query := `
		SELECT u.id, u.name, u.created_at, c.status_code
		FROM urls u
		LEFT JOIN LATERAL (
			SELECT status_code
			FROM checks
			WHERE url_id = u.id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) c ON true
		ORDER BY u.created_at DESC, u.id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list urls: %w", err)
	}
	defer rows.Close()

	var statuses []entity.URLStatus
	for rows.Next() {
		var s entity.URLStatus
		if err := rows.Scan(&s.URL.ID, &s.URL.Name, &s.URL.CreatedAt, &s.LastStatusCode); err != nil {
			return nil, fmt.Errorf("failed to scan url status row: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
