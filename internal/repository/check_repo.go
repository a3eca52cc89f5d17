package repository

import (
	"context"

	"github.com/user/page-analyzer/internal/entity"
)

// CheckRepository defines the interface for persisting page check records.
type CheckRepository interface {
	// Create inserts a check row for check.URLID and returns the stored
	// record with its identifier and timestamp assigned.
	Create(ctx context.Context, check *entity.Check) (*entity.Check, error)
	// ListByURLID returns the check history for a URL, newest first.
	// Ties on created_at are broken by id so the order is deterministic.
	ListByURLID(ctx context.Context, urlID int64) ([]entity.Check, error)
}
