package repository

import (
	"context"
	"errors"

	"github.com/user/page-analyzer/internal/entity"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateURL is returned when an insert collides with the
	// uniqueness constraint on the normalized URL name.
	ErrDuplicateURL = errors.New("url already exists")
)

// URLRepository defines the interface for persisting registered URLs.
type URLRepository interface {
	// Create inserts a URL with the given normalized name.
	// It returns ErrDuplicateURL if the name is already registered.
	Create(ctx context.Context, name string) (*entity.URL, error)
	// FindByName retrieves a URL by exact match on its normalized name.
	FindByName(ctx context.Context, name string) (*entity.URL, error)
	// FindByID retrieves a URL by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.URL, error)
	// ListWithLatestStatus returns all URLs newest-first, each paired
	// with the status code of its most recent check, if any.
	ListWithLatestStatus(ctx context.Context) ([]entity.URLStatus, error)
}
