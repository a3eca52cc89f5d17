package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/user/page-analyzer/internal/entity"
	"github.com/user/page-analyzer/internal/repository"
	"github.com/user/page-analyzer/pkg/utils"
)

var (
	// ErrInvalidURL means the submitted string did not normalize to a
	// registrable URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrURLExists means the URL was already registered. It is returned
	// together with the existing id, so callers can still navigate to the
	// record; registration is idempotent, not failed.
	ErrURLExists = errors.New("url already registered")
)

// URLManager defines the interface for registering and reading URLs.
type URLManager interface {
	Register(ctx context.Context, rawURL string) (int64, error)
	GetURL(ctx context.Context, id int64) (*entity.URL, error)
	ListURLs(ctx context.Context) ([]entity.URLStatus, error)
}

type urlManagerUseCase struct {
	urlRepo repository.URLRepository
	cache   repository.URLCacheRepository
}

// NewURLManager creates a new URLManager use case. The cache may be nil,
// in which case every lookup goes to the database.
func NewURLManager(urlRepo repository.URLRepository, cache repository.URLCacheRepository) URLManager {
	return &urlManagerUseCase{
		urlRepo: urlRepo,
		cache:   cache,
	}
}

// Register normalizes and validates rawURL, then resolves it to an id,
// creating the URL on first registration. A repeat registration returns
// the existing id together with ErrURLExists.
func (uc *urlManagerUseCase) Register(ctx context.Context, rawURL string) (int64, error) {
	name := utils.NormalizeURL(rawURL)
	if err := utils.ValidateURL(name); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if id, ok := uc.cachedID(ctx, name); ok {
		return id, ErrURLExists
	}

	existing, err := uc.urlRepo.FindByName(ctx, name)
	if err == nil {
		uc.cacheID(ctx, name, existing.ID)
		return existing.ID, ErrURLExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("failed to look up url %s: %w", name, err)
	}

	created, err := uc.urlRepo.Create(ctx, name)
	if errors.Is(err, repository.ErrDuplicateURL) {
		// Lost a race with a concurrent identical registration; the
		// unique constraint is the authoritative guard, so re-resolve.
		existing, err := uc.urlRepo.FindByName(ctx, name)
		if err != nil {
			return 0, fmt.Errorf("failed to re-resolve url %s after conflict: %w", name, err)
		}
		uc.cacheID(ctx, name, existing.ID)
		return existing.ID, ErrURLExists
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create url %s: %w", name, err)
	}

	slog.Info("Registered new url", "url", created.Name, "id", created.ID)
	uc.cacheID(ctx, name, created.ID)
	return created.ID, nil
}

// GetURL retrieves a URL by id.
func (uc *urlManagerUseCase) GetURL(ctx context.Context, id int64) (*entity.URL, error) {
	u, err := uc.urlRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrURLNotFound
	}
	return u, err
}

// ListURLs returns all registered URLs newest-first with their latest
// check status.
func (uc *urlManagerUseCase) ListURLs(ctx context.Context) ([]entity.URLStatus, error) {
	return uc.urlRepo.ListWithLatestStatus(ctx)
}

func (uc *urlManagerUseCase) cachedID(ctx context.Context, name string) (int64, bool) {
	if uc.cache == nil {
		return 0, false
	}
	id, ok, err := uc.cache.GetID(ctx, name)
	if err != nil {
		// The cache is an optimization; fall through to the database.
		slog.Warn("Failed to read url cache", "url", name, "error", err)
		return 0, false
	}
	return id, ok
}

func (uc *urlManagerUseCase) cacheID(ctx context.Context, name string, id int64) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SetID(ctx, name, id); err != nil {
		// Non-critical: the next registration simply hits the database.
		slog.Warn("Failed to write url cache", "url", name, "error", err)
	}
}
