package repository

import (
	"context"
	"errors"

	"github.com/user/page-analyzer/internal/entity"
)

// ErrFetchFailed is returned when a page could not be fetched at the
// transport level: connection refused, DNS failure, timeout, or an
// unreadable response body. An HTTP error status is not a fetch failure;
// the status code is part of the check result.
var ErrFetchFailed = errors.New("page fetch failed")

// FetcherRepository defines the contract for fetching a page and
// extracting its SEO fields.
type FetcherRepository interface {
	// FetchSEOData issues a single GET against url and extracts the
	// status code, first h1, title and meta description.
	FetchSEOData(ctx context.Context, url string) (*entity.SEOData, error)
}
