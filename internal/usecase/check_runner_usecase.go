package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/user/page-analyzer/internal/entity"
	"github.com/user/page-analyzer/internal/repository"
	"github.com/user/page-analyzer/pkg/metrics"
)

var (
	// ErrURLNotFound means the operation referenced an id with no
	// registered URL behind it.
	ErrURLNotFound = errors.New("url not found")
	// ErrCheckFailed means the page could not be fetched at the transport
	// level. No check row is written in that case.
	ErrCheckFailed = errors.New("page check failed")
)

// CheckRunner defines the interface for running and reading page checks.
type CheckRunner interface {
	RunCheck(ctx context.Context, urlID int64) (int64, error)
	ListChecks(ctx context.Context, urlID int64) ([]entity.Check, error)
}

type checkRunnerUseCase struct {
	urlRepo   repository.URLRepository
	checkRepo repository.CheckRepository
	fetcher   repository.FetcherRepository
}

// NewCheckRunner creates a new CheckRunner use case.
func NewCheckRunner(
	urlRepo repository.URLRepository,
	checkRepo repository.CheckRepository,
	fetcher repository.FetcherRepository,
) CheckRunner {
	return &checkRunnerUseCase{
		urlRepo:   urlRepo,
		checkRepo: checkRepo,
		fetcher:   fetcher,
	}
}

// RunCheck fetches the page behind urlID and records one check row with
// the extracted fields. A transport-level fetch failure leaves the check
// history untouched and is reported as ErrCheckFailed.
func (uc *checkRunnerUseCase) RunCheck(ctx context.Context, urlID int64) (int64, error) {
	u, err := uc.urlRepo.FindByID(ctx, urlID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrURLNotFound
		}
		return 0, fmt.Errorf("failed to look up url %d: %w", urlID, err)
	}

	start := time.Now()
	data, fetchErr := uc.fetcher.FetchSEOData(ctx, u.Name)
	metrics.FetchDuration.WithLabelValues(hostOf(u.Name)).Observe(time.Since(start).Seconds())

	if fetchErr != nil {
		metrics.ChecksTotal.WithLabelValues("failure").Inc()
		slog.Warn("Page check failed", "url", u.Name, "error", fetchErr)
		return 0, fmt.Errorf("%w: %v", ErrCheckFailed, fetchErr)
	}

	statusCode := data.StatusCode
	check := &entity.Check{
		URLID:       u.ID,
		StatusCode:  &statusCode,
		H1:          data.H1,
		Title:       data.Title,
		Description: data.Description,
	}
	stored, err := uc.checkRepo.Create(ctx, check)
	if err != nil {
		return 0, fmt.Errorf("failed to save check for %s: %w", u.Name, err)
	}

	metrics.ChecksTotal.WithLabelValues("success").Inc()
	slog.Info("Page check recorded", "url", u.Name, "check_id", stored.ID, "status_code", statusCode)
	return stored.ID, nil
}

// ListChecks returns the check history for a URL, newest first.
func (uc *checkRunnerUseCase) ListChecks(ctx context.Context, urlID int64) ([]entity.Check, error) {
	return uc.checkRepo.ListByURLID(ctx, urlID)
}

func hostOf(name string) string {
	if u, err := url.Parse(name); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return "unknown"
}
