package httpfetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/user/page-analyzer/internal/repository"
)

func newTestFetcher() repository.FetcherRepository {
	return NewFetcher(2 * time.Second)
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSEODataFullPage(t *testing.T) {
	srv := serve(t, http.StatusOK, `<!doctype html><html><head>
<title>  Example Domain  </title>
<meta name="description" content="An example page">
</head><body>
<h1>
	Welcome
</h1>
<h1>Second heading is ignored</h1>
</body></html>`)

	data, err := newTestFetcher().FetchSEOData(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", data.StatusCode)
	}
	if data.Title == nil || *data.Title != "Example Domain" {
		t.Errorf("title = %v, want trimmed %q", data.Title, "Example Domain")
	}
	if data.H1 == nil || *data.H1 != "Welcome" {
		t.Errorf("h1 = %v, want first heading %q", data.H1, "Welcome")
	}
	if data.Description == nil || *data.Description != "An example page" {
		t.Errorf("description = %v, want %q", data.Description, "An example page")
	}
}

func TestFetchSEODataMissingFieldsAreAbsent(t *testing.T) {
	srv := serve(t, http.StatusOK, `<html><head><title>Hello</title></head><body><p>no headings</p></body></html>`)

	data, err := newTestFetcher().FetchSEOData(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.H1 != nil {
		t.Errorf("h1 = %q, want absent", *data.H1)
	}
	if data.Description != nil {
		t.Errorf("description = %q, want absent", *data.Description)
	}
	if data.Title == nil || *data.Title != "Hello" {
		t.Errorf("title = %v, want %q", data.Title, "Hello")
	}
}

func TestFetchSEODataEmptyIsNotAbsent(t *testing.T) {
	srv := serve(t, http.StatusOK, `<html><head>
<title></title>
<meta name="description" content="">
</head><body><h1></h1></body></html>`)

	data, err := newTestFetcher().FetchSEOData(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Title == nil || *data.Title != "" {
		t.Errorf("title = %v, want present empty string", data.Title)
	}
	if data.H1 == nil || *data.H1 != "" {
		t.Errorf("h1 = %v, want present empty string", data.H1)
	}
	if data.Description == nil || *data.Description != "" {
		t.Errorf("description = %v, want present empty string", data.Description)
	}
}

func TestFetchSEODataRecordsErrorStatus(t *testing.T) {
	srv := serve(t, http.StatusServiceUnavailable, `<html><head><title>Maintenance</title></head></html>`)

	data, err := newTestFetcher().FetchSEOData(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("error status must not fail the fetch: %v", err)
	}
	if data.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", data.StatusCode)
	}
	if data.Title == nil || *data.Title != "Maintenance" {
		t.Errorf("title = %v, want extraction to proceed on error status", data.Title)
	}
}

func TestFetchSEODataConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening any more

	_, err := newTestFetcher().FetchSEOData(context.Background(), srv.URL)
	if !errors.Is(err, repository.ErrFetchFailed) {
		t.Fatalf("err = %v, want ErrFetchFailed", err)
	}
}

func TestFetchSEODataTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	fetcher := NewFetcher(100 * time.Millisecond)
	_, err := fetcher.FetchSEOData(context.Background(), srv.URL)
	if !errors.Is(err, repository.ErrFetchFailed) {
		t.Fatalf("err = %v, want ErrFetchFailed on timeout", err)
	}
}
