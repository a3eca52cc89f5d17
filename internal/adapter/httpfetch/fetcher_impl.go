package httpfetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/user/page-analyzer/internal/entity"
	"github.com/user/page-analyzer/internal/repository"
)

// maxBodyBytes caps how much of a response is read for extraction.
const maxBodyBytes = 5 << 20

const userAgent = "page-analyzer/1.0"

// HTTPFetcher fetches pages with a plain HTTP GET and extracts SEO fields
// from the static HTML.
type HTTPFetcher struct {
	client *http.Client
}

// NewFetcher creates a new HTTPFetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration) repository.FetcherRepository {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchSEOData issues a single GET against url and extracts the status
// code, first h1, title and meta description. Any HTTP status is reported
// as a successful check; only transport-level problems (connection error,
// timeout, unreadable or unparseable body) yield repository.ErrFetchFailed.
func (f *HTTPFetcher) FetchSEOData(ctx context.Context, url string) (*entity.SEOData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", repository.ErrFetchFailed, err)
	}

	doc, err := parseHTML(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFetchFailed, err)
	}

	data := &entity.SEOData{StatusCode: resp.StatusCode}

	// Each field is extracted independently; a missing element leaves the
	// field nil rather than failing the check.
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		text := strings.TrimSpace(h1.Text())
		data.H1 = &text
	}
	if title := doc.Find("title").First(); title.Length() > 0 {
		text := strings.TrimSpace(title.Text())
		data.Title = &text
	}
	if meta := doc.Find(`meta[name="description"]`).First(); meta.Length() > 0 {
		if content, ok := meta.Attr("content"); ok {
			data.Description = &content
		}
	}

	return data, nil
}

// parseHTML decodes the body to UTF-8 based on the Content-Type header and
// any in-document hints, then builds a goquery document from it.
func parseHTML(body []byte, contentType string) (*goquery.Document, error) {
	enc, _, _ := charset.DetermineEncoding(body, contentType)
	utf8body, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		// fallback: if already utf-8, continue
		if !utf8.Valid(body) {
			return nil, fmt.Errorf("decoding body: %v", err)
		}
		utf8body = body
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(utf8body))
}
