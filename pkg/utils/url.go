package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// maxURLLength matches the urls.name column limit.
const maxURLLength = 255

// Validation errors.
var (
	ErrEmptyURL     = errors.New("url is empty")
	ErrURLTooLong   = errors.New("url exceeds 255 characters")
	ErrMalformedURL = errors.New("url must have an http or https scheme and a host")
)

// NormalizeURL reduces a raw URL string to its canonical identity:
// the lower-cased scheme and host with path, query, fragment and any
// trailing slash discarded. Two URLs differing only in path or case
// normalize to the same identity.
//
// NormalizeURL is pure and never fails. Input that cannot be parsed
// yields a degenerate string such as "://", which ValidateURL rejects.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return "://"
	}
	return strings.TrimSuffix(fmt.Sprintf("%s://%s", u.Scheme, u.Host), "/")
}

// ValidateURL reports whether a normalized URL is acceptable for
// registration: non-empty, at most 255 characters, and well formed with
// an http or https scheme and a host.
func ValidateURL(name string) error {
	if name == "" {
		return ErrEmptyURL
	}
	if len(name) > maxURLLength {
		return ErrURLTooLong
	}
	u, err := url.Parse(name)
	if err != nil {
		return ErrMalformedURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrMalformedURL
	}
	return nil
}

// HashURL creates a SHA256 hash of a URL string.
// This is useful for creating consistent, safe keys for Redis.
func HashURL(rawURL string) string {
	h := sha256.New()
	h.Write([]byte(rawURL))
	return hex.EncodeToString(h.Sum(nil))
}
