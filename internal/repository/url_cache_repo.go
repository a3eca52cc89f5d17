package repository

import "context"

// URLCacheRepository defines the interface for a lookaside cache mapping
// normalized URL names to their assigned ids. Registered names are never
// deleted, so a cache hit is always authoritative.
type URLCacheRepository interface {
	// GetID looks up the id cached for a normalized name. The second
	// return value reports whether the name was present.
	GetID(ctx context.Context, name string) (int64, bool, error)
	// SetID caches the id assigned to a normalized name.
	SetID(ctx context.Context, name string, id int64) error
}
