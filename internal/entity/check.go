package entity

import "time"

// Check mirrors the `checks` PostgreSQL table schema. One row is written
// per successful page check and never updated afterwards.
//
// Pointer fields distinguish absent from empty: a page whose <title> tag
// exists but is blank records an empty string, a page without one records
// nil.
type Check struct {
	ID          int64
	URLID       int64
	StatusCode  *int
	H1          *string
	Title       *string
	Description *string
	CreatedAt   time.Time
}

// SEOData is the outcome of one successful fetch-and-extract against a
// page. StatusCode carries whatever the server answered, error statuses
// included; transport-level failures never produce an SEOData.
type SEOData struct {
	StatusCode  int
	H1          *string
	Title       *string
	Description *string
}
