package entity

import "time"

// URL is a registered page identified by its normalized address.
// Name holds the canonical scheme://host form and is unique.
type URL struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// URLStatus pairs a URL with the status code of its most recent check.
// LastStatusCode is nil when no check has been run yet.
type URLStatus struct {
	URL            URL
	LastStatusCode *int
}
