package response

import "time"

type RegisterURLResponse struct {
	ID            int64 `json:"id"`
	AlreadyExists bool  `json:"already_exists,omitempty"`
}

type URLResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// URLStatusResponse is a URL list entry. LastStatusCode is null until the
// first check has been recorded.
type URLStatusResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	LastStatusCode *int      `json:"last_status_code"`
}

type RunCheckResponse struct {
	CheckID int64 `json:"check_id"`
}

// CheckResponse is a DTO for a single check, mirroring entity.Check.
// Nullable fields stay pointers so absent and empty render differently.
type CheckResponse struct {
	ID          int64     `json:"id"`
	StatusCode  *int      `json:"status_code"`
	H1          *string   `json:"h1"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
