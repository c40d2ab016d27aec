package api

import "time"

// LogEntry is a single log record owned by the remote service. Id and the
// created/updated instants are server-assigned and immutable on the client.
type LogEntry struct {
	Id        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Severity  Severity  `json:"severity"`
	Source    string    `json:"source"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LogListResponse is the paginated result of the logs listing endpoint.
type LogListResponse struct {
	Logs       []*LogEntry `json:"logs"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// CreateLogRequest is the body of POST /logs. Timestamp is optional, the
// service defaults it to the ingestion time.
type CreateLogRequest struct {
	Severity  Severity   `json:"severity"`
	Source    string     `json:"source"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// UpdateLogRequest is the body of PUT /logs/{id}. Every field is optional,
// only the non-nil subset is sent and applied.
type UpdateLogRequest struct {
	Severity  *Severity  `json:"severity,omitempty"`
	Source    *string    `json:"source,omitempty"`
	Message   *string    `json:"message,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// DeleteResponse is the body of DELETE /logs/{id}.
type DeleteResponse struct {
	Message string `json:"message"`
}
