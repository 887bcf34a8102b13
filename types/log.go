package types

import "time"

// LogEntry represents a request log record queued for the async logger.
type LogEntry struct {
	Method     string
	Path       string
	StatusCode int
	LatencyMs  int64
	ClientIP   string
	CreatedAt  time.Time
}
