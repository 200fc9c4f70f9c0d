package constants

import "time"

// RFC 3339 date-time format string.
// Use this format for all date-time serialization and communication with external systems.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// Default rate limiting configuration
const (
	// DefaultRateLimitRequests is the default number of requests allowed per time window
	DefaultRateLimitRequests = 100
	// DefaultRateLimitWindow is the default time window for rate limiting
	DefaultRateLimitWindowMinutes = 1
)

// Waitlist defaults
const (
	// DefaultRecentEntriesLimit is used when /waitlist/recent is called without a limit.
	DefaultRecentEntriesLimit = 5
)

// Diagnostics defaults
const (
	// MaxDiagnosticsCollections caps how many collection names /test reports.
	MaxDiagnosticsCollections = 10
	// MaxDiagnosticsErrorLength caps error text embedded in a diagnostics field.
	MaxDiagnosticsErrorLength = 50
)

// DefaultRateLimitWindow returns the default rate limit window duration
func DefaultRateLimitWindow() time.Duration {
	return time.Duration(DefaultRateLimitWindowMinutes) * time.Minute
}
