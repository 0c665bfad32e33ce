package ai

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrNotConfigured indicates no inference credential is configured. It is
// distinct from a transient call failure so callers can record the right
// explanatory note instead of treating it as an outage.
var ErrNotConfigured = errors.New("ai client not configured")
