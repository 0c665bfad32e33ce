package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(2, 1)

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())
}

func TestRateLimiterPerClient(t *testing.T) {
	limiter := NewRateLimiter(1, 1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	// a different client gets its own bucket
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/documents/analyze", nil)
	req.RemoteAddr = "192.0.2.1:50000"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// probe paths bypass the limiter entirely
	probe := httptest.NewRequest(http.MethodGet, "/health", nil)
	probe.RemoteAddr = "192.0.2.1:50000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, probe)
	assert.Equal(t, http.StatusOK, rec.Code)
}
