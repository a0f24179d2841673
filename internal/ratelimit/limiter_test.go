package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_WithinLimit(t *testing.T) {
	l := New()
	bucket := Bucket{MaxRequests: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("client", bucket), "request %d", i)
	}
	assert.False(t, l.Allow("client", bucket))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	l := New()
	bucket := Bucket{MaxRequests: 1, Window: time.Minute}

	assert.True(t, l.Allow("a", bucket))
	assert.False(t, l.Allow("a", bucket))
	assert.True(t, l.Allow("b", bucket))
}

func TestAllow_WindowSlides(t *testing.T) {
	l := New()
	bucket := Bucket{MaxRequests: 1, Window: 10 * time.Millisecond}

	assert.True(t, l.Allow("client", bucket))
	assert.False(t, l.Allow("client", bucket))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, l.Allow("client", bucket))
}

func TestCheck_RejectsOverLimit(t *testing.T) {
	l := New()

	var rec *httptest.ResponseRecorder
	for i := 0; i < DefaultBuckets["chat"].MaxRequests+1; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
		req.RemoteAddr = "192.0.2.7:999"
		rec = httptest.NewRecorder()
		rejected := l.Check(rec, req, "chat")
		if i < DefaultBuckets["chat"].MaxRequests {
			assert.False(t, rejected, "request %d", i)
		} else {
			assert.True(t, rejected)
		}
	}

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Rate limited")
}

func TestCheck_PrefersRealIPHeader(t *testing.T) {
	l := New()
	bucket := DefaultBuckets["classify"]

	// Exhaust the limit for one forwarded client.
	for i := 0; i < bucket.MaxRequests; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/phishing", nil)
		req.RemoteAddr = "10.0.0.1:80"
		req.Header.Set("X-Real-IP", "203.0.113.5")
		l.Check(httptest.NewRecorder(), req, "classify")
	}

	blocked := httptest.NewRequest(http.MethodPost, "/api/phishing", nil)
	blocked.RemoteAddr = "10.0.0.2:80"
	blocked.Header.Set("X-Real-IP", "203.0.113.5")
	assert.True(t, l.Check(httptest.NewRecorder(), blocked, "classify"))

	// A different forwarded client behind the same proxy is unaffected.
	other := httptest.NewRequest(http.MethodPost, "/api/phishing", nil)
	other.RemoteAddr = "10.0.0.1:80"
	other.Header.Set("X-Real-IP", "203.0.113.9")
	assert.False(t, l.Check(httptest.NewRecorder(), other, "classify"))
}
