package youtube

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RateLimitError indicates the API answered 429. The exporter treats it as
// fatal for the whole run.
type RateLimitError struct {
	StatusCode int
	RegionCode string
	// RetryAfter is taken from the Retry-After header when present.
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited fetching region %s (status %d): retry after %v", e.RegionCode, e.StatusCode, e.RetryAfter)
	}
	return fmt.Sprintf("rate limited fetching region %s (status %d)", e.RegionCode, e.StatusCode)
}

// HTTPError is any other non-2xx answer.
type HTTPError struct {
	StatusCode int
	RegionCode string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error fetching region %s: status %d", e.RegionCode, e.StatusCode)
}

// DecodeError wraps a body that is not the expected JSON document.
type DecodeError struct {
	RegionCode string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response for region %s: %v", e.RegionCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func parseRetryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
