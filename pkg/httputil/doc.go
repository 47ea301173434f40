// Package httputil provides retry support for package registry clients.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//
// Wrap transient errors with [RetryableError] so Retry knows to attempt
// the operation again; other errors are returned immediately.
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetchFromRegistry()
//	})
//
// Defaults are 3 attempts with a 1 second initial delay, doubling after
// each failed attempt.
//
// Response caching lives in the cache package, which offers file, Redis,
// and MongoDB backends behind one interface.
package httputil
