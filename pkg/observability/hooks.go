// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about audit runs, cache operations, and API calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAuditHooks(&myAuditHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Audit().OnParseStart(ctx, manifest)
//	// ... do parsing ...
//	observability.Audit().OnParseComplete(ctx, manifest, depCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Audit Hooks
// =============================================================================

// AuditHooks receives events from audit runs.
type AuditHooks interface {
	// Manifest parse events
	OnParseStart(ctx context.Context, manifest string)
	OnParseComplete(ctx context.Context, manifest string, depCount int, duration time.Duration, err error)

	// Taxonomy events
	OnTaxonomyLoad(ctx context.Context, source string, licenseCount int)
	OnTaxonomyFetchComplete(ctx context.Context, licenseCount int, duration time.Duration, err error)

	// Classification events
	OnClassifyComplete(ctx context.Context, depCount, restrictive, incompatible int, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAuditHooks is a no-op implementation of AuditHooks.
type NoopAuditHooks struct{}

func (NoopAuditHooks) OnParseStart(context.Context, string) {}
func (NoopAuditHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopAuditHooks) OnTaxonomyLoad(context.Context, string, int)                       {}
func (NoopAuditHooks) OnTaxonomyFetchComplete(context.Context, int, time.Duration, error) {}
func (NoopAuditHooks) OnClassifyComplete(context.Context, int, int, int, time.Duration)   {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	auditHooks AuditHooks = NoopAuditHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetAuditHooks registers custom audit hooks.
// This should be called once at application startup before any audit runs.
func SetAuditHooks(h AuditHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		auditHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Audit returns the registered audit hooks.
func Audit() AuditHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return auditHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	auditHooks = NoopAuditHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
