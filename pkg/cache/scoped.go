package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when one backend serves several server instances or
// environments that need separate cache namespaces.
//
// Example usage:
//
//	// Environment-specific keys
//	stagingKeyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(registry, pkg string) string {
	return k.prefix + k.inner.HTTPKey(registry, pkg)
}

// ScanKey generates a prefixed key for scan result storage.
func (k *ScopedKeyer) ScanKey(scanID string) string {
	return k.prefix + k.inner.ScanKey(scanID)
}
