package deps

import (
	"time"

	"github.com/matzehuels/stackaudit/pkg/cache"
)

// Language bundles the manifest parsers and the license resolver for one
// ecosystem. Each supported ecosystem exposes a package-level Language
// value in its subpackage.
type Language struct {
	Name        string
	Parsers     func() []ManifestParser
	NewResolver func(backend cache.Cache, ttl time.Duration) Resolver // nil when the ecosystem has no registry API
}

// HasResolver reports whether this language can resolve licenses from a
// registry. Languages without a resolver rely on licenses declared in the
// manifest itself.
func (l *Language) HasResolver() bool {
	return l.NewResolver != nil
}

// Resolver constructs the license resolver for this language, or nil if
// the ecosystem has none.
func (l *Language) Resolver(backend cache.Cache, ttl time.Duration) Resolver {
	if l.NewResolver == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return l.NewResolver(backend, ttl)
}
