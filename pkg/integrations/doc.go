// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// This package contains low-level API clients for fetching package metadata
// from various registries. Each registry has its own subpackage:
//
//   - [pypi]: Python Package Index
//   - [npm]: Node Package Manager
//   - [crates]: Rust crates.io
//   - [goproxy]: Go Module Proxy
//   - [github]: GitHub Licenses API (license taxonomy and repo licenses)
//
// # Client Pattern
//
// All registry clients follow a consistent pattern:
//
//	client := pypi.NewClient(backend, 24*time.Hour)  // Cache backend + TTL
//	pkg, err := client.FetchPackage(ctx, "fastapi", false)  // false = use cache
//
// Clients handle:
//   - HTTP requests with retry and rate limiting
//   - Response caching via a pluggable [cache.Cache] backend
//   - API-specific parsing and normalization
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality used by all registry
// clients, including HTTP response caching via [cache.Cache].
//
// # Adding a New Registry
//
// To add support for a new package registry:
//
//  1. Create a subpackage: pkg/integrations/<registry>/
//  2. Define response structs matching the API schema
//  3. Implement a Client with a Fetch method
//  4. Use [NewClient] for HTTP with caching
//  5. Wire into [deps] as a new language
//
// [pypi]: github.com/matzehuels/stackaudit/pkg/integrations/pypi
// [npm]: github.com/matzehuels/stackaudit/pkg/integrations/npm
// [crates]: github.com/matzehuels/stackaudit/pkg/integrations/crates
// [goproxy]: github.com/matzehuels/stackaudit/pkg/integrations/goproxy
// [github]: github.com/matzehuels/stackaudit/pkg/integrations/github
// [cache.Cache]: github.com/matzehuels/stackaudit/pkg/cache.Cache
// [deps]: github.com/matzehuels/stackaudit/pkg/deps
package integrations
