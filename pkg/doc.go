// Package pkg provides the core libraries for Stackaudit license auditing.
//
// # Overview
//
// Stackaudit scans project manifests, resolves dependency licenses from
// their package registries, and classifies every dependency against a
// canonical license taxonomy and the project's own license. The pkg
// directory is organized into five main areas:
//
//  1. [license] - Classification (normalization, restrictiveness, compatibility, detection)
//  2. [deps] - Manifest parsing and per-ecosystem license resolution
//  3. [integrations] - External API clients (PyPI, npm, crates.io, Go proxy, GitHub)
//  4. [audit] - Orchestration (discover → parse → resolve → classify)
//  5. [cache]/[taxonomy] - Response caching and taxonomy snapshot persistence
//
// # Architecture
//
// The typical data flow through Stackaudit:
//
//	Project tree
//	     ↓
//	[deps] package (discover manifests, parse dependencies)
//	     ↓
//	[integrations] package (resolve licenses from registries)
//	     ↓
//	[license] package (normalize, classify, check compatibility)
//	     ↓
//	text/JSON/YAML/annotation reports, graphs, HTTP API
//
// # Quick Start
//
// Audit a project and render the findings:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/stackaudit/pkg/audit"
//	    "github.com/matzehuels/stackaudit/pkg/cache"
//	    "github.com/matzehuels/stackaudit/pkg/deps/rust"
//	    "github.com/matzehuels/stackaudit/pkg/integrations/github"
//	    "github.com/matzehuels/stackaudit/pkg/report"
//	    "github.com/matzehuels/stackaudit/pkg/taxonomy"
//	)
//
//	backend, _ := cache.NewFileCache("/tmp/stackaudit")
//	taxCache, _ := taxonomy.NewCache("", nil)
//	fetcher := github.NewClient(backend, os.Getenv("GITHUB_TOKEN"), taxonomy.TTL)
//
//	runner := audit.New(backend, taxCache, fetcher, rust.Language)
//	result, _ := runner.Run(context.Background(), ".")
//	report.Write(os.Stdout, result, report.Options{Format: report.FormatText})
//
// # Main Packages
//
// [license] - License domain logic: the taxonomy types, identifier
// normalization, restrictiveness classification, project-to-dependency
// compatibility resolution, and project license detection.
//
// [deps] - Manifest discovery and parsing. Each supported ecosystem
// (rust, javascript, golang, python, cpp) has its own subpackage with
// manifest parsers and, where the registry exposes license metadata, a
// resolver.
//
// [taxonomy] - Versioned, TTL-bounded snapshot of the license taxonomy
// fetched from the GitHub Licenses API.
//
// [integrations] - HTTP clients for package registries and GitHub, with
// retries and response caching through [cache].
//
// [cache] - Cache backends: file (CLI), Redis and MongoDB (server
// deployments), null (tests and --no-cache).
//
// [audit] - The audit runner used by the CLI and the HTTP API.
//
// [report] - Result rendering: terminal tables, JSON, YAML, and GitHub
// Actions annotations.
//
// [graph] - Graphviz rendering of the compatibility matrix and per-run
// dependency graphs.
//
// [license]: https://pkg.go.dev/github.com/matzehuels/stackaudit/pkg/license
// [deps]: https://pkg.go.dev/github.com/matzehuels/stackaudit/pkg/deps
// [taxonomy]: https://pkg.go.dev/github.com/matzehuels/stackaudit/pkg/taxonomy
// [integrations]: https://pkg.go.dev/github.com/matzehuels/stackaudit/pkg/integrations
// [cache]: https://pkg.go.dev/github.com/matzehuels/stackaudit/pkg/cache
// [audit]: https://pkg.go.dev/github.com/matzehuels/stackaudit/pkg/audit
// [report]: https://pkg.go.dev/github.com/matzehuels/stackaudit/pkg/report
// [graph]: https://pkg.go.dev/github.com/matzehuels/stackaudit/pkg/graph
package pkg
