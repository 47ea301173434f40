// Package audit orchestrates a full license audit of a project tree:
// manifest discovery, dependency parsing, taxonomy loading, registry
// license resolution, and classification against the project license.
package audit

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/stackaudit/pkg/cache"
	"github.com/matzehuels/stackaudit/pkg/config"
	"github.com/matzehuels/stackaudit/pkg/deps"
	"github.com/matzehuels/stackaudit/pkg/errors"
	"github.com/matzehuels/stackaudit/pkg/license"
	"github.com/matzehuels/stackaudit/pkg/observability"
	"github.com/matzehuels/stackaudit/pkg/taxonomy"
)

// DefaultConcurrency bounds parallel registry lookups per run.
const DefaultConcurrency = 8

// TaxonomyFetcher retrieves the canonical license taxonomy from its
// remote authority. *github.Client satisfies it.
type TaxonomyFetcher interface {
	FetchLicenses(ctx context.Context) (license.Taxonomy, error)
}

// TaxonomyStore persists taxonomy snapshots between runs.
// *taxonomy.Cache satisfies it.
type TaxonomyStore interface {
	Load() (license.Taxonomy, bool)
	Save(data license.Taxonomy) error
}

// Runner executes audits. Configure the exported fields before calling
// Run; a zero Runner audits manifests without taxonomy or registry data.
type Runner struct {
	Languages []*deps.Language // Ecosystems to scan for
	Backend   cache.Cache      // HTTP response cache for registry clients
	Store     TaxonomyStore    // Taxonomy snapshot persistence (optional)
	Fetcher   TaxonomyFetcher  // Remote taxonomy source (optional)
	Config    config.Config

	CacheTTL    time.Duration // Registry response TTL (default: deps.DefaultCacheTTL)
	Refresh     bool          // Bypass caches for fresh data
	Concurrency int           // Parallel registry lookups (default: DefaultConcurrency)
	Logger      *log.Logger
}

// New returns a Runner with the given languages and sensible defaults.
func New(backend cache.Cache, store TaxonomyStore, fetcher TaxonomyFetcher, languages ...*deps.Language) *Runner {
	return &Runner{
		Languages: languages,
		Backend:   backend,
		Store:     store,
		Fetcher:   fetcher,
		Config:    config.Default(),
		Logger:    log.Default(),
	}
}

// Run audits the project rooted at path and returns the classified
// dependency set. Individual manifest parse failures and registry
// lookup failures are logged and skipped; only an unusable path or a
// failed directory walk abort the run.
func (r *Runner) Run(ctx context.Context, path string) (*Result, error) {
	if err := errors.ValidateProjectPath(path); err != nil {
		return nil, err
	}
	logger := r.logger()
	started := time.Now()

	manifests, byParser, err := r.discover(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to scan project directory")
	}

	type entry struct {
		dep  deps.Dependency
		lang *deps.Language
	}
	var entries []entry
	for _, m := range manifests {
		observability.Audit().OnParseStart(ctx, m.Path)
		parseStart := time.Now()
		parsed, err := m.Parser.Parse(m.Path)
		observability.Audit().OnParseComplete(ctx, m.Path, len(parsed), time.Since(parseStart), err)
		if err != nil {
			logger.Warn("skipping unreadable manifest", "path", m.Path, "error", err)
			continue
		}
		lang := byParser[m.Parser]
		for _, d := range parsed {
			entries = append(entries, entry{dep: d, lang: lang})
		}
	}

	tax := r.loadTaxonomy(ctx, logger)
	projectLicense := license.DetectProjectLicense(path)

	resolvers := make(map[*deps.Language]deps.Resolver, len(r.Languages))
	for _, lang := range r.Languages {
		if lang.HasResolver() && r.Backend != nil {
			resolvers[lang] = lang.Resolver(r.Backend, r.CacheTTL)
		}
	}

	classifyStart := time.Now()
	infos := make([]license.Info, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency())
	for i, e := range entries {
		g.Go(func() error {
			infos[i] = r.classify(gctx, logger, e.dep, resolvers[e.lang], tax, projectLicense)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := tally(infos)
	observability.Audit().OnClassifyComplete(ctx, stats.Total, stats.Restrictive, stats.Incompatible, time.Since(classifyStart))

	return &Result{
		RunID:          uuid.NewString(),
		Path:           path,
		ProjectLicense: projectLicense,
		StartedAt:      started.UTC(),
		Duration:       time.Since(started),
		Dependencies:   infos,
		Stats:          stats,
	}, nil
}

// discover walks the project once with every language's parsers and
// remembers which language owns each parser so the right resolver can
// be picked during classification.
func (r *Runner) discover(path string) ([]deps.Manifest, map[deps.ManifestParser]*deps.Language, error) {
	byParser := make(map[deps.ManifestParser]*deps.Language)
	var parsers []deps.ManifestParser
	for _, lang := range r.Languages {
		for _, p := range lang.Parsers() {
			byParser[p] = lang
			parsers = append(parsers, p)
		}
	}
	manifests, err := deps.Discover(path, parsers...)
	if err != nil {
		return nil, nil, err
	}
	return manifests, byParser, nil
}

// loadTaxonomy returns the taxonomy snapshot, refreshing it from the
// remote authority when missing or stale. A failed fetch degrades to an
// empty taxonomy; classification then relies on the pattern fallback.
func (r *Runner) loadTaxonomy(ctx context.Context, logger *log.Logger) license.Taxonomy {
	if !r.Refresh && r.Store != nil {
		if tax, ok := r.Store.Load(); ok {
			observability.Audit().OnTaxonomyLoad(ctx, "cache", len(tax))
			return tax
		}
	}
	if r.Fetcher == nil {
		return license.Taxonomy{}
	}

	fetchStart := time.Now()
	tax, err := r.Fetcher.FetchLicenses(ctx)
	observability.Audit().OnTaxonomyFetchComplete(ctx, len(tax), time.Since(fetchStart), err)
	if err != nil {
		logger.Warn("failed to fetch license taxonomy, classification falls back to patterns", "error", err)
		return license.Taxonomy{}
	}
	if r.Store != nil {
		if err := r.Store.Save(tax); err != nil {
			logger.Warn("failed to persist taxonomy snapshot", "error", err)
		}
	}
	observability.Audit().OnTaxonomyLoad(ctx, "remote", len(tax))
	return tax
}

// classify resolves and classifies a single dependency. A registry that
// was consulted but reported nothing yields the NoLicense sentinel; a
// dependency with no resolver keeps a nil license.
func (r *Runner) classify(ctx context.Context, logger *log.Logger, dep deps.Dependency, resolver deps.Resolver, tax license.Taxonomy, projectLicense string) license.Info {
	lic := dep.License
	version := dep.Version

	if lic == nil && resolver != nil {
		resolved, err := resolver.ResolveLicense(ctx, dep.Name, r.Refresh)
		if err != nil {
			logger.Warn("license lookup failed", "package", dep.Name, "registry", resolver.Name(), "error", err)
		}
		sentinel := license.NoLicense
		if resolved != "" {
			sentinel = resolved
		}
		lic = &sentinel
	}
	if version == "" && resolver != nil {
		if vr, ok := resolver.(deps.VersionResolver); ok {
			if v, err := vr.ResolveVersion(ctx, dep.Name, r.Refresh); err == nil {
				version = v
			}
		}
	}

	info := license.Info{
		Name:        dep.Name,
		Version:     version,
		License:     lic,
		Restrictive: license.IsRestrictive(lic, tax, r.Config.Licenses.Restrictive),
		Compat:      license.Unknown,
	}
	if lic != nil {
		info.Compat = license.Check(*lic, projectLicense)
	}
	return info
}

func (r *Runner) concurrency() int {
	if r.Concurrency > 0 {
		return r.Concurrency
	}
	return DefaultConcurrency
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

var _ TaxonomyStore = (*taxonomy.Cache)(nil)
