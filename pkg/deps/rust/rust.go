package rust

import (
	"context"
	"time"

	"github.com/matzehuels/stackaudit/pkg/cache"
	"github.com/matzehuels/stackaudit/pkg/deps"
	"github.com/matzehuels/stackaudit/pkg/errors"
	"github.com/matzehuels/stackaudit/pkg/integrations/crates"
)

var Language = &deps.Language{
	Name:        "rust",
	Parsers:     parsers,
	NewResolver: newResolver,
}

func parsers() []deps.ManifestParser {
	return []deps.ManifestParser{&CargoToml{}}
}

func newResolver(backend cache.Cache, ttl time.Duration) deps.Resolver {
	return resolver{crates.NewClient(backend, ttl)}
}

type resolver struct{ *crates.Client }

func (r resolver) Name() string { return "crates" }

func (r resolver) ResolveLicense(ctx context.Context, pkg string, refresh bool) (string, error) {
	if err := errors.ValidateCratesPackageName(pkg); err != nil {
		return "", err
	}
	info, err := r.FetchCrate(ctx, pkg, refresh)
	if err != nil {
		return "", err
	}
	return info.License, nil
}

func (r resolver) ResolveVersion(ctx context.Context, pkg string, refresh bool) (string, error) {
	if err := errors.ValidateCratesPackageName(pkg); err != nil {
		return "", err
	}
	info, err := r.FetchCrate(ctx, pkg, refresh)
	if err != nil {
		return "", err
	}
	return info.Version, nil
}
