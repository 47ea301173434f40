package javascript

import (
	"context"
	"time"

	"github.com/matzehuels/stackaudit/pkg/cache"
	"github.com/matzehuels/stackaudit/pkg/deps"
	"github.com/matzehuels/stackaudit/pkg/errors"
	"github.com/matzehuels/stackaudit/pkg/integrations/npm"
)

var Language = &deps.Language{
	Name:        "javascript",
	Parsers:     parsers,
	NewResolver: newResolver,
}

func parsers() []deps.ManifestParser {
	return []deps.ManifestParser{&PackageJSON{}}
}

func newResolver(backend cache.Cache, ttl time.Duration) deps.Resolver {
	return resolver{npm.NewClient(backend, ttl)}
}

type resolver struct{ *npm.Client }

func (r resolver) Name() string { return "npm" }

func (r resolver) ResolveLicense(ctx context.Context, pkg string, refresh bool) (string, error) {
	if err := errors.ValidateNpmPackageName(pkg); err != nil {
		return "", err
	}
	info, err := r.FetchPackage(ctx, pkg, refresh)
	if err != nil {
		return "", err
	}
	return info.License, nil
}

func (r resolver) ResolveVersion(ctx context.Context, pkg string, refresh bool) (string, error) {
	if err := errors.ValidateNpmPackageName(pkg); err != nil {
		return "", err
	}
	info, err := r.FetchPackage(ctx, pkg, refresh)
	if err != nil {
		return "", err
	}
	return info.Version, nil
}
