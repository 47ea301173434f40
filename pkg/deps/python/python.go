package python

import (
	"context"
	"time"

	"github.com/matzehuels/stackaudit/pkg/cache"
	"github.com/matzehuels/stackaudit/pkg/deps"
	"github.com/matzehuels/stackaudit/pkg/errors"
	"github.com/matzehuels/stackaudit/pkg/integrations/pypi"
)

var Language = &deps.Language{
	Name:        "python",
	Parsers:     parsers,
	NewResolver: newResolver,
}

func parsers() []deps.ManifestParser {
	return []deps.ManifestParser{
		&PyProject{},
		&Requirements{},
	}
}

func newResolver(backend cache.Cache, ttl time.Duration) deps.Resolver {
	return resolver{pypi.NewClient(backend, ttl)}
}

type resolver struct{ *pypi.Client }

func (r resolver) Name() string { return "pypi" }

func (r resolver) ResolveLicense(ctx context.Context, pkg string, refresh bool) (string, error) {
	if err := errors.ValidatePythonPackageName(pkg); err != nil {
		return "", err
	}
	info, err := r.FetchPackage(ctx, pkg, refresh)
	if err != nil {
		return "", err
	}
	return info.License, nil
}

func (r resolver) ResolveVersion(ctx context.Context, pkg string, refresh bool) (string, error) {
	if err := errors.ValidatePythonPackageName(pkg); err != nil {
		return "", err
	}
	info, err := r.FetchPackage(ctx, pkg, refresh)
	if err != nil {
		return "", err
	}
	return info.Version, nil
}
