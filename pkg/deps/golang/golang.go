package golang

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/stackaudit/pkg/cache"
	"github.com/matzehuels/stackaudit/pkg/deps"
	"github.com/matzehuels/stackaudit/pkg/errors"
	"github.com/matzehuels/stackaudit/pkg/integrations/github"
	"github.com/matzehuels/stackaudit/pkg/integrations/goproxy"
)

// Language bundles the manifest parsers and license resolver for Go projects.
var Language = &deps.Language{
	Name:        "golang",
	Parsers:     parsers,
	NewResolver: newResolver,
}

func parsers() []deps.ManifestParser {
	return []deps.ManifestParser{
		&GoModParser{},
	}
}

func newResolver(backend cache.Cache, cacheTTL time.Duration) deps.Resolver {
	return &resolver{
		proxy:  goproxy.NewClient(backend, cacheTTL),
		github: github.NewClient(backend, os.Getenv("GITHUB_TOKEN"), cacheTTL),
	}
}

// resolver looks up Go module licenses. The module proxy carries no
// license metadata, so licenses are read from the hosting repository
// instead. Only modules hosted on github.com can be resolved.
type resolver struct {
	proxy  *goproxy.Client
	github *github.Client
}

func (r *resolver) Name() string {
	return "goproxy"
}

func (r *resolver) ResolveLicense(ctx context.Context, pkg string, refresh bool) (string, error) {
	if err := errors.ValidateGoModulePath(pkg); err != nil {
		return "", err
	}
	owner, repo, ok := splitGitHubModule(pkg)
	if !ok {
		return "", nil
	}
	return r.github.FetchRepoLicense(ctx, owner, repo, refresh)
}

func (r *resolver) ResolveVersion(ctx context.Context, pkg string, refresh bool) (string, error) {
	if err := errors.ValidateGoModulePath(pkg); err != nil {
		return "", err
	}
	info, err := r.proxy.FetchModule(ctx, pkg, refresh)
	if err != nil {
		return "", err
	}
	return info.Version, nil
}

// splitGitHubModule extracts the owner and repository from a module path
// like "github.com/spf13/cobra" or "github.com/foo/bar/v2". Major-version
// suffixes and nested package paths map to the same repository.
func splitGitHubModule(mod string) (owner, repo string, ok bool) {
	parts := strings.Split(mod, "/")
	if len(parts) < 3 || parts[0] != "github.com" {
		return "", "", false
	}
	if parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}
