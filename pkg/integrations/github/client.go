package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/stackaudit/pkg/cache"
	"github.com/matzehuels/stackaudit/pkg/httputil"
	"github.com/matzehuels/stackaudit/pkg/integrations"
	"github.com/matzehuels/stackaudit/pkg/license"
)

// defaultFetchDelay spaces out the per-license detail requests so a full
// taxonomy fetch stays well inside unauthenticated rate limits.
const defaultFetchDelay = 100 * time.Millisecond

// Client provides access to the GitHub Licenses API.
// It handles HTTP requests with caching, automatic retries, and optional
// authentication.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL    string
	fetchDelay time.Duration
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower rate limits).
func NewClient(backend cache.Cache, token string, cacheTTL time.Duration) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		Client:     integrations.NewClient(backend, "github", cacheTTL, headers),
		baseURL:    "https://api.github.com",
		fetchDelay: defaultFetchDelay,
	}
}

// FetchLicenses retrieves the full license taxonomy from the GitHub Licenses API.
//
// It first lists the commonly used licenses, then fetches the detail record
// for each one. Licenses whose detail fetch fails are skipped, so the result
// may be incomplete rather than the whole fetch failing. Entries are keyed by
// SPDX identifier, falling back to the list key when the API returns no
// spdx_id.
//
// The returned taxonomy may be empty but is never nil when err is nil.
func (c *Client) FetchLicenses(ctx context.Context) (license.Taxonomy, error) {
	var list []licenseSummary
	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.Get(ctx, c.baseURL+"/licenses?per_page=100", &list)
	})
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: github licenses", err)
		}
		return nil, err
	}

	taxonomy := make(license.Taxonomy, len(list))
	for i, item := range list {
		if i > 0 && c.fetchDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.fetchDelay):
			}
		}

		var detail licenseDetail
		if err := c.Get(ctx, c.baseURL+"/licenses/"+item.Key, &detail); err != nil {
			// A failed detail fetch leaves a gap instead of failing the run.
			continue
		}

		id := detail.SPDXID
		if id == "" {
			id = item.Key
		}
		taxonomy[id] = license.License{
			Title:       detail.Title,
			SPDXID:      id,
			Permissions: detail.Permissions,
			Conditions:  detail.Conditions,
			Limitations: detail.Limitations,
		}
	}
	return taxonomy, nil
}

// FetchRepoLicense retrieves the SPDX identifier of a repository's license
// as detected by GitHub. Returns integrations.ErrNotFound if the repository
// has no detectable license.
func (c *Client) FetchRepoLicense(ctx context.Context, owner, repo string, refresh bool) (string, error) {
	key := owner + "/" + repo + ":license"

	var result repoLicenseResponse
	err := c.Cached(ctx, key, refresh, &result, func() error {
		url := fmt.Sprintf("%s/repos/%s/%s/license", c.baseURL, owner, repo)
		if err := c.Get(ctx, url, &result); err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: license for %s/%s", err, owner, repo)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return result.License.SPDXID, nil
}

type licenseSummary struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
	URL    string `json:"url"`
}

type licenseDetail struct {
	Key         string   `json:"key"`
	Title       string   `json:"name"`
	SPDXID      string   `json:"spdx_id"`
	Permissions []string `json:"permissions"`
	Conditions  []string `json:"conditions"`
	Limitations []string `json:"limitations"`
}

type repoLicenseResponse struct {
	License struct {
		SPDXID string `json:"spdx_id"`
	} `json:"license"`
}
