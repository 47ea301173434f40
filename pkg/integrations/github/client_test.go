package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/stackaudit/pkg/cache"
	apperrors "github.com/matzehuels/stackaudit/pkg/errors"
	"github.com/matzehuels/stackaudit/pkg/integrations"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c := NewClient(cache.NewNullCache(), "", time.Hour)
	c.baseURL = serverURL
	c.fetchDelay = 0
	return c
}

func licenseServer(t *testing.T, details map[string]licenseDetail, failKeys map[string]int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/licenses", func(w http.ResponseWriter, r *http.Request) {
		var list []licenseSummary
		for key, d := range details {
			list = append(list, licenseSummary{Key: key, Name: d.Title, SPDXID: d.SPDXID})
		}
		for key := range failKeys {
			list = append(list, licenseSummary{Key: key})
		}
		json.NewEncoder(w).Encode(list)
	})
	mux.HandleFunc("/licenses/", func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path[len("/licenses/"):]
		if code, ok := failKeys[key]; ok {
			w.WriteHeader(code)
			return
		}
		d, ok := details[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(d)
	})

	return httptest.NewServer(mux)
}

func TestFetchLicenses(t *testing.T) {
	details := map[string]licenseDetail{
		"mit": {
			Key:         "mit",
			Title:       "MIT License",
			SPDXID:      "MIT",
			Permissions: []string{"commercial-use", "modifications"},
			Conditions:  []string{"include-copyright"},
			Limitations: []string{"liability"},
		},
		"gpl-3.0": {
			Key:         "gpl-3.0",
			Title:       "GNU General Public License v3.0",
			SPDXID:      "GPL-3.0",
			Conditions:  []string{"include-copyright", "source-disclosure"},
			Permissions: []string{"commercial-use"},
		},
	}

	server := licenseServer(t, details, nil)
	defer server.Close()

	c := newTestClient(t, server.URL)
	taxonomy, err := c.FetchLicenses(context.Background())
	if err != nil {
		t.Fatalf("FetchLicenses: %v", err)
	}

	if len(taxonomy) != 2 {
		t.Fatalf("taxonomy size = %d, want 2", len(taxonomy))
	}

	mit, ok := taxonomy["MIT"]
	if !ok {
		t.Fatal("taxonomy missing MIT")
	}
	if mit.Title != "MIT License" {
		t.Errorf("MIT title = %q", mit.Title)
	}
	if len(mit.Conditions) != 1 || mit.Conditions[0] != "include-copyright" {
		t.Errorf("MIT conditions = %v", mit.Conditions)
	}

	gpl, ok := taxonomy["GPL-3.0"]
	if !ok {
		t.Fatal("taxonomy missing GPL-3.0")
	}
	if gpl.Conditions[1] != "source-disclosure" {
		t.Errorf("GPL-3.0 conditions = %v", gpl.Conditions)
	}
}

func TestFetchLicensesSPDXFallbackToKey(t *testing.T) {
	// Detail record without an spdx_id should be keyed by the list key.
	details := map[string]licenseDetail{
		"other": {Key: "other", Title: "Other License"},
	}

	server := licenseServer(t, details, nil)
	defer server.Close()

	c := newTestClient(t, server.URL)
	taxonomy, err := c.FetchLicenses(context.Background())
	if err != nil {
		t.Fatalf("FetchLicenses: %v", err)
	}

	entry, ok := taxonomy["other"]
	if !ok {
		t.Fatalf("taxonomy should key by list key on missing spdx_id: %v", taxonomy)
	}
	if entry.SPDXID != "other" {
		t.Errorf("SPDXID = %q, want fallback %q", entry.SPDXID, "other")
	}
}

func TestFetchLicensesSkipsFailedDetails(t *testing.T) {
	details := map[string]licenseDetail{
		"mit": {Key: "mit", Title: "MIT License", SPDXID: "MIT"},
	}
	failKeys := map[string]int{"broken": http.StatusNotFound}

	server := licenseServer(t, details, failKeys)
	defer server.Close()

	c := newTestClient(t, server.URL)
	taxonomy, err := c.FetchLicenses(context.Background())
	if err != nil {
		t.Fatalf("FetchLicenses: %v", err)
	}

	if len(taxonomy) != 1 {
		t.Errorf("taxonomy size = %d, want 1 (failed detail skipped)", len(taxonomy))
	}
	if _, ok := taxonomy["MIT"]; !ok {
		t.Error("taxonomy should still contain successful fetches")
	}
}

func TestFetchLicensesListFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.FetchLicenses(context.Background())
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("FetchLicenses error = %v, want ErrNotFound", err)
	}
}

func TestFetchRepoLicense(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/rust-lang/rust/license", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"license": map[string]string{"spdx_id": "Apache-2.0"},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL)
	spdx, err := c.FetchRepoLicense(context.Background(), "rust-lang", "rust", false)
	if err != nil {
		t.Fatalf("FetchRepoLicense: %v", err)
	}
	if spdx != "Apache-2.0" {
		t.Errorf("spdx = %q, want Apache-2.0", spdx)
	}
}

func TestFetchRepoLicenseRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.FetchRepoLicense(context.Background(), "rust-lang", "rust", false)

	var rateErr *apperrors.RateLimitedError
	if !errors.As(err, &rateErr) {
		t.Fatalf("FetchRepoLicense error = %v, want RateLimitedError", err)
	}
	if rateErr.RetryAfter != 120 {
		t.Errorf("RetryAfter = %d, want 120", rateErr.RetryAfter)
	}
}

func TestFetchRepoLicenseNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.FetchRepoLicense(context.Background(), "nobody", "nothing", false)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("FetchRepoLicense error = %v, want ErrNotFound", err)
	}
}
