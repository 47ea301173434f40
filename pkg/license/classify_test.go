package license

import "testing"

func strptr(s string) *string { return &s }

func TestIsRestrictive_Sentinel(t *testing.T) {
	if !IsRestrictive(strptr(NoLicense), Taxonomy{}, nil) {
		t.Error("NoLicense sentinel must be restrictive")
	}
}

// An absent license is not the same as an explicit "No License" verdict:
// nil stays non-restrictive.
func TestIsRestrictive_NilLicense(t *testing.T) {
	if IsRestrictive(nil, Taxonomy{}, []string{"GPL"}) {
		t.Error("nil license must not be restrictive")
	}
}

func TestIsRestrictive_TaxonomyConditions(t *testing.T) {
	taxonomy := Taxonomy{
		"GPL-3.0": {
			Title:      "GNU General Public License v3.0",
			SPDXID:     "GPL-3.0",
			Conditions: []string{"include-copyright", "source-disclosure"},
		},
		"AGPL-3.0": {
			Title:      "GNU Affero General Public License v3.0",
			SPDXID:     "AGPL-3.0",
			Conditions: []string{"network-use-disclosure"},
		},
		"MIT": {
			Title:      "MIT License",
			SPDXID:     "MIT",
			Conditions: []string{"include-copyright"},
		},
	}

	tests := []struct {
		name    string
		license string
		want    bool
	}{
		{"source disclosure", "GPL-3.0", true},
		{"network use disclosure", "AGPL-3.0", true},
		{"permissive", "MIT", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRestrictive(strptr(tt.license), taxonomy, nil); got != tt.want {
				t.Errorf("IsRestrictive(%q) = %v, want %v", tt.license, got, tt.want)
			}
		})
	}
}

func TestIsRestrictive_PatternFallback(t *testing.T) {
	patterns := []string{"GPL", "Commons Clause"}

	if !IsRestrictive(strptr("GPL-3.0-only"), Taxonomy{}, patterns) {
		t.Error("expected pattern match for GPL-3.0-only")
	}
	if IsRestrictive(strptr("MIT"), Taxonomy{}, patterns) {
		t.Error("MIT should not match any pattern")
	}
	// Matching is case-sensitive.
	if IsRestrictive(strptr("gpl-3.0"), Taxonomy{}, patterns) {
		t.Error("pattern matching must be case-sensitive")
	}
}

// The substring fallback over-matches by design: a "GPL" pattern also catches
// LGPL identifiers. Downstream consumers rely on this, so the behavior is
// pinned here rather than tightened.
func TestIsRestrictive_PatternOvermatch(t *testing.T) {
	if !IsRestrictive(strptr("LGPL-2.1"), Taxonomy{}, []string{"GPL"}) {
		t.Error(`pattern "GPL" is expected to match "LGPL-2.1"`)
	}
}

// The taxonomy entry wins over patterns when the key matches exactly.
func TestIsRestrictive_TaxonomyBeforePatterns(t *testing.T) {
	taxonomy := Taxonomy{
		"MPL-2.0": {SPDXID: "MPL-2.0", Conditions: []string{"include-copyright"}},
	}
	if IsRestrictive(strptr("MPL-2.0"), taxonomy, []string{"MPL"}) {
		t.Error("taxonomy verdict must take precedence over the pattern list")
	}
}

func TestIsRestrictive_EmptyPatterns(t *testing.T) {
	if IsRestrictive(strptr("SomethingUnknown"), Taxonomy{}, nil) {
		t.Error("unknown license with no patterns must not be restrictive")
	}
}
