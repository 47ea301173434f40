package license

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		dep     string
		project string
		want    Compatibility
	}{
		{"MIT", "MIT", Compatible},
		{"BSD-2-Clause", "MIT", Compatible},
		{"BSD-3-Clause", "MIT", Compatible},
		{"Apache-2.0", "MIT", Compatible},
		{"GPL-3.0", "MIT", Incompatible},
		{"LGPL-3.0", "MIT", Incompatible},
		{"MPL-2.0", "MIT", Incompatible},
		{"Apache-2.0", "GPL-3.0", Compatible},
		{"Apache-2.0", "GPL-2.0", Incompatible},
		{"GPL-2.0", "GPL-3.0", Compatible},
		{"MIT", "Unlicense", Incompatible},
		{"0BSD", "Unlicense", Compatible},
		{"Foo-9.9", "Bar-1.0", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.dep+" in "+tt.project, func(t *testing.T) {
			if got := Check(tt.dep, tt.project); got != tt.want {
				t.Errorf("Check(%q, %q) = %v, want %v", tt.dep, tt.project, got, tt.want)
			}
		})
	}
}

// Inputs are normalized before lookup, so raw spellings resolve the same as
// canonical ids.
func TestCheck_NormalizesInputs(t *testing.T) {
	if got := Check("apache 2.0", "mit license"); got != Compatible {
		t.Errorf("got %v, want Compatible", got)
	}
	if got := Check("gpl 3.0", "MIT License"); got != Incompatible {
		t.Errorf("got %v, want Incompatible", got)
	}
}

// The relation is directed: MIT deps are fine in GPL-3.0 projects, but GPL-3.0
// deps are not fine in MIT projects. Symmetry must never be inferred.
func TestCheck_Asymmetric(t *testing.T) {
	if got := Check("MIT", "GPL-3.0"); got != Compatible {
		t.Errorf("Check(MIT, GPL-3.0) = %v, want Compatible", got)
	}
	if got := Check("GPL-3.0", "MIT"); got != Incompatible {
		t.Errorf("Check(GPL-3.0, MIT) = %v, want Incompatible", got)
	}
}

func TestCheck_UnknownProjectNeverIncompatible(t *testing.T) {
	for _, dep := range []string{"MIT", "GPL-3.0", "TotallyMadeUp"} {
		if got := Check(dep, "Proprietary-1.0"); got != Unknown {
			t.Errorf("Check(%q, unknown project) = %v, want Unknown", dep, got)
		}
	}
}

func TestRelation_ReturnsCopy(t *testing.T) {
	r := Relation()
	r["MIT"] = nil
	if len(Relation()["MIT"]) == 0 {
		t.Error("mutating the returned relation must not affect the table")
	}
}

func TestInfo_Display(t *testing.T) {
	withLicense := Info{Name: "serde", Version: "1.0.0", License: strptr("MIT")}
	if got := withLicense.Display(); got != "MIT" {
		t.Errorf("Display() = %q, want MIT", got)
	}
	missing := Info{Name: "leftpad", Version: "0.1.0"}
	if got := missing.Display(); got != NoLicense {
		t.Errorf("Display() = %q, want %q", got, NoLicense)
	}
}
