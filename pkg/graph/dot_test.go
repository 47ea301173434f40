package graph

import (
	"strings"
	"testing"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/license"
)

func strPtr(s string) *string { return &s }

func TestCompatDOT(t *testing.T) {
	relation := map[string][]string{
		"MIT":        {"MIT", "Apache-2.0", "BSD-3-Clause"},
		"Apache-2.0": {"Apache-2.0", "MIT"},
	}

	dot := CompatDOT(relation)

	if !strings.HasPrefix(dot, "digraph compatibility {") {
		t.Errorf("unexpected prefix: %q", dot[:40])
	}
	for _, edge := range []string{`"MIT" -> "Apache-2.0";`, `"MIT" -> "BSD-3-Clause";`, `"Apache-2.0" -> "MIT";`} {
		if !strings.Contains(dot, edge) {
			t.Errorf("missing edge %s in:\n%s", edge, dot)
		}
	}
	// Self-edges carry no information.
	if strings.Contains(dot, `"MIT" -> "MIT"`) {
		t.Error("self-edge should be omitted")
	}
}

func TestCompatDOTDeterministic(t *testing.T) {
	relation := license.Relation()
	if CompatDOT(relation) != CompatDOT(relation) {
		t.Error("CompatDOT output should be stable across calls")
	}
}

func TestResultDOT(t *testing.T) {
	result := &audit.Result{
		ProjectLicense: "MIT",
		Dependencies: []license.Info{
			{Name: "serde", Version: "1.0.195", License: strPtr("MIT"), Compat: license.Compatible},
			{Name: "copyleft", Version: "2.0.0", License: strPtr("GPL-3.0"), Restrictive: true, Compat: license.Incompatible},
			{Name: "mystery", License: strPtr("Custom-1.0"), Compat: license.Unknown},
		},
	}

	dot := ResultDOT(result)

	if !strings.Contains(dot, `"MIT" [style="rounded,filled,bold", fillcolor=lightblue];`) {
		t.Error("project node missing")
	}
	if !strings.Contains(dot, `"serde@1.0.195"`) {
		t.Error("versioned dependency node missing")
	}
	if !strings.Contains(dot, "fillcolor=lightcoral") {
		t.Error("restrictive dependency should be filled red")
	}
	if !strings.Contains(dot, "[color=red, style=bold]") {
		t.Error("incompatible edge should be red")
	}
	if !strings.Contains(dot, "[color=gray, style=dashed]") {
		t.Error("unknown edge should be dashed")
	}
}

func TestResultDOTNoProjectLicense(t *testing.T) {
	dot := ResultDOT(&audit.Result{Dependencies: []license.Info{{Name: "a"}}})
	if !strings.Contains(dot, `"project" -> "a"`) {
		t.Errorf("fallback project node missing:\n%s", dot)
	}
}
