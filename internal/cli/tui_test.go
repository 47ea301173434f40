package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/license"
)

func strPtr(s string) *string { return &s }

func browserResult() *audit.Result {
	return &audit.Result{
		ProjectLicense: "MIT",
		Dependencies: []license.Info{
			{Name: "serde", Version: "1.0.195", License: strPtr("MIT"), Compat: license.Compatible},
			{Name: "copyleft", Version: "2.0.0", License: strPtr("GPL-3.0"), Restrictive: true, Compat: license.Incompatible},
			{Name: "mystery", License: strPtr("Custom"), Compat: license.Unknown},
		},
		Stats: audit.Stats{Total: 3, Restrictive: 1, Incompatible: 1},
	}
}

func browserTaxonomy() license.Taxonomy {
	return license.Taxonomy{
		"MIT":     {Title: "MIT License", SPDXID: "MIT"},
		"GPL-3.0": {Title: "GNU GPLv3", SPDXID: "GPL-3.0", Conditions: []string{"source-disclosure"}},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDepListNavigation(t *testing.T) {
	m := NewDepListModel(browserResult(), browserTaxonomy())

	next, _ := m.Update(keyMsg("j"))
	m = next.(DepListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(DepListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.Cursor)
	}

	// Cursor clamps at the list bounds.
	next, _ = m.Update(keyMsg("k"))
	m = next.(DepListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, should not go negative", m.Cursor)
	}
}

func TestDepListRestrictiveFilter(t *testing.T) {
	m := NewDepListModel(browserResult(), browserTaxonomy())

	next, _ := m.Update(keyMsg("r"))
	m = next.(DepListModel)
	if !m.RestrictiveOnly {
		t.Fatal("r should enable the restrictive filter")
	}

	visible := m.visible()
	if len(visible) != 1 || visible[0].Name != "copyleft" {
		t.Errorf("visible = %+v, want only copyleft", visible)
	}

	view := m.View()
	if strings.Contains(view, "serde") {
		t.Error("filtered view should not show compatible dependencies")
	}
}

func TestDepListSort(t *testing.T) {
	m := NewDepListModel(browserResult(), browserTaxonomy())

	// Default sort is by name.
	visible := m.visible()
	if visible[0].Name != "copyleft" || visible[2].Name != "serde" {
		t.Fatalf("name order = %s..%s, want copyleft..serde", visible[0].Name, visible[2].Name)
	}

	// s cycles to license order; "Custom" sorts before "GPL-3.0" and "MIT".
	next, _ := m.Update(keyMsg("s"))
	m = next.(DepListModel)
	if m.SortBy != sortLicense {
		t.Fatalf("SortBy = %v after s, want %v", m.SortBy, sortLicense)
	}
	visible = m.visible()
	if visible[0].Name != "mystery" {
		t.Errorf("license order starts with %s, want mystery", visible[0].Name)
	}

	// Restrictive order puts the flagged dependency first.
	next, _ = m.Update(keyMsg("s"))
	m = next.(DepListModel)
	visible = m.visible()
	if visible[0].Name != "copyleft" {
		t.Errorf("restrictive order starts with %s, want copyleft", visible[0].Name)
	}

	// The help line names the active column.
	if !strings.Contains(m.View(), "sort (restrictive)") {
		t.Error("view should name the active sort column")
	}
}

func TestDepListKnownMarker(t *testing.T) {
	m := NewDepListModel(browserResult(), browserTaxonomy())

	tests := []struct {
		name string
		dep  license.Info
		want bool
	}{
		{"taxonomy entry", license.Info{Name: "serde", License: strPtr("MIT")}, true},
		{"alias normalizes to entry", license.Info{Name: "aliased", License: strPtr("MIT License")}, true},
		{"unknown license", license.Info{Name: "mystery", License: strPtr("Custom")}, false},
		{"nil license", license.Info{Name: "bare"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.known(tt.dep); got != tt.want {
				t.Errorf("known(%v) = %v, want %v", tt.dep.License, got, tt.want)
			}
		})
	}
}

func TestDepListQuit(t *testing.T) {
	m := NewDepListModel(browserResult(), browserTaxonomy())
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
}

func TestDepListView(t *testing.T) {
	m := NewDepListModel(browserResult(), browserTaxonomy())
	view := m.View()

	for _, want := range []string{"serde", "copyleft", "GPL-3.0", "project license: MIT"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDepListViewEmpty(t *testing.T) {
	m := NewDepListModel(&audit.Result{}, nil)
	if !strings.Contains(m.View(), "nothing to show") {
		t.Error(`empty view should say nothing to show`)
	}
}
