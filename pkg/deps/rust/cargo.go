package rust

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackaudit/pkg/deps"
)

// CargoToml parses Cargo.toml manifests. It extracts dependencies,
// dev-dependencies, and build-dependencies with their declared version
// requirements.
type CargoToml struct{}

func (c *CargoToml) Type() string              { return "Cargo.toml" }
func (c *CargoToml) Supports(name string) bool { return strings.EqualFold(name, "cargo.toml") }

func (c *CargoToml) Parse(path string) ([]deps.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var result []deps.Dependency
	for _, table := range []map[string]any{cargo.Dependencies, cargo.DevDependencies, cargo.BuildDependencies} {
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			result = append(result, deps.Dependency{
				Name:    name,
				Version: cargoVersion(table[name]),
			})
		}
	}
	return result, nil
}

// cargoVersion extracts the version requirement from either form of a
// dependency entry: a bare string ("1.0") or an inline table
// ({ version = "1.0", features = [...] }).
func cargoVersion(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val["version"].(string); ok {
			return s
		}
	}
	return ""
}

type cargoFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}
