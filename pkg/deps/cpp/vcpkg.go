package cpp

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/stackaudit/pkg/deps"
)

// VcpkgJSON parses vcpkg.json manifests. Dependencies are either plain
// name strings or objects with a "name" key.
type VcpkgJSON struct{}

func (p *VcpkgJSON) Type() string {
	return "vcpkg.json"
}

func (p *VcpkgJSON) Supports(filename string) bool {
	return strings.EqualFold(filename, "vcpkg.json")
}

func (p *VcpkgJSON) Parse(path string) ([]deps.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vcpkg.json: %w", err)
	}

	var file vcpkgFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vcpkg.json: %w", err)
	}

	var out []deps.Dependency
	seen := make(map[string]bool)
	for _, raw := range file.Dependencies {
		name, version := vcpkgDependency(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, deps.Dependency{Name: name, Version: version})
	}
	return out, nil
}

func vcpkgDependency(raw json.RawMessage) (name, version string) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, ""
	}

	var obj struct {
		Name       string `json:"name"`
		VersionGTE string `json:"version>="`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name, obj.VersionGTE
	}
	return "", ""
}

type vcpkgFile struct {
	Name         string            `json:"name"`
	Dependencies []json.RawMessage `json:"dependencies"`
}
