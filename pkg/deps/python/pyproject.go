package python

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackaudit/pkg/deps"
	"github.com/matzehuels/stackaudit/pkg/integrations"
)

// PyProject parses pyproject.toml manifests. Both PEP 621 project
// dependencies and Poetry dependency tables are supported.
type PyProject struct{}

func (p *PyProject) Type() string {
	return "pyproject.toml"
}

func (p *PyProject) Supports(filename string) bool {
	return strings.EqualFold(filename, "pyproject.toml")
}

func (p *PyProject) Parse(path string) ([]deps.Dependency, error) {
	var file pyprojectFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pyproject.toml: %w", err)
	}

	var out []deps.Dependency
	seen := make(map[string]bool)

	for _, spec := range file.Project.Dependencies {
		name, version, ok := parseRequirement(spec)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, deps.Dependency{Name: name, Version: version})
	}

	names := make([]string, 0, len(file.Tool.Poetry.Dependencies))
	for name := range file.Tool.Poetry.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		normalized := integrations.NormalizePkgName(name)
		// Poetry lists the interpreter itself as a dependency.
		if normalized == "python" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, deps.Dependency{
			Name:    normalized,
			Version: poetryVersion(file.Tool.Poetry.Dependencies[name]),
		})
	}

	return out, nil
}

// poetryVersion extracts a version string from a Poetry dependency
// value, which is either a constraint string or a table with a
// "version" key. Caret and tilde prefixes are stripped; only exact
// constraints are kept.
func poetryVersion(v any) string {
	switch val := v.(type) {
	case string:
		return exactVersion(val)
	case map[string]any:
		if s, ok := val["version"].(string); ok {
			return exactVersion(s)
		}
	}
	return ""
}

func exactVersion(constraint string) string {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" || constraint == "*" {
		return ""
	}
	if strings.ContainsAny(constraint, "^~><*,") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(constraint, "=="))
}

type pyprojectFile struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}
