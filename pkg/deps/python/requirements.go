package python

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/stackaudit/pkg/deps"
	"github.com/matzehuels/stackaudit/pkg/integrations"
)

// Requirements parses pip requirements files (requirements.txt and
// variants like requirements-dev.txt).
type Requirements struct{}

func (p *Requirements) Type() string {
	return "requirements.txt"
}

func (p *Requirements) Supports(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasPrefix(name, "requirements") && strings.HasSuffix(name, ".txt")
}

// Parse reads a requirements file and returns its package entries.
// Comments, pip options, includes, and URL or path requirements are
// skipped. Versions are captured only for exact pins (==).
func (p *Requirements) Parse(path string) ([]deps.Dependency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}
	defer f.Close()

	var out []deps.Dependency
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		name, version, ok := parseRequirement(line)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, deps.Dependency{Name: name, Version: version})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}
	return out, nil
}

// parseRequirement extracts the package name and pinned version from a
// PEP 508 requirement string like "requests[socks]==2.31.0; python_version<'3.12'".
// URL and local-path requirements are rejected.
func parseRequirement(spec string) (name, version string, ok bool) {
	// Strip environment markers.
	if idx := strings.Index(spec, ";"); idx != -1 {
		spec = spec[:idx]
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", "", false
	}
	if strings.Contains(spec, "://") || strings.HasPrefix(spec, ".") || strings.HasPrefix(spec, "/") {
		return "", "", false
	}

	// Exact pins carry a usable version; ranges do not.
	if idx := strings.Index(spec, "=="); idx != -1 {
		version = strings.TrimSpace(spec[idx+2:])
		spec = spec[:idx]
	} else {
		for _, op := range []string{">=", "<=", "~=", "!=", ">", "<"} {
			if idx := strings.Index(spec, op); idx != -1 {
				spec = spec[:idx]
				break
			}
		}
	}

	// Strip extras.
	if idx := strings.Index(spec, "["); idx != -1 {
		spec = spec[:idx]
	}

	name = integrations.NormalizePkgName(spec)
	if name == "" {
		return "", "", false
	}
	return name, version, true
}
