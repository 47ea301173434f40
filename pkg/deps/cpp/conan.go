package cpp

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/stackaudit/pkg/deps"
)

// ConanFile parses conanfile.txt manifests. Entries in the [requires]
// section look like "fmt/10.2.1" or "zlib/1.3@user/channel".
type ConanFile struct{}

func (p *ConanFile) Type() string {
	return "conanfile.txt"
}

func (p *ConanFile) Supports(filename string) bool {
	return strings.EqualFold(filename, "conanfile.txt")
}

func (p *ConanFile) Parse(path string) ([]deps.Dependency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read conanfile: %w", err)
	}
	defer f.Close()

	var out []deps.Dependency
	seen := make(map[string]bool)
	inRequires := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inRequires = line == "[requires]" || line == "[tool_requires]"
			continue
		}
		if !inRequires {
			continue
		}
		name, version := parseConanReference(line)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, deps.Dependency{Name: name, Version: version})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conanfile: %w", err)
	}
	return out, nil
}

// parseConanReference splits a reference like "fmt/10.2.1@user/channel"
// into its package name and version. The user/channel suffix is dropped.
func parseConanReference(ref string) (name, version string) {
	if idx := strings.Index(ref, "@"); idx != -1 {
		ref = ref[:idx]
	}
	name, version, found := strings.Cut(ref, "/")
	name = strings.TrimSpace(name)
	if !found {
		return name, ""
	}
	return name, strings.TrimSpace(version)
}
