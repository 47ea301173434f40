package golang

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/stackaudit/pkg/deps"
)

// GoModParser parses go.mod files. It extracts direct dependencies with
// their required versions; indirect requirements are skipped.
type GoModParser struct{}

func (p *GoModParser) Type() string              { return "go.mod" }
func (p *GoModParser) Supports(name string) bool { return name == "go.mod" }

func (p *GoModParser) Parse(path string) ([]deps.Dependency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseGoMod(f)
}

func parseGoMod(r io.Reader) ([]deps.Dependency, error) {
	var result []deps.Dependency
	seen := make(map[string]bool)
	inRequire := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		// Handle require block
		if strings.HasPrefix(line, "require (") || line == "require(" {
			inRequire = true
			continue
		}
		if inRequire && line == ")" {
			inRequire = false
			continue
		}

		// Single-line require
		if strings.HasPrefix(line, "require ") && !strings.Contains(line, "(") {
			line = strings.TrimPrefix(line, "require ")
		} else if !inRequire {
			continue
		}

		if dep, ok := parseRequireLine(line); ok && !seen[dep.Name] {
			seen[dep.Name] = true
			result = append(result, dep)
		}
	}

	return result, scanner.Err()
}

func parseRequireLine(line string) (deps.Dependency, bool) {
	// Skip indirect dependencies
	if strings.Contains(line, "// indirect") {
		return deps.Dependency{}, false
	}

	// Remove inline comments
	if idx := strings.Index(line, "//"); idx != -1 {
		line = line[:idx]
	}

	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return deps.Dependency{}, false
	}

	dep := deps.Dependency{
		// Strip quotes from old-style go.mod files
		Name: strings.Trim(fields[0], `"`),
	}
	if len(fields) > 1 {
		dep.Version = fields[1]
	}
	return dep, true
}
