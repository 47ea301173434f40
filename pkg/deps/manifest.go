package deps

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// ManifestParser reads dependency information from local manifest files.
type ManifestParser interface {
	// Parse reads the manifest at path and returns its dependencies.
	Parse(path string) ([]Dependency, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the manifest type identifier (e.g., "Cargo.toml").
	Type() string
}

// Manifest pairs a discovered manifest file with the parser that handles it.
type Manifest struct {
	Path   string
	Parser ManifestParser
}

// DetectManifest finds a parser that supports the given file path.
// Returns an error if no parser matches.
func DetectManifest(path string, parsers ...ManifestParser) (ManifestParser, error) {
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unsupported manifest: %s", name)
}

// skipDirs are directory names never descended into during discovery.
// They hold vendored or generated trees whose manifests belong to
// dependencies, not to the scanned project.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"target":       true,
	"dist":         true,
	"build":        true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
}

// Discover walks root and returns every manifest file one of the given
// parsers supports. Results are ordered by walk order (lexical within
// each directory), which keeps scan output stable across runs.
func Discover(root string, parsers ...ManifestParser) ([]Manifest, error) {
	var found []Manifest
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		for _, p := range parsers {
			if p.Supports(d.Name()) {
				found = append(found, Manifest{Path: path, Parser: p})
				break
			}
		}
		return nil
	})
	return found, err
}
