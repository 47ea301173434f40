package deps

import (
	"os"
	"path/filepath"
	"testing"
)

// stubParser supports a single filename and returns fixed dependencies.
type stubParser struct {
	filename string
	deps     []Dependency
}

func (p *stubParser) Parse(path string) ([]Dependency, error) { return p.deps, nil }
func (p *stubParser) Supports(filename string) bool           { return filename == p.filename }
func (p *stubParser) Type() string                            { return p.filename }

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDetectManifest(t *testing.T) {
	cargo := &stubParser{filename: "Cargo.toml"}
	pkg := &stubParser{filename: "package.json"}

	p, err := DetectManifest("/some/project/Cargo.toml", cargo, pkg)
	if err != nil {
		t.Fatalf("DetectManifest() error = %v", err)
	}
	if p != cargo {
		t.Errorf("DetectManifest() picked %s, want Cargo.toml", p.Type())
	}

	if _, err := DetectManifest("/some/project/pom.xml", cargo, pkg); err == nil {
		t.Error("DetectManifest() expected error for unsupported manifest")
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Cargo.toml")
	writeFile(t, root, "README.md")
	writeFile(t, root, filepath.Join("frontend", "package.json"))
	writeFile(t, root, filepath.Join("node_modules", "lodash", "package.json"))
	writeFile(t, root, filepath.Join("target", "debug", "Cargo.toml"))
	writeFile(t, root, filepath.Join(".git", "config"))

	cargo := &stubParser{filename: "Cargo.toml"}
	pkg := &stubParser{filename: "package.json"}

	found, err := Discover(root, cargo, pkg)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "Cargo.toml"),
		filepath.Join(root, "frontend", "package.json"),
	}
	if len(found) != len(want) {
		t.Fatalf("Discover() found %d manifests, want %d: %+v", len(found), len(want), found)
	}
	for i, w := range want {
		if found[i].Path != w {
			t.Errorf("manifest[%d] = %s, want %s", i, found[i].Path, w)
		}
	}
	if found[0].Parser != cargo || found[1].Parser != pkg {
		t.Error("Discover() paired manifests with wrong parsers")
	}
}

func TestDiscoverSkipDirNamedRoot(t *testing.T) {
	// A scan rooted at a directory whose own name matches a skip entry
	// must still be walked.
	base := t.TempDir()
	root := filepath.Join(base, "vendor")
	writeFile(t, root, "Cargo.toml")

	found, err := Discover(root, &stubParser{filename: "Cargo.toml"})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(found) != 1 {
		t.Errorf("Discover() found %d manifests, want 1", len(found))
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Discover() expected error for missing root")
	}
}
