// Package deps provides manifest parsing and license resolution for the
// supported package ecosystems.
//
// # Overview
//
// Each ecosystem lives in its own subpackage and exposes a [Language]
// value bundling its manifest parsers with a registry-backed license
// resolver:
//
//   - [rust]: Cargo.toml via crates.io
//   - [javascript]: package.json via the npm registry
//   - [golang]: go.mod via the Go module proxy and GitHub
//   - [python]: requirements.txt and pyproject.toml via PyPI
//   - [cpp]: vcpkg.json and conanfile.txt (no registry license API)
//
// # Manifest Discovery
//
// [Discover] walks a project tree and pairs every recognized manifest
// with its parser, skipping vendored directories (node_modules, vendor,
// target, and friends):
//
//	manifests, err := deps.Discover(projectPath, parsers...)
//	for _, m := range manifests {
//	    dependencies, err := m.Parser.Parse(m.Path)
//	    // ...
//	}
//
// # License Resolution
//
// Parsers return declared licenses when the manifest carries them;
// otherwise a [Resolver] queries the ecosystem's registry. A nil License
// on a [Dependency] means the license is unknown.
package deps
