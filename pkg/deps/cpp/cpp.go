package cpp

import (
	"github.com/matzehuels/stackaudit/pkg/deps"
)

// Language bundles the manifest parsers for C and C++ projects. No
// central registry carries license metadata for either package manager,
// so there is no resolver; licenses come from the manifests alone.
var Language = &deps.Language{
	Name:    "cpp",
	Parsers: parsers,
}

func parsers() []deps.ManifestParser {
	return []deps.ManifestParser{
		&VcpkgJSON{},
		&ConanFile{},
	}
}
