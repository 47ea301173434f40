package license

// relation is the static directed compatibility table: for each normalized
// project license, the set of normalized dependency licenses it may legally
// include. The relation is asymmetric and non-transitive by design (GPL-2.0
// excludes Apache-2.0 even though GPL-3.0 includes it). Changing an entry is a
// design decision, not a data update.
var relation = map[string][]string{
	"MIT": {
		"MIT", "BSD-2-Clause", "BSD-3-Clause", "Apache-2.0", "ISC",
		"0BSD", "Zlib", "Unlicense", "WTFPL",
	},
	"Apache-2.0": {
		"MIT", "BSD-2-Clause", "BSD-3-Clause", "Apache-2.0", "ISC",
		"0BSD", "Zlib", "Unlicense", "WTFPL",
	},
	"GPL-3.0": {
		"MIT", "BSD-2-Clause", "BSD-3-Clause", "Apache-2.0", "LGPL-2.1",
		"LGPL-3.0", "GPL-2.0", "GPL-3.0", "ISC", "0BSD", "Zlib",
		"Unlicense", "WTFPL",
	},
	// GPL-2.0 is stricter than GPL-3.0 and cannot include Apache-2.0.
	"GPL-2.0": {
		"MIT", "BSD-2-Clause", "BSD-3-Clause", "LGPL-2.1", "GPL-2.0",
		"ISC", "0BSD", "Zlib", "Unlicense", "WTFPL",
	},
	"LGPL-3.0": {
		"MIT", "BSD-2-Clause", "BSD-3-Clause", "Apache-2.0", "LGPL-2.1",
		"LGPL-3.0", "ISC", "0BSD",
	},
	"LGPL-2.1": {
		"MIT", "BSD-2-Clause", "BSD-3-Clause", "LGPL-2.1", "ISC", "0BSD",
	},
	"MPL-2.0": {
		"MIT", "BSD-2-Clause", "BSD-3-Clause", "MPL-2.0", "ISC", "0BSD",
	},
	"BSD-3-Clause": {"MIT", "BSD-2-Clause", "BSD-3-Clause", "ISC", "0BSD"},
	"BSD-2-Clause": {"MIT", "BSD-2-Clause", "ISC", "0BSD"},
	"ISC":          {"MIT", "ISC", "0BSD"},
	"0BSD":         {"0BSD"},
	"Unlicense":    {"Unlicense", "0BSD"},
	"WTFPL":        {"WTFPL", "0BSD", "Unlicense"},
}

// Check resolves whether a dependency license may be included in a project
// under the given license. Both inputs are normalized first. A project license
// missing from the relation yields Unknown, never Incompatible: absence of
// data is not evidence of conflict.
func Check(depLicense, projectLicense string) Compatibility {
	dep := Normalize(depLicense)
	project := Normalize(projectLicense)

	allowed, ok := relation[project]
	if !ok {
		return Unknown
	}
	for _, id := range allowed {
		if id == dep {
			return Compatible
		}
	}
	return Incompatible
}

// Relation returns a copy of the compatibility table, keyed by project
// license. Consumers (e.g. the graph renderer) must not rely on iteration
// order.
func Relation() map[string][]string {
	out := make(map[string][]string, len(relation))
	for k, v := range relation {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}
