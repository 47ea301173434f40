package license

import "strings"

// aliasTable maps exact (uppercased, trimmed) spellings to canonical SPDX ids.
// Checked before the family rules.
var aliasTable = map[string]string{
	"MIT":             "MIT",
	"MIT LICENSE":     "MIT",
	"ISC":             "ISC",
	"ISC LICENSE":     "ISC",
	"0BSD":            "0BSD",
	"BSD-ZERO-CLAUSE": "0BSD",
	"BSD ZERO CLAUSE": "0BSD",
	"UNLICENSE":       "Unlicense",
	"THE UNLICENSE":   "Unlicense",
	"WTFPL":           "WTFPL",
	"DO WHAT THE FUCK YOU WANT TO PUBLIC LICENSE": "WTFPL",
	"ZLIB":         "Zlib",
	"ZLIB LICENSE": "Zlib",
}

// familyRule canonicalizes a versioned license family by substring matching.
// Rules are evaluated top to bottom; order encodes precedence (LGPL before
// bare GPL, version 3 before version 2).
type familyRule struct {
	family  string   // required substring
	version []string // at least one must be present
	exclude string   // disqualifying substring, if non-empty
	id      string   // canonical identifier
}

var familyRules = []familyRule{
	{family: "APACHE", version: []string{"2.0", "2"}, id: "Apache-2.0"},
	{family: "GPL", version: []string{"3"}, exclude: "LGPL", id: "GPL-3.0"},
	{family: "GPL", version: []string{"2"}, exclude: "LGPL", id: "GPL-2.0"},
	{family: "LGPL", version: []string{"3"}, id: "LGPL-3.0"},
	{family: "LGPL", version: []string{"2.1"}, id: "LGPL-2.1"},
	{family: "LGPL", version: []string{"2"}, exclude: "2.1", id: "LGPL-2.1"},
	{family: "MPL", version: []string{"2.0"}, id: "MPL-2.0"},
	{family: "BSD", version: []string{"3", "THREE"}, id: "BSD-3-Clause"},
	{family: "BSD", version: []string{"2", "TWO"}, id: "BSD-2-Clause"},
}

func (r familyRule) matches(s string) bool {
	if !strings.Contains(s, r.family) {
		return false
	}
	if r.exclude != "" && strings.Contains(s, r.exclude) {
		return false
	}
	for _, v := range r.version {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}

// Normalize maps a free-form license string onto a canonical SPDX identifier.
// It is pure and idempotent: alias table first, then the ordered family rules,
// first match wins. Unrecognized input is returned unchanged (never uppercased);
// normalization canonicalizes known spellings but never invents a license.
func Normalize(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))

	if id, ok := aliasTable[upper]; ok {
		return id
	}
	for _, r := range familyRules {
		if r.matches(upper) {
			return r.id
		}
	}
	return raw
}
