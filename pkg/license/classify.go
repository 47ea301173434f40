package license

import "strings"

// restrictiveConditions are the taxonomy condition tags that mark a license as
// restrictive: obligations to disclose source, locally or over a network.
var restrictiveConditions = []string{"source-disclosure", "network-use-disclosure"}

// IsRestrictive decides whether a dependency license is restrictive.
//
// The NoLicense sentinel is always restrictive. A license found in the
// taxonomy by exact key is restrictive iff its conditions include a disclosure
// obligation. Anything else falls back to the user-configured pattern list:
// restrictive iff the raw string contains any pattern as a case-sensitive
// substring. Note the fallback is intentionally fuzzy - a pattern like "GPL"
// also matches "LGPL-2.1".
//
// A nil license is not restrictive; an unset license is not the same risk
// signal as an explicit NoLicense verdict.
func IsRestrictive(lic *string, taxonomy Taxonomy, patterns []string) bool {
	if lic == nil {
		return false
	}
	raw := *lic
	if raw == NoLicense {
		return true
	}

	if entry, ok := taxonomy[raw]; ok {
		for _, cond := range restrictiveConditions {
			for _, c := range entry.Conditions {
				if c == cond {
					return true
				}
			}
		}
		return false
	}

	for _, p := range patterns {
		if strings.Contains(raw, p) {
			return true
		}
	}
	return false
}
