// Package license implements license classification: normalizing raw license
// identifiers, deciding restrictiveness against a canonical taxonomy, and
// resolving compatibility with a project license.
package license

// NoLicense is the sentinel used when a dependency's license could not be
// determined. It is distinct from an absent (nil) license: the sentinel is
// always classified restrictive, an absent license is not.
const NoLicense = "No License"

// License is a canonical taxonomy entry keyed by its SPDX identifier.
// Entries are immutable once fetched.
type License struct {
	Title       string   `json:"title"`       // Full display name
	SPDXID      string   `json:"spdx_id"`     // Stable identifier, used as map key
	Permissions []string `json:"permissions"` // Granted permissions (tags)
	Conditions  []string `json:"conditions"`  // Conditions that must be met (tags)
	Limitations []string `json:"limitations"` // Imposed limitations (tags)
}

// Taxonomy maps SPDX identifiers to their taxonomy entries.
type Taxonomy map[string]License

// Compatibility is the tri-state verdict for a dependency license against the
// project license. It is deliberately not a boolean: Unknown drives different
// report behavior than Incompatible.
type Compatibility string

const (
	Compatible   Compatibility = "Compatible"
	Incompatible Compatibility = "Incompatible"
	Unknown      Compatibility = "Unknown"
)

// Info is the annotated record for one discovered dependency. Restrictive and
// Compat are written once during classification and read-only afterwards.
type Info struct {
	Name        string        `json:"name"`
	Version     string        `json:"version"`
	License     *string       `json:"license"` // Raw license string; nil when the manifest declared none
	Restrictive bool          `json:"is_restrictive"`
	Compat      Compatibility `json:"compatibility"`
}

// Display returns the license string for presentation, mapping an absent
// license to the NoLicense sentinel.
func (i Info) Display() string {
	if i.License == nil {
		return NoLicense
	}
	return *i.License
}
