// Package golang provides manifest parsing and license resolution for Go
// projects.
//
// Supported manifests: go.mod (direct requires only; indirect
// dependencies are skipped).
//
// The Go module proxy exposes versions but no license metadata, so
// licenses are resolved through the GitHub repository license endpoint
// for modules hosted on github.com. Modules on other hosts report no
// license.
package golang
