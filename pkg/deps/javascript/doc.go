// Package javascript provides package.json parsing and npm registry
// license resolution for JavaScript and TypeScript projects.
//
// Licenses come from the npm registry's latest published version. Legacy
// packages that declare the license as an object ({"type": "MIT"}) are
// handled transparently.
package javascript
