// Package python provides manifest parsing and license resolution for
// Python projects.
//
// Supported manifests: pyproject.toml (PEP 621 project dependencies and
// Poetry dependency tables) and requirements.txt variants. Package
// names are normalized per PEP 503 before lookups against PyPI.
package python
