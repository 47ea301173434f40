// Package cpp provides manifest parsing for C and C++ projects.
//
// Supported manifests: vcpkg.json and conanfile.txt. Neither ecosystem
// exposes a registry license API, so dependencies parse with unknown
// licenses unless classified later from other sources.
package cpp
