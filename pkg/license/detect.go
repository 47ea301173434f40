package license

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// licenseFileNames are the candidate license files, checked in order.
var licenseFileNames = []string{"LICENSE", "LICENSE.txt", "LICENSE.md", "license", "COPYING"}

// fingerprint identifies a license family by fixed phrases in the file text.
// All phrases must be present. First match wins.
type fingerprint struct {
	phrases []string
	id      string
}

var fingerprints = []fingerprint{
	{[]string{"MIT License"}, "MIT"},
	{[]string{"Permission is hereby granted, free of charge"}, "MIT"},
	{[]string{"GNU GENERAL PUBLIC LICENSE", "Version 3"}, "GPL-3.0"},
	{[]string{"Apache License", "Version 2.0"}, "Apache-2.0"},
	{[]string{"BSD", "Redistribution and use", "Neither the name"}, "BSD-3-Clause"},
	{[]string{"GNU LESSER GENERAL PUBLIC LICENSE", "Version 3"}, "LGPL-3.0"},
	{[]string{"Mozilla Public License", "Version 2.0"}, "MPL-2.0"},
}

// DetectProjectLicense guesses the project's own license by scanning, in
// order: license files by fixed filename candidates, then package.json,
// Cargo.toml, and pyproject.toml for a declared license field. The first
// recognized value wins. It returns "" when nothing was recognized; callers
// must treat that as "skip compatibility resolution", not as an error. Read
// or parse failures on individual files are skipped, never surfaced.
func DetectProjectLicense(projectPath string) string {
	for _, name := range licenseFileNames {
		content, err := os.ReadFile(filepath.Join(projectPath, name))
		if err != nil {
			continue
		}
		if id := matchLicenseText(string(content)); id != "" {
			return id
		}
	}

	if id := fromPackageJSON(filepath.Join(projectPath, "package.json")); id != "" {
		return id
	}
	if id := fromCargoToml(filepath.Join(projectPath, "Cargo.toml")); id != "" {
		return id
	}
	return fromPyprojectToml(filepath.Join(projectPath, "pyproject.toml"))
}

func matchLicenseText(content string) string {
	for _, fp := range fingerprints {
		matched := true
		for _, p := range fp.phrases {
			if !strings.Contains(content, p) {
				matched = false
				break
			}
		}
		if matched {
			return fp.id
		}
	}
	return ""
}

func fromPackageJSON(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var pkg struct {
		License string `json:"license"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	return pkg.License
}

func fromCargoToml(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var cargo struct {
		Package struct {
			License string `toml:"license"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return ""
	}
	return cargo.Package.License
}

func fromPyprojectToml(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	// [project].license is either a plain string or a table with a text key.
	var proj struct {
		Project struct {
			License toml.Primitive `toml:"license"`
		} `toml:"project"`
	}
	md, err := toml.Decode(string(data), &proj)
	if err != nil {
		return ""
	}

	var s string
	if md.PrimitiveDecode(proj.Project.License, &s) == nil && s != "" {
		return s
	}
	var tbl struct {
		Text string `toml:"text"`
	}
	if md.PrimitiveDecode(proj.Project.License, &tbl) == nil {
		return tbl.Text
	}
	return ""
}
