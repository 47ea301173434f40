// Package report renders audit results for terminals, files, and CI
// pipelines.
package report

import (
	"io"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/errors"
	"github.com/matzehuels/stackaudit/pkg/license"
)

// Format selects the output encoding.
type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatGitHub Format = "github" // GitHub Actions workflow annotations
)

// Formats lists the supported output formats for CLI help and validation.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatGitHub}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (supported: text, json, yaml, github)", s)
}

// Options configures report rendering.
type Options struct {
	Format          Format
	RestrictiveOnly bool // Render only restrictive or incompatible dependencies
	NoColor         bool // Disable terminal styling in text output
}

// Write renders the result to w in the configured format.
func Write(w io.Writer, result *audit.Result, opts Options) error {
	view := result
	if opts.RestrictiveOnly {
		view = filtered(result)
	}

	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, view)
	case FormatYAML:
		return writeYAML(w, view)
	case FormatGitHub:
		return writeGitHub(w, view)
	case FormatText, "":
		return writeText(w, view, opts.NoColor)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", opts.Format)
	}
}

// filtered returns a shallow copy of the result containing only the
// dependencies a reviewer has to act on. Stats keep the full-run counts
// so summaries stay truthful.
func filtered(result *audit.Result) *audit.Result {
	out := *result
	out.Dependencies = nil
	for _, d := range result.Dependencies {
		if d.Restrictive || d.Compat == license.Incompatible {
			out.Dependencies = append(out.Dependencies, d)
		}
	}
	return &out
}
