package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/license"
)

// writeGitHub emits GitHub Actions workflow commands so findings show up
// as annotations on the run. Incompatible dependencies are errors,
// restrictive-but-compatible ones are warnings.
func writeGitHub(w io.Writer, result *audit.Result) error {
	for _, d := range result.Dependencies {
		switch {
		case d.Compat == license.Incompatible:
			if err := annotate(w, "error", fmt.Sprintf("%s %s: license %s is incompatible with project license %s", d.Name, d.Version, d.Display(), result.ProjectLicense)); err != nil {
				return err
			}
		case d.Restrictive:
			if err := annotate(w, "warning", fmt.Sprintf("%s %s: license %s is restrictive", d.Name, d.Version, d.Display())); err != nil {
				return err
			}
		}
	}

	summary := fmt.Sprintf("license audit: %d dependencies, %d restrictive, %d incompatible", result.Stats.Total, result.Stats.Restrictive, result.Stats.Incompatible)
	return annotate(w, "notice", summary)
}

// annotate writes one workflow command. Newlines and percent signs in
// the message are escaped per the workflow command syntax.
func annotate(w io.Writer, level, message string) error {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	_, err := fmt.Fprintf(w, "::%s::%s\n", level, r.Replace(message))
	return err
}
