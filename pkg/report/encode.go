package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/stackaudit/pkg/audit"
)

func writeJSON(w io.Writer, result *audit.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeYAML(w io.Writer, result *audit.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlResult(result)); err != nil {
		return err
	}
	return enc.Close()
}

// yamlResult mirrors the JSON field names; yaml.v3 would otherwise
// lowercase the Go field names and drift from the JSON output.
func yamlResult(result *audit.Result) map[string]any {
	deps := make([]map[string]any, 0, len(result.Dependencies))
	for _, d := range result.Dependencies {
		entry := map[string]any{
			"name":           d.Name,
			"version":        d.Version,
			"license":        d.Display(),
			"is_restrictive": d.Restrictive,
			"compatibility":  string(d.Compat),
		}
		deps = append(deps, entry)
	}
	return map[string]any{
		"run_id":          result.RunID,
		"path":            result.Path,
		"project_license": result.ProjectLicense,
		"started_at":      result.StartedAt,
		"dependencies":    deps,
		"stats": map[string]int{
			"total":        result.Stats.Total,
			"restrictive":  result.Stats.Restrictive,
			"incompatible": result.Stats.Incompatible,
			"unknown":      result.Stats.Unknown,
		},
	}
}
