package audit

import (
	"time"

	"github.com/matzehuels/stackaudit/pkg/license"
)

// Result is the outcome of one audit run.
type Result struct {
	RunID          string         `json:"run_id"`
	Path           string         `json:"path"`
	ProjectLicense string         `json:"project_license,omitempty"`
	StartedAt      time.Time      `json:"started_at"`
	Duration       time.Duration  `json:"duration_ns"`
	Dependencies   []license.Info `json:"dependencies"`
	Stats          Stats          `json:"stats"`
}

// Stats aggregates classification counts over a run.
type Stats struct {
	Total        int `json:"total"`
	Restrictive  int `json:"restrictive"`
	Incompatible int `json:"incompatible"`
	Unknown      int `json:"unknown"`
}

// Restrictive returns the subset of dependencies flagged restrictive.
func (r *Result) Restrictive() []license.Info {
	var out []license.Info
	for _, d := range r.Dependencies {
		if d.Restrictive {
			out = append(out, d)
		}
	}
	return out
}

// Clean reports whether the run found no restrictive and no incompatible
// dependencies. It drives the process exit code in strict mode.
func (r *Result) Clean() bool {
	return r.Stats.Restrictive == 0 && r.Stats.Incompatible == 0
}

func tally(infos []license.Info) Stats {
	stats := Stats{Total: len(infos)}
	for _, d := range infos {
		if d.Restrictive {
			stats.Restrictive++
		}
		switch d.Compat {
		case license.Incompatible:
			stats.Incompatible++
		case license.Unknown:
			stats.Unknown++
		}
	}
	return stats
}
