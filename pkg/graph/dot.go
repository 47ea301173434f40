// Package graph renders license relationships as Graphviz diagrams: the
// static compatibility matrix, and per-run dependency graphs colored by
// audit verdict.
package graph

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/license"
)

// CompatDOT renders the compatibility matrix as a DOT digraph. An edge
// from A to B means a dependency licensed B may be included in a project
// licensed A. Output is sorted so repeated runs produce identical bytes.
func CompatDOT(relation map[string][]string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph compatibility {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, project := range slices.Sorted(maps.Keys(relation)) {
		for _, dep := range relation[project] {
			if dep == project {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", project, dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ResultDOT renders one audit run: the project at the center, one node
// per dependency, colored by verdict. Restrictive dependencies are
// filled red, unknown compatibility yellow, everything else white.
func ResultDOT(result *audit.Result) string {
	project := result.ProjectLicense
	if project == "" {
		project = "project"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph audit {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  %q [style=\"rounded,filled,bold\", fillcolor=lightblue];\n", project)
	buf.WriteString("\n")

	for _, d := range result.Dependencies {
		label := d.Name
		if d.Version != "" {
			label += "\n" + d.Version
		}
		label += "\n" + d.Display()

		id := nodeID(d)
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", id, label, verdictAttrs(d))
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", project, id, edgeAttrs(d))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(d license.Info) string {
	if d.Version == "" {
		return d.Name
	}
	return d.Name + "@" + d.Version
}

func verdictAttrs(d license.Info) string {
	switch {
	case d.Restrictive:
		return ", fillcolor=lightcoral"
	case d.Compat == license.Unknown:
		return ", fillcolor=lightyellow"
	default:
		return ""
	}
}

func edgeAttrs(d license.Info) string {
	switch d.Compat {
	case license.Incompatible:
		return " [color=red, style=bold]"
	case license.Unknown:
		return " [color=gray, style=dashed]"
	default:
		return ""
	}
}
