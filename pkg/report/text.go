package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/license"
)

var (
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")

	headerStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	badStyle     = lipgloss.NewStyle().Foreground(colorRed)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

func writeText(w io.Writer, result *audit.Result, noColor bool) error {
	if len(result.Dependencies) == 0 {
		_, err := fmt.Fprintln(w, "No dependencies found.")
		return err
	}

	rows := make([][]string, 0, len(result.Dependencies))
	for _, d := range result.Dependencies {
		restrictive := "no"
		if d.Restrictive {
			restrictive = "YES"
		}
		version := d.Version
		if version == "" {
			version = "—"
		}
		rows = append(rows, []string{d.Name, version, d.Display(), restrictive, string(d.Compat)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Version", "License", "Restrictive", "Compatibility").
		Rows(rows...)

	if !noColor {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			d := result.Dependencies[row]
			switch col {
			case 1:
				return dimStyle
			case 3:
				if d.Restrictive {
					return badStyle
				}
				return okStyle
			case 4:
				switch d.Compat {
				case license.Incompatible:
					return badStyle
				case license.Unknown:
					return warnStyle
				default:
					return okStyle
				}
			}
			if d.Restrictive {
				return badStyle
			}
			return lipgloss.NewStyle()
		})
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	return writeSummary(w, result, noColor)
}

func writeSummary(w io.Writer, result *audit.Result, noColor bool) error {
	project := result.ProjectLicense
	if project == "" {
		project = "not detected"
	}
	line := fmt.Sprintf("%d dependencies · %d restrictive · %d incompatible · project license: %s",
		result.Stats.Total, result.Stats.Restrictive, result.Stats.Incompatible, project)
	if !noColor {
		style := summaryStyle.Foreground(colorGreen)
		if result.Stats.Restrictive > 0 || result.Stats.Incompatible > 0 {
			style = summaryStyle.Foreground(colorRed)
		}
		line = style.Render(line)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
