package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/license"
)

// depSort selects the column the browser orders rows by.
type depSort int

const (
	sortName depSort = iota
	sortLicense
	sortRestrictive
	sortCompat
)

func (s depSort) String() string {
	switch s {
	case sortLicense:
		return "license"
	case sortRestrictive:
		return "restrictive"
	case sortCompat:
		return "compatibility"
	default:
		return "name"
	}
}

// next cycles through the sortable columns.
func (s depSort) next() depSort {
	return (s + 1) % 4
}

// DepListModel is the bubbletea model for browsing audit results.
type DepListModel struct {
	Result          *audit.Result
	Taxonomy        license.Taxonomy
	Cursor          int
	Offset          int
	Height          int
	RestrictiveOnly bool
	SortBy          depSort
}

// NewDepListModel creates a browser over the given result. The taxonomy is
// only consulted at render time, for the "known" column.
func NewDepListModel(result *audit.Result, taxonomy license.Taxonomy) DepListModel {
	return DepListModel{
		Result:   result,
		Taxonomy: taxonomy,
		Height:   15,
	}
}

// visible returns the dependencies under the current filter and sort order.
func (m DepListModel) visible() []license.Info {
	out := make([]license.Info, 0, len(m.Result.Dependencies))
	for _, d := range m.Result.Dependencies {
		if m.RestrictiveOnly && !d.Restrictive && d.Compat != license.Incompatible {
			continue
		}
		out = append(out, d)
	}

	slices.SortStableFunc(out, func(a, b license.Info) int {
		switch m.SortBy {
		case sortLicense:
			return strings.Compare(a.Display(), b.Display())
		case sortRestrictive:
			return boolRank(b.Restrictive) - boolRank(a.Restrictive)
		case sortCompat:
			return strings.Compare(string(a.Compat), string(b.Compat))
		default:
			return strings.Compare(a.Name, b.Name)
		}
	})
	return out
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// known reports whether the dependency's license resolves to a taxonomy entry.
func (m DepListModel) known(d license.Info) bool {
	if d.License == nil {
		return false
	}
	_, ok := m.Taxonomy[license.Normalize(*d.License)]
	return ok
}

func (m DepListModel) Init() tea.Cmd {
	return nil
}

func (m DepListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "r":
			m.RestrictiveOnly = !m.RestrictiveOnly
			m.Cursor = 0
			m.Offset = 0
		case "s":
			m.SortBy = m.SortBy.next()
			m.Cursor = 0
			m.Offset = 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DepListModel) View() string {
	var b strings.Builder

	title := "Dependencies"
	if m.RestrictiveOnly {
		title = "Dependencies (restrictive only)"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("↑/↓ navigate  r toggle restrictive  s sort (%s)  q quit", m.SortBy)))
	b.WriteString("\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(StyleDim.Render("  nothing to show"))
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(visible) {
		end = len(visible)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := visible[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		version := d.Version
		if version == "" {
			version = "—"
		}
		restrictive := ""
		if d.Restrictive {
			restrictive = "✗"
		}
		known := ""
		if m.known(d) {
			known = "✓"
		}

		rows = append(rows, []string{cursor, d.Name, version, d.Display(), known, restrictive, string(d.Compat)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Version", "License", "Known", "Restrictive", "Compatibility").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(visible) {
				return lipgloss.NewStyle()
			}
			d := visible[actualIdx]

			base := lipgloss.NewStyle()
			if actualIdx == m.Cursor {
				base = base.Bold(true)
			}
			switch {
			case d.Restrictive || d.Compat == license.Incompatible:
				return base.Foreground(colorRed)
			case d.Compat == license.Unknown:
				return base.Foreground(colorYellow)
			default:
				if col == 2 {
					return base.Foreground(colorDim)
				}
				return base
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]  project license: %s",
		m.Cursor+1, len(visible), projectLicenseLabel(m.Result))))

	return b.String()
}

func projectLicenseLabel(result *audit.Result) string {
	if result.ProjectLicense == "" {
		return "not detected"
	}
	return result.ProjectLicense
}

// browseResult runs the interactive dependency browser.
func browseResult(result *audit.Result, taxonomy license.Taxonomy) error {
	p := tea.NewProgram(NewDepListModel(result, taxonomy))
	_, err := p.Run()
	return err
}
