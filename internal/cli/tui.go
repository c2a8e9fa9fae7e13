package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ygorazambuja/pubspec-platform/pkg/analysis"
	"github.com/ygorazambuja/pubspec-platform/pkg/compat"
)

// sort modes for the interactive view.
const (
	sortManifest = iota // manifest order, as analyzed
	sortName
	sortStatus // problems first
)

var sortNames = map[int]string{
	sortManifest: "manifest",
	sortName:     "name",
	sortStatus:   "status",
}

// filter cycle: everything, then each status.
var filterCycle = []compat.Status{"", compat.StatusFull, compat.StatusPartial, compat.StatusNone}

// reportRow is one dependency in the interactive view.
type reportRow struct {
	pkg analysis.Package
	dev bool
}

// reportModel is the bubbletea model for the interactive report: a scrolling
// list over all analyzed dependencies with status filtering and sorting.
type reportModel struct {
	project string
	cfg     compat.Config
	rows    []reportRow

	filterIdx int
	sortMode  int
	cursor    int
	offset    int
	height    int
}

// runInteractive opens the interactive report view for one analysis run.
func runInteractive(a *analysis.Analysis, project string) error {
	rows := make([]reportRow, 0, len(a.Dependencies)+len(a.DevDependencies))
	for _, pkg := range a.Dependencies {
		rows = append(rows, reportRow{pkg: pkg})
	}
	for _, pkg := range a.DevDependencies {
		rows = append(rows, reportRow{pkg: pkg, dev: true})
	}

	model := reportModel{
		project: project,
		cfg:     a.Config,
		rows:    rows,
		height:  15,
	}
	_, err := tea.NewProgram(model).Run()
	return err
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "f":
			m.filterIdx = (m.filterIdx + 1) % len(filterCycle)
			m.cursor, m.offset = 0, 0
		case "s":
			m.sortMode = (m.sortMode + 1) % len(sortNames)
			m.cursor, m.offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-7, 5)
	}
	return m, nil
}

// visible returns the rows matching the active filter, in the active sort
// order. Filtering and sorting never mutate the underlying rows, so the
// manifest order can always be restored.
func (m reportModel) visible() []reportRow {
	filter := filterCycle[m.filterIdx]
	rows := make([]reportRow, 0, len(m.rows))
	for _, r := range m.rows {
		if filter == "" || r.pkg.Status == filter {
			rows = append(rows, r)
		}
	}

	switch m.sortMode {
	case sortName:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].pkg.Name < rows[j].pkg.Name })
	case sortStatus:
		sort.SliceStable(rows, func(i, j int) bool {
			return statusRank(rows[i].pkg.Status) < statusRank(rows[j].pkg.Status)
		})
	}
	return rows
}

// statusRank orders statuses with problems first.
func statusRank(s compat.Status) int {
	switch s {
	case compat.StatusNone:
		return 0
	case compat.StatusPartial:
		return 1
	default:
		return 2
	}
}

func (m reportModel) View() string {
	var b strings.Builder

	title := "Platform compatibility"
	if m.project != "" {
		title += " — " + m.project
	}
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  f filter  s sort  q quit"))
	b.WriteString("\n")

	filter := "all"
	if f := filterCycle[m.filterIdx]; f != "" {
		filter = string(f)
	}
	b.WriteString(styleGray.Render(fmt.Sprintf("filter: %s · sort: %s", filter, sortNames[m.sortMode])))
	b.WriteString("\n\n")

	rows := m.visible()
	if len(rows) == 0 {
		b.WriteString(styleDim.Render("  no packages match"))
		b.WriteString("\n")
		return b.String()
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r.pkg.Name))
	}

	end := min(m.offset+m.height, len(rows))
	for i := m.offset; i < end; i++ {
		r := rows[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		bucket := "   "
		if r.dev {
			bucket = styleDim.Render("dev")
		}

		line := fmt.Sprintf("%s%s %-*s %s", cursor, statusIcon(r.pkg.Status), width, r.pkg.Name, bucket)
		if missing := missingLine(r.pkg.Verdict); missing != "" {
			line += "  " + styleDim.Render(missing)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("%d/%d packages · targets: %s", len(rows), len(m.rows), targetsLine(m.cfg))))
	b.WriteString("\n")
	return b.String()
}
