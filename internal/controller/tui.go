package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "dotcov.dev/pkg/dotcov/internal/model"
)

const (
	// Lists up to this size are printed instead of opening the viewer.
	smallListThreshold = 15

	defaultTableHeight = 10
	minTableHeight     = 3
	// title, blank line, table borders, summary and help
	chromeLines = 6

	maxPathWidth   = 80
	minPathWidth   = 4
	numberColWidth = 8
	rateColWidth   = 9
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	tableBorder  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// TUI implements UI with an interactive Bubble Tea table for long coverage lists.
type TUI struct {
	*SimpleUI
	options []tea.ProgramOption
}

// NewTUI creates a new TUI writing to the command's output streams.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		options: []tea.ProgramOption{
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
			tea.WithAltScreen(),
		},
	}
}

// DisplayCoverage opens a scrollable table of the files. Short lists are
// printed like SimpleUI does.
func (t *TUI) DisplayCoverage(ctx context.Context, reports []m.Report, files []m.FileCoverage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(files) <= smallListThreshold {
		return t.SimpleUI.DisplayCoverage(ctx, reports, files)
	}

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	program := tea.NewProgram(newCoverageModel(reports, files), options...)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}

		return fmt.Errorf("coverage viewer: %w", err)
	}

	return nil
}

type coverageModel struct {
	table    table.Model
	reports  []m.Report
	summary  m.Summary
	quitting bool
}

func newCoverageModel(reports []m.Report, files []m.FileCoverage) coverageModel {
	columns := []table.Column{
		{Title: "Path", Width: pathColumnWidth(files)},
		{Title: "Points", Width: numberColWidth},
		{Title: "Covered", Width: numberColWidth},
		{Title: "Lines", Width: numberColWidth},
		{Title: "Coverage", Width: rateColWidth},
	}

	rows := make([]table.Row, 0, len(files))
	for _, row := range coverageRows(files) {
		rows = append(rows, table.Row(row))
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	coverageTable := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
		table.WithStyles(styles),
	)

	return coverageModel{
		table:   coverageTable,
		reports: reports,
		summary: m.Summarize(files),
	}
}

func pathColumnWidth(files []m.FileCoverage) int {
	width := minPathWidth

	for _, file := range files {
		if l := len(file.Path); l > width {
			width = l
		}
	}

	if width > maxPathWidth {
		width = maxPathWidth
	}

	return width
}

func (cm coverageModel) Init() tea.Cmd {
	return nil
}

func (cm coverageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - chromeLines
		if height < minTableHeight {
			height = minTableHeight
		}

		cm.table.SetHeight(height)

		return cm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			cm.quitting = true
			return cm, tea.Quit
		}
	}

	var cmd tea.Cmd

	cm.table, cmd = cm.table.Update(msg)

	return cm, cmd
}

func (cm coverageModel) View() string {
	if cm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(cm.title()))
	b.WriteString("\n\n")
	b.WriteString(tableBorder.Render(cm.table.View()))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"%d file(s)  %d/%d points covered  line coverage %s",
		cm.summary.Files, cm.summary.CoveredPoints, cm.summary.Points, formatRate(cm.summary.LineRate()),
	)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • q quit"))
	b.WriteString("\n")

	return b.String()
}

func (cm coverageModel) title() string {
	if len(cm.reports) == 1 {
		return fmt.Sprintf("dotcov - %s (dotCover %s)", cm.reports[0].Path, cm.reports[0].Version)
	}

	return fmt.Sprintf("dotcov - %d report(s)", len(cm.reports))
}
