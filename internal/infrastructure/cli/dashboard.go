package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/tasklens/pkg/application"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("TASKLENS_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(initialModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var summaryGood = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var summaryWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

type model struct {
	table  table.Model
	report *application.Report
	err    error
}

func initialModel() model {
	report, err := loadReportService().GetReport()
	if err != nil {
		return model{err: err}
	}

	columns := []table.Column{
		{Title: "ROI", Width: 10},
		{Title: "Priority", Width: 8},
		{Title: "Status", Width: 12},
		{Title: "Title", Width: 40},
	}

	rows := []table.Row{}
	for _, t := range report.Ranked {
		rows = append(rows, table.Row{
			fmt.Sprintf("%.2f", t.ROI),
			t.Priority.DisplayName(),
			t.Status.DisplayName(),
			t.Title,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))

	t.SetStyles(s)

	return model{table: t, report: report}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading dashboard: %v\nPress q to quit.", m.err)
	}

	header := headerStyle.Render(fmt.Sprintf("tasklens · %d tasks", m.report.TotalTasks))

	summary := fmt.Sprintf("Revenue %.2f · Pipeline %.2f · Efficiency %.1f%%",
		m.report.TotalRevenue, m.report.WeightedPipeline, m.report.TimeEfficiency)

	gradeLine := summaryWarn.Render(fmt.Sprintf("Avg ROI %.2f (%s)", m.report.AverageROI, m.report.Grade.DisplayName()))
	if m.report.AverageROI > 500 {
		gradeLine = summaryGood.Render(fmt.Sprintf("Avg ROI %.2f (%s)", m.report.AverageROI, m.report.Grade.DisplayName()))
	}

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			summary,
			gradeLine,
			"\nRanked Tasks:",
			m.table.View(),
			"\nPress q to quit.",
		),
	)
}
