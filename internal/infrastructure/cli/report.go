package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/tasklens/pkg/application"
	"github.com/felixgeelhaar/tasklens/pkg/domain/analytics"
	"github.com/spf13/cobra"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full analytics report for the task collection",
	RunE:  runReport,
}

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(1).
			PaddingRight(1)

	tierGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	tierOrange = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	tierRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func runReport(cmd *cobra.Command, args []string) error {
	report, err := loadReportService().GetReport()
	if err != nil {
		return fmt.Errorf("get report: %w", err)
	}

	if reportJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	return outputReportText(report)
}

func outputReportText(r *application.Report) error {
	fmt.Println(sectionStyle.Render("Overview"))
	fmt.Printf("Tasks:             %d\n", r.TotalTasks)
	fmt.Printf("Revenue (done):    %.2f\n", r.TotalRevenue)
	fmt.Printf("Hours logged:      %.1f\n", r.TotalTimeTaken)
	fmt.Printf("Revenue per hour:  %.2f\n", r.RevenuePerHour)
	fmt.Printf("Time efficiency:   %.1f%%\n", r.TimeEfficiency)
	fmt.Printf("Weighted pipeline: %.2f\n", r.WeightedPipeline)
	fmt.Printf("Average ROI:       %.2f (%s)\n", r.AverageROI, formatGrade(r.Grade))

	fmt.Println()
	fmt.Println(sectionStyle.Render("Funnel"))
	fmt.Printf("Todo: %d  In Progress: %d  Done: %d\n", r.Funnel.Todo, r.Funnel.InProgress, r.Funnel.Done)
	fmt.Printf("Started:   %.0f%%\n", r.Funnel.ConversionTodoToInProgress*100)
	fmt.Printf("Finished:  %.2f done per task in progress\n", r.Funnel.ConversionInProgressToDone)

	if len(r.Throughput) > 0 {
		fmt.Println()
		fmt.Println(sectionStyle.Render("Throughput"))
		for _, b := range r.Throughput {
			fmt.Printf("%-10s %d completed\n", b.Week, b.Count)
		}
		for _, b := range r.Forecast {
			fmt.Printf("%-10s %d projected\n", b.Week, b.Count)
		}
	}

	if len(r.Ranked) > 0 {
		fmt.Println()
		fmt.Println(sectionStyle.Render("Top Tasks"))
		limit := 5
		if len(r.Ranked) < limit {
			limit = len(r.Ranked)
		}
		for _, t := range r.Ranked[:limit] {
			fmt.Printf("%8.2f  %-8s %s\n", t.ROI, t.Priority.DisplayName(), t.Title)
		}
	}

	return nil
}

func formatGrade(g analytics.PerformanceGrade) string {
	switch g {
	case analytics.GradeExcellent:
		return tierGreen.Render(g.DisplayName())
	case analytics.GradeGood:
		return tierOrange.Render(g.DisplayName())
	default:
		return tierRed.Render(g.DisplayName())
	}
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(reportCmd)
}
