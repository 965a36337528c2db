package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/tasklens/pkg/domain/analytics"
	"github.com/spf13/cobra"
)

var (
	forecastWeeks int
	forecastJSON  bool
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project weekly throughput from completed work",
	Long: `Forecast counts completions per ISO week and projects future weeks
from the mean observed count. This is a naive constant-mean model, not a
trend model: every projected week carries the same count.`,
	RunE: runForecast,
}

func runForecast(cmd *cobra.Command, args []string) error {
	tasks, err := loadRepository().LoadTasks()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	observed := analytics.ThroughputByWeek(tasks)
	projected := analytics.Forecast(observed, forecastWeeks)

	if forecastJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"observed":  observed,
			"projected": projected,
		})
	}

	if len(observed) == 0 {
		fmt.Println("Unable to forecast: no completed tasks yet.")
		fmt.Println("Complete some tasks to enable projections.")
		return nil
	}

	fmt.Println("Weekly Throughput")
	fmt.Println("-----------------")
	for _, b := range observed {
		fmt.Printf("%-10s %d completed\n", b.Week, b.Count)
	}

	fmt.Println()
	fmt.Println("Projection")
	fmt.Println("----------")
	for _, b := range projected {
		fmt.Printf("%-10s %d projected\n", b.Week, b.Count)
	}
	return nil
}

func init() {
	forecastCmd.Flags().IntVar(&forecastWeeks, "weeks", analytics.DefaultForecastHorizon, "Number of weeks to project")
	forecastCmd.Flags().BoolVar(&forecastJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(forecastCmd)
}
