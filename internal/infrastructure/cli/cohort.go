package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/tasklens/pkg/domain/analytics"
	"github.com/spf13/cobra"
)

var cohortJSON bool

var cohortCmd = &cobra.Command{
	Use:   "cohort",
	Short: "Revenue by creation week and priority",
	RunE:  runCohort,
}

func runCohort(cmd *cobra.Command, args []string) error {
	tasks, err := loadRepository().LoadTasks()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	cohorts := analytics.CohortRevenue(tasks)

	if cohortJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cohorts)
	}

	if len(cohorts) == 0 {
		fmt.Println("No cohorts yet.")
		return nil
	}

	fmt.Printf("%-10s %-8s %s\n", "Week", "Priority", "Revenue")
	for _, c := range cohorts {
		fmt.Printf("%-10s %-8s %.2f\n", c.Week, c.Priority.DisplayName(), c.Revenue)
	}
	return nil
}

func init() {
	cohortCmd.Flags().BoolVar(&cohortJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(cohortCmd)
}
