package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/tasklens/pkg/domain/analytics"
	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
	"github.com/spf13/cobra"
)

var velocityJSON bool

var velocityCmd = &cobra.Command{
	Use:   "velocity",
	Short: "Average and median completion time per priority",
	RunE:  runVelocity,
}

func runVelocity(cmd *cobra.Command, args []string) error {
	tasks, err := loadRepository().LoadTasks()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	stats := analytics.VelocityByPriority(tasks)

	if velocityJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Println("Velocity by Priority")
	fmt.Println("--------------------")
	for _, p := range task.AllTaskPriorities() {
		s := stats[p]
		fmt.Printf("%-8s avg %.1f days, median %.1f days\n", p.DisplayName(), s.AvgDays, s.MedianDays)
	}
	return nil
}

func init() {
	velocityCmd.Flags().BoolVar(&velocityJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(velocityCmd)
}
