package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/tasklens/pkg/domain/analytics"
	"github.com/spf13/cobra"
)

var throughputJSON bool

var throughputCmd = &cobra.Command{
	Use:   "throughput",
	Short: "Completed tasks per ISO week",
	RunE:  runThroughput,
}

func runThroughput(cmd *cobra.Command, args []string) error {
	tasks, err := loadRepository().LoadTasks()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	buckets := analytics.ThroughputByWeek(tasks)

	if throughputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(buckets)
	}

	if len(buckets) == 0 {
		fmt.Println("No completed tasks yet.")
		return nil
	}

	fmt.Printf("%-10s %s\n", "Week", "Completed")
	for _, b := range buckets {
		fmt.Printf("%-10s %d\n", b.Week, b.Count)
	}
	return nil
}

func init() {
	throughputCmd.Flags().BoolVar(&throughputJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(throughputCmd)
}
