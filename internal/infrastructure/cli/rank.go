package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/tasklens/pkg/domain/analytics"
	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
	"github.com/spf13/cobra"
)

var rankJSON bool

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank tasks by ROI, priority, and title",
	RunE:  runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	tasks, err := loadRepository().LoadTasks()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	derived := make([]task.DerivedTask, len(tasks))
	for i, t := range tasks {
		derived[i] = task.WithDerived(t)
	}
	ranked := analytics.SortTasks(derived)

	if rankJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}

	if len(ranked) == 0 {
		fmt.Println("No tasks to rank.")
		return nil
	}

	fmt.Printf("%-4s %-10s %-8s %-12s %s\n", "#", "ROI", "Priority", "Status", "Title")
	for i, t := range ranked {
		fmt.Printf("%-4d %-10.2f %-8s %-12s %s\n",
			i+1, t.ROI, t.Priority.DisplayName(), t.Status.DisplayName(), t.Title)
	}
	return nil
}

func init() {
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(rankCmd)
}
