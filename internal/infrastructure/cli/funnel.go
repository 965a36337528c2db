package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/tasklens/pkg/domain/analytics"
	"github.com/spf13/cobra"
)

var funnelJSON bool

var funnelCmd = &cobra.Command{
	Use:   "funnel",
	Short: "Status funnel and stage conversion ratios",
	RunE:  runFunnel,
}

func runFunnel(cmd *cobra.Command, args []string) error {
	tasks, err := loadRepository().LoadTasks()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	counts := analytics.Funnel(tasks)

	if funnelJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	}

	fmt.Println("Status Funnel")
	fmt.Println("-------------")
	fmt.Printf("Todo:        %d\n", counts.Todo)
	fmt.Printf("In Progress: %d\n", counts.InProgress)
	fmt.Printf("Done:        %d\n", counts.Done)
	fmt.Printf("\nStarted:  %.0f%% of all tasks left todo\n", counts.ConversionTodoToInProgress*100)
	fmt.Printf("Finished: %.2f done per task in progress\n", counts.ConversionInProgressToDone)
	return nil
}

func init() {
	funnelCmd.Flags().BoolVar(&funnelJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(funnelCmd)
}
