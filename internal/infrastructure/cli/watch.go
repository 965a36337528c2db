package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/tasklens/internal/infrastructure/watch"
	"github.com/felixgeelhaar/tasklens/pkg/storage"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute the report whenever the task store changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := loadRepository()
		if !repo.IsInitialized() {
			return fmt.Errorf("workspace not initialized; run: tasklens init")
		}

		service := loadReportService()
		printReport := func() {
			report, err := service.GetReport()
			if err != nil {
				fmt.Printf("recompute report: %v\n", err)
				return
			}
			fmt.Printf("\n--- %s ---\n", time.Now().Format("15:04:05"))
			_ = outputReportText(report)
		}

		storeDir := filepath.Join(repo.Root(), storage.TasklensDir)
		watcher, err := watch.NewStoreWatcher(storeDir, storage.TasksFile, watchDebounce, printReport)
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}

		fmt.Printf("Watching %s for changes. Ctrl-C to stop.\n", storeDir)
		printReport()
		return watcher.Run(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet window before recomputing")
	RootCmd.AddCommand(watchCmd)
}
