package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a JSON task export into the workspace",
	Long: `Import validates the given JSON file against the task schema and
replaces the stored collection. Records without an ID are assigned one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := loadRepository()
		if !repo.IsInitialized() {
			return fmt.Errorf("workspace not initialized; run: tasklens init")
		}

		imported, err := repo.ImportJSON(args[0])
		if err != nil {
			return fmt.Errorf("import tasks: %w", err)
		}

		fmt.Printf("Imported %d tasks from %s\n", len(imported), args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(importCmd)
}
