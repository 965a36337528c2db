package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a tasklens workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := loadRepository()
		if repo.IsInitialized() {
			fmt.Println("Workspace already initialized.")
			return nil
		}
		if err := repo.Initialize(); err != nil {
			return fmt.Errorf("initialize workspace: %w", err)
		}
		fmt.Println("Initialized empty tasklens workspace in .tasklens/")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
