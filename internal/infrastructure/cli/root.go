package cli

import (
	"os"

	"github.com/felixgeelhaar/tasklens/pkg/application"
	"github.com/felixgeelhaar/tasklens/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "tasklens",
	Version: Version,
	Short:   "Revenue and velocity analytics for task collections",
	Long: `Tasklens computes derived metrics, rankings, and time-bucketed
analytics over a collection of task records:
1. How much is the pipeline worth, and how efficiently is it moving?
2. Which tasks deserve attention first?
3. What does recent throughput say about the coming weeks?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

// loadRepository returns the filesystem repository for the current directory.
func loadRepository() *storage.FilesystemRepository {
	cwd, _ := os.Getwd()
	return storage.NewFilesystemRepository(cwd)
}

// loadReportService wires a report service for the current directory.
func loadReportService() *application.ReportService {
	return application.NewReportService(loadRepository())
}
