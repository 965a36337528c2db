package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/tasklens/pkg/application"
	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage individual tasks",
}

var (
	addRevenue   float64
	addTimeTaken float64
	addPriority  string
)

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service := application.NewTaskService(loadRepository())

		priority := task.TaskPriority(addPriority)
		created, err := service.AddTask(args[0], addRevenue, addTimeTaken, priority)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Printf("Added task %s (%s, %s priority)\n", created.ID, created.Title, created.Priority.DisplayName())
		return nil
	},
}

func createTransitionCommand(use, short, event string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := application.NewTaskService(loadRepository())

			updated, err := service.TransitionTask(args[0], event)
			if err != nil {
				return fmt.Errorf("failed to transition task: %w", err)
			}

			fmt.Printf("Task %s is now %s.\n", updated.ID, updated.Status.DisplayName())
			return nil
		},
	}
}

var taskListJSON bool

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		service := application.NewTaskService(loadRepository())

		tasks, err := service.ListTasks()
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if taskListJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tasks)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks yet. Add one with: tasklens task add")
			return nil
		}

		for _, t := range tasks {
			fmt.Printf("%-38s %-12s %-8s %s\n", t.ID, t.Status.DisplayName(), t.Priority.DisplayName(), t.Title)
		}
		return nil
	},
}

func init() {
	taskAddCmd.Flags().Float64VarP(&addRevenue, "revenue", "r", 0, "Expected revenue for the task")
	taskAddCmd.Flags().Float64VarP(&addTimeTaken, "time", "t", 0, "Hours spent or estimated")
	taskAddCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Task priority (high, medium, low)")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output in JSON format")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(createTransitionCommand("start <id>", "Start working on a task", "start"))
	taskCmd.AddCommand(createTransitionCommand("complete <id>", "Mark a task as done", "complete"))
	taskCmd.AddCommand(createTransitionCommand("stop <id>", "Stop work and return a task to todo", "stop"))
	taskCmd.AddCommand(createTransitionCommand("reopen <id>", "Reopen a completed task", "reopen"))
	RootCmd.AddCommand(taskCmd)
}
