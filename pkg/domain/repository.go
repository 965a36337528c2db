package domain

import (
	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
)

// TaskRepository handles the persistence of the task collection in the
// .tasklens/ directory.
type TaskRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveTasks(tasks []task.Task) error
	LoadTasks() ([]task.Task, error)
}
