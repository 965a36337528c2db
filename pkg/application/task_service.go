package application

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/tasklens/pkg/domain"
	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
	"github.com/google/uuid"
)

// TaskService manages the lifecycle of tasks in the workspace store.
type TaskService struct {
	repo domain.TaskRepository
	now  func() time.Time
}

// NewTaskService creates a new task service.
func NewTaskService(repo domain.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
		now:  time.Now,
	}
}

// AddTask appends a new todo task to the store and returns it.
func (s *TaskService) AddTask(title string, revenue, timeTaken float64, priority task.TaskPriority) (*task.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("task title cannot be empty")
	}
	if !priority.IsValid() {
		priority = task.DefaultTaskPriority()
	}

	tasks, err := s.repo.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	created := task.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Revenue:   revenue,
		TimeTaken: timeTaken,
		Priority:  priority,
		Status:    task.StatusTodo,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	tasks = append(tasks, created)
	if err := s.repo.SaveTasks(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}
	return &created, nil
}

// TransitionTask runs the given lifecycle event ("start", "complete",
// "stop", "reopen") against the task's state machine and persists the
// result. Completing a task stamps its completion timestamp; leaving done
// clears it.
func (s *TaskService) TransitionTask(taskID string, event string) (*task.Task, error) {
	tasks, err := s.repo.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	idx := -1
	for i, t := range tasks {
		if t.ID == taskID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("task not found: %s", taskID)
	}

	current := tasks[idx]
	fsm, err := task.NewStateMachine(string(current.Status), current.ID)
	if err != nil {
		return nil, fmt.Errorf("build state machine: %w", err)
	}
	if err := fsm.Transition(event); err != nil {
		return nil, err
	}

	updated := current
	updated.Status = fsm.CurrentStatus()
	switch {
	case updated.Status == task.StatusDone:
		updated.CompletedAt = s.now().UTC().Format(time.RFC3339)
	case current.Status == task.StatusDone:
		updated.CompletedAt = ""
	}

	tasks[idx] = updated
	if err := s.repo.SaveTasks(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}
	return &updated, nil
}

// ListTasks returns the current task collection.
func (s *TaskService) ListTasks() ([]task.Task, error) {
	tasks, err := s.repo.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}
