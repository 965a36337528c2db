package application

import (
	"fmt"

	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
)

// mockRepository is an in-memory TaskRepository for service tests.
type mockRepository struct {
	tasks       []task.Task
	initialized bool
	loadErr     error
	saveErr     error
}

func (m *mockRepository) Initialize() error {
	m.initialized = true
	return nil
}

func (m *mockRepository) IsInitialized() bool {
	return m.initialized
}

func (m *mockRepository) SaveTasks(tasks []task.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tasks = make([]task.Task, len(tasks))
	copy(m.tasks, tasks)
	return nil
}

func (m *mockRepository) LoadTasks() ([]task.Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]task.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

var errBroken = fmt.Errorf("repository unavailable")
