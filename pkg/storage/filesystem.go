// Package storage persists the task collection in the .tasklens/ workspace
// directory.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
	"gopkg.in/yaml.v3"
)

const TasklensDir = ".tasklens"
const TasksFile = "tasks.yaml"

// taskFile is the serialized shape of tasks.yaml.
type taskFile struct {
	Tasks []task.Task `yaml:"tasks"`
}

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .tasklens directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, TasklensDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, TasklensDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .tasklens directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, TasklensDir))
	return err == nil
}

func (r *FilesystemRepository) SaveTasks(tasks []task.Task) error {
	path, err := r.ResolvePath(TasksFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(taskFile{Tasks: tasks})
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadTasks reads the task collection. A missing tasks file is an empty
// collection, not an error; transient read failures are retried.
func (r *FilesystemRepository) LoadTasks() ([]task.Task, error) {
	retryer := retry.New[[]task.Task](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) ([]task.Task, error) {
		path, err := r.ResolvePath(TasksFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tasks file: %w", err)
		}

		var f taskFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tasks: %w", err)
		}
		return f.Tasks, nil
	})
}
