package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

const taskSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["title", "revenue", "time_taken", "priority", "status", "created_at"],
    "properties": {
      "id": { "type": "string" },
      "title": { "type": "string", "minLength": 1 },
      "revenue": { "type": "number" },
      "time_taken": { "type": "number" },
      "priority": { "type": "string", "enum": ["high", "medium", "low"] },
      "status": { "type": "string", "enum": ["todo", "in_progress", "done"] },
      "created_at": { "type": "string" },
      "completed_at": { "type": "string" }
    }
  }
}`

var taskSchemaLoader = gojsonschema.NewStringLoader(taskSchemaJSON)

// ImportJSON validates a JSON task export against the task schema, assigns
// IDs to records that lack one, and replaces the stored collection.
func (r *FilesystemRepository) ImportJSON(path string) ([]task.Task, error) {
	// #nosec G304 -- Import path is user-supplied by design
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	documentLoader := gojsonschema.NewStringLoader(string(data))
	result, err := gojsonschema.Validate(taskSchemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate import file: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("import file does not match task schema: %v", msgs)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal import file: %w", err)
	}

	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
	}

	if err := r.SaveTasks(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
