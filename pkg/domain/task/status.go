package task

import (
	"encoding/json"
	"fmt"
)

// validTransitions defines the allowed state transitions and their events.
// Map: currentStatus -> event -> targetStatus
var validTransitions = map[TaskStatus]map[string]TaskStatus{
	StatusTodo: {
		"start": StatusInProgress,
	},
	StatusInProgress: {
		"complete": StatusDone,
		"stop":     StatusTodo,
	},
	StatusDone: {
		"reopen": StatusTodo,
	},
}

// AllTaskStatuses returns all valid task statuses in funnel order.
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{
		StatusTodo,
		StatusInProgress,
		StatusDone,
	}
}

// IsValid returns true if the status is a valid task status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s TaskStatus) String() string {
	return string(s)
}

// CanTransitionWith returns true if the given event can trigger a transition from this status.
func (s TaskStatus) CanTransitionWith(event string) bool {
	transitions, ok := validTransitions[s]
	if !ok {
		return false
	}

	_, ok = transitions[event]
	return ok
}

// TransitionWith returns the target status for a given event, or an error if not allowed.
func (s TaskStatus) TransitionWith(event string) (TaskStatus, error) {
	transitions, ok := validTransitions[s]
	if !ok {
		return s, fmt.Errorf("no transitions defined for status: %s", s)
	}

	target, ok := transitions[event]
	if !ok {
		return s, fmt.Errorf("event '%s' not allowed from status '%s'", event, s)
	}

	return target, nil
}

// ValidEvents returns all valid events that can be triggered from this status.
func (s TaskStatus) ValidEvents() []string {
	transitions, ok := validTransitions[s]
	if !ok {
		return nil
	}

	var events []string
	for event := range transitions {
		events = append(events, event)
	}
	return events
}

// IsComplete returns true if the task has been finished.
func (s TaskStatus) IsComplete() bool {
	return s == StatusDone
}

// IsInProgress returns true if the task is currently being worked on.
func (s TaskStatus) IsInProgress() bool {
	return s == StatusInProgress
}

// IsTodo returns true if the task hasn't started yet.
func (s TaskStatus) IsTodo() bool {
	return s == StatusTodo
}

// DisplayName returns a human-readable display name for the status.
func (s TaskStatus) DisplayName() string {
	switch s {
	case StatusTodo:
		return "Todo"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// ParseTaskStatus parses a string into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return status, nil
}

// MarshalJSON implements json.Marshaler interface.
func (s TaskStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	// Accept empty string as todo for backward compatibility
	if str == "" {
		*s = StatusTodo
		return nil
	}

	status := TaskStatus(str)
	if !status.IsValid() {
		return fmt.Errorf("invalid task status: %s", str)
	}

	*s = status
	return nil
}
