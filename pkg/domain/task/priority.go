package task

import (
	"encoding/json"
	"fmt"
)

// priorityWeights defines the ranking weight of each priority.
// The map is never mutated after package initialization.
var priorityWeights = map[TaskPriority]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// AllTaskPriorities returns all valid task priorities, highest first.
func AllTaskPriorities() []TaskPriority {
	return []TaskPriority{
		PriorityHigh,
		PriorityMedium,
		PriorityLow,
	}
}

// IsValid returns true if the priority is a valid task priority.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the priority.
func (p TaskPriority) String() string {
	return string(p)
}

// Weight returns the ranking weight of the priority (higher = more important).
// Unrecognized priorities weigh the same as low so that dirty data degrades
// instead of failing.
func (p TaskPriority) Weight() int {
	if w, ok := priorityWeights[p]; ok {
		return w
	}
	return 1
}

// DisplayName returns a human-readable display name for the priority.
func (p TaskPriority) DisplayName() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}

// ParseTaskPriority parses a string into a TaskPriority.
func ParseTaskPriority(s string) (TaskPriority, error) {
	priority := TaskPriority(s)
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid task priority: %s", s)
	}
	return priority, nil
}

// DefaultTaskPriority returns the default priority for new tasks.
func DefaultTaskPriority() TaskPriority {
	return PriorityMedium
}

// MarshalJSON implements json.Marshaler interface.
func (p TaskPriority) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (p *TaskPriority) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	// Accept empty string as medium for backward compatibility
	if str == "" {
		*p = PriorityMedium
		return nil
	}

	priority := TaskPriority(str)
	if !priority.IsValid() {
		return fmt.Errorf("invalid task priority: %s", str)
	}

	*p = priority
	return nil
}
