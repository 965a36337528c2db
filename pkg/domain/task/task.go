package task

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// Task is a unit of tracked work. Timestamps are kept as the ISO-8601
// strings the source system produced; parsing happens lazily in the
// analytics that need instants, so dirty records degrade per field
// instead of poisoning the whole collection.
type Task struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Revenue     float64      `json:"revenue" yaml:"revenue"`
	TimeTaken   float64      `json:"time_taken" yaml:"time_taken"` // hours
	Priority    TaskPriority `json:"priority" yaml:"priority"`
	Status      TaskStatus   `json:"status" yaml:"status"`
	CreatedAt   string       `json:"created_at" yaml:"created_at"`
	CompletedAt string       `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

// IsCompleted returns true if the task carries a completion timestamp.
func (t Task) IsCompleted() bool {
	return t.CompletedAt != ""
}

// DerivedTask is a Task augmented with computed ranking fields.
type DerivedTask struct {
	Task
	ROI            float64 `json:"roi" yaml:"roi"`
	PriorityWeight int     `json:"priority_weight" yaml:"priority_weight"`
}

// WithDerived returns a derived copy of the task. The input is never modified.
func WithDerived(t Task) DerivedTask {
	return DerivedTask{
		Task:           t,
		ROI:            ComputeROI(t.Revenue, t.TimeTaken),
		PriorityWeight: t.Priority.Weight(),
	}
}

// ComputeROI returns revenue per hour rounded to two decimal places.
// Non-finite inputs and non-positive time both yield 0 so that dirty
// records cannot leak NaN or Inf into downstream aggregates.
func ComputeROI(revenue, timeTaken float64) float64 {
	if math.IsNaN(revenue) || math.IsInf(revenue, 0) {
		return 0
	}
	if math.IsNaN(timeTaken) || math.IsInf(timeTaken, 0) {
		return 0
	}
	if timeTaken <= 0 {
		return 0
	}
	return roundFixed(revenue/timeTaken, 2)
}

// roundFixed rounds half away from zero at the given number of decimal
// places, operating on the shortest decimal representation of v. This is
// fixed-point rounding, deliberately not float round-to-even: 2.675
// rounds to 2.68, not 2.67.
func roundFixed(v float64, places int) float64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(fracPart) <= places {
		return v
	}

	units, err := strconv.ParseInt(intPart+fracPart[:places], 10, 64)
	if err != nil {
		// Magnitude beyond int64 range; fall back to float rounding.
		scale := math.Pow(10, float64(places))
		return math.Round(v*scale) / scale
	}
	if fracPart[places] >= '5' {
		units++
	}

	result := float64(units) / math.Pow(10, float64(places))
	if neg {
		result = -result
	}
	return result
}

// timestampLayouts are the accepted ISO-8601 shapes, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp string in UTC. Callers that
// want strict input validation use this directly; the analytics functions
// absorb the error and skip or zero the affected record instead.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp: %q", s)
}
