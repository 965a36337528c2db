package analytics

import (
	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
)

// FunnelCounts captures the todo -> in progress -> done progression of a
// task collection, with stage conversion ratios as fractions, not
// percentages.
type FunnelCounts struct {
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`

	// ConversionTodoToInProgress is the fraction of all tasks that ever
	// left todo: (inProgress + done) / total.
	ConversionTodoToInProgress float64 `json:"conversion_todo_to_in_progress"`
	// ConversionInProgressToDone is done / inProgress.
	ConversionInProgressToDone float64 `json:"conversion_in_progress_to_done"`
}

// Total returns the number of tasks counted across all stages.
func (f FunnelCounts) Total() int {
	return f.Todo + f.InProgress + f.Done
}

// Funnel counts tasks by status and derives stage conversion ratios.
// Unrecognized statuses count as todo so totals stay consistent.
func Funnel(tasks []task.Task) FunnelCounts {
	var counts FunnelCounts
	for _, t := range tasks {
		switch t.Status {
		case task.StatusInProgress:
			counts.InProgress++
		case task.StatusDone:
			counts.Done++
		default:
			counts.Todo++
		}
	}

	total := len(tasks)
	if total > 0 {
		counts.ConversionTodoToInProgress = float64(counts.InProgress+counts.Done) / float64(total)
	}
	if counts.InProgress > 0 {
		counts.ConversionInProgressToDone = float64(counts.Done) / float64(counts.InProgress)
	}
	return counts
}
