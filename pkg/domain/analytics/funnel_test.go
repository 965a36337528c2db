package analytics

import (
	"testing"

	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
)

func TestFunnel(t *testing.T) {
	tasks := []task.Task{
		{Status: task.StatusTodo},
		{Status: task.StatusTodo},
		{Status: task.StatusInProgress},
		{Status: task.StatusDone},
		{Status: task.StatusDone},
		{Status: task.StatusDone},
	}

	counts := Funnel(tasks)

	if counts.Todo != 2 || counts.InProgress != 1 || counts.Done != 3 {
		t.Errorf("Funnel() counts = %d/%d/%d, want 2/1/3", counts.Todo, counts.InProgress, counts.Done)
	}
	if counts.Total() != len(tasks) {
		t.Errorf("Total() = %d, want %d", counts.Total(), len(tasks))
	}

	// (1 + 3) / 6
	wantStarted := float64(4) / 6
	if counts.ConversionTodoToInProgress != wantStarted {
		t.Errorf("ConversionTodoToInProgress = %v, want %v", counts.ConversionTodoToInProgress, wantStarted)
	}
	// 3 / 1
	if counts.ConversionInProgressToDone != 3 {
		t.Errorf("ConversionInProgressToDone = %v, want 3", counts.ConversionInProgressToDone)
	}
}

func TestFunnel_Empty(t *testing.T) {
	counts := Funnel(nil)
	if counts.Total() != 0 {
		t.Errorf("Total() = %d, want 0", counts.Total())
	}
	if counts.ConversionTodoToInProgress != 0 || counts.ConversionInProgressToDone != 0 {
		t.Errorf("conversions = %v/%v, want 0/0",
			counts.ConversionTodoToInProgress, counts.ConversionInProgressToDone)
	}
}

func TestFunnel_NoInProgress(t *testing.T) {
	tasks := []task.Task{
		{Status: task.StatusTodo},
		{Status: task.StatusDone},
	}

	counts := Funnel(tasks)
	if counts.ConversionInProgressToDone != 0 {
		t.Errorf("ConversionInProgressToDone = %v, want 0 when nothing is in progress",
			counts.ConversionInProgressToDone)
	}
}

func TestFunnel_UnknownStatusCountsAsTodo(t *testing.T) {
	tasks := []task.Task{
		{Status: task.TaskStatus("archived")},
		{Status: task.StatusDone},
	}

	counts := Funnel(tasks)
	if counts.Todo != 1 {
		t.Errorf("Todo = %d, want 1 (unrecognized status degrades to todo)", counts.Todo)
	}
	if counts.Total() != 2 {
		t.Errorf("Total() = %d, want 2", counts.Total())
	}
}
