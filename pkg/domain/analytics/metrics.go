// Package analytics computes derived metrics, rankings, and time-bucketed
// statistics over task collections. Every function is a pure fold over its
// input: nothing is mutated, nothing is cached, and numeric edge cases
// degrade to zero instead of surfacing errors.
package analytics

import (
	"math"

	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
)

// PerformanceGrade buckets an average ROI into a coarse health rating.
type PerformanceGrade string

const (
	// GradeExcellent indicates average ROI above 500.
	GradeExcellent PerformanceGrade = "excellent"
	// GradeGood indicates average ROI between 200 and 500 inclusive.
	GradeGood PerformanceGrade = "good"
	// GradeNeedsImprovement indicates average ROI below 200.
	GradeNeedsImprovement PerformanceGrade = "needs_improvement"
)

// DisplayName returns a human-readable display name for the grade.
func (g PerformanceGrade) DisplayName() string {
	switch g {
	case GradeExcellent:
		return "Excellent"
	case GradeGood:
		return "Good"
	case GradeNeedsImprovement:
		return "Needs Improvement"
	default:
		return string(g)
	}
}

// pipelineWeights maps each status to its expected-realization factor.
// The map is never mutated after package initialization.
var pipelineWeights = map[task.TaskStatus]float64{
	task.StatusTodo:       0.1,
	task.StatusInProgress: 0.5,
	task.StatusDone:       1.0,
}

// TotalRevenue sums revenue over completed tasks only.
func TotalRevenue(tasks []task.Task) float64 {
	total := 0.0
	for _, t := range tasks {
		if t.Status == task.StatusDone {
			total += t.Revenue
		}
	}
	return total
}

// TotalTimeTaken sums hours spent across all tasks regardless of status.
func TotalTimeTaken(tasks []task.Task) float64 {
	total := 0.0
	for _, t := range tasks {
		total += t.TimeTaken
	}
	return total
}

// TimeEfficiency returns the percentage of tasks that are done.
// An empty collection yields 0.
func TimeEfficiency(tasks []task.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}

	done := 0
	for _, t := range tasks {
		if t.Status == task.StatusDone {
			done++
		}
	}
	return float64(done) / float64(len(tasks)) * 100
}

// RevenuePerHour divides completed revenue by total hours spent.
// Zero or non-finite total time yields 0.
func RevenuePerHour(tasks []task.Task) float64 {
	totalTime := TotalTimeTaken(tasks)
	// Positive check, not a <= 0 guard: a NaN total must fall through to
	// the zero default instead of propagating into the quotient.
	if !(totalTime > 0) {
		return 0
	}
	return TotalRevenue(tasks) / totalTime
}

// AverageROI averages per-task ROI, excluding non-finite results.
// An empty collection, or one where every ROI is non-finite, yields 0.
func AverageROI(tasks []task.Task) float64 {
	sum := 0.0
	count := 0
	for _, t := range tasks {
		roi := task.ComputeROI(t.Revenue, t.TimeTaken)
		if math.IsNaN(roi) || math.IsInf(roi, 0) {
			continue
		}
		sum += roi
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// GradeForROI maps an average ROI to a performance grade. The excellent
// boundary is exclusive (strictly above 500); the good lower bound is
// inclusive.
func GradeForROI(avgROI float64) PerformanceGrade {
	switch {
	case avgROI > 500:
		return GradeExcellent
	case avgROI >= 200:
		return GradeGood
	default:
		return GradeNeedsImprovement
	}
}

// WeightedPipeline returns expected realized revenue across the pipeline:
// each task's revenue weighted by how far through the funnel it is
// (todo 0.1, in progress 0.5, done 1.0). Unrecognized statuses weigh as
// todo, consistent with how Funnel counts them.
func WeightedPipeline(tasks []task.Task) float64 {
	total := 0.0
	for _, t := range tasks {
		weight, ok := pipelineWeights[t.Status]
		if !ok {
			weight = pipelineWeights[task.StatusTodo]
		}
		total += t.Revenue * weight
	}
	return total
}
