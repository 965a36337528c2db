package analytics

import (
	"sort"

	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
)

// VelocityStat summarizes completion time for one priority bucket.
type VelocityStat struct {
	// AvgDays is the arithmetic mean of days from creation to completion.
	AvgDays float64 `json:"avg_days"`
	// MedianDays is the element at floor(n/2) of the ascending-sorted
	// bucket: the upper median for even-sized buckets, without
	// interpolation. Intentionally simpler than a true statistical median.
	MedianDays float64 `json:"median_days"`
}

// VelocityByPriority buckets creation-to-completion durations of completed
// tasks by priority. All three priorities are always present in the result
// even when their buckets are empty; an empty bucket reports zero for both
// statistics. Tasks with unrecognized priorities land in the low bucket;
// tasks with unparseable timestamps are skipped, like the week-bucketed
// analytics skip them.
func VelocityByPriority(tasks []task.Task) map[task.TaskPriority]VelocityStat {
	buckets := map[task.TaskPriority][]int{
		task.PriorityHigh:   nil,
		task.PriorityMedium: nil,
		task.PriorityLow:    nil,
	}

	for _, t := range tasks {
		if !t.IsCompleted() {
			continue
		}
		created, err := task.ParseTimestamp(t.CreatedAt)
		if err != nil {
			continue
		}
		completed, err := task.ParseTimestamp(t.CompletedAt)
		if err != nil {
			continue
		}

		p := t.Priority
		if !p.IsValid() {
			p = task.PriorityLow
		}
		buckets[p] = append(buckets[p], daysBetween(created, completed))
	}

	stats := make(map[task.TaskPriority]VelocityStat, len(buckets))
	for priority, days := range buckets {
		stats[priority] = velocityStat(days)
	}
	return stats
}

func velocityStat(days []int) VelocityStat {
	if len(days) == 0 {
		return VelocityStat{}
	}

	sorted := make([]int, len(days))
	copy(sorted, days)
	sort.Ints(sorted)

	sum := 0
	for _, d := range sorted {
		sum += d
	}

	return VelocityStat{
		AvgDays:    float64(sum) / float64(len(sorted)),
		MedianDays: float64(sorted[len(sorted)/2]),
	}
}
