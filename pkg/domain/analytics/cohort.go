package analytics

import (
	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
)

// CohortBucket holds the total revenue of tasks created in the same week
// at the same priority.
type CohortBucket struct {
	Week     string            `json:"week"`
	Priority task.TaskPriority `json:"priority"`
	Revenue  float64           `json:"revenue"`
}

type cohortKey struct {
	week     string
	priority task.TaskPriority
}

// CohortRevenue sums revenue by creation week and priority across all
// tasks regardless of status. Buckets appear in first-encounter order of
// their keys. Tasks with unparseable creation timestamps are skipped;
// unrecognized priorities land in the low cohort.
func CohortRevenue(tasks []task.Task) []CohortBucket {
	var buckets []CohortBucket
	index := make(map[cohortKey]int)

	for _, t := range tasks {
		created, err := task.ParseTimestamp(t.CreatedAt)
		if err != nil {
			continue
		}

		p := t.Priority
		if !p.IsValid() {
			p = task.PriorityLow
		}

		key := cohortKey{week: WeekKey(created), priority: p}
		if i, ok := index[key]; ok {
			buckets[i].Revenue += t.Revenue
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, CohortBucket{
			Week:     key.week,
			Priority: key.priority,
			Revenue:  t.Revenue,
		})
	}

	return buckets
}
