package analytics

import (
	"math"
	"sort"

	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortTasks returns a ranked copy of the derived tasks; the input slice is
// left untouched. Ordering is ROI descending, then priority weight
// descending, then title ascending under locale-aware collation. The
// lexical tie-break makes the ordering fully deterministic when scores
// tie; a NaN ROI sorts to the end.
func SortTasks(tasks []task.DerivedTask) []task.DerivedTask {
	sorted := make([]task.DerivedTask, len(tasks))
	copy(sorted, tasks)

	// Collators buffer internally, so build one per call rather than
	// sharing package state across goroutines.
	collator := collate.New(language.Und)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sortableROI(sorted[i].ROI), sortableROI(sorted[j].ROI)
		if ri != rj {
			return ri > rj
		}
		if sorted[i].PriorityWeight != sorted[j].PriorityWeight {
			return sorted[i].PriorityWeight > sorted[j].PriorityWeight
		}
		return collator.CompareString(sorted[i].Title, sorted[j].Title) < 0
	})

	return sorted
}

// sortableROI maps NaN to negative infinity so incomparable scores rank last.
func sortableROI(roi float64) float64 {
	if math.IsNaN(roi) {
		return math.Inf(-1)
	}
	return roi
}
