package analytics

import (
	"fmt"
	"math"

	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
)

// DefaultForecastHorizon is the number of future weeks Forecast projects
// when the caller does not ask for a specific horizon.
const DefaultForecastHorizon = 4

// WeeklyBucket counts task completions in one calendar week.
type WeeklyBucket struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// ThroughputByWeek counts completions per "<UTCyear>-W<isoWeek>" bucket.
// Buckets appear in first-encounter order of their keys, not chronological
// order; callers that need a timeline sort by week key themselves. Tasks
// with no or unparseable completion timestamps are skipped.
func ThroughputByWeek(tasks []task.Task) []WeeklyBucket {
	var buckets []WeeklyBucket
	index := make(map[string]int)

	for _, t := range tasks {
		if !t.IsCompleted() {
			continue
		}
		completed, err := task.ParseTimestamp(t.CompletedAt)
		if err != nil {
			continue
		}

		key := WeekKey(completed)
		if i, ok := index[key]; ok {
			buckets[i].Count++
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, WeeklyBucket{Week: key, Count: 1})
	}

	return buckets
}

// Forecast projects future weekly throughput from observed buckets. This
// is a naive constant-mean model, not a trend model: every projected week
// carries the mean observed count rounded half-up, labeled "+1" through
// "+<horizon>". No observed data yields an empty projection. A horizon of
// zero or less falls back to DefaultForecastHorizon.
func Forecast(buckets []WeeklyBucket, horizonWeeks int) []WeeklyBucket {
	if len(buckets) == 0 {
		return nil
	}
	if horizonWeeks <= 0 {
		horizonWeeks = DefaultForecastHorizon
	}

	sum := 0
	for _, b := range buckets {
		sum += b.Count
	}
	projected := int(math.Round(float64(sum) / float64(len(buckets))))

	forecast := make([]WeeklyBucket, horizonWeeks)
	for i := range forecast {
		forecast[i] = WeeklyBucket{
			Week:  fmt.Sprintf("+%d", i+1),
			Count: projected,
		}
	}
	return forecast
}
