package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/felixgeelhaar/tasklens/pkg/domain/task"
)

const hoursPerDay = 24

// DaysBetween returns the whole number of days between two ISO-8601
// timestamps, rounded to the nearest day and clamped at zero. Out-of-order
// or unparseable timestamps report 0, never a negative or an error.
func DaysBetween(aISO, bISO string) int {
	a, err := task.ParseTimestamp(aISO)
	if err != nil {
		return 0
	}
	b, err := task.ParseTimestamp(bISO)
	if err != nil {
		return 0
	}
	return daysBetween(a, b)
}

func daysBetween(a, b time.Time) int {
	days := int(math.Round(b.Sub(a).Hours() / hoursPerDay))
	if days < 0 {
		return 0
	}
	return days
}

// ISOWeek returns the ISO-8601 week number of the instant in UTC. Week 1
// is the week containing the first Thursday of the year, so late-December
// dates can belong to week 1 of the following ISO year and early-January
// dates to the last week of the previous one.
func ISOWeek(t time.Time) int {
	_, week := t.UTC().ISOWeek()
	return week
}

// WeekKey buckets an instant as "<UTCyear>-W<isoWeek>". The year half of
// the key is the UTC calendar year, not the ISO week-year: 2018-12-31
// keys as "2018-W1".
func WeekKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%d-W%d", u.Year(), ISOWeek(u))
}
