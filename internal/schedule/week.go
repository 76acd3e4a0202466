package schedule

import "time"

// WeekRange returns the Monday and Sunday of the week containing t, the
// default fetch range when the caller names no dates.
func WeekRange(t time.Time) (start, end time.Time) {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	start = t.AddDate(0, 0, -daysSinceMonday)
	end = start.AddDate(0, 0, 6)
	return start, end
}
