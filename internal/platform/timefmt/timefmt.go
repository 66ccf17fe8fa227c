package timefmt

import (
	"fmt"
	"time"
)

// Layout is the timestamp layout stored in the lectures table.
const Layout = "2006-01-02 15:04:05"

// ZeroElapsed is the elapsed-time string recorded for a skipped break.
const ZeroElapsed = "0:00:00"

const secondsPerDay = 24 * 60 * 60

func Stamp(t time.Time) string {
	return t.Format(Layout)
}

func Parse(value string) (time.Time, error) {
	return time.ParseInLocation(Layout, value, time.Local)
}

// Elapsed renders d as H:MM:SS. Spans of a day or more are prefixed with
// "N day, " or "N days, ". Negative spans use a negative day count and a
// positive remainder, so -10s renders as "-1 day, 23:59:50".
// Sub-second precision is floored away.
func Elapsed(d time.Duration) string {
	total := int64(d / time.Second)
	if d%time.Second < 0 {
		total--
	}
	days := total / secondsPerDay
	rem := total % secondsPerDay
	if rem < 0 {
		rem += secondsPerDay
		days--
	}
	clock := fmt.Sprintf("%d:%02d:%02d", rem/3600, rem%3600/60, rem%60)
	if days == 0 {
		return clock
	}
	unit := "days"
	if days == 1 || days == -1 {
		unit = "day"
	}
	return fmt.Sprintf("%d %s, %s", days, unit, clock)
}
