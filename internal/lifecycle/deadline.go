package lifecycle

import (
	"time"

	"github.com/listoapp/listo/internal/model"
)

// overtimeYears pushes a deadline far enough into the future to be
// effectively permanent.
const overtimeYears = 100

// ExtensionHorizon separates ordinary deadlines from overtime ones: a task
// due further out than this is treated as never-expiring, and extension
// toggles leave its deadline alone.
const ExtensionHorizon = 30 * 24 * time.Hour

// EndOfDay returns 23:59:59.999 of now's calendar day in epoch milliseconds.
func EndOfDay(now time.Time) int64 {
	y, m, d := now.Date()
	return time.Date(y, m, d, 23, 59, 59, 999000000, now.Location()).UnixMilli()
}

// NextDayEnd returns 23:59:59.999 of the day after now.
func NextDayEnd(now time.Time) int64 {
	return EndOfDay(now.AddDate(0, 0, 1))
}

// OvertimeDeadline returns a deadline a century past now.
func OvertimeDeadline(now time.Time) int64 {
	return now.AddDate(overtimeYears, 0, 0).UnixMilli()
}

// DeadlineFor computes the validity deadline for a task created now on a
// board of the given type. Overtime boards opt their tasks out of
// expiration; every other board expires tasks at the end of the current day.
func DeadlineFor(boardType string, now time.Time) int64 {
	if boardType == model.BoardOvertime {
		return OvertimeDeadline(now)
	}
	return EndOfDay(now)
}

// Expired reports whether the task's deadline has passed at now.
func Expired(t model.Task, now time.Time) bool {
	return t.ValidUntil <= now.UnixMilli()
}

// Permanent reports whether validUntil lies beyond the extension horizon.
func Permanent(validUntil int64, now time.Time) bool {
	return validUntil > now.Add(ExtensionHorizon).UnixMilli()
}
