package model

import "time"

// Activity maps a local calendar date (YYYY-MM-DD) to the number of tasks
// completed that day. It records completion events: un-completing a task
// never takes a count back.
type Activity map[string]int

// DateKey formats t as an Activity key in t's location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
