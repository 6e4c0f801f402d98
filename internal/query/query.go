// Package query provides pure derivations over the task and activity
// collections. Nothing here mutates its input or touches persistence.
package query

import (
	"math"
	"sort"
	"time"

	"github.com/listoapp/listo/internal/model"
)

// SortForDisplay returns tasks ordered for rendering: every high-priority
// task before every normal one, newest first within each tier. The sort is
// stable so equal timestamps keep their original relative order. This
// ordering is recomputed on every query and never persisted.
func SortForDisplay(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		hi, hj := out[i].Priority == model.PriorityHigh, out[j].Priority == model.PriorityHigh
		if hi != hj {
			return hi
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// FilterByBoard returns the tasks belonging to the given board.
func FilterByBoard(tasks []model.Task, boardID string) []model.Task {
	return filter(tasks, func(t model.Task) bool { return t.BoardID == boardID })
}

// FilterActive returns the tasks not yet completed.
func FilterActive(tasks []model.Task) []model.Task {
	return filter(tasks, func(t model.Task) bool { return !t.Completed })
}

// FilterCompleted returns the completed tasks.
func FilterCompleted(tasks []model.Task) []model.Task {
	return filter(tasks, func(t model.Task) bool { return t.Completed })
}

// FilterByColumn returns the tasks in the given kanban column. Tasks with
// no column set count as "todo".
func FilterByColumn(tasks []model.Task, columnID string) []model.Task {
	return filter(tasks, func(t model.Task) bool { return t.Column() == columnID })
}

func filter(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// CompletionPercentage returns round(100 * completed / total), or 0 for an
// empty task set.
func CompletionPercentage(tasks []model.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}

// HeatmapEntry is one day's completion count in a heatmap window.
type HeatmapEntry struct {
	Date  string
	Count int
}

// Heatmap returns one entry per calendar day for the trailing window ending
// at now's date, oldest first. Days with no recorded activity appear with a
// zero count.
func Heatmap(activity model.Activity, windowDays int, now time.Time) []HeatmapEntry {
	if windowDays <= 0 {
		windowDays = 7
	}
	entries := make([]HeatmapEntry, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		key := model.DateKey(now.AddDate(0, 0, -i))
		entries = append(entries, HeatmapEntry{Date: key, Count: activity[key]})
	}
	return entries
}

// HeatmapScale returns the reference value for bar heights: the window
// maximum, but never less than 1.
func HeatmapScale(entries []HeatmapEntry) int {
	max := 1
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
	}
	return max
}
