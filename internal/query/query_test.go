package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/listoapp/listo/internal/model"
	"github.com/listoapp/listo/internal/query"
)

func TestSortForDisplay_PriorityBeforeRecency(t *testing.T) {
	a := model.Task{ID: "a", CreatedAt: 100, Priority: model.PriorityNormal}
	b := model.Task{ID: "b", CreatedAt: 200, Priority: model.PriorityHigh}

	sorted := query.SortForDisplay([]model.Task{a, b})

	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID)
}

func TestSortForDisplay_NewestFirstWithinTier(t *testing.T) {
	tasks := []model.Task{
		{ID: "old-high", CreatedAt: 100, Priority: model.PriorityHigh},
		{ID: "old", CreatedAt: 150},
		{ID: "new-high", CreatedAt: 300, Priority: model.PriorityHigh},
		{ID: "new", CreatedAt: 400},
	}

	sorted := query.SortForDisplay(tasks)

	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	assert.Equal(t, []string{"new-high", "old-high", "new", "old"}, ids)
}

func TestSortForDisplay_StableAndNonMutating(t *testing.T) {
	tasks := []model.Task{
		{ID: "first", CreatedAt: 100},
		{ID: "second", CreatedAt: 100},
	}

	sorted := query.SortForDisplay(tasks)

	assert.Equal(t, "first", sorted[0].ID, "equal timestamps keep input order")
	assert.Equal(t, "first", tasks[0].ID, "input slice untouched")
}

func TestFilters(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", BoardID: "b1", Completed: true},
		{ID: "2", BoardID: "b1"},
		{ID: "3", BoardID: "b2", ColumnID: model.ColumnDone},
	}

	assert.Len(t, query.FilterByBoard(tasks, "b1"), 2)
	assert.Len(t, query.FilterActive(tasks), 2)
	assert.Len(t, query.FilterCompleted(tasks), 1)
	assert.Len(t, query.FilterByColumn(tasks, model.ColumnDone), 1)
	// A task with no column set lives in "todo".
	assert.Len(t, query.FilterByColumn(tasks, model.ColumnTodo), 2)
}

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, 0, query.CompletionPercentage(nil))

	tasks := []model.Task{{Completed: true}, {}, {}}
	assert.Equal(t, 33, query.CompletionPercentage(tasks))

	tasks = []model.Task{{Completed: true}, {Completed: true}, {}}
	assert.Equal(t, 67, query.CompletionPercentage(tasks))

	tasks = []model.Task{{Completed: true}, {Completed: true}}
	assert.Equal(t, 100, query.CompletionPercentage(tasks))
}

func TestHeatmap(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	activity := model.Activity{
		"2026-03-14": 3,
		"2026-03-12": 1,
		"2026-03-01": 9, // outside the window
	}

	entries := query.Heatmap(activity, 7, now)

	assert.Len(t, entries, 7)
	assert.Equal(t, "2026-03-08", entries[0].Date)
	assert.Equal(t, "2026-03-14", entries[6].Date)
	assert.Equal(t, 3, entries[6].Count)
	assert.Equal(t, 1, entries[4].Count)
	assert.Equal(t, 0, entries[5].Count)
}

func TestHeatmap_DefaultWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	assert.Len(t, query.Heatmap(nil, 0, now), 7)
}

func TestHeatmapScale(t *testing.T) {
	assert.Equal(t, 1, query.HeatmapScale(nil), "empty window still scales by 1")
	assert.Equal(t, 1, query.HeatmapScale([]query.HeatmapEntry{{Count: 0}}))
	assert.Equal(t, 5, query.HeatmapScale([]query.HeatmapEntry{{Count: 2}, {Count: 5}, {Count: 1}}))
}
