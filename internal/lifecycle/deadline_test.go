package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/listoapp/listo/internal/lifecycle"
	"github.com/listoapp/listo/internal/model"
)

var noon = time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

func TestEndOfDay(t *testing.T) {
	got := time.UnixMilli(lifecycle.EndOfDay(noon))

	assert.Equal(t, 14, got.Day())
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.Equal(t, 59, got.Second())
	assert.Equal(t, 999000000, got.Nanosecond())
}

func TestNextDayEnd(t *testing.T) {
	assert.Equal(t, lifecycle.EndOfDay(noon.AddDate(0, 0, 1)), lifecycle.NextDayEnd(noon))
}

func TestDeadlineFor(t *testing.T) {
	assert.Equal(t, lifecycle.EndOfDay(noon), lifecycle.DeadlineFor(model.BoardDefault, noon))
	assert.Equal(t, lifecycle.EndOfDay(noon), lifecycle.DeadlineFor(model.BoardKanban, noon))

	overtime := lifecycle.DeadlineFor(model.BoardOvertime, noon)
	assert.Equal(t, noon.AddDate(100, 0, 0).UnixMilli(), overtime)
}

func TestExpired(t *testing.T) {
	task := model.Task{ValidUntil: noon.UnixMilli()}

	assert.False(t, lifecycle.Expired(task, noon.Add(-time.Millisecond)))
	assert.True(t, lifecycle.Expired(task, noon), "expiry boundary is inclusive")
	assert.True(t, lifecycle.Expired(task, noon.Add(time.Hour)))
}

func TestPermanent(t *testing.T) {
	assert.False(t, lifecycle.Permanent(lifecycle.EndOfDay(noon), noon))
	assert.False(t, lifecycle.Permanent(lifecycle.NextDayEnd(noon), noon))
	assert.False(t, lifecycle.Permanent(noon.Add(lifecycle.ExtensionHorizon).UnixMilli(), noon))
	assert.True(t, lifecycle.Permanent(lifecycle.OvertimeDeadline(noon), noon))
}
