package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/listoapp/listo/internal/model"
)

func TestTaskColumn(t *testing.T) {
	assert.Equal(t, model.ColumnTodo, model.Task{}.Column())
	assert.Equal(t, model.ColumnDone, model.Task{ColumnID: model.ColumnDone}.Column())
}

func TestValidColumn(t *testing.T) {
	assert.True(t, model.ValidColumn(model.ColumnTodo))
	assert.True(t, model.ValidColumn(model.ColumnInProgress))
	assert.True(t, model.ValidColumn(model.ColumnDone))
	assert.False(t, model.ValidColumn("backlog"))
	assert.False(t, model.ValidColumn(""))
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-03-09", model.DateKey(time.Date(2026, 3, 9, 23, 59, 0, 0, time.Local)))
}

func TestDefaultSettings(t *testing.T) {
	s := model.DefaultSettings()
	assert.True(t, s.SoundEnabled)
	assert.True(t, s.ConfettiEnabled)
	assert.True(t, s.QuotesEnabled)
	assert.True(t, s.SmartTargeting)
}
