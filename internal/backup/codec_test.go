package backup_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listoapp/listo/internal/backup"
	"github.com/listoapp/listo/internal/model"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	todos := []model.Task{{
		ID:         "t1",
		Text:       "Ship feature",
		Tags:       []string{"backend"},
		Priority:   model.PriorityHigh,
		CreatedAt:  1700000000000,
		ValidUntil: 1700086399999,
		BoardID:    "b1",
	}}
	boards := []model.Board{{ID: "b1", Title: "My Day", Type: model.BoardDefault}}
	activity := model.Activity{"2026-03-14": 2}
	settings := model.DefaultSettings()

	data, err := backup.Encode(backup.Document{
		Todos:    &todos,
		Activity: &activity,
		Boards:   &boards,
		Settings: &settings,
	})
	require.NoError(t, err)

	doc, err := backup.Decode(data)
	require.NoError(t, err)
	require.NotNil(t, doc.Todos)
	assert.Equal(t, todos, *doc.Todos)
	require.NotNil(t, doc.Boards)
	assert.Equal(t, boards, *doc.Boards)
	require.NotNil(t, doc.Activity)
	assert.Equal(t, activity, *doc.Activity)
	require.NotNil(t, doc.Settings)
	assert.Equal(t, settings, *doc.Settings)
}

func TestDecode_AbsentKeysStayNil(t *testing.T) {
	doc, err := backup.Decode([]byte(`{"todos": []}`))
	require.NoError(t, err)

	require.NotNil(t, doc.Todos)
	assert.Empty(t, *doc.Todos)
	assert.Nil(t, doc.Activity)
	assert.Nil(t, doc.Boards)
	assert.Nil(t, doc.Settings)
}

func TestDecode_OriginalFieldNames(t *testing.T) {
	raw := `{"todos":[{"id":"x","text":"call mom","completed":false,` +
		`"createdAt":1700000000000,"validUntil":1700086399999,` +
		`"isExtended":true,"boardId":"b1","columnId":"in-progress"}]}`

	doc, err := backup.Decode([]byte(raw))
	require.NoError(t, err)

	require.NotNil(t, doc.Todos)
	require.Len(t, *doc.Todos, 1)
	task := (*doc.Todos)[0]
	assert.Equal(t, "call mom", task.Text)
	assert.True(t, task.IsExtended)
	assert.Equal(t, "b1", task.BoardID)
	assert.Equal(t, model.ColumnInProgress, task.ColumnID)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := backup.Decode([]byte(`{"todos": "nope"`))
	assert.Error(t, err)
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "listo-backup-2026-03-14.json", backup.DefaultFilename(now))
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	todos := []model.Task{{ID: "t1", Text: "water plants"}}

	require.NoError(t, backup.WriteFile(path, backup.Document{Todos: &todos}))

	doc, err := backup.ReadFile(path)
	require.NoError(t, err)
	require.NotNil(t, doc.Todos)
	assert.Equal(t, "water plants", (*doc.Todos)[0].Text)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := backup.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
