package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/listoapp/listo/internal/lifecycle"
	"github.com/listoapp/listo/internal/model"
)

var testBoards = []model.Board{
	{ID: "b-day", Title: "My Day", Type: model.BoardDefault},
	{ID: "b-work", Title: "Work Stuff", Type: model.BoardKanban},
}

func TestParseInput_ExtractsTags(t *testing.T) {
	parsed := lifecycle.ParseInput("Ship feature #backend", testBoards, true)

	assert.Equal(t, "Ship feature", parsed.Text)
	assert.Equal(t, []string{"backend"}, parsed.Tags)
	assert.Empty(t, parsed.BoardID)
}

func TestParseInput_LowercasesAndDeduplicates(t *testing.T) {
	parsed := lifecycle.ParseInput("fix #Bug now #bug #BUG #ui", testBoards, true)

	assert.Equal(t, "fix now", parsed.Text)
	assert.Equal(t, []string{"bug", "ui"}, parsed.Tags)
}

func TestParseInput_TagOnlyInputKeepsOriginalText(t *testing.T) {
	parsed := lifecycle.ParseInput("#gym", testBoards, true)

	// Stripping would leave an empty label, so the raw input is kept.
	assert.Equal(t, "#gym", parsed.Text)
	assert.Equal(t, []string{"gym"}, parsed.Tags)
}

func TestParseInput_BoardMention(t *testing.T) {
	parsed := lifecycle.ParseInput("review the PR @workstuff", testBoards, true)

	assert.Equal(t, "review the PR", parsed.Text)
	assert.Equal(t, "b-work", parsed.BoardID)
}

func TestParseInput_BoardMentionIgnoresCaseAndSpacing(t *testing.T) {
	parsed := lifecycle.ParseInput("plan day @MyDay", testBoards, true)

	assert.Equal(t, "plan day", parsed.Text)
	assert.Equal(t, "b-day", parsed.BoardID)
}

func TestParseInput_UnknownMentionStaysInText(t *testing.T) {
	parsed := lifecycle.ParseInput("email @alice", testBoards, true)

	assert.Equal(t, "email @alice", parsed.Text)
	assert.Empty(t, parsed.BoardID)
}

func TestParseInput_SmartTargetingOff(t *testing.T) {
	parsed := lifecycle.ParseInput("review the PR @workstuff", testBoards, false)

	assert.Equal(t, "review the PR @workstuff", parsed.Text)
	assert.Empty(t, parsed.BoardID)
}

func TestParseInput_MentionAndTagsTogether(t *testing.T) {
	parsed := lifecycle.ParseInput("deploy #ops #backend @workstuff", testBoards, true)

	assert.Equal(t, "deploy", parsed.Text)
	assert.Equal(t, []string{"ops", "backend"}, parsed.Tags)
	assert.Equal(t, "b-work", parsed.BoardID)
}
