package lifecycle

import (
	"regexp"
	"strings"

	"github.com/listoapp/listo/internal/model"
)

// tagPattern matches "#" followed by word characters anywhere in the input.
var tagPattern = regexp.MustCompile(`#(\w+)`)

// ParsedInput is the result of splitting raw task input into its parts.
type ParsedInput struct {
	// Text is the input with tag and board mentions stripped. Never empty
	// for non-empty input: if stripping leaves nothing, the untouched
	// input is kept so a task is never stored with an empty label.
	Text string

	// Tags are the extracted tag names, lowercased and deduplicated,
	// in order of first appearance.
	Tags []string

	// BoardID is the target board resolved from a trailing "@board"
	// mention, or empty when no mention matched.
	BoardID string
}

// ParseInput extracts #tags and, when smart targeting is enabled, a trailing
// @board mention from raw task input.
func ParseInput(raw string, boards []model.Board, smartTargeting bool) ParsedInput {
	text := raw
	boardID := ""
	if smartTargeting {
		text, boardID = extractBoardMention(text, boards)
	}

	var tags []string
	seen := make(map[string]bool)
	for _, match := range tagPattern.FindAllStringSubmatch(text, -1) {
		tag := strings.ToLower(match[1])
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	clean := strings.Join(strings.Fields(tagPattern.ReplaceAllString(text, "")), " ")
	if clean == "" {
		clean = strings.TrimSpace(text)
	}
	if clean == "" {
		clean = raw
	}

	return ParsedInput{Text: clean, Tags: tags, BoardID: boardID}
}

// extractBoardMention resolves a trailing "@board" token against board
// titles. The match ignores case and whitespace, so "@myday" hits a board
// titled "My Day". Unresolved mentions are left in the text untouched.
func extractBoardMention(text string, boards []model.Board) (string, string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return text, ""
	}

	last := fields[len(fields)-1]
	if !strings.HasPrefix(last, "@") || len(last) == 1 {
		return text, ""
	}

	want := normalizeBoardTitle(strings.TrimPrefix(last, "@"))
	for _, b := range boards {
		if normalizeBoardTitle(b.Title) == want {
			stripped := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), last))
			return stripped, b.ID
		}
	}

	return text, ""
}

// normalizeBoardTitle lowercases a title and removes all whitespace.
func normalizeBoardTitle(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
