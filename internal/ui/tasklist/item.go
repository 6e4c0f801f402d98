package tasklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/listoapp/listo/internal/model"
	"github.com/listoapp/listo/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task

	// Kanban indicates the owning board is kanban-type, so the column
	// marker should be shown.
	Kanban bool

	// TagColors carries the user's tag color overrides.
	TagColors map[string]string
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Text }

// ItemDelegate implements list.ItemDelegate, rendering one task per line.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update is a no-op; key handling lives in the tasklist model.
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render writes a single task line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}
	t := ti.Task

	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	var parts []string
	parts = append(parts, check)

	if t.Priority == model.PriorityHigh {
		parts = append(parts, theme.HighPriorityStyle.Render("!"))
	}

	text := t.Text
	if t.Completed {
		text = theme.CompletedStyle.Render(text)
	}
	parts = append(parts, text)

	for _, tag := range t.Tags {
		parts = append(parts, theme.TagStyle(tag, ti.TagColors).Render("#"+tag))
	}

	if ti.Kanban {
		col := t.Column()
		parts = append(parts, theme.ColumnStyle(col).Render(fmt.Sprintf("<%s>", col)))
	}

	if t.IsExtended {
		parts = append(parts, theme.ExtendedStyle.Render("+1d"))
	}

	line := strings.Join(parts, " ")
	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}
