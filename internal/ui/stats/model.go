package stats

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/listoapp/listo/internal/query"
	"github.com/listoapp/listo/internal/store"
	"github.com/listoapp/listo/internal/theme"
)

// heatmapWindow is the number of trailing days shown in the heatmap.
const heatmapWindow = 7

// barHeight is the tallest heatmap bar in terminal rows.
const barHeight = 5

// Model is the statistics view: completion percentage for today plus a
// weekly activity heatmap.
type Model struct {
	store  *store.Store
	width  int
	height int
}

// New creates a new statistics view model.
func New(s *store.Store, width, height int) Model {
	return Model{store: s, width: width, height: height}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the statistics view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the statistics panel.
func (m Model) View() string {
	tasks := m.store.Tasks()
	percentage := query.CompletionPercentage(tasks)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Render("Statistics")

	progress := fmt.Sprintf("Today: %d%% of %d task(s) done", percentage, len(tasks))
	if percentage == 100 && len(tasks) > 0 {
		progress += "  " + theme.HighPriorityStyle.Render("★ all clear!")
	}

	entries := query.Heatmap(m.store.Activity(), heatmapWindow, time.Now())
	heatmap := renderHeatmap(entries)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		progress,
		"",
		lipgloss.NewStyle().Bold(true).Render("Completions, last 7 days"),
		heatmap,
	)

	return theme.BorderStyle.
		Width(m.width - 4).
		Render(content)
}

// renderHeatmap draws one vertical bar per day, scaled against the window
// maximum, with the weekday initial and count underneath.
func renderHeatmap(entries []query.HeatmapEntry) string {
	scale := query.HeatmapScale(entries)

	rows := make([]string, barHeight+2)
	for level := barHeight; level >= 1; level-- {
		var b strings.Builder
		for _, e := range entries {
			filled := e.Count*barHeight >= level*scale && e.Count > 0
			if filled {
				b.WriteString(theme.ActiveTabStyle.Render("  "))
			} else {
				b.WriteString("  ")
			}
			b.WriteString("  ")
		}
		rows[barHeight-level] = b.String()
	}

	var labels, counts strings.Builder
	for _, e := range entries {
		day, err := time.Parse("2006-01-02", e.Date)
		initial := "?"
		if err == nil {
			initial = day.Format("Mon")[:1]
		}
		labels.WriteString(fmt.Sprintf("%-4s", initial))
		counts.WriteString(fmt.Sprintf("%-4d", e.Count))
	}
	rows[barHeight] = theme.HelpStyle.Render(labels.String())
	rows[barHeight+1] = theme.HelpStyle.Render(counts.String())

	return strings.Join(rows, "\n")
}
