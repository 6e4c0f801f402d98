package tasklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/listoapp/listo/internal/keys"
	"github.com/listoapp/listo/internal/model"
	"github.com/listoapp/listo/internal/query"
	"github.com/listoapp/listo/internal/store"
	"github.com/listoapp/listo/internal/theme"
)

// TasksLoadedMsg is sent when the board and task snapshots have been
// refreshed from the store.
type TasksLoadedMsg struct {
	Boards []model.Board
	Tasks  []model.Task
}

// StatusMsg carries a transient message for the status bar.
type StatusMsg struct {
	Text string
}

// activeTaskSoftCap is a presentation-level nicety carried over from the
// original app: default boards nag past five active tasks. The store never
// enforces it.
const activeTaskSoftCap = 5

// capMessages rotate through the nag shown when the soft cap is hit.
var capMessages = []string{
	"Five active tasks is plenty. They all vanish at midnight anyway.",
	"Adding more? Finish the five you have before the clock hits 12.",
	"The list resets at midnight. Don't be a hoarder.",
	"Your ambition is adorable. Five is the limit for a reason.",
}

// columnOrder is the cycle used by the move-column action.
var columnOrder = []string{model.ColumnTodo, model.ColumnInProgress, model.ColumnDone}

// Model is the main task list view: board tabs, active/done tabs, the task
// list itself, and the add-task input.
type Model struct {
	list     list.Model
	input    textinput.Model
	store    *store.Store
	keys     *keys.KeyMap
	boards   []model.Board
	boardIdx int
	showDone bool
	adding   bool
	capNag   int
	width    int
	height   int
}

// New creates a new task list model.
func New(s *store.Store, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-3)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	in := textinput.New()
	in.Placeholder = "task text, #tags, @board..."
	in.Prompt = "> "
	in.CharLimit = 200
	in.Width = width - 4

	return Model{
		list:   l,
		input:  in,
		store:  s,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns a command that loads the initial snapshots.
func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload fetches fresh board and task snapshots from the store.
func (m Model) Reload() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		return TasksLoadedMsg{Boards: s.Boards(), Tasks: s.Tasks()}
	}
}

// Board returns the currently selected board.
func (m Model) Board() model.Board {
	if len(m.boards) == 0 {
		return model.Board{}
	}
	if m.boardIdx >= len(m.boards) {
		return m.boards[0]
	}
	return m.boards[m.boardIdx]
}

// Adding reports whether the add-task input currently has focus.
func (m Model) Adding() bool {
	return m.adding
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-3)
	m.input.Width = width - 4
}

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TasksLoadedMsg:
		m.boards = msg.Boards
		if m.boardIdx >= len(m.boards) {
			m.boardIdx = 0
		}
		cmd := m.list.SetItems(m.visibleItems(msg.Tasks))
		return m, cmd

	case tea.KeyMsg:
		if m.adding {
			return m.handleInputKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// visibleItems derives the rendered item set for the current board and tab:
// board filter, active/done filter, then display sort.
func (m Model) visibleItems(tasks []model.Task) []list.Item {
	board := m.Board()
	settings := m.store.Settings()

	scoped := query.FilterByBoard(tasks, board.ID)
	if m.showDone {
		scoped = query.FilterCompleted(scoped)
	} else {
		scoped = query.FilterActive(scoped)
	}
	scoped = query.SortForDisplay(scoped)

	items := make([]list.Item, len(scoped))
	for i, t := range scoped {
		items[i] = TaskItem{
			Task:      t,
			Kanban:    board.Type == model.BoardKanban,
			TagColors: settings.TagColors,
		}
	}
	return items
}

// handleInputKeys processes key input while the add field is focused.
func (m Model) handleInputKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := m.input.Value()
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		if strings.TrimSpace(raw) == "" {
			return m, nil
		}

		board := m.Board()
		if nag, blocked := m.softCapNag(board); blocked {
			m.capNag++
			return m, func() tea.Msg { return StatusMsg{Text: nag} }
		}

		m.store.AddTask(raw, board.ID)
		return m, m.Reload()

	case "esc":
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// softCapNag returns the nag message when a default board already has the
// soft cap of active tasks.
func (m Model) softCapNag(board model.Board) (string, bool) {
	if board.Type != model.BoardDefault {
		return "", false
	}
	active := query.FilterActive(query.FilterByBoard(m.store.Tasks(), board.ID))
	if len(active) < activeTaskSoftCap {
		return "", false
	}
	return capMessages[m.capNag%len(capMessages)], true
}

// handleNormalKeys processes key input while browsing the list.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selectedTask(); ok {
			m.store.ToggleTask(t.ID)
			return m, m.Reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selectedTask(); ok {
			m.store.DeleteTask(t.ID)
			return m, m.Reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Extend):
		if t, ok := m.selectedTask(); ok {
			m.store.ToggleExtension(t.ID)
			return m, m.Reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Priority):
		if t, ok := m.selectedTask(); ok {
			m.store.TogglePriority(t.ID)
			return m, m.Reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.MoveColumn):
		if m.Board().Type != model.BoardKanban {
			return m, nil
		}
		if t, ok := m.selectedTask(); ok {
			m.store.MoveTask(t.ID, nextColumn(t.Column()))
			return m, m.Reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearDone):
		m.store.ClearCompleted(m.Board().ID)
		return m, m.Reload()

	case key.Matches(msg, m.keys.NextBoard):
		if len(m.boards) > 0 {
			m.boardIdx = (m.boardIdx + 1) % len(m.boards)
		}
		return m, m.Reload()

	case key.Matches(msg, m.keys.PrevBoard):
		if len(m.boards) > 0 {
			m.boardIdx = (m.boardIdx - 1 + len(m.boards)) % len(m.boards)
		}
		return m, m.Reload()

	case key.Matches(msg, m.keys.ToggleTab):
		m.showDone = !m.showDone
		return m, m.Reload()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selectedTask returns the task under the cursor.
func (m Model) selectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// nextColumn cycles a kanban column to its successor.
func nextColumn(current string) string {
	for i, c := range columnOrder {
		if c == current {
			return columnOrder[(i+1)%len(columnOrder)]
		}
	}
	return model.ColumnTodo
}

// View renders the board tabs, the optional add input, and the task list.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(m.list.View())
	return b.String()
}

// renderTabs draws one tab per board plus the active/done switch.
func (m Model) renderTabs() string {
	var tabs []string
	for i, board := range m.boards {
		label := board.Title
		if board.Type == model.BoardKanban {
			label += " ▦"
		}
		if i == m.boardIdx {
			tabs = append(tabs, theme.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, theme.TabStyle.Render(label))
		}
	}

	view := "do it now"
	if m.showDone {
		view = "done list"
	}
	tabs = append(tabs, theme.HelpStyle.Render(fmt.Sprintf("[%s]", view)))

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
