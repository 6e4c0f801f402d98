package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/listoapp/listo/internal/keys"
	"github.com/listoapp/listo/internal/model"
	"github.com/listoapp/listo/internal/query"
	"github.com/listoapp/listo/internal/store"
	"github.com/listoapp/listo/internal/theme"
	"github.com/listoapp/listo/internal/ui"
	"github.com/listoapp/listo/internal/ui/boardform"
	helpview "github.com/listoapp/listo/internal/ui/help"
	"github.com/listoapp/listo/internal/ui/settingsform"
	"github.com/listoapp/listo/internal/ui/stats"
	"github.com/listoapp/listo/internal/ui/tasklist"
)

// sweepMsg carries a background sweep result into the UI loop.
type sweepMsg struct {
	event store.SweepEvent
	ok    bool
}

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewTasks ViewState = iota
	ViewBoardForm
	ViewSettings
	ViewStats
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing, layout,
// and access to the store.
type Model struct {
	currentView  ViewState
	layout       ui.Layout
	store        *store.Store
	sweeper      *store.Sweeper
	keys         *keys.KeyMap
	taskList     tasklist.Model
	boardForm    boardform.Model
	settingsForm settingsform.Model
	statsView    stats.Model
	helpView     helpview.Model
	status       string
	ready        bool
}

// New creates the root application model with the given store and sweeper.
func New(s *store.Store, sweeper *store.Sweeper) Model {
	k := keys.DefaultKeyMap()
	return Model{
		currentView:  ViewTasks,
		store:        s,
		sweeper:      sweeper,
		keys:         k,
		taskList:     tasklist.New(s, k, 80, 24),
		boardForm:    boardform.New(80, 24),
		settingsForm: settingsform.New(80, 24),
		statsView:    stats.New(s, 80, 24),
		helpView:     helpview.New(k, 80, 24),
	}
}

// Init loads the initial task snapshot and subscribes to sweep events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.taskList.Init(), m.waitForSweep())
}

// waitForSweep blocks on the sweeper's event channel and feeds results back
// into the update loop.
func (m Model) waitForSweep() tea.Cmd {
	events := m.sweeper.Events()
	return func() tea.Msg {
		ev, ok := <-events
		return sweepMsg{event: ev, ok: ok}
	}
}

// Update routes messages to the active view and handles global keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.taskList.SetSize(msg.Width, m.layout.ContentHeight())
		m.boardForm.SetSize(msg.Width, m.layout.ContentHeight())
		m.settingsForm.SetSize(msg.Width, m.layout.ContentHeight())
		m.statsView.SetSize(msg.Width, m.layout.ContentHeight())
		m.helpView.SetSize(msg.Width, m.layout.ContentHeight())
		return m, nil

	case sweepMsg:
		if !msg.ok {
			return m, nil
		}
		m.status = fmt.Sprintf("%d expired task(s) swept away", msg.event.Removed)
		return m, tea.Batch(m.taskList.Reload(), m.waitForSweep())

	case tasklist.StatusMsg:
		m.status = msg.Text
		return m, nil

	case tasklist.TasksLoadedMsg:
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd

	case boardform.BoardCreatedMsg:
		m.currentView = ViewTasks
		if _, ok := m.store.AddBoard(msg.Title, msg.Type); !ok {
			m.status = fmt.Sprintf("board limit reached (%d boards max)", model.MaxBoards)
		} else {
			m.status = fmt.Sprintf("board %q created", msg.Title)
		}
		return m, m.taskList.Reload()

	case boardform.BoardRenamedMsg:
		m.currentView = ViewTasks
		m.store.UpdateBoardName(msg.ID, msg.Title)
		return m, m.taskList.Reload()

	case boardform.CancelMsg, settingsform.CancelMsg:
		m.currentView = ViewTasks
		return m, nil

	case settingsform.SavedMsg:
		m.currentView = ViewTasks
		m.store.UpdateSettings(msg.Settings)
		m.status = "settings saved"
		return m, m.taskList.Reload()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveView(msg)
}

// handleKey processes global keys before delegating to the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	// While typing into the add field or a form, every key belongs to it.
	if m.currentView == ViewTasks && m.taskList.Adding() {
		return m.updateActiveView(msg)
	}

	switch m.currentView {
	case ViewStats, ViewHelp:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Quit) ||
			key.Matches(msg, m.keys.Stats) || key.Matches(msg, m.keys.Help) {
			m.currentView = ViewTasks
			return m, nil
		}
		return m, nil

	case ViewBoardForm, ViewSettings:
		return m.updateActiveView(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.currentView = ViewHelp
		return m, nil

	case key.Matches(msg, m.keys.Stats):
		m.currentView = ViewStats
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.currentView = ViewSettings
		return m, m.settingsForm.Start(m.store.Settings())

	case key.Matches(msg, m.keys.NewBoard):
		m.currentView = ViewBoardForm
		return m, m.boardForm.StartCreate()

	case key.Matches(msg, m.keys.RenameBoard):
		board := m.taskList.Board()
		if board.ID == "" {
			return m, nil
		}
		m.currentView = ViewBoardForm
		return m, m.boardForm.StartRename(board)

	case key.Matches(msg, m.keys.DeleteBoard):
		board := m.taskList.Board()
		if !m.store.DeleteBoard(board.ID) {
			m.status = "this board cannot be deleted"
			return m, nil
		}
		m.status = fmt.Sprintf("board %q deleted", board.Title)
		return m, m.taskList.Reload()
	}

	return m.updateActiveView(msg)
}

// updateActiveView forwards a message to whichever view is on screen.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case ViewBoardForm:
		m.boardForm, cmd = m.boardForm.Update(msg)
	case ViewSettings:
		m.settingsForm, cmd = m.settingsForm.Update(msg)
	case ViewStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}
	return m, cmd
}

// View renders the full frame: header, active view, status bar.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.layout.RenderHeader("Listo", m.headerRight())

	var content string
	switch m.currentView {
	case ViewBoardForm:
		content = m.boardForm.View()
	case ViewSettings:
		content = m.settingsForm.View()
	case ViewStats:
		content = m.statsView.View()
	case ViewHelp:
		content = m.helpView.View()
	default:
		content = m.renderTasks()
	}

	return m.layout.RenderWithFrame(header, content, m.layout.RenderStatusBar(m.statusLine()))
}

// renderTasks draws the task list, preceded by the quote of the day when
// that setting is on.
func (m Model) renderTasks() string {
	settings := m.store.Settings()
	if !settings.QuotesEnabled {
		return m.taskList.View()
	}
	quote := theme.QuoteStyle.Render("“" + quoteOfTheDay(time.Now()) + "”")
	return quote + "\n" + m.taskList.View()
}

// headerRight builds the right side of the header: completion percentage
// for the current board and today's date. At 100% a celebration marker
// stands in for the original app's confetti.
func (m Model) headerRight() string {
	board := m.taskList.Board()
	tasks := query.FilterByBoard(m.store.Tasks(), board.ID)
	percentage := query.CompletionPercentage(tasks)

	label := fmt.Sprintf("%d%%", percentage)
	if percentage == 100 && len(tasks) > 0 && m.store.Settings().ConfettiEnabled {
		label = "★ " + label + " ★"
	}

	return fmt.Sprintf("%s · %s", label, time.Now().Format("Mon, Jan 2"))
}

// statusLine picks the transient status message or the default key hints.
func (m Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	return "a:add  enter:done  e:extend  p:priority  tab:board  v:done-list  ?:help  q:quit"
}
