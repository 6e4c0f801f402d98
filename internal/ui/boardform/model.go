package boardform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/listoapp/listo/internal/model"
)

// BoardCreatedMsg is dispatched when the user submits a new board.
type BoardCreatedMsg struct {
	Title string
	Type  string
}

// BoardRenamedMsg is dispatched when the user renames an existing board.
type BoardRenamedMsg struct {
	ID    string
	Title string
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title     string
	boardType string
}

// Model is the Bubble Tea model for the create/rename board form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	renaming bool
	renameID string
	width    int
	height   int
}

// New creates a new board form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{boardType: model.BoardDefault},
		width:  width,
		height: height,
	}
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// StartCreate initializes the form for creating a new board.
func (m *Model) StartCreate() tea.Cmd {
	m.renaming = false
	m.renameID = ""
	m.fb.title = ""
	m.fb.boardType = model.BoardDefault
	m.form = m.buildCreateForm()
	return m.form.Init()
}

// StartRename initializes the form for renaming an existing board.
func (m *Model) StartRename(board model.Board) tea.Cmd {
	m.renaming = true
	m.renameID = board.ID
	m.fb.title = board.Title
	m.form = m.buildRenameForm()
	return m.form.Init()
}

func (m *Model) buildCreateForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Board name").
				Placeholder("Work").
				CharLimit(40).
				Value(&m.fb.title),
			huh.NewSelect[string]().
				Title("Board type").
				Options(
					huh.NewOption("List - simple task list", model.BoardDefault),
					huh.NewOption("Kanban - todo / in progress / done", model.BoardKanban),
				).
				Value(&m.fb.boardType),
		),
	).WithWidth(m.width - 4)
}

func (m *Model) buildRenameForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New name").
				CharLimit(40).
				Value(&m.fb.title),
		),
	).WithWidth(m.width - 4)
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		if m.renaming {
			id, title := m.renameID, m.fb.title
			return m, func() tea.Msg { return BoardRenamedMsg{ID: id, Title: title} }
		}
		title, boardType := m.fb.title, m.fb.boardType
		return m, func() tea.Msg { return BoardCreatedMsg{Title: title, Type: boardType} }
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	return m.form.View()
}
