package settingsform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/listoapp/listo/internal/model"
)

// SavedMsg is dispatched when the user submits the settings form.
type SavedMsg struct {
	Settings model.Settings
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	sound          bool
	confetti       bool
	quotes         bool
	smartTargeting bool
}

// Model is the Bubble Tea model for the settings form.
type Model struct {
	form *huh.Form
	fb   *formBindings

	// tagColors is carried through untouched; the form only edits the
	// boolean toggles.
	tagColors map[string]string

	width  int
	height int
}

// New creates a new settings form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Start initializes the form from the current settings.
func (m *Model) Start(settings model.Settings) tea.Cmd {
	m.fb.sound = settings.SoundEnabled
	m.fb.confetti = settings.ConfettiEnabled
	m.fb.quotes = settings.QuotesEnabled
	m.fb.smartTargeting = settings.SmartTargeting
	m.tagColors = settings.TagColors

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Completion sound").
				Value(&m.fb.sound),
			huh.NewConfirm().
				Title("Celebration at 100%").
				Value(&m.fb.confetti),
			huh.NewConfirm().
				Title("Quote of the day").
				Value(&m.fb.quotes),
			huh.NewConfirm().
				Title("Smart @board targeting").
				Value(&m.fb.smartTargeting),
		),
	).WithWidth(m.width - 4)

	return m.form.Init()
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		settings := model.Settings{
			SoundEnabled:    m.fb.sound,
			ConfettiEnabled: m.fb.confetti,
			QuotesEnabled:   m.fb.quotes,
			SmartTargeting:  m.fb.smartTargeting,
			TagColors:       m.tagColors,
		}
		return m, func() tea.Msg { return SavedMsg{Settings: settings} }
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
