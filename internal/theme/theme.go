package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorCyan    = lipgloss.AdaptiveColor{Dark: "#22D3EE", Light: "#0E7490"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// TabStyle renders an inactive board or view tab.
var TabStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Padding(0, 1)

// ActiveTabStyle renders the selected board or view tab.
var ActiveTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// CompletedStyle renders finished tasks.
var CompletedStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Strikethrough(true)

// HighPriorityStyle marks tasks flagged as high priority.
var HighPriorityStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// ExtendedStyle marks tasks whose deadline was pushed to tomorrow.
var ExtendedStyle = lipgloss.NewStyle().
	Foreground(ColorYellow)

// QuoteStyle renders the quote of the day in the header.
var QuoteStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// BorderStyle provides a standard rounded border for panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ColumnStyle returns a color-coded style for a kanban column id.
func ColumnStyle(columnID string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch columnID {
	case "todo":
		return base.Foreground(ColorBlue)
	case "in-progress":
		return base.Foreground(ColorYellow)
	case "done":
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// tagColors is the built-in palette keyed by well-known tag names.
var tagColors = map[string]lipgloss.AdaptiveColor{
	"work":     ColorCyan,
	"study":    ColorMagenta,
	"home":     ColorGreen,
	"personal": ColorYellow,
	"prio":     ColorRed,
	"urgent":   ColorRed,
	"idea":     ColorBlue,
	"gym":      ColorOrange,
	"health":   ColorGreen,
	"shopping": ColorMagenta,
	"meet":     ColorBlue,
	"call":     ColorBlue,
	"mail":     ColorYellow,
	"ux":       ColorMagenta,
	"bug":      ColorRed,
}

// TagStyle returns the style for a tag chip. User overrides (tag name to a
// terminal color string) win over the built-in palette; unknown tags fall
// back to gray.
func TagStyle(tag string, overrides map[string]string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	if hex, ok := overrides[tag]; ok && hex != "" {
		return base.Foreground(lipgloss.Color(hex))
	}
	if color, ok := tagColors[tag]; ok {
		return base.Foreground(color)
	}
	return base.Foreground(ColorGray)
}
