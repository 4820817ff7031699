package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title             *lipgloss.Style
	Header            *lipgloss.Style
	ActiveHeader      *lipgloss.Style
	Section           *lipgloss.Style
	Intro             *lipgloss.Style
	Card              *lipgloss.Style
	ActiveCard        *lipgloss.Style
	CardTitle         *lipgloss.Style
	Connector         *lipgloss.Style
	ActiveConnector   *lipgloss.Style
	Status            *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	PickerItem        *lipgloss.Style
	PickerSelected    *lipgloss.Style
	PickerKey         *lipgloss.Style

	// ProgressStart and ProgressEnd feed the gradient of the progress bar.
	ProgressStart string
	ProgressEnd   string
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
	),
	ActiveHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	Section: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Intro: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
	),
	Card: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	ActiveCard: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	CardTitle: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Connector: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	ActiveConnector: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	PickerItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PickerSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	PickerKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	ProgressStart: "#5A56E0",
	ProgressEnd:   "#EE6FF8",
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

// Render applies style to text, passing text through when style is nil.
func Render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
