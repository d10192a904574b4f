package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading        *lipgloss.Style
	Brand          *lipgloss.Style
	Tagline        *lipgloss.Style
	Nav            *lipgloss.Style
	NavScrolled    *lipgloss.Style
	NavItem        *lipgloss.Style
	NavActive      *lipgloss.Style
	Progress       *lipgloss.Style
	Headline       *lipgloss.Style
	Heading        *lipgloss.Style
	Body           *lipgloss.Style
	Bullet         *lipgloss.Style
	Tab            *lipgloss.Style
	TabSelected    *lipgloss.Style
	Panel          *lipgloss.Style
	LinkKey        *lipgloss.Style
	Link           *lipgloss.Style
	Success        *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Footer         *lipgloss.Style
	Popup          *lipgloss.Style
	PopupTitle     *lipgloss.Style
	MenuItem       *lipgloss.Style
	MenuSelected   *lipgloss.Style
	FilterPrompt   *lipgloss.Style
	FormLabel      *lipgloss.Style
	FormError      *lipgloss.Style
	Button         *lipgloss.Style
	ButtonFocused  *lipgloss.Style
	ButtonDisabled *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("38")).Italic(true),
	),
	Brand: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Tagline: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Nav: ptr(
		lipgloss.NewStyle(),
	),
	NavScrolled: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("236")),
	),
	NavItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	NavActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true).Underline(true),
	),
	Progress: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("38")),
	),
	Headline: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Heading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Bullet: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("38")),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
	),
	TabSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("31")).Bold(true).Padding(0, 1),
	),
	Panel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	LinkKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("38")).Bold(true),
	),
	Link: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
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
	Popup: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("38")).Padding(1, 3),
	),
	PopupTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	MenuSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FormLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	),
	FormError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2),
	),
	ButtonFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("31")).Bold(true).Padding(0, 2),
	),
	ButtonDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Background(lipgloss.Color("236")).Padding(0, 2),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
