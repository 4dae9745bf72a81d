package widget

import "github.com/charmbracelet/lipgloss"

// Colors shared by the widget and the CLI's static output
var (
	Primary = lipgloss.Color("214") // filled and half items
	Accent  = lipgloss.Color("212") // hover preview
	Muted   = lipgloss.Color("241") // outline items, status text
)

// Item styles
var (
	FilledStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	HalfStyle = lipgloss.NewStyle().
			Foreground(Primary)

	OutlineStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// PreviewStyle replaces FilledStyle/HalfStyle while the pointer is over the strip.
	PreviewStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Text styles
var (
	TitleStyle  = lipgloss.NewStyle().Bold(true)
	StatusStyle = lipgloss.NewStyle().Foreground(Muted)
	ValueStyle  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	HoverStyle  = lipgloss.NewStyle().Foreground(Accent)
)
