package output

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by commands.
type Styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Info     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	FilePath lipgloss.Style
	Token    lipgloss.Style
}

// NewStyles builds the style set against a lipgloss renderer.
func NewStyles(lr *lipgloss.Renderer) Styles {
	return Styles{
		Error:    lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  lr.NewStyle().Foreground(lipgloss.Color("11")),
		Success:  lr.NewStyle().Foreground(lipgloss.Color("10")),
		Info:     lr.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:    lr.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     lr.NewStyle().Bold(true),
		FilePath: lr.NewStyle().Foreground(lipgloss.Color("14")).Underline(true),
		Token:    lr.NewStyle().Foreground(lipgloss.Color("13")),
	}
}
