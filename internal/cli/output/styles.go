package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by text-mode output.
type Styles struct {
	Header1   lipgloss.Style
	Header2   lipgloss.Style
	Inherited lipgloss.Style
	Muted     lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Header1:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1),
		Header2:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Inherited: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
