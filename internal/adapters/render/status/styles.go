package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	empty  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		empty:  lipgloss.NewStyle().Faint(true),
	}
}
