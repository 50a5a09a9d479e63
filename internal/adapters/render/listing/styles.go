package listing

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	name       lipgloss.Style
	meta       lipgloss.Style
	price      lipgloss.Style
	outOfStock lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	link       lipgloss.Style
	total      lipgloss.Style
	review     lipgloss.Style
	reviewMeta lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		price:      lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		outOfStock: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		link:       lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("75")),
		total:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		review:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		reviewMeta: lipgloss.NewStyle().Faint(true),
	}
}
