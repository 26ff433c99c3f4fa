package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Title     lipgloss.Style
	Status    lipgloss.Style
	Die       lipgloss.Style
	Focused   lipgloss.Style
	Locked    lipgloss.Style
	Animating lipgloss.Style
	Marker    lipgloss.Style
	Stats     lipgloss.Style
	Notice    lipgloss.Style
	Warning   lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles builds the standard color scheme. With noColor set, every
// style keeps its layout (borders, padding) but drops its colors.
func DefaultStyles(noColor bool) Styles {
	die := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Align(lipgloss.Center)

	s := Styles{
		Title:     lipgloss.NewStyle().Bold(true),
		Status:    lipgloss.NewStyle(),
		Die:       die,
		Focused:   die.Border(lipgloss.ThickBorder()),
		Locked:    die,
		Animating: die,
		Marker:    lipgloss.NewStyle(),
		Stats:     lipgloss.NewStyle().Bold(true),
		Notice:    lipgloss.NewStyle(),
		Warning:   lipgloss.NewStyle().Bold(true),
		Help:      lipgloss.NewStyle(),
	}
	if noColor {
		return s
	}

	s.Title = s.Title.Foreground(lipgloss.Color("205"))
	s.Status = s.Status.Foreground(lipgloss.Color("244"))
	s.Focused = s.Focused.BorderForeground(lipgloss.Color("205"))
	s.Locked = s.Locked.BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("240"))
	s.Animating = s.Animating.BorderForeground(lipgloss.Color("220"))
	s.Marker = s.Marker.Foreground(lipgloss.Color("240"))
	s.Stats = s.Stats.Foreground(lipgloss.Color("75"))
	s.Notice = s.Notice.Foreground(lipgloss.Color("244"))
	s.Warning = s.Warning.Foreground(lipgloss.Color("203"))
	s.Help = s.Help.Foreground(lipgloss.Color("241"))
	return s
}
