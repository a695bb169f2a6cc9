package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the board.
type Styles struct {
	Title      lipgloss.Style
	TourHeader lipgloss.Style
	EarlyBadge lipgloss.Style
	LateBadge  lipgloss.Style
	NightBadge lipgloss.Style

	Task     lipgloss.Style
	Cursor   lipgloss.Style
	Conflict lipgloss.Style
	Driving  lipgloss.Style
	FreeSlot lipgloss.Style
	Moving   lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Padding(0, 1),
		TourHeader: lipgloss.NewStyle().Bold(true),
		EarlyBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		LateBadge:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		NightBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		Task:     lipgloss.NewStyle(),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Conflict: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Driving:  lipgloss.NewStyle().Faint(true),
		FreeSlot: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Moving:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		Status: lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:   lipgloss.NewStyle().Faint(true),
	}
}

// badge returns the shift badge style for a shift value.
func (s Styles) badge(shift string) lipgloss.Style {
	switch shift {
	case "early":
		return s.EarlyBadge
	case "late":
		return s.LateBadge
	default:
		return s.NightBadge
	}
}
