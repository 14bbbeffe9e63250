package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the demo UI
type Styles struct {
	Header    lipgloss.Style
	HeaderDim lipgloss.Style
	Title     lipgloss.Style
	Document  lipgloss.Style
	TabBar    lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Status    lipgloss.Style
	Dim       lipgloss.Style
	Direction lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")).
			Padding(0, 1),
		HeaderDim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Document: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TabBar: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 2),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Background(lipgloss.Color("236")).
			Padding(0, 2),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Direction: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// opacityStyle dims a base style in discrete steps to approximate an
// opacity channel on a terminal surface
func opacityStyle(base lipgloss.Style, opacity float64) lipgloss.Style {
	switch {
	case opacity >= 0.75:
		return base
	case opacity >= 0.4:
		return base.Faint(true)
	case opacity >= 0.15:
		return base.Faint(true).Foreground(lipgloss.Color("238"))
	default:
		return base.Faint(true).Foreground(lipgloss.Color("235"))
	}
}
