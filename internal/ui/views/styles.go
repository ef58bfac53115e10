package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Bubble        lipgloss.Style
	BubbleGrabbed lipgloss.Style
	Label         lipgloss.Style
	Border        lipgloss.Style
	ShadowNear    lipgloss.Style
	ShadowFar     lipgloss.Style
	Status        lipgloss.Style
	Direction     lipgloss.Style
	Help          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Bubble:        lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		BubbleGrabbed: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Border:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		ShadowNear:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ShadowFar:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Direction:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Help:          lipgloss.NewStyle().Faint(true),
	}
}
