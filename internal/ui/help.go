package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"edgebubble/internal/config"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates the pager text, including the active settings
func (r *HelpRenderer) RenderHelpContent(cfg *config.Config) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("edgebubble Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("drag"), descStyle.Render("Move the bubble")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("release"), descStyle.Render("Snap to the edge the pointer is nearest to")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Keys"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("r"), descStyle.Render("Reset the bubble to the right edge")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("q"), descStyle.Render("Quit")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Snapping"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  The screen is split into four triangles by its diagonals."))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  The triangle under the pointer picks the edge."))
	help.WriteString("\n")

	if cfg != nil {
		help.WriteString(sectionStyle.Render("Settings"))
		help.WriteString("\n")
		help.WriteString(fmt.Sprintf("  %s %v\n", keyStyle.Render("indicator_size"), cfg.IndicatorSize))
		help.WriteString(fmt.Sprintf("  %s    %dx%d\n", keyStyle.Render("bubble size"), cfg.Bubble.Width, cfg.Bubble.Height))
		help.WriteString(fmt.Sprintf("  %s       %s", keyStyle.Render("log file"), cfg.Log.File))
	}

	return help.String()
}

// HelpOps shows help in a pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	ovConfig := oviewer.NewConfig()
	ovConfig.IsWriteOnExit = false
	ovConfig.IsWriteOriginal = false

	root.SetConfig(ovConfig)

	return root.Run()
}
