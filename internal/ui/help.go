package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"couchnav/internal/ui/input"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys input.KeyMap
}

// NewHelpRenderer creates a help renderer for keys
func NewHelpRenderer(keys input.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(b key.Binding, desc string) string {
		return fmt.Sprintf("  %s %s\n", keyStyle.Render(strings.Join(b.Keys(), ", ")), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("couchnav Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Remote"))
	help.WriteString("\n")
	help.WriteString(row(r.keys.Up, "Previous section, or the header from the first one"))
	help.WriteString(row(r.keys.Down, "Next section"))
	help.WriteString(row(r.keys.Left, "Move inside a rail, grid or button row"))
	help.WriteString(row(r.keys.Right, "Move inside a rail, grid or button row"))
	help.WriteString(row(r.keys.Enter, "Open the focused item or press the focused button"))
	help.WriteString(row(r.keys.Back, "Go back; positions are restored"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("enter"), descStyle.Render("Start typing, then submit the query")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("esc"), descStyle.Render("Stop typing")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(row(r.keys.Help, "Show this help"))
	help.WriteString(strings.TrimSuffix(row(r.keys.Quit, "Quit"), "\n"))

	return help.String()
}

// HelpOps handles help operations
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

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
