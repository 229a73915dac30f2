package shared

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"memo/internal/tui/theme"
)

// HelpSection is a titled group of key bindings
type HelpSection struct {
	Title string
	Binds []key.Binding
}

var (
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle     = theme.ModalBox
	helpDismissStyle = theme.Muted
)

// RenderHelpPopup renders a centered help popup with the given sections
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	line := func(keys, desc string) string {
		return "  " + helpKeyStyle.Width(14).Render(keys) + helpDescStyle.Render(desc)
	}

	var content strings.Builder
	for i, section := range sections {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(helpSectionStyle.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			if !bind.Enabled() {
				continue
			}
			h := bind.Help()
			content.WriteString(line(h.Key, h.Desc) + "\n")
		}
	}

	content.WriteString("\n" + helpDismissStyle.Render("Press any key to close"))

	box := helpBoxStyle.Render(content.String())
	if width == 0 || height == 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
