package picker

import (
	"github.com/charmbracelet/lipgloss"
	"memo/internal/tui/theme"
)

var (
	titleStyle = theme.Title.Padding(0, 1)

	listItemStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Padding(0, 2)

	selectedListItemStyle = lipgloss.NewStyle().
				Foreground(theme.Warning).
				Bold(true).
				Padding(0, 2)

	descriptionStyle = theme.Muted.Padding(0, 4)

	emptyStyle = theme.Muted.Italic(true).Padding(0, 2)

	scrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(theme.Primary).
				Italic(true).
				Padding(0, 2)

	filterStyle = lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true).
			Padding(0, 1)

	helpStyle = theme.HelpHint.Padding(1, 1, 0, 1)
)
