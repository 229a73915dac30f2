package confirm

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"memo/internal/tui/theme"
)

var (
	confirmModalBoxStyle = theme.ModalBox
	confirmTitleStyle    = theme.Title
	confirmYesStyle      = theme.Ok
	confirmNoStyle       = theme.Error
)

// Modal displays a simple yes/no confirmation dialog
type Modal struct {
	Message   string // Primary question
	Details   string // Additional context (optional)
	Width     int    // Modal width
	Confirmed bool
	answered  bool
}

// New creates a new confirmation modal
func New(message, details string, width int) Modal {
	return Modal{
		Message: message,
		Details: details,
		Width:   width,
	}
}

func (m Modal) Init() tea.Cmd {
	return nil
}

// Update handles key events for the confirmation modal
func (m Modal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.Confirmed = true
		m.answered = true
		return m, tea.Quit
	case "n", "N", "esc", "ctrl+c":
		m.Confirmed = false
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the confirmation modal
func (m Modal) View() string {
	if m.answered {
		return ""
	}

	var content string

	content += confirmTitleStyle.Render(m.Message) + "\n"

	if m.Details != "" {
		content += "\n" + m.Details + "\n"
	}

	content += "\n"
	content += confirmYesStyle.Render("[y]") + " Yes  "
	content += confirmNoStyle.Render("[n/esc]") + " No"

	return confirmModalBoxStyle.Width(m.Width).Render(content)
}

// Ask shows the modal on the terminal and reports whether the user said yes.
func Ask(message, details string, in io.Reader, out io.Writer) (bool, error) {
	var opts []tea.ProgramOption
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(New(message, details, 60), opts...).Run()
	if err != nil {
		return false, err
	}
	return final.(Modal).Confirmed, nil
}
