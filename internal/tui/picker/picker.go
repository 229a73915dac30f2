package picker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"memo/internal/notes"
	"memo/internal/tui/shared"
)

// ErrCancelled is returned by Pick when the user leaves without choosing.
var ErrCancelled = errors.New("selection cancelled")

// Describer is implemented by items that have more to show than their label.
type Describer interface {
	Description() string
}

// chromeLines is the number of rows the title, filter, description and help take up.
const chromeLines = 7

// Model is a single-select list. The cursor stops at both ends of the list.
type Model struct {
	title        string
	items        []notes.Item
	labels       []string
	filtered     []int // indices into items
	cursor       int
	keys         KeyMap
	filterText   string
	filterMode   bool
	showHelp     bool
	descriptions map[int]string
	chosen       int
	done         bool
	width        int
	height       int
}

// New creates a picker over items with the cursor on the first entry.
// A zero KeyMap is replaced by DefaultKeyMap.
func New(title string, items []notes.Item, keys KeyMap) Model {
	if len(keys.Confirm.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label()
	}

	m := Model{
		title:        title,
		items:        items,
		labels:       labels,
		keys:         keys,
		descriptions: make(map[int]string),
		chosen:       -1,
	}
	m.recomputeFilter()
	return m
}

// Selected returns the index into the original items of the confirmed entry.
func (m Model) Selected() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// Cursor returns the index into the original items under the cursor, or -1.
func (m Model) Cursor() int {
	if len(m.filtered) == 0 {
		return -1
	}
	return m.filtered[m.cursor]
}

// Done reports whether the user confirmed or cancelled.
func (m Model) Done() bool {
	return m.done
}

func (m *Model) recomputeFilter() {
	if m.filterText == "" {
		m.filtered = make([]int, len(m.items))
		for i := range m.items {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(m.filterText, m.labels)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc && m.filterText != "":
		m.filterText = ""
		m.cursor = 0
		m.recomputeFilter()

	case key.Matches(msg, m.keys.Cancel):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		if len(m.filtered) == 0 {
			return m, nil
		}
		m.chosen = m.filtered[m.cursor]
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Filter):
		m.filterMode = true

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filterMode = false
	case tea.KeyEsc:
		m.filterText = ""
		m.filterMode = false
		m.cursor = 0
		m.recomputeFilter()
	case tea.KeyCtrlC:
		m.done = true
		return m, tea.Quit
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case tea.KeyBackspace:
		if m.filterText != "" {
			runes := []rune(m.filterText)
			m.filterText = string(runes[:len(runes)-1])
			m.cursor = 0
			m.recomputeFilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filterText += string(msg.Runes)
		m.cursor = 0
		m.recomputeFilter()
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	if m.showHelp {
		return shared.RenderHelpPopup(m.helpSections(), m.width, m.height)
	}

	var lines []string
	lines = append(lines, titleStyle.Render(m.title), "")

	if m.filterText != "" || m.filterMode {
		filterDisplay := "/ " + m.filterText
		if m.filterMode {
			filterDisplay += "_"
		}
		lines = append(lines, filterStyle.Render(filterDisplay))
	}

	if len(m.items) == 0 {
		lines = append(lines, emptyStyle.Render("No notes found"))
	} else if len(m.filtered) == 0 {
		lines = append(lines, emptyStyle.Render("No matching notes"))
	} else {
		start, end := visibleRange(m.cursor, len(m.filtered), m.height-chromeLines)
		if start > 0 {
			lines = append(lines, scrollIndicatorStyle.Render(fmt.Sprintf("↑ %d more", start)))
		}
		for i := start; i < end; i++ {
			style := listItemStyle
			prefix := "  "
			if i == m.cursor {
				style = selectedListItemStyle
				prefix = "> "
			}
			lines = append(lines, style.Render(prefix+m.labels[m.filtered[i]]))
		}
		if end < len(m.filtered) {
			lines = append(lines, scrollIndicatorStyle.Render(fmt.Sprintf("↓ %d more", len(m.filtered)-end)))
		}

		if desc := m.description(m.filtered[m.cursor]); desc != "" {
			lines = append(lines, "", descriptionStyle.Render(desc))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return shared.WithBottomHints(content, helpStyle.Render(m.hintText()), m.height)
}

// description looks up and caches the description of items[idx].
func (m Model) description(idx int) string {
	if desc, ok := m.descriptions[idx]; ok {
		return desc
	}
	var desc string
	if d, ok := m.items[idx].(Describer); ok {
		desc = d.Description()
	}
	m.descriptions[idx] = desc
	return desc
}

func (m Model) hintText() string {
	if m.filterMode {
		return "type to filter  enter:done  esc:clear"
	}
	up := m.keys.Up.Help().Key
	down := m.keys.Down.Help().Key
	return strings.Join([]string{up + " " + down + ":navigate", "enter:open", "/:filter", "?:help", "esc:quit"}, "  ")
}

func (m Model) helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{Title: "Navigation", Binds: []key.Binding{m.keys.Up, m.keys.Down}},
		{Title: "Actions", Binds: []key.Binding{m.keys.Confirm, m.keys.Filter, m.keys.Cancel, m.keys.Help}},
	}
}

// visibleRange returns the window of rows [start, end) that keeps cursor in
// view. rows <= 0 means the height is unknown and everything is shown.
func visibleRange(cursor, total, rows int) (int, int) {
	if rows <= 0 || total <= rows {
		return 0, total
	}
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	return start, start + rows
}

// Picker runs the list as a full-screen program.
type Picker struct {
	Title  string
	Keys   KeyMap
	Input  io.Reader // Defaults to the terminal
	Output io.Writer // Defaults to stdout
}

// Pick shows items and blocks until the user confirms one or cancels.
func (p Picker) Pick(items []notes.Item) (int, error) {
	if len(items) == 0 {
		return -1, notes.ErrNoNotesFound
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if p.Input != nil {
		opts = append(opts, tea.WithInput(p.Input))
	}
	if p.Output != nil {
		opts = append(opts, tea.WithOutput(p.Output))
	}

	title := p.Title
	if title == "" {
		title = "Notes"
	}

	final, err := tea.NewProgram(New(title, items, p.Keys), opts...).Run()
	if err != nil {
		return -1, err
	}

	if idx, ok := final.(Model).Selected(); ok {
		return idx, nil
	}
	return -1, ErrCancelled
}
