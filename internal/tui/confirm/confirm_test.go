package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModal_Answers(t *testing.T) {
	tests := []struct {
		key       tea.KeyMsg
		confirmed bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, false},
	}

	for _, tt := range tests {
		next, cmd := New("Create it?", "", 40).Update(tt.key)
		m := next.(Modal)

		require.NotNil(t, cmd, "key %q should answer", tt.key.String())
		assert.Equal(t, tt.confirmed, m.Confirmed, "key %q", tt.key.String())
		assert.Empty(t, m.View())
	}
}

func TestModal_IgnoresOtherKeys(t *testing.T) {
	next, cmd := New("Create it?", "", 40).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Nil(t, cmd)
	assert.False(t, next.(Modal).Confirmed)
}

func TestModal_View(t *testing.T) {
	view := New("memos directory does not exist.", "Create /tmp/memos?", 60).View()

	assert.Contains(t, view, "memos directory does not exist.")
	assert.Contains(t, view, "Create /tmp/memos?")
	assert.Contains(t, view, "[y]")
	assert.Contains(t, view, "[n/esc]")
}
