package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Default vim-style navigation keys, used alongside the arrow keys.
var (
	DefaultUpKeys   = []string{"k"}
	DefaultDownKeys = []string{"j"}
)

// KeyMap holds the picker's bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Filter  key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the bindings with the default navigation keys.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(DefaultUpKeys, DefaultDownKeys)
}

// NewKeyMap builds a KeyMap whose up and down bindings accept the given keys
// in addition to the arrow keys. Empty lists fall back to the defaults.
func NewKeyMap(up, down []string) KeyMap {
	if len(up) == 0 {
		up = DefaultUpKeys
	}
	if len(down) == 0 {
		down = DefaultDownKeys
	}
	upKeys := withArrow(up, "up")
	downKeys := withArrow(down, "down")

	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(upKeys...),
			key.WithHelp(helpKeys(upKeys), "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys(downKeys...),
			key.WithHelp(helpKeys(downKeys), "move down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open note"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func withArrow(keys []string, arrow string) []string {
	out := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" && k != arrow {
			out = append(out, k)
		}
	}
	return append(out, arrow)
}

func helpKeys(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case "up":
			labels[i] = "↑"
		case "down":
			labels[i] = "↓"
		default:
			labels[i] = k
		}
	}
	return strings.Join(labels, "/")
}
