package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"couchnav/internal/ui/focus"
)

// KeyMap binds terminal keys to the six remote keys plus the global ones
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// Bindings is the configurable form of a KeyMap, remote key -> terminal keys
type Bindings map[string][]string

// DefaultBindings are used for any remote key the config leaves out
func DefaultBindings() Bindings {
	return Bindings{
		"up":    {"up", "k"},
		"down":  {"down", "j"},
		"left":  {"left", "h"},
		"right": {"right", "l"},
		"enter": {"enter"},
		"back":  {"esc", "backspace"},
		"help":  {"?"},
		"quit":  {"ctrl+c", "q"},
	}
}

// NewKeyMap builds a key map, falling back to the defaults per remote key
func NewKeyMap(b Bindings) KeyMap {
	def := DefaultBindings()
	keys := func(name string) []string {
		if ks, ok := b[name]; ok && len(ks) > 0 {
			return ks
		}
		return def[name]
	}
	bind := func(name, helpKey, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(keys(name)...), key.WithHelp(helpKey, desc))
	}
	return KeyMap{
		Up:    bind("up", "↑/k", "section up"),
		Down:  bind("down", "↓/j", "section down"),
		Left:  bind("left", "←/h", "left"),
		Right: bind("right", "→/l", "right"),
		Enter: bind("enter", "enter", "select"),
		Back:  bind("back", "esc", "back"),
		Help:  bind("help", "?", "help"),
		Quit:  bind("quit", "q", "quit"),
	}
}

// Resolve maps a terminal key to a remote key
func (km KeyMap) Resolve(msg tea.KeyMsg) focus.Key {
	switch {
	case key.Matches(msg, km.Up):
		return focus.KeyUp
	case key.Matches(msg, km.Down):
		return focus.KeyDown
	case key.Matches(msg, km.Left):
		return focus.KeyLeft
	case key.Matches(msg, km.Right):
		return focus.KeyRight
	case key.Matches(msg, km.Enter):
		return focus.KeyEnter
	case key.Matches(msg, km.Back):
		return focus.KeyBack
	default:
		return focus.KeyNone
	}
}

// ShortHelp implements help.KeyMap
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Enter, km.Back, km.Help, km.Quit}
}

// FullHelp implements help.KeyMap
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Enter, km.Back},
		{km.Help, km.Quit},
	}
}
