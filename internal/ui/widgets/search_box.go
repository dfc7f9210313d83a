package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/views"
)

// Search box signals
const (
	// SignalSearch carries the query when the box is submitted
	SignalSearch = "search"
	// SignalEditSearch asks the page to start editing
	SignalEditSearch = "editSearch"
)

// ArgQuery carries the query of a search signal
const ArgQuery = "query"

// SearchBox wraps a text input. It only takes typing while editing; Enter
// starts editing and submits.
type SearchBox struct {
	styles  *views.Styles
	input   textinput.Model
	focused bool
}

// NewSearchBox creates an empty search box
func NewSearchBox(styles *views.Styles) *SearchBox {
	ti := textinput.New()
	ti.Placeholder = "Title, genre or year"
	ti.Prompt = "Search: "
	ti.CharLimit = 64
	ti.Width = 40
	return &SearchBox{styles: styles, input: ti}
}

// Editing reports whether keystrokes go to the text input
func (b *SearchBox) Editing() bool { return b.input.Focused() }

// StartEditing gives the text input the cursor
func (b *SearchBox) StartEditing() tea.Cmd { return b.input.Focus() }

// StopEditing takes the cursor away, keeping the text
func (b *SearchBox) StopEditing() { b.input.Blur() }

// Value is the current query
func (b *SearchBox) Value() string { return strings.TrimSpace(b.input.Value()) }

// SetValue replaces the query
func (b *SearchBox) SetValue(v string) { b.input.SetValue(v) }

// Submit ends editing and returns the search signal
func (b *SearchBox) Submit() focus.Signal {
	b.StopEditing()
	return focus.Custom(SignalSearch, map[string]string{ArgQuery: b.Value()})
}

// Update feeds a message to the text input while editing
func (b *SearchBox) Update(msg tea.Msg) tea.Cmd {
	if !b.Editing() {
		return nil
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return cmd
}

func (b *SearchBox) SetFocused(focused bool) {
	b.focused = focused
	if !focused {
		b.StopEditing()
	}
}

// HandleKey handles remote keys while not editing
func (b *SearchBox) HandleKey(k focus.Key) (focus.Signal, bool) {
	if k == focus.KeyEnter {
		return focus.Custom(SignalEditSearch, nil), true
	}
	return focus.Signal{}, false
}

// Render draws the box
func (b *SearchBox) Render(width int) string {
	style := b.styles.Input
	if b.focused {
		style = b.styles.InputFocused
	}
	b.input.Width = max(width-len(b.input.Prompt)-6, 10)
	return style.Width(max(width-2, 10)).Render(b.input.View())
}
