package widgets

import (
	"couchnav/internal/domain"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/views"
)

// Rail is a titled horizontal row of tiles. It reports no index until the
// user has moved inside it, so a fresh page does not treat it as visited.
type Rail struct {
	Title string

	styles  *views.Styles
	from    string
	items   []domain.Item
	index   int
	first   int
	touched bool
	focused bool
}

// NewRail creates an empty rail; from is the route tiles open detail with
func NewRail(styles *views.Styles, title, from string) *Rail {
	return &Rail{Title: title, styles: styles, from: from}
}

// SetItems replaces the tiles, keeping the highlight in range
func (r *Rail) SetItems(items []domain.Item) {
	r.items = items
	r.index = clampIndex(r.index, len(items))
	r.first = clampIndex(r.first, len(items))
}

// Items returns the tiles
func (r *Rail) Items() []domain.Item { return r.items }

// Current returns the highlighted item
func (r *Rail) Current() (domain.Item, bool) {
	if len(r.items) == 0 {
		return domain.Item{}, false
	}
	return r.items[r.index], true
}

func (r *Rail) FocusIndex() int {
	if !r.touched {
		return focus.NoIndex
	}
	return r.index
}

func (r *Rail) SetFocusIndex(i int) {
	r.index = clampIndex(i, len(r.items))
	r.touched = true
}

func (r *Rail) ResetFocus() {
	r.index = 0
	r.first = 0
	r.touched = false
}

func (r *Rail) SetFocused(focused bool) { r.focused = focused }

func (r *Rail) HandleKey(k focus.Key) (focus.Signal, bool) {
	switch k {
	case focus.KeyLeft:
		if r.index > 0 {
			r.index--
			r.touched = true
		}
		return focus.Signal{}, true
	case focus.KeyRight:
		if r.index < len(r.items)-1 {
			r.index++
			r.touched = true
		}
		return focus.Signal{}, true
	case focus.KeyUp:
		return focus.Signal{Kind: focus.SignalFocusPrev}, true
	case focus.KeyDown:
		return focus.Signal{Kind: focus.SignalFocusNext}, true
	case focus.KeyEnter:
		item, ok := r.Current()
		if !ok {
			return focus.Signal{}, false
		}
		return focus.Navigate("detail", domain.RouteParams{ID: item.ID, From: r.from}), true
	}
	return focus.Signal{}, false
}

// Render draws the title row and the visible window of tiles
func (r *Rail) Render(width int) string {
	title := r.styles.RailTitle
	if r.focused {
		title = title.Foreground(r.styles.Highlight.GetForeground())
	}
	head := title.Render(r.Title)
	if len(r.items) == 0 {
		return head + "\n" + r.styles.StatusLoading.Render("Loading…")
	}

	n := visibleTiles(width)
	if r.index < r.first {
		r.first = r.index
	}
	if r.index >= r.first+n {
		r.first = r.index - n + 1
	}
	last := min(r.first+n, len(r.items))

	tiles := make([]string, 0, last-r.first)
	for i := r.first; i < last; i++ {
		tiles = append(tiles, renderTile(r.styles, r.items[i], r.focused && i == r.index))
	}
	return head + "\n" + joinTiles(tiles)
}
