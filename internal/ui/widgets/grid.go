package widgets

import (
	"strings"

	"couchnav/internal/domain"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/views"
)

// Grid lays tiles out in rows of Cols. Moves inside the grid are reported
// as focusMoved so the page can keep the focused row in view.
type Grid struct {
	styles  *views.Styles
	from    string
	empty   string
	items   []domain.Item
	cols    int
	index   int
	touched bool
	focused bool
}

// NewGrid creates an empty grid; empty is shown when there are no items
func NewGrid(styles *views.Styles, cols int, from, empty string) *Grid {
	return &Grid{styles: styles, cols: max(cols, 1), from: from, empty: empty}
}

// SetItems replaces the tiles, keeping the highlight in range
func (g *Grid) SetItems(items []domain.Item) {
	g.items = items
	g.index = clampIndex(g.index, len(items))
}

// Items returns the tiles
func (g *Grid) Items() []domain.Item { return g.items }

// SetEmptyText changes the text shown without items
func (g *Grid) SetEmptyText(text string) { g.empty = text }

// SetCols changes the row length
func (g *Grid) SetCols(cols int) { g.cols = max(cols, 1) }

// Cols is the row length
func (g *Grid) Cols() int { return g.cols }

// Current returns the highlighted item
func (g *Grid) Current() (domain.Item, bool) {
	if len(g.items) == 0 {
		return domain.Item{}, false
	}
	return g.items[g.index], true
}

func (g *Grid) FocusIndex() int {
	if !g.touched {
		return focus.NoIndex
	}
	return g.index
}

func (g *Grid) SetFocusIndex(i int) {
	g.index = clampIndex(i, len(g.items))
	g.touched = true
}

func (g *Grid) ResetFocus() {
	g.index = 0
	g.touched = false
}

func (g *Grid) SetFocused(focused bool) { g.focused = focused }

func (g *Grid) HandleKey(k focus.Key) (focus.Signal, bool) {
	if len(g.items) == 0 {
		switch k {
		case focus.KeyUp:
			return focus.Signal{Kind: focus.SignalFocusPrev}, true
		case focus.KeyDown:
			return focus.Signal{Kind: focus.SignalFocusNext}, true
		}
		return focus.Signal{}, false
	}

	row, col := g.index/g.cols, g.index%g.cols
	switch k {
	case focus.KeyLeft:
		if col == 0 {
			return focus.Signal{}, true
		}
		return g.moveTo(g.index - 1), true
	case focus.KeyRight:
		if col == g.cols-1 || g.index == len(g.items)-1 {
			return focus.Signal{}, true
		}
		return g.moveTo(g.index + 1), true
	case focus.KeyUp:
		if row == 0 {
			return focus.Signal{Kind: focus.SignalFocusPrev}, true
		}
		return g.moveTo(g.index - g.cols), true
	case focus.KeyDown:
		if (row+1)*g.cols >= len(g.items) {
			return focus.Signal{Kind: focus.SignalFocusNext}, true
		}
		return g.moveTo(min(g.index+g.cols, len(g.items)-1)), true
	case focus.KeyEnter:
		item := g.items[g.index]
		return focus.Navigate("detail", domain.RouteParams{ID: item.ID, From: g.from}), true
	}
	return focus.Signal{}, false
}

func (g *Grid) moveTo(i int) focus.Signal {
	g.index = i
	g.touched = true
	return focus.Signal{
		Kind: focus.SignalFocusMoved,
		Move: focus.GridMove{
			Row:       i / g.cols,
			Col:       i % g.cols,
			RowHeight: views.TileHeight,
			Cols:      g.cols,
			Items:     len(g.items),
		},
	}
}

// Render draws the tiles row by row
func (g *Grid) Render(width int) string {
	if len(g.items) == 0 {
		return g.styles.Dim.Render(g.empty)
	}
	rows := make([]string, 0, (len(g.items)+g.cols-1)/g.cols)
	for start := 0; start < len(g.items); start += g.cols {
		end := min(start+g.cols, len(g.items))
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, renderTile(g.styles, g.items[i], g.focused && i == g.index))
		}
		rows = append(rows, joinTiles(tiles))
	}
	return strings.Join(rows, "\n")
}

// ColsFor is how many tiles of a grid fit in width
func ColsFor(width int) int {
	return visibleTiles(width)
}
