package widgets

import (
	"strings"

	"couchnav/internal/domain"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/views"
)

// NavItem is one entry of the header navigation
type NavItem struct {
	Label string
	Path  string
}

// DefaultNav is the header of every page that has one
func DefaultNav() []NavItem {
	return []NavItem{
		{Label: "Home", Path: "home"},
		{Label: "Search", Path: "search"},
		{Label: "Watchlist", Path: "watchlist"},
	}
}

// Header is the navigation bar above the first section
type Header struct {
	styles  *views.Styles
	items   []NavItem
	current string
	index   int
	focused bool
}

// NewHeader creates a header highlighting the route current
func NewHeader(styles *views.Styles, current string) *Header {
	h := &Header{styles: styles, items: DefaultNav(), current: current}
	h.ResetFocus()
	return h
}

func (h *Header) FocusIndex() int { return h.index }

func (h *Header) SetFocusIndex(i int) { h.index = clampIndex(i, len(h.items)) }

// ResetFocus moves the highlight back to the current route
func (h *Header) ResetFocus() {
	h.index = 0
	for i, it := range h.items {
		if it.Path == h.current {
			h.index = i
		}
	}
}

func (h *Header) SetFocused(focused bool) { h.focused = focused }

// IsFocused reports whether the header holds focus
func (h *Header) IsFocused() bool { return h.focused }

// Selected returns the highlighted item
func (h *Header) Selected() NavItem { return h.items[h.index] }

// HandleKey moves along the nav and opens the selected route. Header
// navigation always starts the destination fresh.
func (h *Header) HandleKey(k focus.Key) (focus.Signal, bool) {
	switch k {
	case focus.KeyLeft:
		if h.index > 0 {
			h.index--
		}
		return focus.Signal{}, true
	case focus.KeyRight:
		if h.index < len(h.items)-1 {
			h.index++
		}
		return focus.Signal{}, true
	case focus.KeyEnter:
		item := h.items[h.index]
		return focus.Navigate(item.Path, domain.RouteParams{
			From:   "header",
			Intent: domain.IntentReset,
		}), true
	}
	return focus.Signal{}, false
}

// Render draws the nav on one row
func (h *Header) Render(width int) string {
	parts := make([]string, 0, len(h.items)+1)
	parts = append(parts, h.styles.Title.Render("couchnav"))
	for i, it := range h.items {
		style := h.styles.NavItem
		switch {
		case h.focused && i == h.index:
			style = h.styles.NavItemFocused
		case it.Path == h.current:
			style = h.styles.NavItemCurrent
		}
		parts = append(parts, style.Render(it.Label))
	}
	line := strings.Join(parts, " ")
	return line + "\n" + h.styles.Dim.Render(strings.Repeat("─", max(width, 1)))
}
