package widgets

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"couchnav/internal/domain"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/views"
)

// Button actions
const (
	ActionPlay  = "play"
	ActionAdd   = "toggleWatchlist"
	ActionLike  = "like"
	ArgItemID   = "id"
	detailRoute = "detail"
)

// Button is a pressable leaf inside a Hero
type Button struct {
	Label   string
	Action  string
	styles  *views.Styles
	press   func() focus.Signal
	focused bool
}

func (b *Button) HandleKey(k focus.Key) (focus.Signal, bool) {
	if k != focus.KeyEnter || b.press == nil {
		return focus.Signal{}, false
	}
	return b.press(), true
}

func (b *Button) SetFocused(focused bool) { b.focused = focused }

// Render draws the button
func (b *Button) Render() string {
	if b.focused {
		return b.styles.ButtonFocused.Render(b.Label)
	}
	return b.styles.Button.Render(b.Label)
}

// Hero is the detail page headline: title, metadata, synopsis and a row
// of buttons. Enter goes to the focused button.
type Hero struct {
	styles      *views.Styles
	item        domain.Item
	buttons     []*Button
	index       int
	focused     bool
	inWatchlist bool
	liked       bool
}

// NewHero creates a hero for item
func NewHero(styles *views.Styles, item domain.Item) *Hero {
	h := &Hero{styles: styles, item: item}
	id := map[string]string{ArgItemID: item.ID}
	h.buttons = []*Button{
		{Label: "▶ Play", Action: ActionPlay, styles: styles, press: func() focus.Signal {
			return focus.Navigate("player", domain.RouteParams{ID: h.item.ID, From: detailRoute})
		}},
		{Label: "+ My List", Action: ActionAdd, styles: styles, press: func() focus.Signal {
			return focus.Custom(ActionAdd, id)
		}},
		{Label: "♥ Like", Action: ActionLike, styles: styles, press: func() focus.Signal {
			return focus.Custom(ActionLike, id)
		}},
	}
	return h
}

// Item returns the item shown
func (h *Hero) Item() domain.Item { return h.item }

// Buttons returns the buttons left to right
func (h *Hero) Buttons() []*Button { return h.buttons }

// Focused implements focus.Resolver
func (h *Hero) Focused() focus.Node { return h.buttons[h.index] }

func (h *Hero) FocusIndex() int { return h.index }

func (h *Hero) SetFocusIndex(i int) {
	h.move(clampIndex(i, len(h.buttons)))
}

func (h *Hero) SetFocused(focused bool) {
	h.focused = focused
	h.buttons[h.index].SetFocused(focused)
}

// SetInWatchlist switches the label of the list button
func (h *Hero) SetInWatchlist(in bool) {
	h.inWatchlist = in
	if in {
		h.buttons[1].Label = "✓ My List"
	} else {
		h.buttons[1].Label = "+ My List"
	}
}

// InWatchlist reports the state shown on the list button
func (h *Hero) InWatchlist() bool { return h.inWatchlist }

// SetLiked switches the label of the like button
func (h *Hero) SetLiked(liked bool) {
	h.liked = liked
	if liked {
		h.buttons[2].Label = "♥ Liked"
	} else {
		h.buttons[2].Label = "♥ Like"
	}
}

// Liked reports the state shown on the like button
func (h *Hero) Liked() bool { return h.liked }

func (h *Hero) HandleKey(k focus.Key) (focus.Signal, bool) {
	switch k {
	case focus.KeyLeft:
		if h.index > 0 {
			h.move(h.index - 1)
		}
		return focus.Signal{}, true
	case focus.KeyRight:
		if h.index < len(h.buttons)-1 {
			h.move(h.index + 1)
		}
		return focus.Signal{}, true
	}
	return focus.Signal{}, false
}

func (h *Hero) move(i int) {
	h.buttons[h.index].SetFocused(false)
	h.index = i
	h.buttons[h.index].SetFocused(h.focused)
}

// Render draws the hero
func (h *Hero) Render(width int) string {
	var b strings.Builder
	b.WriteString(h.styles.Title.Render(h.item.Title))
	b.WriteString("\n")
	b.WriteString(h.styles.Meta.Render(fmt.Sprintf("%d · %s · %s", h.item.Year, h.item.Genre, h.item.Duration)))
	b.WriteString("\n\n")
	b.WriteString(h.styles.Description.Render(wordwrap.String(h.item.Description, max(width-4, 20))))
	b.WriteString("\n\n")

	row := make([]string, len(h.buttons))
	for i, btn := range h.buttons {
		row[i] = btn.Render()
	}
	b.WriteString(strings.Join(row, "  "))
	return b.String()
}
