package widgets

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"couchnav/internal/domain"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/views"
)

// Carousel shows one featured slide at a time and rotates on Advance.
// Its slide is not a focus position, so it keeps no index.
type Carousel struct {
	styles  *views.Styles
	from    string
	slides  []domain.Item
	index   int
	focused bool
}

// NewCarousel creates an empty carousel
func NewCarousel(styles *views.Styles, from string) *Carousel {
	return &Carousel{styles: styles, from: from}
}

// SetSlides replaces the slides
func (c *Carousel) SetSlides(slides []domain.Item) {
	c.slides = slides
	c.index = clampIndex(c.index, len(slides))
}

// Len is the number of slides
func (c *Carousel) Len() int { return len(c.slides) }

// Slide is the index of the slide on screen
func (c *Carousel) Slide() int { return c.index }

// Current returns the slide on screen
func (c *Carousel) Current() (domain.Item, bool) {
	if len(c.slides) == 0 {
		return domain.Item{}, false
	}
	return c.slides[c.index], true
}

// Advance rotates to the next slide, wrapping
func (c *Carousel) Advance() {
	if len(c.slides) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.slides)
}

func (c *Carousel) SetFocused(focused bool) { c.focused = focused }

// IsFocused reports whether the carousel holds focus
func (c *Carousel) IsFocused() bool { return c.focused }

func (c *Carousel) HandleKey(k focus.Key) (focus.Signal, bool) {
	n := len(c.slides)
	switch k {
	case focus.KeyLeft:
		if n > 0 {
			c.index = (c.index - 1 + n) % n
		}
		return focus.Signal{}, true
	case focus.KeyRight:
		c.Advance()
		return focus.Signal{}, true
	case focus.KeyEnter:
		item, ok := c.Current()
		if !ok {
			return focus.Signal{}, false
		}
		return focus.Navigate("detail", domain.RouteParams{ID: item.ID, From: c.from}), true
	}
	return focus.Signal{}, false
}

// Render draws the slide box with a row of position dots
func (c *Carousel) Render(width int) string {
	style := c.styles.Slide
	if c.focused {
		style = c.styles.SlideFocused
	}
	inner := max(width-6, 10)

	item, ok := c.Current()
	if !ok {
		return style.Width(inner).Render(c.styles.StatusLoading.Render("Loading featured…") + "\n\n")
	}

	var b strings.Builder
	b.WriteString(c.styles.Highlight.Render(item.Title))
	b.WriteString("\n")
	b.WriteString(c.styles.Meta.Render(fmt.Sprintf("%d · %s · %s", item.Year, item.Genre, item.Duration)))
	b.WriteString("\n")
	b.WriteString(c.styles.Description.Render(wordwrap.String(item.Description, inner-4)))

	dots := make([]string, len(c.slides))
	for i := range c.slides {
		if i == c.index {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	return style.Width(inner).Render(b.String()) + "\n" + c.styles.Dim.Render(strings.Join(dots, " "))
}
