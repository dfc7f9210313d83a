package widgets

import (
	"fmt"
	"strings"
	"time"

	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/views"
)

// seekStep is how far a seek button moves playback
const seekStep = 10 * time.Second

// Controls is the player's button bar. It can be hidden while keeping
// its place on the page.
type Controls struct {
	styles   *views.Styles
	index    int
	focused  bool
	visible  bool
	playing  bool
	position time.Duration
	length   time.Duration
}

// NewControls creates a visible bar for content of the given length
func NewControls(styles *views.Styles, length time.Duration) *Controls {
	return &Controls{styles: styles, index: 1, visible: true, playing: true, length: length}
}

// Show makes the bar visible
func (c *Controls) Show() { c.visible = true }

// Hide hides the bar
func (c *Controls) Hide() { c.visible = false }

// Visible reports whether the bar is shown
func (c *Controls) Visible() bool { return c.visible }

// Playing reports the play state
func (c *Controls) Playing() bool { return c.playing }

// Position is the playback position
func (c *Controls) Position() time.Duration { return c.position }

// Advance moves playback forward by d while playing
func (c *Controls) Advance(d time.Duration) {
	if c.playing {
		c.seek(d)
	}
}

func (c *Controls) FocusIndex() int { return c.index }

func (c *Controls) SetFocusIndex(i int) { c.index = clampIndex(i, 3) }

func (c *Controls) SetFocused(focused bool) { c.focused = focused }

func (c *Controls) HandleKey(k focus.Key) (focus.Signal, bool) {
	switch k {
	case focus.KeyLeft:
		if c.index > 0 {
			c.index--
		}
		return focus.Signal{}, true
	case focus.KeyRight:
		if c.index < 2 {
			c.index++
		}
		return focus.Signal{}, true
	case focus.KeyEnter:
		switch c.index {
		case 0:
			c.seek(-seekStep)
		case 1:
			c.playing = !c.playing
		case 2:
			c.seek(seekStep)
		}
		return focus.Signal{}, true
	}
	return focus.Signal{}, false
}

func (c *Controls) seek(d time.Duration) {
	c.position += d
	if c.position < 0 {
		c.position = 0
	}
	if c.length > 0 && c.position > c.length {
		c.position = c.length
	}
}

// Render draws a progress bar above the buttons
func (c *Controls) Render(width int) string {
	barWidth := max(width-20, 10)
	filled := 0
	if c.length > 0 {
		filled = int(float64(barWidth) * float64(c.position) / float64(c.length))
	}
	bar := c.styles.Highlight.Render(strings.Repeat("━", filled)) +
		c.styles.Dim.Render(strings.Repeat("─", barWidth-filled))
	progress := fmt.Sprintf("%s %s / %s", bar, clock(c.position), clock(c.length))

	play := "▶ Play"
	if c.playing {
		play = "⏸ Pause"
	}
	labels := []string{"« 10s", play, "10s »"}
	buttons := make([]string, len(labels))
	for i, l := range labels {
		if c.focused && i == c.index {
			buttons[i] = c.styles.ButtonFocused.Render(l)
		} else {
			buttons[i] = c.styles.Button.Render(l)
		}
	}
	return progress + "\n\n" + strings.Join(buttons, "  ")
}

func clock(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
