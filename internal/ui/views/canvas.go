package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"couchnav/internal/ui/layout"
)

// Block is one named section of a page as rendered text
type Block struct {
	Name    string
	Content string
	// GapBefore is the number of blank rows above the block
	GapBefore int
	// Hidden blocks keep their geometry slot but render nothing
	Hidden bool
}

// Canvas stacks blocks vertically and remembers where each one landed.
// It is the layout.Tree of a page: geometry exists only after a Compose.
type Canvas struct {
	lines []string
	geom  map[string]layout.Geometry
}

// NewCanvas creates an empty canvas
func NewCanvas() *Canvas {
	return &Canvas{geom: make(map[string]layout.Geometry)}
}

// Compose renders blocks top to bottom and records their geometry
func (c *Canvas) Compose(blocks []Block) {
	c.lines = c.lines[:0]
	geom := make(map[string]layout.Geometry, len(blocks))
	for _, b := range blocks {
		for i := 0; i < b.GapBefore; i++ {
			c.lines = append(c.lines, "")
		}
		y := len(c.lines)
		if b.Hidden {
			geom[b.Name] = layout.Geometry{Y: y, H: lipgloss.Height(b.Content), Visible: false}
			continue
		}
		rows := strings.Split(b.Content, "\n")
		if b.Content == "" {
			rows = nil
		}
		c.lines = append(c.lines, rows...)
		geom[b.Name] = layout.Geometry{Y: y, H: len(rows), Visible: true}
	}
	c.geom = geom
}

// Geometry implements layout.Tree
func (c *Canvas) Geometry(name string) (layout.Geometry, bool) {
	g, ok := c.geom[name]
	return g, ok
}

// Height is the number of rendered rows
func (c *Canvas) Height() int {
	return len(c.lines)
}

// Window returns height rows starting at the row the signed offset points
// to, padded with blank rows
func (c *Canvas) Window(offset float64, height int) string {
	if height <= 0 {
		return ""
	}
	start := int(math.Round(-offset))
	if start < 0 {
		start = 0
	}
	out := make([]string, 0, height)
	for i := start; i < start+height; i++ {
		if i < len(c.lines) {
			out = append(out, c.lines[i])
		} else {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

// Reset forgets all geometry, as if nothing had been rendered yet
func (c *Canvas) Reset() {
	c.lines = nil
	c.geom = make(map[string]layout.Geometry)
}
