// Package widgets holds the section occupants of the pages. Each widget
// implements the focus capabilities it needs and renders itself to a
// string of terminal rows.
package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"couchnav/internal/domain"
	"couchnav/internal/ui/views"
)

// tileText is the text width inside a tile
const tileText = views.TileWidth - 2

// renderTile draws one poster tile, views.TileHeight rows tall
func renderTile(s *views.Styles, item domain.Item, focused bool) string {
	style := s.Tile
	if focused {
		style = s.TileFocused
	}
	title := runewidth.Truncate(item.Title, tileText, "…")
	meta := runewidth.Truncate(fmt.Sprintf("%d · %s", item.Year, item.Genre), tileText, "…")
	meta = lipgloss.NewStyle().Foreground(lipgloss.Color(views.GenreColor(item.Genre))).Render(meta)
	return style.Render(title + "\n" + meta)
}

// tileSpan is the horizontal room one tile takes, gap included
func tileSpan() int {
	return views.TileWidth + 3
}

// visibleTiles is how many tiles fit in width
func visibleTiles(width int) int {
	n := width / tileSpan()
	if n < 1 {
		return 1
	}
	return n
}

func joinTiles(tiles []string) string {
	if len(tiles) == 0 {
		return ""
	}
	row := make([]string, 0, len(tiles)*2)
	for i, t := range tiles {
		if i > 0 {
			row = append(row, " ")
		}
		row = append(row, t)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
