package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Help           lipgloss.Style
	Highlight      lipgloss.Style
	HighlightBg    lipgloss.Style
	NavItem        lipgloss.Style
	NavItemCurrent lipgloss.Style
	NavItemFocused lipgloss.Style
	RailTitle      lipgloss.Style
	Tile           lipgloss.Style
	TileFocused    lipgloss.Style
	Slide          lipgloss.Style
	SlideFocused   lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	Meta           lipgloss.Style
	Description    lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	Splash         lipgloss.Style
	StatusError    lipgloss.Style
	StatusLoading  lipgloss.Style
	StatusSuccess  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Width(TileWidth).
		Padding(0, 1)
	slide := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 2)
	button := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238"))
	input := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help:           lipgloss.NewStyle().Faint(true),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		NavItem:        lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("241")),
		NavItemCurrent: lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("99")).Bold(true),
		NavItemFocused: lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		RailTitle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Tile:           tile,
		TileFocused:    tile.BorderForeground(lipgloss.Color("226")),
		Slide:          slide,
		SlideFocused:   slide.BorderForeground(lipgloss.Color("226")),
		Button:         button,
		ButtonFocused:  button.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("226")).Bold(true),
		Meta:           lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Description:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Input:          input,
		InputFocused:   input.BorderForeground(lipgloss.Color("226")),
		Splash:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// TileWidth is the inner width of a poster tile
const TileWidth = 18

// TileHeight is the rendered height of a tile, border included
const TileHeight = 4

// GenreColor returns the accent color for a genre
func GenreColor(genre string) string {
	switch genre {
	case "Documentary":
		return "78" // green
	case "Drama":
		return "33" // blue
	case "Comedy":
		return "214" // yellow
	case "Sci-Fi":
		return "51" // cyan
	default:
		return "241"
	}
}
