package pages

import (
	"couchnav/internal/domain"
	"couchnav/internal/ui/coordinator"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/views"
	"couchnav/internal/ui/widgets"
)

// SectionSaved is the watchlist grid
const SectionSaved = "Saved"

// Watchlist shows the saved items as a grid
type Watchlist struct {
	*base
	grid *widgets.Grid
}

// NewWatchlist creates the watchlist page
func NewWatchlist(env *Env) *Watchlist {
	cfg := env.pageConfig(RouteWatchlist, SectionSaved)
	cfg.Primary = []string{SectionSaved}

	p := &Watchlist{
		base: newBase(env, cfg),
		grid: widgets.NewGrid(env.Styles, widgets.ColsFor(env.Size.Width), RouteWatchlist,
			"Nothing saved yet. Use + My List on a title."),
	}
	p.nodes[SectionSaved] = p.grid
	p.refresh()

	p.coord.SetHooks(coordinator.Hooks{
		Signal: func(sig focus.Signal) bool {
			if sig.Kind != focus.SignalFocusMoved {
				return false
			}
			p.centerRow(SectionSaved, sig.Move)
			return true
		},
	})
	return p
}

func (p *Watchlist) refresh() {
	if p.env.Watchlist == nil || p.env.Catalog == nil {
		return
	}
	p.grid.SetItems(p.env.Watchlist.Items(p.env.Catalog))
}

func (p *Watchlist) Activate(params domain.RouteParams) {
	p.refresh()
	p.base.Activate(params)
}

// Grid returns the saved items grid
func (p *Watchlist) Grid() *widgets.Grid { return p.grid }

func (p *Watchlist) View() string {
	width := p.env.Size.Width
	p.grid.SetCols(widgets.ColsFor(width))
	title := p.env.Styles.RailTitle.Render("My List")
	return p.render([]views.Block{
		p.headerBlock(width),
		{Name: "Title", Content: title, GapBefore: 1},
		{Name: SectionSaved, Content: p.grid.Render(width), GapBefore: 1},
	})
}
