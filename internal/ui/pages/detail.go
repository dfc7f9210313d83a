package pages

import (
	"couchnav/internal/domain"
	"couchnav/internal/logger"
	"couchnav/internal/ui/coordinator"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/history"
	"couchnav/internal/ui/views"
	"couchnav/internal/ui/widgets"
)

// Detail section names
const (
	SectionHero    = "Hero"
	SectionRelated = "Related"
)

// FocusRail asks the detail page to start on its related rail
const FocusRail = "rail"

const (
	extraFromRoute = "fromRoute"
	relatedLimit   = 8
)

// Detail shows one item and a rail of related items
type Detail struct {
	*base
	hero      *widgets.Hero
	related   *widgets.Rail
	fromRoute string
}

// NewDetail creates the detail page for params.ID
func NewDetail(env *Env, params domain.RouteParams) *Detail {
	cfg := env.pageConfig(RouteDetail, SectionHero, SectionRelated)
	cfg.Primary = []string{SectionHero}

	item, ok := domain.Item{}, false
	if env.Catalog != nil {
		item, ok = env.Catalog.Item(params.ID)
	}
	if !ok {
		logger.Get().Warn("detail for unknown item", "id", params.ID)
		item = domain.Item{ID: params.ID, Title: "Unavailable", Description: "This title is no longer in the catalog."}
	}

	p := &Detail{
		base:      newBase(env, cfg),
		hero:      widgets.NewHero(env.Styles, item),
		related:   widgets.NewRail(env.Styles, "More like this", RouteDetail),
		fromRoute: params.From,
	}
	if env.Catalog != nil {
		p.related.SetItems(env.Catalog.Related(item.ID, relatedLimit))
	}
	if env.Watchlist != nil {
		p.hero.SetInWatchlist(env.Watchlist.Contains(item.ID))
	}
	p.nodes[SectionHero] = p.hero
	p.nodes[SectionRelated] = p.related

	p.coord.SetHooks(coordinator.Hooks{
		Signal:   p.signal,
		Snapshot: p.annotate,
		Restore:  p.restore,
	})
	return p
}

func (p *Detail) Activate(params domain.RouteParams) {
	p.base.Activate(params)
	if params.Focus == FocusRail && !p.coord.History.Restored() {
		p.coord.Force(p.coord.Scroll.IndexOf(SectionRelated))
	}
}

func (p *Detail) signal(sig focus.Signal) bool {
	if sig.Kind != focus.SignalCustom {
		return false
	}
	switch sig.Name {
	case widgets.ActionAdd:
		if p.env.Watchlist == nil {
			return true
		}
		p.hero.SetInWatchlist(p.env.Watchlist.Toggle(sig.Args[widgets.ArgItemID]))
		return true
	case widgets.ActionLike:
		p.hero.SetLiked(!p.hero.Liked())
		return true
	}
	return false
}

func (p *Detail) annotate(s *history.Snapshot) {
	if p.fromRoute == "" {
		return
	}
	if s.Extra == nil {
		s.Extra = make(map[string]string)
	}
	s.Extra[extraFromRoute] = p.fromRoute
}

func (p *Detail) restore(s history.Snapshot) {
	if from, ok := s.Extra[extraFromRoute]; ok {
		p.fromRoute = from
	}
}

// FromRoute is the route the detail was opened from
func (p *Detail) FromRoute() string { return p.fromRoute }

// Hero returns the hero widget
func (p *Detail) Hero() *widgets.Hero { return p.hero }

// Related returns the related rail
func (p *Detail) Related() *widgets.Rail { return p.related }

func (p *Detail) View() string {
	width := p.env.Size.Width
	blocks := []views.Block{p.headerBlock(width)}
	if p.fromRoute != "" {
		blocks = append(blocks, views.Block{Name: "Crumb", Content: p.env.Styles.Dim.Render("‹ " + p.fromRoute)})
	}
	blocks = append(blocks,
		views.Block{Name: SectionHero, Content: p.hero.Render(width), GapBefore: 1},
		views.Block{Name: SectionRelated, Content: p.related.Render(width), GapBefore: 1},
	)
	return p.render(blocks)
}
