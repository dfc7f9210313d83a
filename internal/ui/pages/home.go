package pages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"couchnav/internal/ui/tasks"
	"couchnav/internal/ui/views"
	"couchnav/internal/ui/widgets"
)

// Home section names
const (
	SectionCarousel = "Carousel"
	railSections    = 3
)

// RailSection is the section name of the i-th home rail
func RailSection(i int) string {
	return fmt.Sprintf("Rail%d", i+1)
}

// Home is the landing page: header, featured carousel and the catalog
// rails. It is kept alive across navigations.
type Home struct {
	*base
	carousel *widgets.Carousel
	rails    []*widgets.Rail
	autoplay *tasks.Task
}

// NewHome creates the home page
func NewHome(env *Env) *Home {
	sections := []string{SectionCarousel}
	hints := map[string]int{SectionCarousel: 8}
	for i := 0; i < railSections; i++ {
		sections = append(sections, RailSection(i))
		hints[RailSection(i)] = 1 + views.TileHeight
	}
	cfg := env.pageConfig(RouteHome, sections...)
	cfg.Primary = []string{SectionCarousel}
	cfg.Hints = hints

	p := &Home{
		base:     newBase(env, cfg),
		carousel: widgets.NewCarousel(env.Styles, RouteHome),
		autoplay: tasks.NewPeriodic(env.timers().Autoplay()),
	}
	p.nodes[SectionCarousel] = p.carousel
	for i := 0; i < railSections; i++ {
		rail := widgets.NewRail(env.Styles, "", RouteHome)
		p.rails = append(p.rails, rail)
		p.nodes[RailSection(i)] = rail
	}
	p.fill()
	return p
}

// fill copies catalog content into the widgets
func (p *Home) fill() {
	if p.env.Catalog == nil || !p.env.Catalog.Loaded() {
		return
	}
	p.carousel.SetSlides(p.env.Catalog.Slides())
	rails := p.env.Catalog.Rails()
	for i, rail := range p.rails {
		if i < len(rails) {
			rail.Title = rails[i].Title
			rail.SetItems(rails[i].Items)
		}
	}
}

func (p *Home) Start() tea.Cmd {
	return p.autoplay.Start()
}

func (p *Home) Leave() {
	p.autoplay.Stop()
	p.base.Leave()
}

func (p *Home) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case CatalogLoadedMsg:
		if msg.Err == nil {
			p.fill()
			p.sectionChanged()
		}
	case tasks.TickMsg:
		fired, next := p.autoplay.Update(msg)
		if !fired {
			return nil
		}
		// hold the slide while the user is on it
		if p.coord.FocusedName() != SectionCarousel {
			p.carousel.Advance()
			p.sectionChanged()
		}
		return next
	}
	return nil
}

// Carousel returns the featured carousel
func (p *Home) Carousel() *widgets.Carousel { return p.carousel }

// Rail returns the i-th rail
func (p *Home) Rail(i int) *widgets.Rail { return p.rails[i] }

func (p *Home) View() string {
	width := p.env.Size.Width
	blocks := []views.Block{
		p.headerBlock(width),
		{Name: SectionCarousel, Content: p.carousel.Render(width), GapBefore: 1},
	}
	for i, rail := range p.rails {
		blocks = append(blocks, views.Block{
			Name:      RailSection(i),
			Content:   rail.Render(width),
			GapBefore: 1,
			Hidden:    p.env.Catalog != nil && p.env.Catalog.Loaded() && len(rail.Items()) == 0,
		})
	}
	return p.render(blocks)
}
