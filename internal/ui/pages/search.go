package pages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"couchnav/internal/ui/coordinator"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/history"
	"couchnav/internal/ui/views"
	"couchnav/internal/ui/widgets"
)

// Search section names
const (
	SectionBox     = "Box"
	SectionResults = "Results"
)

const (
	extraQuery = "query"
	hintText   = "Type a title, genre or year"
)

// Search has a text box and a grid of results
type Search struct {
	*base
	box     *widgets.SearchBox
	results *widgets.Grid
	query   string
}

// NewSearch creates the search page
func NewSearch(env *Env) *Search {
	cfg := env.pageConfig(RouteSearch, SectionBox, SectionResults)
	cfg.PrimaryInput = SectionBox
	// the box sits right under the header, only the results scroll
	cfg.ShouldScroll = func(index int) bool { return index >= 1 }

	p := &Search{
		base:    newBase(env, cfg),
		box:     widgets.NewSearchBox(env.Styles),
		results: widgets.NewGrid(env.Styles, widgets.ColsFor(env.Size.Width), RouteSearch, hintText),
	}
	p.nodes[SectionBox] = p.box
	p.nodes[SectionResults] = p.results

	p.coord.SetHooks(coordinator.Hooks{
		Signal:   p.signal,
		Snapshot: p.annotate,
		Restore:  p.restore,
	})
	return p
}

// Capturing reports whether the search box takes raw keystrokes
func (p *Search) Capturing() bool { return p.box.Editing() }

func (p *Search) HandleKey(msg tea.KeyMsg, k focus.Key) (tea.Cmd, bool) {
	if !p.box.Editing() {
		return p.base.HandleKey(msg, k)
	}
	switch msg.Type {
	case tea.KeyEnter:
		p.coord.HandleSignal(p.box.Submit())
		return p.takeCmds(), true
	case tea.KeyEsc:
		p.box.StopEditing()
		return nil, true
	}
	return p.box.Update(msg), true
}

func (p *Search) Update(msg tea.Msg) tea.Cmd {
	return p.box.Update(msg)
}

func (p *Search) signal(sig focus.Signal) bool {
	switch sig.Kind {
	case focus.SignalFocusMoved:
		p.centerRow(SectionResults, sig.Move)
		return true
	case focus.SignalCustom:
		switch sig.Name {
		case widgets.SignalEditSearch:
			p.queue(p.box.StartEditing())
			return true
		case widgets.SignalSearch:
			p.search(sig.Args[widgets.ArgQuery])
			p.coord.SaveRoutine()
			return true
		}
	}
	return false
}

func (p *Search) search(query string) {
	p.query = query
	if p.env.Catalog != nil {
		p.results.SetItems(p.env.Catalog.Search(query))
	}
	p.results.ResetFocus()
	if query == "" {
		p.results.SetEmptyText(hintText)
	} else {
		p.results.SetEmptyText(fmt.Sprintf("No results for %q", query))
	}
	p.sectionChanged()
}

func (p *Search) annotate(s *history.Snapshot) {
	if p.query == "" {
		return
	}
	if s.Extra == nil {
		s.Extra = make(map[string]string)
	}
	s.Extra[extraQuery] = p.query
}

func (p *Search) restore(s history.Snapshot) {
	q, ok := s.Extra[extraQuery]
	if !ok {
		return
	}
	p.box.SetValue(q)
	p.search(q)
}

// Query is the last submitted query
func (p *Search) Query() string { return p.query }

// Box returns the search box
func (p *Search) Box() *widgets.SearchBox { return p.box }

// Results returns the results grid
func (p *Search) Results() *widgets.Grid { return p.results }

func (p *Search) View() string {
	width := p.env.Size.Width
	p.results.SetCols(widgets.ColsFor(width))
	return p.render([]views.Block{
		p.headerBlock(width),
		{Name: SectionBox, Content: p.box.Render(width), GapBefore: 1},
		{Name: SectionResults, Content: p.results.Render(width), GapBefore: 1},
	})
}
