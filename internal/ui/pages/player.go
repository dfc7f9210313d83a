package pages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"couchnav/internal/domain"
	"couchnav/internal/ui/coordinator"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/input"
	"couchnav/internal/ui/tasks"
	"couchnav/internal/ui/views"
	"couchnav/internal/ui/widgets"
)

// SectionControls is the player button bar
const SectionControls = "Controls"

const (
	screenBlock  = "Screen"
	playbackTick = time.Second
	demoLength   = 90 * time.Minute
)

// Player is a full-screen page without header or history. Its controls
// hide after a while and the first key only brings them back.
type Player struct {
	*base
	item     domain.Item
	controls *widgets.Controls
	hide     *tasks.Task
	clock    *tasks.Task
}

// NewPlayer creates the player for params.ID
func NewPlayer(env *Env, params domain.RouteParams) *Player {
	cfg := env.pageConfig(RoutePlayer, SectionControls)
	cfg.HasHeader = false
	cfg.History = false

	item := domain.Item{ID: params.ID, Title: params.ID}
	if env.Catalog != nil {
		if it, ok := env.Catalog.Item(params.ID); ok {
			item = it
		}
	}

	p := &Player{
		base:     newBase(env, cfg),
		item:     item,
		controls: widgets.NewControls(env.Styles, demoLength),
		hide:     tasks.NewOneShot(env.timers().ControlsHide()),
		clock:    tasks.NewPeriodic(playbackTick),
	}
	p.nodes[SectionControls] = p.controls
	p.coord.SetHooks(coordinator.Hooks{Keys: input.OverrideFunc(p.overrideKey)})
	return p
}

func (p *Player) overrideKey(k focus.Key, _ input.Context) ([]input.Action, bool) {
	if k == focus.KeyBack {
		return nil, false
	}
	wasHidden := !p.controls.Visible()
	p.showControls()
	return nil, wasHidden
}

func (p *Player) showControls() {
	if !p.controls.Visible() {
		p.controls.Show()
		p.sectionChanged()
	}
	p.queue(p.hide.Reset())
}

func (p *Player) Start() tea.Cmd {
	return tea.Batch(p.hide.Start(), p.clock.Start())
}

func (p *Player) Leave() {
	p.hide.Stop()
	p.clock.Stop()
	p.base.Leave()
}

func (p *Player) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(tasks.TickMsg)
	if !ok {
		return nil
	}
	if fired, _ := p.hide.Update(tick); fired {
		p.controls.Hide()
		p.sectionChanged()
		return nil
	}
	if fired, next := p.clock.Update(tick); fired {
		p.controls.Advance(playbackTick)
		return next
	}
	return nil
}

// Controls returns the button bar
func (p *Player) Controls() *widgets.Controls { return p.controls }

// Item returns the item playing
func (p *Player) Item() domain.Item { return p.item }

func (p *Player) View() string {
	width := p.env.Size.Width
	screenHeight := max(p.env.Viewport()-5, 3)
	title := p.env.Styles.Title.Render(p.item.Title)
	screen := lipgloss.Place(width, screenHeight, lipgloss.Center, lipgloss.Center, title)

	controls := p.controls.Render(width)
	return p.render([]views.Block{
		{Name: screenBlock, Content: screen},
		{Name: SectionControls, Content: controls, GapBefore: 1, Hidden: !p.controls.Visible()},
	})
}
