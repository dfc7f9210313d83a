package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"couchnav/internal/domain"
	"couchnav/internal/ui/coordinator"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/history"
	"couchnav/internal/ui/layout"
	"couchnav/internal/ui/views"
	"couchnav/internal/ui/widgets"
)

// base carries what every page has: a canvas, the section widgets and the
// coordinator wired to the router
type base struct {
	env    *Env
	name   string
	canvas *views.Canvas
	nodes  map[string]focus.Node
	coord  *coordinator.Coordinator
	header *widgets.Header
	cmds   []tea.Cmd
}

func newBase(env *Env, cfg coordinator.PageConfig) *base {
	b := &base{
		env:    env,
		name:   cfg.Name,
		canvas: views.NewCanvas(),
		nodes:  make(map[string]focus.Node),
	}
	b.coord = coordinator.New(cfg, b.canvas, coordinator.NodeFunc(b.node))
	if env.Router != nil {
		b.coord.SetSink(env.Router)
	}
	if env.Scheduler != nil {
		b.coord.SetScheduler(env.Scheduler)
	}
	if env.Bus != nil {
		b.coord.SetBus(env.Bus)
	}
	if cfg.HasHeader {
		b.header = widgets.NewHeader(env.Styles, cfg.Name)
		b.nodes[layout.HeaderName] = b.header
	}
	return b
}

func (b *base) node(name string) focus.Node {
	n, ok := b.nodes[name]
	if !ok {
		return nil
	}
	return n
}

func (b *base) Name() string { return b.name }

func (b *base) Coordinator() *coordinator.Coordinator { return b.coord }

func (b *base) HistoryState(s *history.Snapshot) *history.Snapshot {
	return b.coord.HistoryState(s)
}

func (b *base) Activate(params domain.RouteParams) {
	b.coord.Activate(params)
}

func (b *base) Attach() {
	b.coord.SetViewport(b.env.Viewport())
	b.coord.Attach()
}

func (b *base) Leave() {
	b.coord.Leave()
}

func (b *base) Start() tea.Cmd { return nil }

func (b *base) Update(tea.Msg) tea.Cmd { return nil }

func (b *base) HandleKey(_ tea.KeyMsg, k focus.Key) (tea.Cmd, bool) {
	handled := b.coord.HandleKey(k)
	return b.takeCmds(), handled
}

// queue keeps cmd until the current key or message has been handled
func (b *base) queue(cmd tea.Cmd) {
	if cmd != nil {
		b.cmds = append(b.cmds, cmd)
	}
}

func (b *base) takeCmds() tea.Cmd {
	cmds := b.cmds
	b.cmds = nil
	return tea.Batch(cmds...)
}

func (b *base) headerBlock(width int) views.Block {
	return views.Block{Name: layout.HeaderName, Content: b.header.Render(width)}
}

// render composes blocks and returns the rows visible at the current offset
func (b *base) render(blocks []views.Block) string {
	b.canvas.Compose(blocks)
	return b.canvas.Window(b.coord.Offset(), b.env.Viewport())
}

// sectionChanged asks for a settle pass after content changed size
func (b *base) sectionChanged() {
	b.coord.ComputeAfterLayout()
}

// centerRow scrolls so grid row move.Row of section is in the middle of
// the viewport
func (b *base) centerRow(section string, move focus.GridMove) {
	top := b.coord.Scroll.Metrics().Offset(section) + move.Row*move.RowHeight
	y := -(top + move.RowHeight/2 - b.env.Viewport()/2)
	b.coord.ScrollTo(float64(y), true)
}
