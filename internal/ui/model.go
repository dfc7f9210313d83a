package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"couchnav/internal/catalog"
	"couchnav/internal/config"
	"couchnav/internal/domain"
	"couchnav/internal/eventbus"
	"couchnav/internal/logger"
	"couchnav/internal/ui/coordinator"
	"couchnav/internal/ui/input"
	"couchnav/internal/ui/pages"
	"couchnav/internal/ui/router"
	"couchnav/internal/ui/views"
)

// statusTimeout is how long a status message stays in the footer
const statusTimeout = 3 * time.Second

// Model is the bubbletea model: it owns the router and drives the settle
// passes and scroll frames of the active page
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	env    *pages.Env
	router *router.Router
	sched  *coordinator.ManualScheduler

	keys         input.KeyMap
	help         help.Model
	helpRenderer *HelpRenderer
	status       string
	inPagerMode  bool

	// commands of pages that became active during the current update
	pending      []tea.Cmd
	settleQueued bool
	frameQueued  bool

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates the UI model and opens the boot page
func NewModel(bus eventbus.EventBus, cfg *config.Config, store *catalog.Store, watchlist *catalog.Watchlist) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	keys := input.NewKeyMap(input.Bindings(cfg.Keys))

	m := &Model{
		bus:          bus,
		config:       cfg,
		sched:        coordinator.NewManualScheduler(),
		router:       router.New(pages.RouteHome),
		keys:         keys,
		help:         help.New(),
		helpRenderer: NewHelpRenderer(keys),
	}
	m.env = &pages.Env{
		Catalog:   store,
		Watchlist: watchlist,
		Styles:    views.NewStyles(),
		Router:    m.router,
		Scheduler: m.sched,
		Config:    cfg,
	}
	if bus != nil {
		m.env.Bus = bus
		m.router.SetBus(bus)
	}
	m.router.OnChange = m.pageChanged
	pages.Register(m.router, m.env)
	m.router.Navigate(pages.RouteBoot, domain.RouteParams{})
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Router returns the page router
func (m *Model) Router() *router.Router { return m.router }

// Init starts the catalog load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		pages.LoadCatalog(m.config.Catalog, m.config.UI.CatalogLatency()),
		m.takePending(),
		m.schedule(),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handle(msg)
	return m, tea.Batch(cmd, m.takePending(), m.schedule())
}

func (m *Model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.Size = pages.Size{Width: msg.Width, Height: msg.Height}
		m.help.Width = msg.Width
		if c := m.coordinator(); c != nil {
			c.SetViewport(m.env.Viewport())
			c.ComputeAfterLayout()
		}
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case layoutSettledMsg:
		m.settleQueued = false
		n := m.sched.Flush()
		logger.Get().Debug("layout settled", "passes", n, "page", m.router.Path())
		return nil

	case frameMsg:
		m.frameQueued = false
		if c := m.coordinator(); c != nil {
			c.Step()
		}
		return nil

	case pages.CatalogLoadedMsg:
		if msg.Err != nil {
			logger.Get().Error("failed to load catalog", "error", msg.Err)
		} else {
			m.catalogLoaded(msg.Catalog)
		}
		return m.forward(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			logger.Get().Warn("help pager failed", "error", msg.err)
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil

	case clearStatusMsg:
		m.status = ""
		return nil

	default:
		return m.forward(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	screen := m.screen()
	if screen == nil {
		return nil
	}
	k := m.keys.Resolve(msg)

	// typing into a text box bypasses the global bindings
	if c, ok := screen.(pages.Capturer); ok && c.Capturing() {
		cmd, _ := screen.HandleKey(msg, k)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
	}

	cmd, handled := screen.HandleKey(msg, k)
	if !handled {
		logger.Get().Debug("key not handled", "key", msg.String(), "page", screen.Name())
	}
	return cmd
}

func (m *Model) catalogLoaded(c *catalog.Catalog) {
	if m.env.Catalog == nil {
		return
	}
	m.env.Catalog.Set(c)
	logger.Get().Info("catalog loaded", "rails", len(c.Rails), "items", len(c.Items))
	if m.bus != nil {
		m.bus.Publish(domain.CatalogLoadedEvent{Rails: len(c.Rails), Items: len(c.Items)})
	}
}

// handleEvent turns observed domain events into footer status
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.WatchlistChangedEvent:
		title := e.ItemID
		if m.env.Catalog != nil {
			if it, ok := m.env.Catalog.Item(e.ItemID); ok {
				title = it.Title
			}
		}
		if e.Added {
			return m.setStatus(fmt.Sprintf("Added %s to My List", title))
		}
		return m.setStatus(fmt.Sprintf("Removed %s from My List", title))
	case domain.SnapshotRestoredEvent:
		logger.Get().Debug("position restored", "page", e.Page, "section", e.Section)
	}
	return nil
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// forward hands msg to the active page
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if screen := m.screen(); screen != nil {
		return screen.Update(msg)
	}
	return nil
}

func (m *Model) pageChanged(p router.Page) {
	screen, ok := p.(pages.Screen)
	if !ok {
		return
	}
	m.frameQueued = false
	if cmd := screen.Start(); cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) takePending() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// schedule queues the settle pass and the next animation frame when the
// active page needs them
func (m *Model) schedule() tea.Cmd {
	var cmds []tea.Cmd
	if m.sched.Pending() > 0 && !m.settleQueued {
		m.settleQueued = true
		cmds = append(cmds, func() tea.Msg { return layoutSettledMsg{} })
	}
	if c := m.coordinator(); c != nil && c.Animating() && !m.frameQueued {
		m.frameQueued = true
		cmds = append(cmds, tea.Tick(c.Scroll.Animator().Interval(), func(t time.Time) tea.Msg {
			return frameMsg(t)
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) screen() pages.Screen {
	s, _ := m.router.Active().(pages.Screen)
	return s
}

func (m *Model) coordinator() *coordinator.Coordinator {
	if s := m.screen(); s != nil {
		return s.Coordinator()
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the active page above the footer
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.env.Size.Width == 0 {
		return "Loading..."
	}
	screen := m.screen()
	if screen == nil {
		return ""
	}
	return screen.View() + "\n" + m.footer()
}

func (m *Model) footer() string {
	styles := m.env.Styles
	if m.status != "" {
		return styles.StatusSuccess.Render(runewidth.Truncate(m.status, m.env.Size.Width, "…"))
	}
	return m.help.View(m.keys)
}
