// Package pages implements the screens of the app on top of the section
// coordinator. Each page declares its sections, composes its blocks on a
// canvas and interprets the signals of its widgets.
package pages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"couchnav/internal/catalog"
	"couchnav/internal/config"
	"couchnav/internal/domain"
	"couchnav/internal/ui/coordinator"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/router"
	"couchnav/internal/ui/views"
)

// Route paths
const (
	RouteBoot      = "boot"
	RouteHome      = "home"
	RouteDetail    = "detail"
	RouteSearch    = "search"
	RouteWatchlist = "watchlist"
	RoutePlayer    = "player"
)

// FooterHeight is the number of rows below the page used by the help bar
const FooterHeight = 1

// Size is the terminal size
type Size struct {
	Width  int
	Height int
}

// Env is what every page shares
type Env struct {
	Catalog   *catalog.Store
	Watchlist *catalog.Watchlist
	Styles    *views.Styles
	Router    *router.Router
	Scheduler coordinator.Scheduler
	Bus       coordinator.Publisher
	Config    *config.Config
	Size      Size
}

// Viewport is the height available to a page
func (e *Env) Viewport() int {
	return max(e.Size.Height-FooterHeight, 0)
}

// pageConfig applies the user configuration to a page's defaults
func (e *Env) pageConfig(name string, sections ...string) coordinator.PageConfig {
	cfg := coordinator.DefaultPageConfig(name, sections...)
	if e.Config != nil {
		cfg.ExtraBottom = e.Config.UI.ExtraBottom
		cfg.SaveInterval = e.Config.UI.SaveInterval()
		cfg.AnimateRestore = e.Config.UI.AnimateRestore
		cfg.Spring = e.Config.UI.Spring()
	}
	return cfg
}

func (e *Env) timers() config.Timers {
	if e.Config == nil {
		return config.DefaultConfig().Timers
	}
	return e.Config.Timers
}

// Screen is a page the bubbletea model can drive
type Screen interface {
	router.Page
	Name() string
	View() string
	Update(msg tea.Msg) tea.Cmd
	HandleKey(msg tea.KeyMsg, k focus.Key) (tea.Cmd, bool)
	// Start is called after the page became active
	Start() tea.Cmd
	Coordinator() *coordinator.Coordinator
}

// Capturer is a screen that currently wants raw keystrokes, bypassing the
// global key bindings
type Capturer interface {
	Capturing() bool
}

// CatalogLoadedMsg is sent when the catalog load finished
type CatalogLoadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// LoadCatalog loads the catalog at path after latency
func LoadCatalog(path string, latency time.Duration) tea.Cmd {
	return tea.Tick(latency, func(time.Time) tea.Msg {
		c, err := catalog.Load(path)
		return CatalogLoadedMsg{Catalog: c, Err: err}
	})
}

// Register adds every page route to r
func Register(r *router.Router, env *Env) {
	r.Register(router.Route{Path: RouteBoot, New: func(domain.RouteParams) router.Page { return NewBoot(env) }})
	r.Register(router.Route{Path: RouteHome, KeepAlive: true, New: func(domain.RouteParams) router.Page { return NewHome(env) }})
	r.Register(router.Route{Path: RouteDetail, New: func(p domain.RouteParams) router.Page { return NewDetail(env, p) }})
	r.Register(router.Route{Path: RouteSearch, New: func(domain.RouteParams) router.Page { return NewSearch(env) }})
	r.Register(router.Route{Path: RouteWatchlist, New: func(domain.RouteParams) router.Page { return NewWatchlist(env) }})
	r.Register(router.Route{Path: RoutePlayer, New: func(p domain.RouteParams) router.Page { return NewPlayer(env, p) }})
}
