package pages

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"couchnav/internal/catalog"
	"couchnav/internal/config"
	"couchnav/internal/domain"
	"couchnav/internal/ui/coordinator"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/router"
	"couchnav/internal/ui/tasks"
	"couchnav/internal/ui/views"
)

type harness struct {
	t      *testing.T
	env    *Env
	router *router.Router
	sched  *coordinator.ManualScheduler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	store := catalog.NewStore()
	store.Set(c)

	h := &harness{t: t, sched: coordinator.NewManualScheduler(), router: router.New(RouteHome)}
	h.env = &Env{
		Catalog:   store,
		Watchlist: catalog.NewWatchlist(nil),
		Styles:    views.NewStyles(),
		Router:    h.router,
		Scheduler: h.sched,
		Config:    config.DefaultConfig(),
		Size:      Size{Width: 100, Height: 30},
	}
	Register(h.router, h.env)
	return h
}

func (h *harness) screen() Screen {
	s, ok := h.router.Active().(Screen)
	require.True(h.t, ok)
	return s
}

// frame renders and runs the settle passes the render unblocked
func (h *harness) frame() {
	for i := 0; i < 3; i++ {
		h.screen().View()
		if h.sched.Flush() == 0 {
			return
		}
	}
}

func (h *harness) open(path string, params domain.RouteParams) Screen {
	h.router.Navigate(path, params)
	h.frame()
	return h.screen()
}

func (h *harness) press(keys ...focus.Key) {
	for _, k := range keys {
		h.screen().HandleKey(tea.KeyMsg{}, k)
		h.frame()
	}
}

func TestHomeFreshEntryFocusesCarousel(t *testing.T) {
	h := newHarness(t)
	home := h.open(RouteHome, domain.RouteParams{}).(*Home)

	assert.Equal(t, SectionCarousel, home.coord.FocusedName())
	assert.Equal(t, 0.0, home.coord.Target())
	assert.Equal(t, "Trending Now", home.Rail(0).Title)
}

func TestHomeRestoresRailAfterBack(t *testing.T) {
	h := newHarness(t)
	home := h.open(RouteHome, domain.RouteParams{}).(*Home)

	h.press(focus.KeyDown, focus.KeyRight, focus.KeyRight, focus.KeyDown)
	require.Equal(t, RailSection(1), home.coord.FocusedName())
	target := home.coord.Target()

	h.press(focus.KeyEnter)
	detail, ok := h.screen().(*Detail)
	require.True(t, ok)
	assert.Equal(t, RouteHome, detail.FromRoute())

	h.press(focus.KeyBack)
	require.Same(t, home, h.screen())
	assert.Equal(t, 2, home.coord.Index())
	assert.Equal(t, 2, home.Rail(0).FocusIndex())
	assert.Equal(t, target, home.coord.Target())
}

func TestHeaderNavigationResetsDestination(t *testing.T) {
	h := newHarness(t)
	home := h.open(RouteHome, domain.RouteParams{}).(*Home)

	h.press(focus.KeyDown, focus.KeyRight, focus.KeyUp, focus.KeyUp)
	require.Equal(t, -1, home.coord.Index(), "header")
	require.Equal(t, 1, home.Rail(0).FocusIndex())

	h.press(focus.KeyRight, focus.KeyEnter)
	search, ok := h.screen().(*Search)
	require.True(t, ok)
	assert.Equal(t, SectionBox, search.coord.FocusedName(), "primary input")

	h.press(focus.KeyUp, focus.KeyLeft, focus.KeyEnter)
	require.Same(t, home, h.screen())
	assert.Equal(t, 0, home.coord.Index())
	assert.Equal(t, focus.NoIndex, home.Rail(0).FocusIndex())
	assert.Equal(t, 3, h.router.Depth())
}

func TestDetailStartsOnRailWhenAsked(t *testing.T) {
	h := newHarness(t)
	detail := h.open(RouteDetail, domain.RouteParams{ID: "deep-blue", Focus: FocusRail}).(*Detail)
	assert.Equal(t, SectionRelated, detail.coord.FocusedName())
	assert.NotEmpty(t, detail.Related().Items())
}

func TestDetailTogglesWatchlist(t *testing.T) {
	h := newHarness(t)
	detail := h.open(RouteDetail, domain.RouteParams{ID: "deep-blue"}).(*Detail)
	require.Equal(t, SectionHero, detail.coord.FocusedName())

	h.press(focus.KeyRight, focus.KeyEnter)
	assert.True(t, h.env.Watchlist.Contains("deep-blue"))
	assert.True(t, detail.Hero().InWatchlist())

	watchlist := h.open(RouteWatchlist, domain.RouteParams{}).(*Watchlist)
	require.Len(t, watchlist.Grid().Items(), 1)
	assert.Equal(t, SectionSaved, watchlist.coord.FocusedName())
}

func TestSearchRestoresQueryAndGridFocus(t *testing.T) {
	h := newHarness(t)
	search := h.open(RouteSearch, domain.RouteParams{}).(*Search)

	h.press(focus.KeyEnter)
	require.True(t, search.Capturing())

	search.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("comedy")}, focus.KeyNone)
	search.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, focus.KeyEnter)
	h.frame()
	require.False(t, search.Capturing())
	require.Len(t, search.Results().Items(), 5)

	h.press(focus.KeyDown, focus.KeyDown)
	require.Equal(t, SectionResults, search.coord.FocusedName())
	require.Equal(t, 4, search.Results().FocusIndex())

	h.press(focus.KeyEnter)
	_, ok := h.screen().(*Detail)
	require.True(t, ok)

	h.press(focus.KeyBack)
	restored, ok := h.screen().(*Search)
	require.True(t, ok)
	assert.NotSame(t, search, restored, "search is rebuilt from history")
	assert.Equal(t, "comedy", restored.Query())
	assert.Len(t, restored.Results().Items(), 5)
	assert.Equal(t, 4, restored.Results().FocusIndex())
	assert.Equal(t, SectionResults, restored.coord.FocusedName())
}

func TestPlayerFirstKeyWakesControls(t *testing.T) {
	h := newHarness(t)
	h.env.Config.Timers.ControlsHideMS = 1
	h.open(RouteDetail, domain.RouteParams{ID: "deep-blue"})
	h.press(focus.KeyEnter)

	player, ok := h.screen().(*Player)
	require.True(t, ok)
	assert.Equal(t, "Deep Blue", player.Item().Title)
	require.True(t, player.Controls().Visible())

	tick, ok := player.hide.Start()().(tasks.TickMsg)
	require.True(t, ok)
	player.Update(tick)
	h.frame()
	require.False(t, player.Controls().Visible())

	h.press(focus.KeyRight)
	assert.True(t, player.Controls().Visible())
	assert.Equal(t, 1, player.Controls().FocusIndex(), "waking key is swallowed")

	h.press(focus.KeyRight)
	assert.Equal(t, 2, player.Controls().FocusIndex())

	h.press(focus.KeyBack)
	_, ok = h.screen().(*Detail)
	assert.True(t, ok)
}

func TestBootSwallowsKeysAndRedirects(t *testing.T) {
	h := newHarness(t)
	boot := h.open(RouteBoot, domain.RouteParams{}).(*Boot)

	_, handled := boot.HandleKey(tea.KeyMsg{}, focus.KeyDown)
	assert.True(t, handled)

	c, err := catalog.Load("")
	require.NoError(t, err)
	boot.Update(CatalogLoadedMsg{Catalog: c})
	assert.Equal(t, RouteHome, h.router.Path())
	assert.Equal(t, 1, h.router.Depth())
}

func TestHomeHidesMissingRails(t *testing.T) {
	h := newHarness(t)
	c, err := catalog.Parse([]byte(`
slides = ["a"]

[[rails]]
title = "Only"
items = ["a", "b"]

[[items]]
id = "a"
title = "A"

[[items]]
id = "b"
title = "B"
`))
	require.NoError(t, err)
	h.env.Catalog.Set(c)

	home := h.open(RouteHome, domain.RouteParams{}).(*Home)
	g, ok := home.canvas.Geometry(RailSection(2))
	require.True(t, ok)
	assert.False(t, g.Visible)

	h.press(focus.KeyDown, focus.KeyDown, focus.KeyDown)
	assert.Equal(t, 3, home.coord.Index(), "hidden sections still take focus")
}
