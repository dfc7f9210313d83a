package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"couchnav/internal/domain"
	"couchnav/internal/ui/history"
)

type call struct {
	name string
	snap *history.Snapshot
}

type fakePage struct {
	path   string
	calls  []call
	params domain.RouteParams
	state  history.Snapshot
}

func (p *fakePage) HistoryState(s *history.Snapshot) *history.Snapshot {
	if s != nil {
		p.calls = append(p.calls, call{name: "restore", snap: s})
		return nil
	}
	snap := p.state
	return &snap
}

func (p *fakePage) Activate(params domain.RouteParams) {
	p.params = params
	p.calls = append(p.calls, call{name: "activate"})
}

func (p *fakePage) Attach() { p.calls = append(p.calls, call{name: "attach"}) }
func (p *fakePage) Leave()  { p.calls = append(p.calls, call{name: "leave"}) }

func (p *fakePage) names() []string {
	out := make([]string, len(p.calls))
	for i, c := range p.calls {
		out[i] = c.name
	}
	return out
}

type recorder struct{ events []domain.DomainEvent }

func (r *recorder) Publish(e domain.DomainEvent) { r.events = append(r.events, e) }

func setup() (*Router, map[string][]*fakePage) {
	built := map[string][]*fakePage{}
	r := New("home")
	for _, path := range []string{"home", "detail", "search"} {
		path := path
		r.Register(Route{Path: path, KeepAlive: path == "home", New: func(domain.RouteParams) Page {
			p := &fakePage{path: path}
			built[path] = append(built[path], p)
			return p
		}})
	}
	return r, built
}

func TestNavigatePushes(t *testing.T) {
	r, built := setup()
	bus := &recorder{}
	r.SetBus(bus)

	r.Navigate("home", domain.RouteParams{})
	r.Navigate("#/Detail", domain.RouteParams{ID: "m1", Intent: domain.IntentReset})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "detail", r.Path())
	assert.Equal(t, domain.IntentReset, built["detail"][0].params.Intent, "the page sees the intent")
	assert.Equal(t, domain.IntentNone, r.Entries()[1].Params.Intent, "history never stores it")
	assert.Equal(t, []string{"activate", "attach", "leave"}, built["home"][0].names())
	require.Len(t, bus.events, 2)
	assert.Equal(t, domain.NavigationPush, bus.events[1].(domain.NavigatedEvent).Kind)
	assert.NotEqual(t, r.Entries()[0].ID, r.Entries()[1].ID)
}

func TestBackRestoresStoredSnapshotIntoFreshPage(t *testing.T) {
	r, built := setup()
	r.Navigate("search", domain.RouteParams{})
	r.ReplaceState(history.Snapshot{Section: 1, ScrollY: 12, Focus: map[string]int{"Results": 5}})
	r.Navigate("detail", domain.RouteParams{ID: "m1"})
	r.Back()

	require.Len(t, built["search"], 2, "pop builds a new page instance")
	fresh := built["search"][1]
	assert.Equal(t, []string{"restore", "activate", "attach"}, fresh.names())
	assert.Equal(t, 12.0, fresh.calls[0].snap.ScrollY)
	assert.Equal(t, 5, fresh.calls[0].snap.Focus["Results"])
	assert.Equal(t, 1, r.Depth())
}

func TestKeepAlivePageIsReused(t *testing.T) {
	r, built := setup()
	r.Navigate("home", domain.RouteParams{})
	r.Navigate("detail", domain.RouteParams{ID: "m1"})
	r.Back()
	r.Navigate("search", domain.RouteParams{})
	r.Navigate("home", domain.RouteParams{})

	assert.Len(t, built["home"], 1)
	assert.Same(t, built["home"][0], r.Active())
}

func TestBackWithoutHistoryFallsBackToRoot(t *testing.T) {
	r, _ := setup()
	r.Redirect("detail", domain.RouteParams{ID: "m1"})
	r.Back()
	assert.Equal(t, "home", r.Path())
	assert.Equal(t, 1, r.Depth())

	r.Back()
	assert.Equal(t, "home", r.Path(), "back at root is a no-op")
}

func TestRedirectReplacesTop(t *testing.T) {
	r, _ := setup()
	r.Navigate("search", domain.RouteParams{})
	r.Redirect("home", domain.RouteParams{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.String())
}

func TestUnknownRouteIsIgnored(t *testing.T) {
	r, _ := setup()
	r.Navigate("home", domain.RouteParams{})
	r.Navigate("nowhere", domain.RouteParams{})
	assert.Equal(t, "home", r.Path())
}

func TestStateRoundTrip(t *testing.T) {
	r, _ := setup()
	_, ok := r.State()
	assert.False(t, ok)

	r.Navigate("home", domain.RouteParams{})
	r.ReplaceState(history.Snapshot{Section: 2, ScrollY: 3})
	s, ok := r.State()
	require.True(t, ok)
	assert.Equal(t, 2, s.Section)
}
