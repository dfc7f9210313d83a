// Package router keeps the navigation history stack and swaps the active
// page. Each entry stores the snapshot its page last committed.
package router

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"couchnav/internal/domain"
	"couchnav/internal/logger"
	"couchnav/internal/ui/history"
)

// Page is what the router drives
type Page interface {
	HistoryState(s *history.Snapshot) *history.Snapshot
	Activate(params domain.RouteParams)
	Attach()
	Leave()
}

// Factory builds a page for a route
type Factory func(params domain.RouteParams) Page

// Route binds a path to a page factory. KeepAlive pages are built once and
// reused for every entry with this path.
type Route struct {
	Path      string
	New       Factory
	KeepAlive bool
}

// Entry is one history record
type Entry struct {
	ID     string
	Path   string
	Params domain.RouteParams
	State  []byte
}

// Publisher receives navigation events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Router is the in-memory history stack
type Router struct {
	root   string
	routes map[string]Route
	alive  map[string]Page
	stack  []*Entry
	active Page
	bus    Publisher

	// OnChange is called after the active page changed
	OnChange func(p Page)
}

// New creates a router whose Back falls back to root
func New(root string) *Router {
	return &Router{
		root:   normalize(root),
		routes: make(map[string]Route),
		alive:  make(map[string]Page),
	}
}

// SetBus sets the event publisher
func (r *Router) SetBus(p Publisher) { r.bus = p }

// Register adds a route
func (r *Router) Register(route Route) {
	route.Path = normalize(route.Path)
	r.routes[route.Path] = route
}

// Active returns the active page
func (r *Router) Active() Page { return r.active }

// Path returns the path of the active entry
func (r *Router) Path() string {
	if e := r.top(); e != nil {
		return e.Path
	}
	return ""
}

// Depth is the number of history entries
func (r *Router) Depth() int { return len(r.stack) }

// Entries returns a copy of the history stack, oldest first
func (r *Router) Entries() []Entry {
	out := make([]Entry, len(r.stack))
	for i, e := range r.stack {
		out[i] = *e
	}
	return out
}

// Navigate pushes a new entry for path and activates its page
func (r *Router) Navigate(path string, params domain.RouteParams) {
	path = normalize(path)
	route, ok := r.routes[path]
	if !ok {
		logger.Get().Warn("navigate to unknown route", "path", path)
		return
	}
	from := r.Path()
	r.leave()
	r.stack = append(r.stack, newEntry(path, params))
	r.show(route, params, nil)
	r.publish(domain.NavigationPush, from)
}

// Redirect replaces the active entry instead of pushing
func (r *Router) Redirect(path string, params domain.RouteParams) {
	path = normalize(path)
	route, ok := r.routes[path]
	if !ok {
		logger.Get().Warn("redirect to unknown route", "path", path)
		return
	}
	from := r.Path()
	r.leave()
	entry := newEntry(path, params)
	if len(r.stack) == 0 {
		r.stack = append(r.stack, entry)
	} else {
		r.stack[len(r.stack)-1] = entry
	}
	r.show(route, params, nil)
	r.publish(domain.NavigationRedirect, from)
}

// Back pops the active entry and restores the previous one. Without a
// previous entry it redirects to root, unless root is already active.
func (r *Router) Back() {
	if len(r.stack) <= 1 {
		if r.Path() != r.root {
			r.Redirect(r.root, domain.RouteParams{})
		}
		return
	}

	from := r.Path()
	r.leave()
	r.stack = r.stack[:len(r.stack)-1]
	entry := r.top()

	route, ok := r.routes[entry.Path]
	if !ok {
		logger.Get().Warn("back to unknown route", "path", entry.Path)
		return
	}

	var snap *history.Snapshot
	if len(entry.State) > 0 {
		s, err := history.Decode(entry.State)
		if err != nil {
			logger.Get().Warn("dropping unreadable history state", "path", entry.Path, "error", err)
		} else {
			snap = &s
		}
	}
	r.show(route, entry.Params, snap)
	r.publish(domain.NavigationPop, from)
}

// ReplaceState stores s on the active entry
func (r *Router) ReplaceState(s history.Snapshot) {
	entry := r.top()
	if entry == nil {
		return
	}
	data, err := history.Encode(s)
	if err != nil {
		logger.Get().Warn("failed to store history state", "path", entry.Path, "error", err)
		return
	}
	entry.State = data
}

// State decodes the snapshot stored on the active entry
func (r *Router) State() (history.Snapshot, bool) {
	entry := r.top()
	if entry == nil || len(entry.State) == 0 {
		return history.Snapshot{}, false
	}
	s, err := history.Decode(entry.State)
	if err != nil {
		return history.Snapshot{}, false
	}
	return s, true
}

func (r *Router) show(route Route, params domain.RouteParams, snap *history.Snapshot) {
	page := r.pageFor(route, params)
	if snap != nil {
		page.HistoryState(snap)
	}
	page.Activate(params)
	r.active = page
	page.Attach()
	if r.OnChange != nil {
		r.OnChange(page)
	}
}

func (r *Router) pageFor(route Route, params domain.RouteParams) Page {
	if !route.KeepAlive {
		return route.New(params)
	}
	if p, ok := r.alive[route.Path]; ok {
		return p
	}
	p := route.New(params)
	r.alive[route.Path] = p
	return p
}

func (r *Router) leave() {
	if r.active != nil {
		r.active.Leave()
	}
}

func (r *Router) top() *Entry {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) publish(kind domain.NavigationKind, from string) {
	logger.Get().Info("navigated",
		"kind", string(kind),
		"from", from,
		"to", r.Path(),
		"depth", len(r.stack))
	if r.bus != nil {
		r.bus.Publish(domain.NavigatedEvent{Kind: kind, From: from, To: r.Path(), Depth: len(r.stack)})
	}
}

func newEntry(path string, params domain.RouteParams) *Entry {
	return &Entry{
		ID:     uuid.NewString(),
		Path:   path,
		Params: params.WithoutIntent(),
	}
}

// normalize accepts "#/Detail", "/detail" and "detail" alike
func normalize(path string) string {
	return strings.ToLower(strings.TrimLeft(path, "#/"))
}

// String renders the stack for debugging, newest last
func (r *Router) String() string {
	var b strings.Builder
	for i, e := range r.stack {
		if i > 0 {
			b.WriteString(" > ")
		}
		b.WriteString(e.Path)
		if e.Params.ID != "" {
			fmt.Fprintf(&b, "/%s", e.Params.ID)
		}
	}
	return b.String()
}
