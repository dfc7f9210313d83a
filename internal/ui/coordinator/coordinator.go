// Package coordinator is the lifecycle glue of a section page: it owns the
// scroll controller, the history codec and the key dispatcher of one page
// instance and orders attach, settle and restore.
package coordinator

import (
	"couchnav/internal/domain"
	"couchnav/internal/logger"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/history"
	"couchnav/internal/ui/input"
	"couchnav/internal/ui/layout"
	"couchnav/internal/ui/scroll"
)

// NodeLookup returns the widget occupying a section, "Header" included
type NodeLookup interface {
	Node(name string) focus.Node
}

// NodeFunc adapts a function to NodeLookup
type NodeFunc func(name string) focus.Node

func (f NodeFunc) Node(name string) focus.Node { return f(name) }

// Sink is the router side of navigation
type Sink interface {
	Navigate(path string, params domain.RouteParams)
	Back()
	ReplaceState(s history.Snapshot)
}

// Publisher receives observe-only events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Hooks customize a page without subclassing
type Hooks struct {
	// Keys takes keys before the default dispatch
	Keys input.Override
	// Signal handles widget signals; false falls through to the defaults
	Signal func(sig focus.Signal) bool
	// Snapshot annotates a snapshot before it is stored
	Snapshot func(s *history.Snapshot)
	// Restore reads page-specific fields of a popped snapshot. It runs
	// before child indexes are pushed.
	Restore func(s history.Snapshot)
}

// Coordinator manages the focus and scroll state of one page instance
type Coordinator struct {
	// Services
	Scroll  *scroll.Controller
	History *history.Codec
	Input   *input.Dispatcher

	cfg      PageConfig
	throttle *history.Throttle
	hooks    Hooks

	// Dependencies
	tree      layout.Tree
	nodes     NodeLookup
	sink      Sink
	scheduler Scheduler
	bus       Publisher

	viewport    int
	focused     string
	forced      int
	hasForced   bool
	initialized bool
	params      domain.RouteParams
}

// New creates a coordinator reading geometry from tree and widgets from nodes
func New(cfg PageConfig, tree layout.Tree, nodes NodeLookup) *Coordinator {
	c := &Coordinator{
		cfg:   cfg,
		tree:  tree,
		nodes: nodes,
		Scroll: scroll.NewController(scroll.Options{
			Sections:     cfg.Sections,
			HasHeader:    cfg.HasHeader,
			ScrollSnap:   cfg.ScrollSnap,
			ShouldScroll: cfg.ShouldScroll,
			Spring:       cfg.Spring,
		}),
		Input:    input.NewDispatcher(),
		throttle: history.NewThrottle(cfg.SaveInterval),
	}
	c.History = history.NewCodec(history.Options{
		HasHeader:     cfg.HasHeader,
		PersistHeader: cfg.PersistHeader,
		FocusRecovery: cfg.FocusRecovery,
	}, cfg.Sections, c.node)

	c.wireServices()
	return c
}

// wireServices connects the services with each other
func (c *Coordinator) wireServices() {
	c.Scroll.Refocus = c.refocus
	c.Scroll.Changed = c.sectionChanged
}

// SetSink sets the router sink
func (c *Coordinator) SetSink(s Sink) { c.sink = s }

// SetScheduler sets the layout scheduler
func (c *Coordinator) SetScheduler(s Scheduler) { c.scheduler = s }

// SetBus sets the event publisher
func (c *Coordinator) SetBus(p Publisher) { c.bus = p }

// SetThrottle replaces the routine save throttle
func (c *Coordinator) SetThrottle(t *history.Throttle) { c.throttle = t }

// SetHooks installs page hooks
func (c *Coordinator) SetHooks(h Hooks) {
	c.hooks = h
	c.Input.SetOverride(h.Keys)
}

// SetViewport updates the viewport height and remeasures
func (c *Coordinator) SetViewport(height int) {
	c.viewport = height
	c.measure()
}

// Config returns the page configuration
func (c *Coordinator) Config() PageConfig { return c.cfg }

// Params returns the route params of the current activation
func (c *Coordinator) Params() domain.RouteParams { return c.params }

// Index is the current section index
func (c *Coordinator) Index() int { return c.Scroll.Index() }

// FocusedName is the name of the section holding focus
func (c *Coordinator) FocusedName() string { return c.Scroll.NameFor(c.Scroll.Index()) }

// Focused resolves the node that should receive input
func (c *Coordinator) Focused() focus.Node {
	return focus.Resolve(c.node(c.FocusedName()))
}

// Offset is the scroll position shown right now
func (c *Coordinator) Offset() float64 { return c.Scroll.Offset() }

// Target is the scroll position the container comes to rest at
func (c *Coordinator) Target() float64 { return c.Scroll.Target() }

// Bounds are the last computed scroll bounds
func (c *Coordinator) Bounds() layout.Bounds { return c.Scroll.Bounds() }

// Animating reports whether Step still needs frames
func (c *Coordinator) Animating() bool { return c.Scroll.Animating() }

// Step advances the scroll animation by one frame
func (c *Coordinator) Step() bool { return c.Scroll.Step() }

// Attach runs the first, best-effort measurement and schedules the settle
// pass for after the next layout.
func (c *Coordinator) Attach() {
	c.measure()
	c.afterLayout(c.Settle)
}

// ComputeAfterLayout schedules another settle pass. Pages call it after
// replacing content that changes section sizes.
func (c *Coordinator) ComputeAfterLayout() {
	c.afterLayout(c.Settle)
}

// Remeasure recomputes metrics now, for content mutations in steady state
func (c *Coordinator) Remeasure() {
	c.measure()
}

// Settle is the deferred pass: remeasure, then either apply a pending
// restore, a forced index, or the initial focus heuristic.
func (c *Coordinator) Settle() {
	c.measure()

	if pending, ok := c.History.TakePending(); ok {
		c.Scroll.ScrollTo(-pending, c.cfg.AnimateRestore)
		c.refocus()
		logger.Get().Debug("snapshot restore applied",
			"page", c.cfg.Name,
			"section", c.Scroll.Index(),
			"offset", c.Scroll.Target())
		c.publish(domain.SnapshotRestoredEvent{
			Page:    c.cfg.Name,
			Section: c.Scroll.Index(),
			Offset:  c.Scroll.Target(),
		})
		return
	}

	if c.hasForced {
		c.hasForced = false
		c.initialized = true
		c.Scroll.Enter(c.forced)
		return
	}

	c.maybeInitFocus()
}

// HistoryState restores s when given one, otherwise returns a snapshot to
// persist. Pages without history return nil.
func (c *Coordinator) HistoryState(s *history.Snapshot) *history.Snapshot {
	if !c.cfg.History {
		return nil
	}
	if s != nil {
		// page content first, so remembered indexes clamp against it
		if c.hooks.Restore != nil {
			c.hooks.Restore(*s)
		}
		section := c.History.Restore(*s)
		c.Scroll.SetIndex(section)
		return nil
	}
	snap := c.Snapshot()
	return &snap
}

// Snapshot composes the current snapshot. The offset recorded is where
// the container rests, so a save during an animation stores its target.
func (c *Coordinator) Snapshot() history.Snapshot {
	snap := c.History.Save(c.Scroll.Index(), c.Scroll.Target())
	if c.hooks.Snapshot != nil {
		c.hooks.Snapshot(&snap)
	}
	return snap
}

// SaveRoutine stores a snapshot unless one was stored too recently
func (c *Coordinator) SaveRoutine() {
	if !c.cfg.History {
		return
	}
	if !c.throttle.Allow() {
		logger.Get().Debug("routine snapshot throttled", "page", c.cfg.Name)
		return
	}
	c.commit(false)
}

// SaveBeforeLeave always stores a snapshot
func (c *Coordinator) SaveBeforeLeave() {
	if !c.cfg.History {
		return
	}
	c.commit(true)
}

func (c *Coordinator) commit(beforeNav bool) {
	if c.sink == nil {
		return
	}
	snap := c.Snapshot()
	c.sink.ReplaceState(snap)
	c.publish(domain.SnapshotSavedEvent{
		Page:      c.cfg.Name,
		Section:   snap.Section,
		ScrollY:   snap.ScrollY,
		BeforeNav: beforeNav,
	})
}

// Navigate saves and then asks the router to open path
func (c *Coordinator) Navigate(path string, params domain.RouteParams) {
	c.SaveBeforeLeave()
	if c.sink != nil {
		c.sink.Navigate(path, params)
	}
}

// Back saves and then asks the router to go back
func (c *Coordinator) Back() {
	c.SaveBeforeLeave()
	if c.sink != nil {
		c.sink.Back()
	}
}

// Activate receives the route params of this activation and consumes the
// navigation intent.
func (c *Coordinator) Activate(params domain.RouteParams) {
	c.params = params
	c.initialized = false
	if params.Intent != domain.IntentReset {
		return
	}
	logger.Get().Debug("navigation intent consumed",
		"page", c.cfg.Name,
		"intent", params.Intent.String())
	for _, name := range c.cfg.Sections {
		focus.Reset(c.node(name))
	}
	c.Force(c.primaryIndex())
	c.params = params.WithoutIntent()
}

// Force makes the next settle pass enter index instead of running the
// initial focus heuristic
func (c *Coordinator) Force(index int) {
	if c.Scroll.Empty() {
		return
	}
	c.forced = c.Scroll.Clamp(index)
	c.hasForced = true
	c.Scroll.SetIndex(c.forced)
}

// Leave is called when the page stops being the active one
func (c *Coordinator) Leave() {
	focus.SetFocused(c.node(c.focused), false)
	c.focused = ""
	c.History.ClearRestored()
	c.initialized = false
	c.hasForced = false
}

// HandleKey dispatches a remote key and reports whether it was handled
func (c *Coordinator) HandleKey(k focus.Key) bool {
	ctx := input.Context{
		SectionCount: len(c.cfg.Sections),
		Index:        c.Scroll.Index(),
		HasHeader:    c.cfg.HasHeader,
		FocusPath:    c.focusPath(),
	}
	actions, handled := c.Input.Dispatch(k, ctx)
	for _, action := range actions {
		c.processAction(action)
	}
	return handled
}

func (c *Coordinator) processAction(action input.Action) {
	switch a := action.(type) {
	case input.NextSectionAction:
		c.Scroll.Next()
	case input.PrevSectionAction:
		c.Scroll.Prev()
	case input.EnterSectionAction:
		c.Scroll.Enter(a.Index)
	case input.SignalAction:
		c.HandleSignal(a.Signal)
	case input.BackAction:
		c.Back()
	}
}

// HandleSignal reacts to a widget signal
func (c *Coordinator) HandleSignal(sig focus.Signal) bool {
	if c.hooks.Signal != nil && c.hooks.Signal(sig) {
		return true
	}
	switch sig.Kind {
	case focus.SignalFocusNext:
		c.Scroll.Next()
	case focus.SignalFocusPrev:
		c.Scroll.Prev()
	case focus.SignalNavigate:
		c.Navigate(sig.Path, sig.Params)
	default:
		return false
	}
	return true
}

// ScrollTo aligns the container to y, clamped into bounds
func (c *Coordinator) ScrollTo(y float64, animate bool) {
	c.Scroll.ScrollTo(y, animate)
}

// ScrollTop jumps to the top
func (c *Coordinator) ScrollTop() {
	c.Scroll.ScrollTop()
}

func (c *Coordinator) maybeInitFocus() {
	if !c.cfg.AutoInitialFocus || c.History.Restored() || c.Scroll.Empty() || c.initialized {
		c.refocus()
		return
	}
	c.initialized = true

	desired := c.initialIndex()
	if c.Scroll.Index() != desired {
		c.Scroll.Enter(desired)
		return
	}
	c.refocus()
}

// initialIndex picks the section of a fresh entry. It never returns the
// header.
func (c *Coordinator) initialIndex() int {
	for i, name := range c.cfg.Sections {
		if focus.Index(c.node(name)) != focus.NoIndex {
			return i
		}
	}
	return c.primaryIndex()
}

func (c *Coordinator) primaryIndex() int {
	for _, name := range c.cfg.Primary {
		if i := c.Scroll.IndexOf(name); i >= 0 && c.node(name) != nil {
			return i
		}
	}
	if name := c.cfg.PrimaryInput; name != "" {
		if i := c.Scroll.IndexOf(name); i >= 0 && c.node(name) != nil {
			return i
		}
	}
	return 0
}

func (c *Coordinator) sectionChanged(from, to int) {
	c.publish(domain.SectionEnteredEvent{
		Page: c.cfg.Name,
		From: from,
		To:   to,
		Name: c.Scroll.NameFor(to),
	})
	c.SaveRoutine()
}

func (c *Coordinator) refocus() {
	name := c.FocusedName()
	if c.focused != name {
		focus.SetFocused(c.node(c.focused), false)
	}
	focus.SetFocused(c.node(name), true)
	c.focused = name
}

func (c *Coordinator) focusPath() []focus.Node {
	section := c.node(c.FocusedName())
	if section == nil {
		return nil
	}
	leaf := focus.Resolve(section)
	if focus.Same(leaf, section) {
		return []focus.Node{section}
	}
	return []focus.Node{leaf, section}
}

func (c *Coordinator) measure() {
	m := layout.Compute(c.tree, layout.Input{
		Sections:       c.cfg.Sections,
		HasHeader:      c.cfg.HasHeader,
		ViewportHeight: c.viewport,
		ExtraBottom:    c.cfg.ExtraBottom,
		Hints:          c.cfg.Hints,
	})
	c.Scroll.SetMetrics(m)
}

func (c *Coordinator) afterLayout(fn func()) {
	if c.scheduler == nil {
		logger.Get().Debug("no layout scheduler, settling inline", "page", c.cfg.Name)
		fn()
		return
	}
	c.scheduler.AfterLayout(fn)
}

func (c *Coordinator) node(name string) focus.Node {
	if c.nodes == nil || name == "" {
		return nil
	}
	return c.nodes.Node(name)
}

func (c *Coordinator) publish(event domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
