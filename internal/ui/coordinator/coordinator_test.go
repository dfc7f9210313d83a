package coordinator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"couchnav/internal/domain"
	"couchnav/internal/ui/focus"
	"couchnav/internal/ui/history"
	"couchnav/internal/ui/layout"
)

type tree map[string]layout.Geometry

func (t tree) Geometry(name string) (layout.Geometry, bool) {
	g, ok := t[name]
	return g, ok
}

// rail remembers nothing until touched, like the real widget
type rail struct {
	idx     int
	touched bool
	focused bool
	n       int
}

func (r *rail) FocusIndex() int {
	if !r.touched {
		return focus.NoIndex
	}
	return r.idx
}

func (r *rail) SetFocusIndex(i int) {
	r.idx = i
	r.touched = true
}

func (r *rail) ResetFocus() {
	r.idx = 0
	r.touched = false
}

func (r *rail) SetFocused(f bool) { r.focused = f }

func (r *rail) HandleKey(k focus.Key) (focus.Signal, bool) {
	switch k {
	case focus.KeyRight:
		if r.idx < r.n-1 {
			r.SetFocusIndex(r.idx + 1)
		}
		return focus.Signal{}, true
	case focus.KeyDown:
		return focus.Signal{Kind: focus.SignalFocusNext}, true
	case focus.KeyUp:
		return focus.Signal{Kind: focus.SignalFocusPrev}, true
	case focus.KeyEnter:
		return focus.Navigate("detail", domain.RouteParams{ID: "x"}), true
	}
	return focus.Signal{}, false
}

type block struct{ focused bool }

func (b *block) SetFocused(f bool) { b.focused = f }

type sink struct {
	navigations []string
	backs       int
	states      []history.Snapshot
}

func (s *sink) Navigate(path string, params domain.RouteParams) {
	s.navigations = append(s.navigations, path)
}
func (s *sink) Back() { s.backs++ }

func (s *sink) ReplaceState(snap history.Snapshot) {
	s.states = append(s.states, snap)
}

type fixture struct {
	c      *Coordinator
	sched  *ManualScheduler
	sink   *sink
	tree   tree
	nodes  map[string]focus.Node
	render func()
}

func newFixture(cfg PageConfig, geometry tree, nodes map[string]focus.Node, viewport int) *fixture {
	f := &fixture{
		sched: NewManualScheduler(),
		sink:  &sink{},
		tree:  tree{},
		nodes: nodes,
	}
	f.c = New(cfg, f.tree, NodeFunc(func(name string) focus.Node { return f.nodes[name] }))
	f.c.SetScheduler(f.sched)
	f.c.SetSink(f.sink)
	f.c.SetThrottle(history.NewThrottle(0))
	f.c.SetViewport(viewport)
	// geometry becomes visible only after the first render
	f.render = func() {
		for k, v := range geometry {
			f.tree[k] = v
		}
	}
	return f
}

func (f *fixture) settle() {
	f.render()
	f.sched.Flush()
}

func homeConfig() PageConfig {
	cfg := DefaultPageConfig("home", "Carousel", "R1", "R2", "R3")
	cfg.Primary = []string{"Carousel"}
	return cfg
}

func homeGeometry() tree {
	return tree{
		"Header":   {Y: 0, H: 3, Visible: true},
		"Carousel": {Y: 3, H: 12, Visible: true},
		"R1":       {Y: 16, H: 8, Visible: true},
		"R2":       {Y: 25, H: 8, Visible: true},
		"R3":       {Y: 34, H: 8, Visible: true},
	}
}

func homeNodes() map[string]focus.Node {
	return map[string]focus.Node{
		"Header":   &block{},
		"Carousel": &block{},
		"R1":       &rail{n: 5},
		"R2":       &rail{n: 5},
		"R3":       &rail{n: 5},
	}
}

func TestFreshEntryNoHeader(t *testing.T) {
	cfg := DefaultPageConfig("list", "A", "B", "C")
	cfg.HasHeader = false
	geo := tree{
		"A": {Y: 0, H: 10, Visible: true},
		"B": {Y: 10, H: 10, Visible: true},
		"C": {Y: 20, H: 10, Visible: true},
	}
	f := newFixture(cfg, geo, map[string]focus.Node{"A": &block{}, "B": &block{}, "C": &block{}}, 15)
	f.c.Attach()
	f.settle()

	assert.Equal(t, 0, f.c.Index())
	assert.Equal(t, 0.0, f.c.Offset())

	f.c.Scroll.Next()
	f.c.Scroll.Next()
	assert.Equal(t, 2, f.c.Index())
	assert.Equal(t, f.c.Bounds().Clamp(-20), f.c.Target())
	assert.Equal(t, -17.0, f.c.Target())
}

func TestInitialFocusSkipsHeaderAndPrefersPrimary(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	f.c.Attach()
	require.Equal(t, 1, f.sched.Pending())
	assert.Equal(t, -1, f.c.Index(), "nothing moves before the settle pass")

	f.settle()
	assert.Equal(t, 0, f.c.Index())
	assert.True(t, f.nodes["Carousel"].(*block).focused)
}

func TestInitialFocusPrefersRememberedChild(t *testing.T) {
	nodes := homeNodes()
	nodes["R2"].(*rail).SetFocusIndex(3)
	f := newFixture(homeConfig(), homeGeometry(), nodes, 20)
	f.c.Attach()
	f.settle()
	assert.Equal(t, 2, f.c.Index())
}

func TestInitialFocusUsesPrimaryInput(t *testing.T) {
	cfg := DefaultPageConfig("search", "Keyboard", "Box", "Results")
	cfg.PrimaryInput = "Box"
	f := newFixture(cfg, tree{}, map[string]focus.Node{"Box": &block{}, "Results": &block{}}, 20)
	f.c.Attach()
	f.settle()
	assert.Equal(t, 1, f.c.Index())
}

func TestAutoInitialFocusDisabled(t *testing.T) {
	cfg := homeConfig()
	cfg.AutoInitialFocus = false
	f := newFixture(cfg, homeGeometry(), homeNodes(), 20)
	f.c.Attach()
	f.settle()
	assert.Equal(t, -1, f.c.Index())
	assert.True(t, f.nodes["Header"].(*block).focused)
}

func TestHeaderBoundary(t *testing.T) {
	cfg := DefaultPageConfig("detail", "Hero", "Rail")
	cfg.Primary = []string{"Hero"}
	nodes := map[string]focus.Node{"Header": &block{}, "Hero": &block{}, "Rail": &rail{n: 3}}
	f := newFixture(cfg, tree{"Hero": {Y: 3, H: 20, Visible: true}}, nodes, 20)
	f.c.Attach()
	f.settle()
	require.Equal(t, 0, f.c.Index())

	assert.True(t, f.c.HandleKey(focus.KeyUp))
	assert.Equal(t, -1, f.c.Index())
	assert.Equal(t, 0.0, f.c.Target())

	assert.True(t, f.c.HandleKey(focus.KeyUp))
	assert.Equal(t, -1, f.c.Index())
}

func TestSnapshotNormalization(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	f.c.Attach()
	f.settle()
	f.c.Scroll.Enter(-1)

	snap := f.c.HistoryState(nil)
	require.NotNil(t, snap)
	assert.Equal(t, 0, snap.Section)
}

func TestEmptySections(t *testing.T) {
	cfg := DefaultPageConfig("boot")
	cfg.HasHeader = false
	f := newFixture(cfg, tree{}, map[string]focus.Node{}, 20)
	f.c.Attach()
	f.settle()

	for _, k := range []focus.Key{focus.KeyUp, focus.KeyDown, focus.KeyLeft, focus.KeyRight, focus.KeyEnter} {
		assert.True(t, f.c.HandleKey(k))
		assert.Equal(t, 0, f.c.Index())
	}
	assert.Equal(t, layout.Bounds{}, f.c.Bounds())
}

func TestRailKeysAndSignals(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	f.c.Attach()
	f.settle()
	f.c.Scroll.Enter(1)

	r1 := f.nodes["R1"].(*rail)
	assert.True(t, r1.focused)
	f.c.HandleKey(focus.KeyRight)
	assert.Equal(t, 1, r1.idx)

	f.c.HandleKey(focus.KeyDown)
	assert.Equal(t, 2, f.c.Index())
	assert.False(t, r1.focused)
	assert.True(t, f.nodes["R2"].(*rail).focused)

	f.c.HandleKey(focus.KeyEnter)
	assert.Equal(t, []string{"detail"}, f.sink.navigations)
	last := f.sink.states[len(f.sink.states)-1]
	assert.Equal(t, 2, last.Section, "navigate is preceded by a save")
	assert.Equal(t, map[string]int{"R1": 1}, last.Focus)
}

func TestRoundTrip(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	f.c.Attach()
	f.settle()
	f.c.Scroll.Enter(2)
	f.nodes["R1"].(*rail).SetFocusIndex(4)
	f.nodes["R2"].(*rail).SetFocusIndex(2)
	for f.c.Step() {
	}
	saved := f.c.HistoryState(nil)
	require.NotNil(t, saved)

	g := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	g.c.HistoryState(saved)
	g.c.Activate(domain.RouteParams{})
	g.c.Attach()
	g.settle()

	assert.Equal(t, f.c.Index(), g.c.Index())
	assert.Equal(t, f.c.Offset(), g.c.Offset())
	assert.Equal(t, 4, g.nodes["R1"].(*rail).idx)
	assert.Equal(t, 2, g.nodes["R2"].(*rail).idx)
	assert.Equal(t, *saved, *g.c.HistoryState(nil))
}

func TestPendingRestoreUsesSettleBounds(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	f.c.HistoryState(&history.Snapshot{Section: 3, ScrollY: 22})
	f.c.Attach()

	// attach saw no rendered geometry: bounds are too small for the request
	assert.Equal(t, 0.0, f.c.Offset())
	_, pending := f.c.History.Pending()
	assert.True(t, pending)

	f.settle()
	assert.Equal(t, -22.0, f.c.Offset())
	assert.Equal(t, 3, f.c.Index())
	_, pending = f.c.History.Pending()
	assert.False(t, pending)
}

func TestPendingRestoreIsClampedAtSettle(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	f.c.HistoryState(&history.Snapshot{Section: 3, ScrollY: 500})
	f.c.Attach()
	f.settle()
	assert.Equal(t, f.c.Bounds().Min, f.c.Offset())
}

func TestNoDoubleApply(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	f.c.HistoryState(&history.Snapshot{Section: 2, ScrollY: 10})
	f.c.HistoryState(&history.Snapshot{Section: 2, ScrollY: 10})
	f.c.Attach()
	f.settle()
	assert.Equal(t, -10.0, f.c.Offset())
	assert.False(t, f.c.Animating())

	// a later settle pass has nothing left to apply
	f.c.ComputeAfterLayout()
	f.settle()
	assert.Equal(t, -10.0, f.c.Offset())
	assert.Equal(t, 2, f.c.Index())
}

func TestAnimatedRestore(t *testing.T) {
	cfg := homeConfig()
	cfg.AnimateRestore = true
	f := newFixture(cfg, homeGeometry(), homeNodes(), 20)
	f.c.HistoryState(&history.Snapshot{Section: 2, ScrollY: 10})
	f.c.Attach()
	f.settle()
	assert.True(t, f.c.Animating())
	assert.Equal(t, -10.0, f.c.Target())
}

func TestResetIntent(t *testing.T) {
	nodes := homeNodes()
	nodes["R2"].(*rail).SetFocusIndex(3)
	f := newFixture(homeConfig(), homeGeometry(), nodes, 20)
	f.c.Activate(domain.RouteParams{From: "header", Intent: domain.IntentReset})
	f.c.Attach()
	f.settle()

	assert.Equal(t, 0, f.c.Index())
	assert.Equal(t, focus.NoIndex, nodes["R2"].(*rail).FocusIndex())
	assert.Equal(t, domain.IntentNone, f.c.Params().Intent, "intent is consumed once")
}

func TestForceOverridesHeuristic(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	f.c.Force(3)
	f.c.Attach()
	f.settle()
	assert.Equal(t, 3, f.c.Index())
	assert.Equal(t, -24.0, f.c.Target(), "R3 sits below the last reachable offset")
}

func TestBackSavesFirst(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	f.c.Attach()
	f.settle()
	before := len(f.sink.states)

	assert.True(t, f.c.HandleKey(focus.KeyBack))
	assert.Equal(t, 1, f.sink.backs)
	assert.Equal(t, before+1, len(f.sink.states))
}

func TestRoutineSaveIsThrottledButLeaveIsNot(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	now := time.Unix(0, 0)
	th := history.NewThrottle(time.Second)
	th.SetClock(func() time.Time { return now })
	f.c.SetThrottle(th)
	f.c.Attach()
	f.settle()

	f.c.Scroll.Enter(1)
	f.c.Scroll.Enter(2)
	f.c.Scroll.Enter(3)
	routine := len(f.sink.states)

	f.c.SaveBeforeLeave()
	assert.Equal(t, routine+1, len(f.sink.states))
	assert.Equal(t, 3, f.sink.states[len(f.sink.states)-1].Section)
	assert.LessOrEqual(t, routine, 1)
}

func TestHistoryDisabled(t *testing.T) {
	cfg := homeConfig()
	cfg.History = false
	f := newFixture(cfg, homeGeometry(), homeNodes(), 20)
	assert.Nil(t, f.c.HistoryState(nil))
	f.c.HistoryState(&history.Snapshot{Section: 2, ScrollY: 9})
	f.c.Attach()
	f.settle()
	assert.Equal(t, 0, f.c.Index())
	f.c.SaveBeforeLeave()
	assert.Empty(t, f.sink.states)
}

func TestLeaveClearsRestoredFlag(t *testing.T) {
	f := newFixture(homeConfig(), homeGeometry(), homeNodes(), 20)
	f.c.HistoryState(&history.Snapshot{Section: 2})
	f.c.Attach()
	f.settle()
	require.True(t, f.c.History.Restored())

	f.c.Leave()
	assert.False(t, f.c.History.Restored())
	assert.False(t, f.nodes["R2"].(*rail).focused)
}
