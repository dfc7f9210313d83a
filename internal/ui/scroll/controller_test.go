package scroll

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"couchnav/internal/ui/layout"
)

func metrics(min float64, offsets map[string]int) layout.Metrics {
	return layout.Metrics{Bounds: layout.Bounds{Min: min}, Offsets: offsets}
}

func TestFreshEntryWithoutHeader(t *testing.T) {
	c := NewController(Options{Sections: []string{"A", "B", "C"}, ScrollSnap: true})
	c.SetMetrics(metrics(-50, map[string]int{"A": 0, "B": 20, "C": 40}))

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0.0, c.Offset())

	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, -40.0, c.Target())

	c.Next()
	assert.Equal(t, 2, c.Index(), "Next saturates at the last section")
}

func TestTargetIsClampedIntoBounds(t *testing.T) {
	c := NewController(Options{Sections: []string{"A", "B", "C"}, ScrollSnap: true})
	c.SetMetrics(metrics(-25, map[string]int{"A": 0, "B": 20, "C": 40}))

	c.Enter(2)
	assert.Equal(t, -25.0, c.Target())
}

func TestHeaderBoundary(t *testing.T) {
	c := NewController(Options{Sections: []string{"Hero", "Rail"}, HasHeader: true, ScrollSnap: true})
	c.SetMetrics(metrics(-30, map[string]int{"Header": 0, "Hero": 3, "Rail": 20}))
	c.Enter(1)
	c.Enter(0)
	require.Equal(t, 0, c.Index())

	c.Prev()
	assert.Equal(t, -1, c.Index())
	assert.Equal(t, 0.0, c.Target())
	assert.Equal(t, layout.HeaderName, c.NameFor(c.Index()))

	c.Prev()
	assert.Equal(t, -1, c.Index())
}

func TestIndexInvariantUnderRandomMoves(t *testing.T) {
	for _, hasHeader := range []bool{true, false} {
		c := NewController(Options{Sections: []string{"A", "B", "C", "D"}, HasHeader: hasHeader, ScrollSnap: true})
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			if rng.Intn(2) == 0 {
				c.Next()
			} else {
				c.Prev()
			}
			assert.GreaterOrEqual(t, c.Index(), c.Min())
			assert.LessOrEqual(t, c.Index(), 3)
		}
	}
}

func TestEnterOutOfRangeClamps(t *testing.T) {
	c := NewController(Options{Sections: []string{"A", "B"}, HasHeader: true, ScrollSnap: true})
	c.Enter(99)
	assert.Equal(t, 1, c.Index())
	c.Enter(-99)
	assert.Equal(t, -1, c.Index())
}

func TestScrollSnapDisabledMovesIndexOnly(t *testing.T) {
	c := NewController(Options{Sections: []string{"A", "B"}, ScrollSnap: false})
	c.SetMetrics(metrics(-50, map[string]int{"B": 20}))

	refocused := 0
	c.Refocus = func() { refocused++ }
	c.Next()
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 0.0, c.Target())
	assert.False(t, c.Animating())
	assert.Equal(t, 1, refocused)
}

func TestShouldScrollVeto(t *testing.T) {
	c := NewController(Options{
		Sections:     []string{"Box", "Results"},
		HasHeader:    true,
		ScrollSnap:   true,
		ShouldScroll: func(i int) bool { return i >= 1 },
	})
	c.SetMetrics(metrics(-50, map[string]int{"Box": 10, "Results": 20}))

	c.Enter(0)
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Animating())

	c.Enter(1)
	assert.Equal(t, -20.0, c.Target())
}

func TestEnterIsIdempotent(t *testing.T) {
	c := NewController(Options{Sections: []string{"A", "B"}, ScrollSnap: true})
	c.SetMetrics(metrics(-50, map[string]int{"B": 20}))

	changes := 0
	c.Changed = func(from, to int) { changes++ }
	c.Enter(1)
	c.Step()
	pos := c.Offset()
	c.Enter(1)

	assert.Equal(t, 1, changes)
	assert.Equal(t, pos, c.Offset())
	assert.Equal(t, -20.0, c.Target())
}

func TestSetMetricsReclampsContainer(t *testing.T) {
	c := NewController(Options{Sections: []string{"A", "B"}, ScrollSnap: true})
	c.SetMetrics(metrics(-50, nil))
	c.ScrollTo(-45, false)
	require.Equal(t, -45.0, c.Offset())

	c.SetMetrics(metrics(-10, nil))
	assert.Equal(t, -10.0, c.Offset())
}

func TestEmptySectionsAreInert(t *testing.T) {
	c := NewController(Options{ScrollSnap: true})
	c.Next()
	c.Prev()
	c.Enter(3)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, "", c.NameFor(0))
}

func TestScrollTop(t *testing.T) {
	c := NewController(Options{Sections: []string{"A", "B"}, ScrollSnap: true})
	c.SetMetrics(metrics(-50, map[string]int{"B": 30}))
	c.Enter(1)
	c.Step()
	c.ScrollTop()
	assert.Equal(t, 0.0, c.Offset())
	assert.False(t, c.Animating())
}
