// Package scroll owns the current section index of a page and snaps the
// scroll container to the focused section.
package scroll

import (
	"couchnav/internal/ui/layout"
)

// Options configure a Controller
type Options struct {
	Sections  []string
	HasHeader bool
	// ScrollSnap=false keeps the index moving but never scrolls
	ScrollSnap bool
	// ShouldScroll vetoes the animation for a given index. nil allows all.
	ShouldScroll func(index int) bool
	Spring       Spring
}

// Controller is the section index state machine. Its index always names
// the header (-1, when present) or a valid section.
type Controller struct {
	opts    Options
	index   int
	metrics layout.Metrics
	anim    *Animator

	// Refocus is called after every Enter so the page re-resolves focus
	Refocus func()
	// Changed is called when the index actually moved
	Changed func(from, to int)
}

// NewController starts at the header when the page has one, else at 0
func NewController(opts Options) *Controller {
	c := &Controller{
		opts: opts,
		anim: NewAnimator(opts.Spring),
	}
	c.index = c.Min()
	return c
}

// Index is the current section index
func (c *Controller) Index() int { return c.index }

// Min is the lowest legal index
func (c *Controller) Min() int {
	if c.opts.HasHeader {
		return -1
	}
	return 0
}

// Max is the highest legal index
func (c *Controller) Max() int {
	if len(c.opts.Sections) == 0 {
		return c.Min()
	}
	return len(c.opts.Sections) - 1
}

// Empty reports a page without sections
func (c *Controller) Empty() bool { return len(c.opts.Sections) == 0 }

// Sections returns the declared section names
func (c *Controller) Sections() []string { return c.opts.Sections }

// NameFor maps an index to its node name
func (c *Controller) NameFor(index int) string {
	if c.opts.HasHeader && index < 0 {
		return layout.HeaderName
	}
	if c.Empty() {
		return ""
	}
	return c.opts.Sections[c.clampSection(index)]
}

// IndexOf returns the index of name or -2 when the page has no such section
func (c *Controller) IndexOf(name string) int {
	if c.opts.HasHeader && name == layout.HeaderName {
		return -1
	}
	for i, s := range c.opts.Sections {
		if s == name {
			return i
		}
	}
	return -2
}

// Clamp folds index into [Min, Max]
func (c *Controller) Clamp(index int) int {
	if index < c.Min() {
		return c.Min()
	}
	if index > c.Max() {
		return c.Max()
	}
	return index
}

func (c *Controller) clampSection(index int) int {
	if index < 0 {
		return 0
	}
	if index > len(c.opts.Sections)-1 {
		return len(c.opts.Sections) - 1
	}
	return index
}

// SetIndex moves the index without scrolling or refocusing. Used by
// restores, which scroll later.
func (c *Controller) SetIndex(index int) {
	if c.Empty() {
		return
	}
	c.index = c.Clamp(index)
}

// Metrics returns the last applied measurement
func (c *Controller) Metrics() layout.Metrics { return c.metrics }

// Bounds returns the current scroll bounds
func (c *Controller) Bounds() layout.Bounds { return c.metrics.Bounds }

// SetMetrics installs a fresh measurement and re-clamps the container
func (c *Controller) SetMetrics(m layout.Metrics) {
	c.metrics = m
	c.anim.Constrain(m.Bounds.Min, m.Bounds.Max)
}

// Enter focuses index, clamped into range, and snaps the container to it
func (c *Controller) Enter(index int) {
	if c.Empty() {
		return
	}
	index = c.Clamp(index)
	from := c.index
	c.index = index
	c.snap(index)
	if from != index && c.Changed != nil {
		c.Changed(from, index)
	}
	if c.Refocus != nil {
		c.Refocus()
	}
}

// Next enters the following section, saturating at the last one
func (c *Controller) Next() { c.Enter(c.index + 1) }

// Prev enters the previous section, saturating at Min
func (c *Controller) Prev() { c.Enter(c.index - 1) }

func (c *Controller) snap(index int) {
	if !c.opts.ScrollSnap {
		return
	}
	if c.opts.ShouldScroll != nil && !c.opts.ShouldScroll(index) {
		return
	}
	target := 0.0
	if index > 0 {
		target = -float64(c.metrics.Offset(c.NameFor(index)))
	}
	c.anim.SetTarget(c.metrics.Bounds.Clamp(target))
}

// ScrollTop jumps to the top without animating
func (c *Controller) ScrollTop() {
	c.anim.Jump(c.metrics.Bounds.Clamp(0))
}

// ScrollTo moves the container to y, clamped, for alignment that does not
// follow section boundaries
func (c *Controller) ScrollTo(y float64, animate bool) {
	y = c.metrics.Bounds.Clamp(y)
	if animate {
		c.anim.SetTarget(y)
		return
	}
	c.anim.Jump(y)
}

// Offset is the position the container shows right now
func (c *Controller) Offset() float64 { return c.anim.Position() }

// Target is where the container comes to rest
func (c *Controller) Target() float64 { return c.anim.Target() }

// Animating reports whether Step still needs to be called
func (c *Controller) Animating() bool { return c.anim.Animating() }

// Step advances the animation by one frame
func (c *Controller) Step() bool { return c.anim.Step() }

// Animator exposes the underlying spring, mostly for frame timing
func (c *Controller) Animator() *Animator { return c.anim }
