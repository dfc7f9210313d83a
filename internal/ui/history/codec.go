package history

import (
	"math"

	"couchnav/internal/logger"
	"couchnav/internal/ui/focus"
)

// Options configure a Codec
type Options struct {
	HasHeader bool
	// PersistHeader keeps a header position in snapshots; otherwise it is
	// stored and restored as section 0
	PersistHeader bool
	// FocusRecovery restores child focus indices on pop
	FocusRecovery bool
}

// Lookup returns the node occupying a section, or nil
type Lookup func(name string) focus.Node

// Codec saves and restores snapshots and holds the pending scroll of a
// restore until the page has fresh bounds.
type Codec struct {
	opts     Options
	sections []string
	lookup   Lookup

	pending  float64
	hasPend  bool
	restored bool
}

// NewCodec creates a codec for the given sections
func NewCodec(opts Options, sections []string, lookup Lookup) *Codec {
	return &Codec{opts: opts, sections: sections, lookup: lookup}
}

// Normalize maps an index to the value that is persisted
func (c *Codec) Normalize(section int) int {
	if section < 0 && (!c.opts.PersistHeader || !c.opts.HasHeader) {
		return 0
	}
	if section < -1 {
		return -1
	}
	return section
}

// Restore applies s to the child widgets and returns the section index to
// focus. The scroll is kept pending; a second Restore before the settle
// pass replaces it rather than adding to it.
func (c *Codec) Restore(s Snapshot) int {
	c.restored = true
	section := c.Normalize(s.Section)

	c.pending = math.Abs(s.ScrollY)
	c.hasPend = true

	if c.opts.FocusRecovery && len(s.Focus) > 0 {
		for _, name := range c.sections {
			idx, ok := s.Focus[name]
			if !ok {
				continue
			}
			focus.SetIndex(c.node(name), idx)
		}
	}
	logger.Get().Debug("snapshot restore pending",
		"section", section,
		"scrollY", c.pending)
	return section
}

// Save builds the snapshot for the given section and signed offset
func (c *Codec) Save(section int, offset float64) Snapshot {
	s := Snapshot{
		Section: c.Normalize(section),
		ScrollY: math.Abs(offset),
		Focus:   make(map[string]int),
	}
	for _, name := range c.sections {
		if idx := focus.Index(c.node(name)); idx != focus.NoIndex {
			s.Focus[name] = idx
		}
	}
	return s
}

// Pending returns the magnitude waiting to be applied
func (c *Codec) Pending() (float64, bool) {
	return c.pending, c.hasPend
}

// TakePending returns and clears the pending magnitude. Only the settle
// pass calls it.
func (c *Codec) TakePending() (float64, bool) {
	p, ok := c.pending, c.hasPend
	c.pending, c.hasPend = 0, false
	return p, ok
}

// Restored reports whether the current activation came from history
func (c *Codec) Restored() bool { return c.restored }

// ClearRestored forgets the restored flag when the page is left
func (c *Codec) ClearRestored() { c.restored = false }

func (c *Codec) node(name string) focus.Node {
	if c.lookup == nil {
		return nil
	}
	return c.lookup(name)
}
