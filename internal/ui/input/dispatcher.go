// Package input maps remote keys to section moves, widget handling and
// page signals.
package input

import (
	"couchnav/internal/ui/focus"
)

// Context is the read-only page state the dispatcher needs
type Context struct {
	SectionCount int
	Index        int
	HasHeader    bool
	// FocusPath lists the nodes that may consume a key, deepest first
	FocusPath []focus.Node
}

// AtHeader reports whether the header holds focus
func (c Context) AtHeader() bool {
	return c.HasHeader && c.Index < 0
}

// Override lets a page replace the default handling of a key. The bool
// reports whether the page took the key.
type Override interface {
	OverrideKey(k focus.Key, ctx Context) ([]Action, bool)
}

// OverrideFunc adapts a function to Override
type OverrideFunc func(k focus.Key, ctx Context) ([]Action, bool)

func (f OverrideFunc) OverrideKey(k focus.Key, ctx Context) ([]Action, bool) {
	return f(k, ctx)
}

// Dispatcher turns a key into actions
type Dispatcher struct {
	override Override
}

// NewDispatcher creates a dispatcher with the default transitions
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SetOverride installs the page override
func (d *Dispatcher) SetOverride(o Override) {
	d.override = o
}

// Dispatch returns the actions for k and whether the key was handled.
// Order: page override, Back, empty page, focused nodes, defaults.
func (d *Dispatcher) Dispatch(k focus.Key, ctx Context) ([]Action, bool) {
	if k == focus.KeyNone {
		return nil, false
	}
	if d.override != nil {
		if actions, ok := d.override.OverrideKey(k, ctx); ok {
			return actions, true
		}
	}
	if k == focus.KeyBack {
		return []Action{BackAction{}}, true
	}
	if ctx.SectionCount == 0 {
		// swallow so a stale global handler never sees it
		return nil, true
	}

	for _, n := range ctx.FocusPath {
		sig, consumed := focus.Offer(n, k)
		if !consumed {
			continue
		}
		if sig.Kind == focus.SignalNone {
			return nil, true
		}
		return []Action{SignalAction{Signal: sig}}, true
	}

	switch k {
	case focus.KeyDown:
		return []Action{NextSectionAction{}}, true
	case focus.KeyUp:
		return []Action{PrevSectionAction{}}, true
	default:
		return nil, false
	}
}
